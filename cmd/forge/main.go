package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	forge "github.com/KarthikSBhattar/forge-lang"
)

const (
	appName     = "forge"
	historyFile = ".forge_history"
	promptMain  = ">> "
	promptCont  = ".. "
)

var banner = "Forge REPL\nCtrl+C cancels input, Ctrl+D exits. Type 'exit' to quit."

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	switch len(os.Args) {
	case 1:
		os.Exit(runRepl())
	case 2:
		switch os.Args[1] {
		case "-h", "--help", "help":
			usage()
			os.Exit(0)
		}
		os.Exit(runFile(os.Args[1]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Forge, a stack-based RPN language

Usage:
  %s             Start the REPL.
  %s <file>      Evaluate a Forge source file.

`, appName, appName)
}

// -----------------------------------------------------------------------------
// file mode
// -----------------------------------------------------------------------------

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	ip := forge.New()
	if err := ip.Run(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func runRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := forge.New()

	for {
		code, ok := readBlock(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		if strings.TrimSpace(code) == "exit" {
			break
		}

		before, _ := ip.Top()
		depthBefore := ip.Depth()

		if err := ip.Run(code); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
			continue
		}

		// Echo the top of stack when the line changed the stack depth or the
		// top value; explicit `print` output has already gone to stdout.
		if top, ok := ip.Top(); ok && (ip.Depth() != depthBefore || !forge.Equal(top, before)) {
			fmt.Println(blue(forge.FormatValue(top)))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readBlock reads one logical unit: more lines are requested while the
// input still has an open if/while/for/times/def block.
func readBlock(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		tokens, lerr := forge.Tokenize(src)
		if lerr != nil {
			return src, true
		}
		if _, rerr := forge.Resolve(tokens); forge.IsIncomplete(rerr) {
			continue
		}
		return src, true
	}
}
