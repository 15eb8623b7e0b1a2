// resolver.go
//
// Single forward pass over the token stream that pairs every control-flow
// opener (if/while/for/times/def) with its `else` and `end`. The evaluator
// consults the resulting jump table so that control-flow dispatch is O(1)
// per opener instead of re-scanning for block boundaries.
package forge

// Jump records, for an opener token index, the paired branch targets.
// Else is -1 when the block has no else branch.
type Jump struct {
	Else int
	End  int
}

type blockKind int

const (
	bkIf blockKind = iota
	bkWhile
	bkFor
	bkTimes
	bkDef
)

func (k blockKind) String() string {
	switch k {
	case bkIf:
		return "if"
	case bkWhile:
		return "while"
	case bkFor:
		return "for"
	case bkTimes:
		return "times"
	case bkDef:
		return "def"
	}
	return "?"
}

// endInfo tells the evaluator which construct a given `end` token closes.
type endInfo struct {
	kind   blockKind
	opener int
}

// Proc is a registered procedure body: the token range (Start inclusive,
// End exclusive) inside the program it was resolved in. The range excludes
// the `def NAME` opener and the closing `end`.
type Proc struct {
	prog  *Program
	Start int
	End   int
}

// Program is a resolved token stream ready for execution.
type Program struct {
	Tokens []Token
	jumps  map[int]Jump    // opener index -> else/end
	ends   map[int]endInfo // end index -> closed construct
	elses  map[int]int     // else index -> matching end
	procs  map[string]Proc // procedures defined by this program
}

type openFrame struct {
	kind    blockKind
	opener  int
	elseIdx int
	name    string // procedure name for bkDef
}

func resolveErrf(format string, args ...interface{}) error {
	return errf(ErrResolve, format, args...)
}

// Resolve scans tokens once, builds the jump table, and registers every
// `def NAME ... end` body it sees (nested definitions included).
func Resolve(tokens []Token) (*Program, error) {
	prog := &Program{
		Tokens: tokens,
		jumps:  map[int]Jump{},
		ends:   map[int]endInfo{},
		elses:  map[int]int{},
		procs:  map[string]Proc{},
	}

	var open []openFrame
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Type != WORD {
			continue
		}
		switch tok.Lexeme {
		case "if":
			open = append(open, openFrame{kind: bkIf, opener: i, elseIdx: -1})
		case "while":
			open = append(open, openFrame{kind: bkWhile, opener: i, elseIdx: -1})
		case "for":
			open = append(open, openFrame{kind: bkFor, opener: i, elseIdx: -1})
		case "times":
			open = append(open, openFrame{kind: bkTimes, opener: i, elseIdx: -1})
		case "def":
			if i+1 >= len(tokens) || tokens[i+1].Type != WORD {
				return nil, resolveErrf("expected procedure name after 'def'")
			}
			open = append(open, openFrame{kind: bkDef, opener: i, elseIdx: -1, name: tokens[i+1].Lexeme})
			i++ // the name token is not part of the body
		case "else":
			if len(open) == 0 || open[len(open)-1].kind != bkIf {
				return nil, resolveErrf("'else' outside of 'if'")
			}
			top := &open[len(open)-1]
			if top.elseIdx >= 0 {
				return nil, resolveErrf("duplicate 'else' in 'if'")
			}
			top.elseIdx = i
		case "end":
			if len(open) == 0 {
				return nil, resolveErrf("unexpected 'end'")
			}
			top := open[len(open)-1]
			open = open[:len(open)-1]
			prog.jumps[top.opener] = Jump{Else: top.elseIdx, End: i}
			prog.ends[i] = endInfo{kind: top.kind, opener: top.opener}
			if top.elseIdx >= 0 {
				prog.elses[top.elseIdx] = i
			}
			if top.kind == bkDef {
				prog.procs[top.name] = Proc{prog: prog, Start: top.opener + 2, End: i}
			}
		}
	}
	if len(open) > 0 {
		top := open[len(open)-1]
		return nil, resolveErrf("'%s' block not terminated with 'end'", top.kind)
	}
	return prog, nil
}

// JumpFor exposes the jump table entry for an opener token index.
func (p *Program) JumpFor(opener int) (Jump, bool) {
	j, ok := p.jumps[opener]
	return j, ok
}
