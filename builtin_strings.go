// builtin_strings.go
//
// The str_* word family. All indexing is by Unicode code point, never by
// byte; case mapping goes through golang.org/x/text so that non-ASCII input
// behaves.
package forge

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func registerStringBuiltins(ip *Interp) {
	ip.register("str_upper", builtinStrUpper)
	ip.register("str_lower", builtinStrLower)
	ip.register("str_capitalize", builtinStrCapitalize)
	ip.register("str_strip", builtinStrStrip)
	ip.register("str_find", builtinStrFind)
	ip.register("str_replace", builtinStrReplace)
	ip.register("str_split", builtinStrSplit)
	ip.register("str_split_on", builtinStrSplitOn)
	ip.register("str_join", builtinStrJoin)
	ip.register("str_startswith", builtinStrStartswith)
	ip.register("str_endswith", builtinStrEndswith)
	ip.register("str_isdigit", builtinStrIsdigit)
	ip.register("str_isalpha", builtinStrIsalpha)
}

func builtinStrUpper(ip *Interp) error {
	s, err := ip.popStr("str_upper")
	if err != nil {
		return err
	}
	ip.push(Str(upperCaser.String(s)))
	return nil
}

func builtinStrLower(ip *Interp) error {
	s, err := ip.popStr("str_lower")
	if err != nil {
		return err
	}
	ip.push(Str(lowerCaser.String(s)))
	return nil
}

// builtinStrCapitalize upper-cases the first code point and lower-cases the
// rest.
func builtinStrCapitalize(ip *Interp) error {
	s, err := ip.popStr("str_capitalize")
	if err != nil {
		return err
	}
	if s == "" {
		ip.push(Str(s))
		return nil
	}
	_, size := utf8.DecodeRuneInString(s)
	ip.push(Str(upperCaser.String(s[:size]) + lowerCaser.String(s[size:])))
	return nil
}

func builtinStrStrip(ip *Interp) error {
	s, err := ip.popStr("str_strip")
	if err != nil {
		return err
	}
	ip.push(Str(strings.TrimSpace(s)))
	return nil
}

// builtinStrFind pushes the code-point index of the first occurrence, or -1.
func builtinStrFind(ip *Interp) error {
	sub, err := ip.popStr("str_find")
	if err != nil {
		return err
	}
	s, err := ip.popStr("str_find")
	if err != nil {
		return err
	}
	idx := strings.Index(s, sub)
	if idx < 0 {
		ip.push(Int(-1))
		return nil
	}
	ip.push(Int(int64(utf8.RuneCountInString(s[:idx]))))
	return nil
}

func builtinStrReplace(ip *Interp) error {
	newSub, err := ip.popStr("str_replace")
	if err != nil {
		return err
	}
	oldSub, err := ip.popStr("str_replace")
	if err != nil {
		return err
	}
	s, err := ip.popStr("str_replace")
	if err != nil {
		return err
	}
	ip.push(Str(strings.ReplaceAll(s, oldSub, newSub)))
	return nil
}

// builtinStrSplit splits on runs of whitespace, dropping empty fields.
func builtinStrSplit(ip *Interp) error {
	s, err := ip.popStr("str_split")
	if err != nil {
		return err
	}
	fields := strings.Fields(s)
	out := make([]Value, 0, len(fields))
	for _, f := range fields {
		out = append(out, Str(f))
	}
	ip.push(NewList(out))
	return nil
}

func builtinStrSplitOn(ip *Interp) error {
	sep, err := ip.popStr("str_split_on")
	if err != nil {
		return err
	}
	s, err := ip.popStr("str_split_on")
	if err != nil {
		return err
	}
	if sep == "" {
		return errf(ErrType, "str_split_on: empty separator")
	}
	parts := strings.Split(s, sep)
	out := make([]Value, 0, len(parts))
	for _, p := range parts {
		out = append(out, Str(p))
	}
	ip.push(NewList(out))
	return nil
}

// builtinStrJoin pops the separator, then a list of strings.
func builtinStrJoin(ip *Interp) error {
	sep, err := ip.popStr("str_join")
	if err != nil {
		return err
	}
	lo, err := ip.popList("str_join")
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(lo.Items))
	for _, it := range lo.Items {
		if it.Tag != VTStr {
			return errf(ErrType, "str_join expects a list of strings, found %s", it.Tag)
		}
		parts = append(parts, it.Data.(string))
	}
	ip.push(Str(strings.Join(parts, sep)))
	return nil
}

func builtinStrStartswith(ip *Interp) error {
	prefix, err := ip.popStr("str_startswith")
	if err != nil {
		return err
	}
	s, err := ip.popStr("str_startswith")
	if err != nil {
		return err
	}
	ip.push(Bool(strings.HasPrefix(s, prefix)))
	return nil
}

func builtinStrEndswith(ip *Interp) error {
	suffix, err := ip.popStr("str_endswith")
	if err != nil {
		return err
	}
	s, err := ip.popStr("str_endswith")
	if err != nil {
		return err
	}
	ip.push(Bool(strings.HasSuffix(s, suffix)))
	return nil
}

func builtinStrIsdigit(ip *Interp) error {
	s, err := ip.popStr("str_isdigit")
	if err != nil {
		return err
	}
	ip.push(Bool(s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0))
	return nil
}

func builtinStrIsalpha(ip *Interp) error {
	s, err := ip.popStr("str_isalpha")
	if err != nil {
		return err
	}
	ip.push(Bool(s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) }) < 0))
	return nil
}
