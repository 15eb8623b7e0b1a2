// printer.go
//
// The printing contract:
//   Int, Float decimal (Float always carries a decimal point, also in
//   exponent form; non-finite values print as NaN, +Inf, -Inf), Bool as
//   true/false, None as none, Str raw at top level but quoted inside
//   containers, List as [e1, e2], Tuple as (e1, e2), Dict as {k: v} in
//   insertion order with quoted keys.
//
// Self-referential containers print "[...]" / "{...}" at the point of
// recursion instead of looping.
package forge

import (
	"strconv"
	"strings"
)

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".nN") {
		return s
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

// FormatValue returns the top-level printed form of v: the form `print`
// writes and the `str` word produces. Strings appear raw, without quotes.
func FormatValue(v Value) string {
	if v.Tag == VTStr {
		return v.Data.(string)
	}
	var b strings.Builder
	writeValue(&b, v, map[interface{}]bool{})
	return b.String()
}

// writeValue renders v in element position (strings quoted). seen holds the
// container handles on the current recursion path.
func writeValue(b *strings.Builder, v Value, seen map[interface{}]bool) {
	switch v.Tag {
	case VTNone:
		b.WriteString("none")
	case VTBool:
		if v.Data.(bool) {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case VTInt:
		b.WriteString(strconv.FormatInt(v.Data.(int64), 10))
	case VTFloat:
		b.WriteString(formatFloat(v.Data.(float64)))
	case VTStr:
		b.WriteString(quoteString(v.Data.(string)))
	case VTList:
		lo := v.list()
		if seen[lo] {
			b.WriteString("[...]")
			return
		}
		seen[lo] = true
		b.WriteByte('[')
		for i, it := range lo.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, it, seen)
		}
		b.WriteByte(']')
		delete(seen, lo)
	case VTTuple:
		xs := v.Data.([]Value)
		b.WriteByte('(')
		for i, it := range xs {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, it, seen)
		}
		b.WriteByte(')')
	case VTDict:
		do := v.dict()
		if seen[do] {
			b.WriteString("{...}")
			return
		}
		seen[do] = true
		b.WriteByte('{')
		for i, k := range do.Keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quoteString(k))
			b.WriteString(": ")
			writeValue(b, do.Entries[k], seen)
		}
		b.WriteByte('}')
		delete(seen, do)
	}
}
