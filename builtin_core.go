// builtin_core.go
//
// Stack shuffling, arithmetic, comparison, the variable store, I/O and the
// conversion words. Numeric coercion is centralized here: if both operands
// are Int the result is Int (wrapping two's-complement), otherwise both
// coerce to Float.
package forge

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

func registerCoreBuiltins(ip *Interp) {
	// Stack shuffling.
	ip.register("dup", builtinDup)
	ip.register("swap", builtinSwap)
	ip.register("drop", builtinDrop)
	ip.register("over", builtinOver)
	ip.register("rot", builtinRot)

	// Arithmetic and comparison.
	ip.register("add", builtinAdd)
	ip.register("sub", builtinSub)
	ip.register("mul", builtinMul)
	ip.register("div", builtinDiv)
	ip.register("mod", builtinMod)
	ip.register("eq", builtinEq)
	ip.register("gt", builtinGt)
	ip.register("lt", builtinLt)

	// Variable store.
	ip.register("store", builtinStore)
	ip.register("load", builtinLoad)

	// I/O.
	ip.register("print", builtinPrint)
	ip.register("input", builtinInput)

	// Conversions.
	ip.register("bool", builtinBool)
	ip.register("int", builtinInt)
	ip.register("float", builtinFloat)
	ip.register("str", builtinStr)

	// Constants. The bare literal words mirror the push_* forms.
	ip.register("true", pushConst(Bool(true)))
	ip.register("false", pushConst(Bool(false)))
	ip.register("none", pushConst(None))
	ip.register("push_true", pushConst(Bool(true)))
	ip.register("push_false", pushConst(Bool(false)))
	ip.register("push_none", pushConst(None))
}

func pushConst(v Value) builtinFunc {
	return func(ip *Interp) error {
		ip.push(v)
		return nil
	}
}

// ----- stack shuffling -----

func builtinDup(ip *Interp) error {
	if err := ip.need(1, "dup"); err != nil {
		return err
	}
	ip.push(ip.stack[len(ip.stack)-1])
	return nil
}

func builtinSwap(ip *Interp) error {
	if err := ip.need(2, "swap"); err != nil {
		return err
	}
	n := len(ip.stack)
	ip.stack[n-1], ip.stack[n-2] = ip.stack[n-2], ip.stack[n-1]
	return nil
}

func builtinDrop(ip *Interp) error {
	_, err := ip.pop()
	return err
}

func builtinOver(ip *Interp) error {
	if err := ip.need(2, "over"); err != nil {
		return err
	}
	ip.push(ip.stack[len(ip.stack)-2])
	return nil
}

func builtinRot(ip *Interp) error {
	if err := ip.need(3, "rot"); err != nil {
		return err
	}
	n := len(ip.stack)
	ip.stack[n-3], ip.stack[n-2], ip.stack[n-1] = ip.stack[n-2], ip.stack[n-1], ip.stack[n-3]
	return nil
}

// ----- arithmetic -----

// binOperands pops the right operand then the left, so `a b op` computes
// `a op b`.
func binOperands(ip *Interp) (Value, Value, error) {
	b, err := ip.pop()
	if err != nil {
		return None, None, err
	}
	a, err := ip.pop()
	if err != nil {
		return None, None, err
	}
	return a, b, nil
}

func builtinAdd(ip *Interp) error {
	a, b, err := binOperands(ip)
	if err != nil {
		return err
	}
	if ia, ib, ok := bothInt(a, b); ok {
		ip.push(Int(ia + ib))
		return nil
	}
	if fa, ok := numeric(a); ok {
		if fb, ok := numeric(b); ok {
			ip.push(Float(fa + fb))
			return nil
		}
	}
	if a.Tag == VTStr && b.Tag == VTStr {
		ip.push(Str(a.Data.(string) + b.Data.(string)))
		return nil
	}
	if a.Tag == VTList && b.Tag == VTList {
		xs := a.list().Items
		ys := b.list().Items
		out := make([]Value, 0, len(xs)+len(ys))
		out = append(out, xs...)
		out = append(out, ys...)
		ip.push(NewList(out))
		return nil
	}
	if a.Tag == VTTuple && b.Tag == VTTuple {
		xs := a.Data.([]Value)
		ys := b.Data.([]Value)
		out := make([]Value, 0, len(xs)+len(ys))
		out = append(out, xs...)
		out = append(out, ys...)
		ip.push(Tuple(out))
		return nil
	}
	return errf(ErrType, "cannot add %s and %s", a.Tag, b.Tag)
}

func builtinSub(ip *Interp) error {
	a, b, err := binOperands(ip)
	if err != nil {
		return err
	}
	if ia, ib, ok := bothInt(a, b); ok {
		ip.push(Int(ia - ib))
		return nil
	}
	if fa, ok := numeric(a); ok {
		if fb, ok := numeric(b); ok {
			ip.push(Float(fa - fb))
			return nil
		}
	}
	return errf(ErrType, "cannot subtract %s and %s", a.Tag, b.Tag)
}

func builtinMul(ip *Interp) error {
	a, b, err := binOperands(ip)
	if err != nil {
		return err
	}
	if ia, ib, ok := bothInt(a, b); ok {
		ip.push(Int(ia * ib))
		return nil
	}
	if fa, ok := numeric(a); ok {
		if fb, ok := numeric(b); ok {
			ip.push(Float(fa * fb))
			return nil
		}
	}
	// Str/List repetition, either operand order.
	if a.Tag == VTInt {
		a, b = b, a
	}
	if b.Tag == VTInt {
		n := b.Data.(int64)
		if n < 0 {
			n = 0
		}
		switch a.Tag {
		case VTStr:
			ip.push(Str(strings.Repeat(a.Data.(string), int(n))))
			return nil
		case VTList:
			xs := a.list().Items
			out := make([]Value, 0, int(n)*len(xs))
			for i := int64(0); i < n; i++ {
				out = append(out, xs...)
			}
			ip.push(NewList(out))
			return nil
		}
	}
	return errf(ErrType, "cannot multiply %s and %s", a.Tag, b.Tag)
}

func builtinDiv(ip *Interp) error {
	a, b, err := binOperands(ip)
	if err != nil {
		return err
	}
	if ia, ib, ok := bothInt(a, b); ok {
		if ib == 0 {
			return errf(ErrArith, "division by zero")
		}
		ip.push(Int(truncDiv(ia, ib)))
		return nil
	}
	if fa, ok := numeric(a); ok {
		if fb, ok := numeric(b); ok {
			if fb == 0 {
				return errf(ErrArith, "division by zero")
			}
			ip.push(Float(fa / fb))
			return nil
		}
	}
	return errf(ErrType, "cannot divide %s and %s", a.Tag, b.Tag)
}

func builtinMod(ip *Interp) error {
	a, b, err := binOperands(ip)
	if err != nil {
		return err
	}
	if ia, ib, ok := bothInt(a, b); ok {
		if ib == 0 {
			return errf(ErrArith, "modulo by zero")
		}
		ip.push(Int(ia % ib)) // sign of the dividend
		return nil
	}
	if fa, ok := numeric(a); ok {
		if fb, ok := numeric(b); ok {
			if fb == 0 {
				return errf(ErrArith, "modulo by zero")
			}
			ip.push(Float(math.Mod(fa, fb)))
			return nil
		}
	}
	return errf(ErrType, "cannot take modulo of %s and %s", a.Tag, b.Tag)
}

// ----- comparison -----

func builtinEq(ip *Interp) error {
	a, b, err := binOperands(ip)
	if err != nil {
		return err
	}
	ip.push(Bool(Equal(a, b)))
	return nil
}

func builtinGt(ip *Interp) error {
	a, b, err := binOperands(ip)
	if err != nil {
		return err
	}
	c, err := Compare(a, b)
	if err != nil {
		return err
	}
	ip.push(Bool(c > 0))
	return nil
}

func builtinLt(ip *Interp) error {
	a, b, err := binOperands(ip)
	if err != nil {
		return err
	}
	c, err := Compare(a, b)
	if err != nil {
		return err
	}
	ip.push(Bool(c < 0))
	return nil
}

// ----- variable store -----

func builtinStore(ip *Interp) error {
	name, err := ip.popStr("store")
	if err != nil {
		return err
	}
	v, err := ip.pop()
	if err != nil {
		return err
	}
	ip.vars[name] = v
	return nil
}

func builtinLoad(ip *Interp) error {
	name, err := ip.popStr("load")
	if err != nil {
		return err
	}
	v, ok := ip.vars[name]
	if !ok {
		return errf(ErrName, "undefined variable '%s'", name)
	}
	ip.push(v)
	return nil
}

// ----- I/O -----

func builtinPrint(ip *Interp) error {
	v, err := ip.pop()
	if err != nil {
		return err
	}
	fmt.Fprintln(ip.Out, FormatValue(v))
	return nil
}

func builtinInput(ip *Interp) error {
	line, err := ip.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return errf(ErrIO, "cannot read from standard input")
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	ip.push(Str(line))
	return nil
}

// ----- conversions -----

func builtinBool(ip *Interp) error {
	v, err := ip.pop()
	if err != nil {
		return err
	}
	ip.push(Bool(Truthy(v)))
	return nil
}

func builtinInt(ip *Interp) error {
	v, err := ip.pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case VTInt:
		ip.push(v)
	case VTFloat:
		f := v.Data.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errf(ErrArith, "cannot convert %s to int", formatFloat(f))
		}
		ip.push(Int(int64(f)))
	case VTBool:
		if v.Data.(bool) {
			ip.push(Int(1))
		} else {
			ip.push(Int(0))
		}
	case VTStr:
		n, convErr := strconv.ParseInt(strings.TrimSpace(v.Data.(string)), 10, 64)
		if convErr != nil {
			return errf(ErrType, "cannot convert %q to int", v.Data.(string))
		}
		ip.push(Int(n))
	default:
		return errf(ErrType, "cannot convert %s to int", v.Tag)
	}
	return nil
}

func builtinFloat(ip *Interp) error {
	v, err := ip.pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case VTFloat:
		ip.push(v)
	case VTInt:
		ip.push(Float(float64(v.Data.(int64))))
	case VTBool:
		if v.Data.(bool) {
			ip.push(Float(1))
		} else {
			ip.push(Float(0))
		}
	case VTStr:
		f, convErr := strconv.ParseFloat(strings.TrimSpace(v.Data.(string)), 64)
		if convErr != nil {
			return errf(ErrType, "cannot convert %q to float", v.Data.(string))
		}
		ip.push(Float(f))
	default:
		return errf(ErrType, "cannot convert %s to float", v.Tag)
	}
	return nil
}

func builtinStr(ip *Interp) error {
	v, err := ip.pop()
	if err != nil {
		return err
	}
	ip.push(Str(FormatValue(v)))
	return nil
}
