// types.go
//
// The Forge runtime value model: a tagged union over the eight variants the
// language exposes. Lists and dicts are shared handles (pointer payloads) so
// that two stack slots or store bindings referring to the same container
// observe each other's mutations; everything else has value semantics.
package forge

import "math"

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNone  ValueTag = iota // unit (no payload)
	VTBool                  // bool
	VTInt                   // int64
	VTFloat                 // float64
	VTStr                   // string
	VTList                  // *ListObject (shared, mutable)
	VTDict                  // *DictObject (shared, mutable, insertion-ordered)
	VTTuple                 // []Value (immutable group)
)

func (t ValueTag) String() string {
	switch t {
	case VTNone:
		return "none"
	case VTBool:
		return "bool"
	case VTInt:
		return "int"
	case VTFloat:
		return "float"
	case VTStr:
		return "str"
	case VTList:
		return "list"
	case VTDict:
		return "dict"
	case VTTuple:
		return "tuple"
	}
	return "unknown"
}

// Value is the single runtime value representation.
//
// Invariants:
//   - Data holds the Go value matching Tag (int64 for VTInt, *ListObject for
//     VTList, ...). Tag VTNone carries nil Data.
//   - Two VTList (or VTDict) Values with the same pointer alias one
//     container.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// None is the unit value.
var None = Value{Tag: VTNone}

func Bool(b bool) Value    { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value    { return Value{Tag: VTInt, Data: n} }
func Float(f float64) Value { return Value{Tag: VTFloat, Data: f} }
func Str(s string) Value   { return Value{Tag: VTStr, Data: s} }

// Tuple wraps xs as an immutable group. The caller must not retain xs.
func Tuple(xs []Value) Value { return Value{Tag: VTTuple, Data: xs} }

// ListObject is the mutable backing store of a VTList value.
type ListObject struct {
	Items []Value
}

// NewList wraps xs in a fresh container handle. The caller must not retain xs.
func NewList(xs []Value) Value {
	return Value{Tag: VTList, Data: &ListObject{Items: xs}}
}

// DictObject is the mutable backing store of a VTDict value. Keys preserves
// first-seen insertion order; Entries is the lookup index.
type DictObject struct {
	Entries map[string]Value
	Keys    []string
}

// NewDict creates an empty dict value.
func NewDict() Value {
	return Value{Tag: VTDict, Data: &DictObject{Entries: map[string]Value{}}}
}

func (d *DictObject) Get(key string) (Value, bool) {
	v, ok := d.Entries[key]
	return v, ok
}

// Set inserts or overwrites. Insertion order records the first write only.
func (d *DictObject) Set(key string, v Value) {
	if _, ok := d.Entries[key]; !ok {
		d.Keys = append(d.Keys, key)
	}
	d.Entries[key] = v
}

// Pop removes and returns the value bound to key.
func (d *DictObject) Pop(key string) (Value, bool) {
	v, ok := d.Entries[key]
	if !ok {
		return None, false
	}
	delete(d.Entries, key)
	for i, k := range d.Keys {
		if k == key {
			d.Keys = append(d.Keys[:i], d.Keys[i+1:]...)
			break
		}
	}
	return v, true
}

func (d *DictObject) Len() int { return len(d.Keys) }

// list returns the backing object of a VTList value.
func (v Value) list() *ListObject { return v.Data.(*ListObject) }

// dict returns the backing object of a VTDict value.
func (v Value) dict() *DictObject { return v.Data.(*DictObject) }

// Truthy implements the if/while condition test: Bool by value, numerics by
// nonzero, Str/List/Dict/Tuple by nonempty, None false.
func Truthy(v Value) bool {
	switch v.Tag {
	case VTNone:
		return false
	case VTBool:
		return v.Data.(bool)
	case VTInt:
		return v.Data.(int64) != 0
	case VTFloat:
		return v.Data.(float64) != 0
	case VTStr:
		return v.Data.(string) != ""
	case VTList:
		return len(v.list().Items) > 0
	case VTDict:
		return v.dict().Len() > 0
	case VTTuple:
		return len(v.Data.([]Value)) > 0
	}
	return false
}

// numeric reports v as a float64 when it is Int or Float.
func numeric(v Value) (float64, bool) {
	switch v.Tag {
	case VTInt:
		return float64(v.Data.(int64)), true
	case VTFloat:
		return v.Data.(float64), true
	}
	return 0, false
}

// bothInt reports both operands as int64 when both are Int.
func bothInt(a, b Value) (int64, int64, bool) {
	if a.Tag == VTInt && b.Tag == VTInt {
		return a.Data.(int64), b.Data.(int64), true
	}
	return 0, 0, false
}

// Equal is structural equality: Int and Float compare numerically, strings
// to strings, containers element-wise, None to None. Mismatched variants
// compare unequal rather than failing.
func Equal(a, b Value) bool {
	if fa, ok := numeric(a); ok {
		if fb, ok := numeric(b); ok {
			return fa == fb
		}
		return false
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNone:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		return equalSlices(a.list().Items, b.list().Items)
	case VTTuple:
		return equalSlices(a.Data.([]Value), b.Data.([]Value))
	case VTDict:
		da, db := a.dict(), b.dict()
		if da.Len() != db.Len() {
			return false
		}
		for k, va := range da.Entries {
			vb, ok := db.Entries[k]
			if !ok || !Equal(va, vb) {
				return false
			}
		}
		return true
	}
	return false
}

func equalSlices(xs, ys []Value) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

// Compare orders two numerics or two strings, returning -1, 0 or 1. Any
// other pairing is a type error.
func Compare(a, b Value) (int, error) {
	if fa, ok := numeric(a); ok {
		if fb, ok := numeric(b); ok {
			switch {
			case fa < fb:
				return -1, nil
			case fa > fb:
				return 1, nil
			}
			return 0, nil
		}
	}
	if a.Tag == VTStr && b.Tag == VTStr {
		sa, sb := a.Data.(string), b.Data.(string)
		switch {
		case sa < sb:
			return -1, nil
		case sa > sb:
			return 1, nil
		}
		return 0, nil
	}
	return 0, errf(ErrType, "cannot order %s and %s", a.Tag, b.Tag)
}

// truncDiv is integer division truncating toward zero; the division-by-zero
// check belongs to the caller. MinInt64 / -1 wraps.
func truncDiv(a, b int64) int64 {
	if a == math.MinInt64 && b == -1 {
		return math.MinInt64
	}
	return a / b
}
