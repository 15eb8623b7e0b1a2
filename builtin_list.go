// builtin_list.go
//
// List construction and the list_* word family. Mutating words operate on
// the shared container in place and push nothing back: the variable
// binding's handle is enough to observe the change. Non-mutating words push
// their result.
//
// Indices accept negative values counting from the end, and list_slice
// clamps out-of-range bounds instead of failing.
package forge

import "sort"

func registerListBuiltins(ip *Interp) {
	ip.register("list", builtinList)
	ip.register("tuple", builtinTuple)
	ip.register("range", builtinRange)

	ip.register("list_append", builtinListAppend)
	ip.register("list_pop", builtinListPop)
	ip.register("list_pop_at", builtinListPopAt)
	ip.register("list_insert", builtinListInsert)
	ip.register("list_remove", builtinListRemove)
	ip.register("list_extend", builtinListExtend)
	ip.register("list_index", builtinListIndex)
	ip.register("list_count", builtinListCount)
	ip.register("list_sort", builtinListSort)
	ip.register("list_reverse", builtinListReverse)
	ip.register("list_copy", builtinListCopy)
	ip.register("list_clear", builtinListClear)
	ip.register("list_len", builtinListLen)
	ip.register("list_get", builtinListGet)
	ip.register("list_set", builtinListSet)
	ip.register("list_slice", builtinListSlice)
}

// popCounted pops a count and then that many values, restoring stack-push
// order (the first value pushed becomes index 0).
func popCounted(ip *Interp, word string) ([]Value, error) {
	n, err := ip.popInt("'" + word + "' expects an integer count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errf(ErrType, "'%s' count must be non-negative", word)
	}
	if err := ip.need(int(n), word); err != nil {
		return nil, err
	}
	out := make([]Value, n)
	for i := int(n) - 1; i >= 0; i-- {
		out[i], _ = ip.pop()
	}
	return out, nil
}

func builtinList(ip *Interp) error {
	xs, err := popCounted(ip, "list")
	if err != nil {
		return err
	}
	ip.push(NewList(xs))
	return nil
}

func builtinTuple(ip *Interp) error {
	xs, err := popCounted(ip, "tuple")
	if err != nil {
		return err
	}
	ip.push(Tuple(xs))
	return nil
}

// builtinRange pops step, stop, start and pushes the materialized list of
// Ints over the half-open interval [start, stop).
func builtinRange(ip *Interp) error {
	step, err := ip.popInt("'range' expects integer start, stop, step")
	if err != nil {
		return err
	}
	stop, err := ip.popInt("'range' expects integer start, stop, step")
	if err != nil {
		return err
	}
	start, err := ip.popInt("'range' expects integer start, stop, step")
	if err != nil {
		return err
	}
	if step == 0 {
		return errf(ErrArith, "range step must not be zero")
	}
	var out []Value
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, Int(i))
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, Int(i))
		}
	}
	ip.push(NewList(out))
	return nil
}

// normIndex maps a possibly-negative index onto [0, n).
func normIndex(idx int64, n int) (int, bool) {
	if idx < 0 {
		idx += int64(n)
	}
	if idx < 0 || idx >= int64(n) {
		return 0, false
	}
	return int(idx), true
}

// clampBound maps a slice bound onto [0, n], negative values counting from
// the end.
func clampBound(idx int64, n int) int {
	if idx < 0 {
		idx += int64(n)
	}
	if idx < 0 {
		return 0
	}
	if idx > int64(n) {
		return n
	}
	return int(idx)
}

func builtinListAppend(ip *Interp) error {
	elem, err := ip.pop()
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_append")
	if err != nil {
		return err
	}
	lo.Items = append(lo.Items, elem)
	return nil
}

func builtinListPop(ip *Interp) error {
	lo, err := ip.popList("list_pop")
	if err != nil {
		return err
	}
	if len(lo.Items) == 0 {
		return errf(ErrIndex, "list_pop on empty list")
	}
	elem := lo.Items[len(lo.Items)-1]
	lo.Items = lo.Items[:len(lo.Items)-1]
	ip.push(elem)
	return nil
}

func builtinListPopAt(ip *Interp) error {
	idx, err := ip.popInt("list_pop_at expects an integer index")
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_pop_at")
	if err != nil {
		return err
	}
	i, ok := normIndex(idx, len(lo.Items))
	if !ok {
		return errf(ErrIndex, "list_pop_at index %d out of range", idx)
	}
	elem := lo.Items[i]
	lo.Items = append(lo.Items[:i], lo.Items[i+1:]...)
	ip.push(elem)
	return nil
}

func builtinListInsert(ip *Interp) error {
	elem, err := ip.pop()
	if err != nil {
		return err
	}
	idx, err := ip.popInt("list_insert expects an integer index")
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_insert")
	if err != nil {
		return err
	}
	i := clampBound(idx, len(lo.Items))
	lo.Items = append(lo.Items, None)
	copy(lo.Items[i+1:], lo.Items[i:])
	lo.Items[i] = elem
	return nil
}

func builtinListRemove(ip *Interp) error {
	elem, err := ip.pop()
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_remove")
	if err != nil {
		return err
	}
	for i, it := range lo.Items {
		if Equal(it, elem) {
			lo.Items = append(lo.Items[:i], lo.Items[i+1:]...)
			return nil
		}
	}
	return errf(ErrIndex, "list_remove: element not found")
}

func builtinListExtend(ip *Interp) error {
	src, err := ip.popList("list_extend")
	if err != nil {
		return err
	}
	dst, err := ip.popList("list_extend")
	if err != nil {
		return err
	}
	dst.Items = append(dst.Items, src.Items...)
	return nil
}

func builtinListIndex(ip *Interp) error {
	elem, err := ip.pop()
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_index")
	if err != nil {
		return err
	}
	for i, it := range lo.Items {
		if Equal(it, elem) {
			ip.push(Int(int64(i)))
			return nil
		}
	}
	return errf(ErrIndex, "list_index: element not found")
}

func builtinListCount(ip *Interp) error {
	elem, err := ip.pop()
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_count")
	if err != nil {
		return err
	}
	var n int64
	for _, it := range lo.Items {
		if Equal(it, elem) {
			n++
		}
	}
	ip.push(Int(n))
	return nil
}

// builtinListSort orders in place. Elements must be all numeric or all
// strings; anything else cannot be ordered.
func builtinListSort(ip *Interp) error {
	lo, err := ip.popList("list_sort")
	if err != nil {
		return err
	}
	for i := 1; i < len(lo.Items); i++ {
		if _, err := Compare(lo.Items[0], lo.Items[i]); err != nil {
			return errf(ErrType, "list_sort: %s elements cannot be ordered with %s elements",
				lo.Items[0].Tag, lo.Items[i].Tag)
		}
	}
	sort.SliceStable(lo.Items, func(i, j int) bool {
		c, _ := Compare(lo.Items[i], lo.Items[j])
		return c < 0
	})
	return nil
}

func builtinListReverse(ip *Interp) error {
	lo, err := ip.popList("list_reverse")
	if err != nil {
		return err
	}
	for i, j := 0, len(lo.Items)-1; i < j; i, j = i+1, j-1 {
		lo.Items[i], lo.Items[j] = lo.Items[j], lo.Items[i]
	}
	return nil
}

func builtinListCopy(ip *Interp) error {
	lo, err := ip.popList("list_copy")
	if err != nil {
		return err
	}
	out := make([]Value, len(lo.Items))
	copy(out, lo.Items)
	ip.push(NewList(out))
	return nil
}

func builtinListClear(ip *Interp) error {
	lo, err := ip.popList("list_clear")
	if err != nil {
		return err
	}
	lo.Items = lo.Items[:0] // container identity is preserved
	return nil
}

func builtinListLen(ip *Interp) error {
	lo, err := ip.popList("list_len")
	if err != nil {
		return err
	}
	ip.push(Int(int64(len(lo.Items))))
	return nil
}

func builtinListGet(ip *Interp) error {
	idx, err := ip.popInt("list_get expects an integer index")
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_get")
	if err != nil {
		return err
	}
	i, ok := normIndex(idx, len(lo.Items))
	if !ok {
		return errf(ErrIndex, "list_get index %d out of range", idx)
	}
	ip.push(lo.Items[i])
	return nil
}

func builtinListSet(ip *Interp) error {
	v, err := ip.pop()
	if err != nil {
		return err
	}
	idx, err := ip.popInt("list_set expects an integer index")
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_set")
	if err != nil {
		return err
	}
	i, ok := normIndex(idx, len(lo.Items))
	if !ok {
		return errf(ErrIndex, "list_set index %d out of range", idx)
	}
	lo.Items[i] = v
	return nil
}

func builtinListSlice(ip *Interp) error {
	end, err := ip.popInt("list_slice expects integer bounds")
	if err != nil {
		return err
	}
	start, err := ip.popInt("list_slice expects integer bounds")
	if err != nil {
		return err
	}
	lo, err := ip.popList("list_slice")
	if err != nil {
		return err
	}
	i := clampBound(start, len(lo.Items))
	j := clampBound(end, len(lo.Items))
	if j < i {
		j = i
	}
	out := make([]Value, j-i)
	copy(out, lo.Items[i:j])
	ip.push(NewList(out))
	return nil
}
