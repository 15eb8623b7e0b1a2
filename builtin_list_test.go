// builtin_list_test.go
package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListConstruction(t *testing.T) {
	// First pushed becomes index 0.
	assert.Equal(t, "[1, 2, 3]\n", runOut(t, `1 2 3 3 list print`))
	assert.Equal(t, "[]\n", runOut(t, `0 list print`))
	runKind(t, `1 2 3 list`, ErrStack)
	runKind(t, `-1 list`, ErrType)
	runKind(t, `1.5 list`, ErrType)
}

func TestTupleConstruction(t *testing.T) {
	assert.Equal(t, "(1, \"a\")\n", runOut(t, `1 "a" 2 tuple print`))
}

func TestListAppendPop(t *testing.T) {
	src := `0 list "l" store "l" load 1 list_append "l" load 2 list_append "l" load print`
	assert.Equal(t, "[1, 2]\n", runOut(t, src))

	// list_pop pushes the removed element; the binding sees the shrink.
	src = `1 2 3 3 list "l" store "l" load list_pop print "l" load print`
	assert.Equal(t, "3\n[1, 2]\n", runOut(t, src))

	runKind(t, `0 list list_pop`, ErrIndex)
	runKind(t, `1 2 list_append`, ErrType)
}

func TestListPopAt(t *testing.T) {
	src := `10 20 30 3 list "l" store "l" load 1 list_pop_at print "l" load print`
	assert.Equal(t, "20\n[10, 30]\n", runOut(t, src))

	// Negative index counts from the end.
	src = `10 20 30 3 list "l" store "l" load -1 list_pop_at print "l" load print`
	assert.Equal(t, "30\n[10, 20]\n", runOut(t, src))

	runKind(t, `1 2 2 list 5 list_pop_at`, ErrIndex)
}

func TestListInsert(t *testing.T) {
	src := `1 3 2 list "l" store "l" load 1 2 list_insert "l" load print`
	assert.Equal(t, "[1, 2, 3]\n", runOut(t, src))

	// An out-of-range insert position clamps to the nearest end.
	src = `1 1 list "l" store "l" load 99 2 list_insert "l" load print`
	assert.Equal(t, "[1, 2]\n", runOut(t, src))
}

func TestListRemove(t *testing.T) {
	src := `1 2 1 3 list "l" store "l" load 1 list_remove "l" load print`
	assert.Equal(t, "[2, 1]\n", runOut(t, src), "removes the first match only")
	runKind(t, `1 1 list 9 list_remove`, ErrIndex)
}

func TestListExtend(t *testing.T) {
	src := `1 2 2 list "a" store 3 4 2 list "b" store "a" load "b" load list_extend "a" load print "b" load print`
	assert.Equal(t, "[1, 2, 3, 4]\n[3, 4]\n", runOut(t, src))
}

func TestListIndexCount(t *testing.T) {
	assert.Equal(t, "1\n", runOut(t, `5 7 7 3 list 7 list_index print`))
	runKind(t, `1 1 list 9 list_index`, ErrIndex)

	assert.Equal(t, "2\n", runOut(t, `7 5 7 3 list 7 list_count print`))
	assert.Equal(t, "0\n", runOut(t, `7 5 7 3 list 9 list_count print`))
	// Int and Float count as equal.
	assert.Equal(t, "1\n", runOut(t, `1.0 1 list 1 list_count print`))
}

func TestListSort(t *testing.T) {
	src := `3 1 2 3 list "l" store "l" load list_sort "l" load print`
	assert.Equal(t, "[1, 2, 3]\n", runOut(t, src))

	// Mixed numerics order numerically; strings lexicographically.
	src = `2.5 1 3 3 list "l" store "l" load list_sort "l" load print`
	assert.Equal(t, "[1, 2.5, 3]\n", runOut(t, src))
	src = `"b" "a" "c" 3 list "l" store "l" load list_sort "l" load print`
	assert.Equal(t, "[\"a\", \"b\", \"c\"]\n", runOut(t, src))

	// Idempotent.
	src = `3 1 2 3 list "l" store "l" load list_sort "l" load list_sort "l" load print`
	assert.Equal(t, "[1, 2, 3]\n", runOut(t, src))

	runKind(t, `1 "a" 2 list list_sort`, ErrType)
	runKind(t, `true false 2 list list_sort`, ErrType)
}

func TestListReverse(t *testing.T) {
	src := `1 2 3 3 list "l" store "l" load list_reverse "l" load print`
	assert.Equal(t, "[3, 2, 1]\n", runOut(t, src))
}

func TestListCopyIsIndependent(t *testing.T) {
	src := `1 2 2 list "a" store "a" load list_copy "b" store "a" load 9 list_append "a" load print "b" load print`
	assert.Equal(t, "[1, 2, 9]\n[1, 2]\n", runOut(t, src))
}

func TestListClearKeepsIdentity(t *testing.T) {
	// Both bindings alias the same container, so clearing through one is
	// visible through the other.
	src := `1 2 2 list "a" store "a" load "b" store "a" load list_clear "b" load print "b" load list_len print`
	assert.Equal(t, "[]\n0\n", runOut(t, src))
}

func TestListGetSet(t *testing.T) {
	assert.Equal(t, "20\n", runOut(t, `10 20 30 3 list 1 list_get print`))
	assert.Equal(t, "30\n", runOut(t, `10 20 30 3 list -1 list_get print`))
	runKind(t, `10 1 list 3 list_get`, ErrIndex)
	runKind(t, `10 1 list -2 list_get`, ErrIndex)

	src := `10 20 2 list "l" store "l" load 0 99 list_set "l" load print`
	assert.Equal(t, "[99, 20]\n", runOut(t, src))
	runKind(t, `10 1 list 5 99 list_set`, ErrIndex)
}

func TestListSlice(t *testing.T) {
	assert.Equal(t, "[20, 30]\n", runOut(t, `10 20 30 40 4 list 1 3 list_slice print`))
	// Bounds clamp; a reversed range is empty.
	assert.Equal(t, "[30, 40]\n", runOut(t, `10 20 30 40 4 list 2 99 list_slice print`))
	assert.Equal(t, "[]\n", runOut(t, `10 20 2 list 1 0 list_slice print`))
	assert.Equal(t, "[10, 20]\n", runOut(t, `10 20 2 list -2 99 list_slice print`))

	// Slices are fresh containers.
	src := `1 2 2 list "a" store "a" load 0 2 list_slice "b" store "b" load 9 list_append "a" load print`
	assert.Equal(t, "[1, 2]\n", runOut(t, src))
}

func TestListLen(t *testing.T) {
	assert.Equal(t, "3\n", runOut(t, `1 2 3 3 list list_len print`))
	runKind(t, `1 list_len`, ErrType)
}

func TestNestedContainersShareHandles(t *testing.T) {
	// A list stored inside a dict is the same container as the binding.
	src := `1 1 list "inner" store "inner" load "k" swap 1 dict "d" store ` +
		`"inner" load 2 list_append "d" load "k" dict_get print`
	assert.Equal(t, "[1, 2]\n", runOut(t, src))
}
