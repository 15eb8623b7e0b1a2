// builtin_strings_test.go
package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrCase(t *testing.T) {
	assert.Equal(t, "HELLO\n", runOut(t, `"hello" str_upper print`))
	assert.Equal(t, "hello\n", runOut(t, `"HeLLo" str_lower print`))
	assert.Equal(t, "Hello world\n", runOut(t, `"hELLO WORLD" str_capitalize print`))
	assert.Equal(t, "\n", runOut(t, `"" str_capitalize print`))

	// Unicode-aware case mapping.
	assert.Equal(t, "STRASSE\n", runOut(t, `"straße" str_upper print`))
	assert.Equal(t, "über\n", runOut(t, `"ÜBER" str_lower print`))

	runKind(t, `1 str_upper`, ErrType)
}

func TestStrCase_Idempotent(t *testing.T) {
	once := runOut(t, `"Mixed Case 123" str_upper print`)
	twice := runOut(t, `"Mixed Case 123" str_upper str_upper print`)
	assert.Equal(t, once, twice)
}

func TestStrStrip(t *testing.T) {
	assert.Equal(t, "mid dle\n", runOut(t, `"  mid dle\t" str_strip print`))
	// Idempotent.
	assert.Equal(t, "x\n", runOut(t, `" x " str_strip str_strip print`))
}

func TestStrFind(t *testing.T) {
	assert.Equal(t, "2\n", runOut(t, `"abcabc" "c" str_find print`))
	assert.Equal(t, "-1\n", runOut(t, `"abc" "z" str_find print`))
	// Indexing is by code point, not byte.
	assert.Equal(t, "2\n", runOut(t, `"héllo" "llo" str_find print`))
	assert.Equal(t, "0\n", runOut(t, `"abc" "" str_find print`))
}

func TestStrReplace(t *testing.T) {
	assert.Equal(t, "b-n-n-\n", runOut(t, `"banana" "a" "-" str_replace print`))
	assert.Equal(t, "banana\n", runOut(t, `"banana" "z" "-" str_replace print`))
}

func TestStrSplit(t *testing.T) {
	assert.Equal(t, "[\"a\", \"b\", \"c\"]\n", runOut(t, `"  a b\tc " str_split print`))
	assert.Equal(t, "[]\n", runOut(t, `"   " str_split print`))

	assert.Equal(t, "[\"a\", \"b\", \"\"]\n", runOut(t, `"a,b," "," str_split_on print`))
	runKind(t, `"ab" "" str_split_on`, ErrType)
}

func TestStrJoin(t *testing.T) {
	assert.Equal(t, "a-b-c\n", runOut(t, `"a" "b" "c" 3 list "-" str_join print`))
	assert.Equal(t, "\n", runOut(t, `0 list "-" str_join print`))
	runKind(t, `1 2 2 list "-" str_join`, ErrType)
}

func TestStrPrefixSuffix(t *testing.T) {
	assert.Equal(t, "true\n", runOut(t, `"forge" "for" str_startswith print`))
	assert.Equal(t, "false\n", runOut(t, `"forge" "ge" str_startswith print`))
	assert.Equal(t, "true\n", runOut(t, `"forge" "ge" str_endswith print`))
	assert.Equal(t, "true\n", runOut(t, `"forge" "" str_startswith print`))
}

func TestStrPredicates(t *testing.T) {
	assert.Equal(t, "true\n", runOut(t, `"12345" str_isdigit print`))
	assert.Equal(t, "false\n", runOut(t, `"12a45" str_isdigit print`))
	assert.Equal(t, "false\n", runOut(t, `"" str_isdigit print`))
	assert.Equal(t, "true\n", runOut(t, `"abcXYZ" str_isalpha print`))
	assert.Equal(t, "false\n", runOut(t, `"abc1" str_isalpha print`))
	assert.Equal(t, "true\n", runOut(t, `"héllo" str_isalpha print`))
}
