// lexer_test.go
package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := Tokenize(src)
	require.NoError(t, err, "Tokenize(%q)", src)
	return ts
}

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Type)
	}
	return out
}

func TestLexer_Classification(t *testing.T) {
	got := toks(t, `1 -2 +30 3.14 -0.5 1e5 "hi" add my_word`)
	require.Equal(t, []TokenType{
		INTEGER, INTEGER, INTEGER, FLOAT, FLOAT, FLOAT, STRING, WORD, WORD,
	}, tokenTypes(got))

	assert.Equal(t, int64(1), got[0].Literal)
	assert.Equal(t, int64(-2), got[1].Literal)
	assert.Equal(t, int64(30), got[2].Literal)
	assert.Equal(t, 3.14, got[3].Literal)
	assert.Equal(t, -0.5, got[4].Literal)
	assert.Equal(t, 1e5, got[5].Literal)
	assert.Equal(t, "hi", got[6].Literal)
	assert.Equal(t, "add", got[7].Lexeme)
	assert.Equal(t, "my_word", got[8].Lexeme)
}

func TestLexer_SignsAloneAreWords(t *testing.T) {
	got := toks(t, `- + -- 1.2.3`)
	require.Equal(t, []TokenType{WORD, WORD, WORD, WORD}, tokenTypes(got))
}

func TestLexer_Comments(t *testing.T) {
	got := toks(t, "1 2 # a comment with \"quotes\" and words\n3 # trailing")
	require.Equal(t, []TokenType{INTEGER, INTEGER, INTEGER}, tokenTypes(got))

	// '#' inside a string literal is not a comment.
	got = toks(t, `"a # b" print`)
	require.Equal(t, []TokenType{STRING, WORD}, tokenTypes(got))
	assert.Equal(t, "a # b", got[0].Literal)
}

func TestLexer_StringEscapes(t *testing.T) {
	got := toks(t, `"a\nb\tc\\d\"e\qf"`)
	require.Len(t, got, 1)
	assert.Equal(t, "a\nb\tc\\d\"e"+"qf", got[0].Literal)
}

func TestLexer_StringsContainWhitespace(t *testing.T) {
	got := toks(t, `"hello world"  "  padded  "`)
	require.Len(t, got, 2)
	assert.Equal(t, "hello world", got[0].Literal)
	assert.Equal(t, "  padded  ", got[1].Literal)
}

func TestLexer_AdjacentQuoteSplitsBareword(t *testing.T) {
	got := toks(t, `abc"def"`)
	require.Equal(t, []TokenType{WORD, STRING}, tokenTypes(got))
	assert.Equal(t, "abc", got[0].Lexeme)
	assert.Equal(t, "def", got[1].Literal)
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, err := Tokenize("1 2\n\"oops")
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Line)

	// A newline inside a string also leaves it unterminated.
	_, err = Tokenize("\"broken\nrest\"")
	require.Error(t, err)
}

func TestLexer_Positions(t *testing.T) {
	got := toks(t, "1\n  add")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 0, got[0].Col)
	assert.Equal(t, 2, got[1].Line)
	assert.Equal(t, 2, got[1].Col)
}

func TestLexer_IntRoundTrip(t *testing.T) {
	// x str must produce a token the lexer reads back as the same Int.
	for _, n := range []string{"0", "42", "-7", "9223372036854775807", "-9223372036854775808"} {
		got := toks(t, n)
		require.Len(t, got, 1)
		require.Equal(t, INTEGER, got[0].Type, "token %q", n)
		assert.Equal(t, n, FormatValue(Int(got[0].Literal.(int64))), "token %q", n)
	}
}
