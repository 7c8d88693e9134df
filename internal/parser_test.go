package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkTree(t *testing.T, source string, tree string) {
	t.Helper()
	program, err := Parse("", source)
	require.NoError(t, err, source)
	assert.Equal(t, tree, program.Tree(), source)
}

func TestParsePrecedence(t *testing.T) {
	checkTree(t, "2 + 3 * 4", "(block (+ 2 (* 3 4)))")
	checkTree(t, "2 ^ 3 ^ 2", "(block (^ 2 (^ 3 2)))")
	checkTree(t, "1 - 2 - 3", "(block (- (- 1 2) 3))")
	checkTree(t, "-2 ^ 2", "(block (- (^ 2 2)))")
	checkTree(t, "2 ^ -1", "(block (^ 2 (- 1)))")
	checkTree(t, "-a * b", "(block (* (- a) b))")
	checkTree(t, "a < b && c || d", "(block (|| (&& (< a b) c) d))")
	checkTree(t, "!a == b", "(block (! (== a b)))")
	checkTree(t, "a <- b <- c", "(block (<- (<- a b) c))")
	checkTree(t, "a <- b || c", "(block (<- a (|| b c)))")
	checkTree(t, "(1 + 2) * 3", "(block (* (+ 1 2) 3))")
}

func TestParseForms(t *testing.T) {
	checkTree(t, `var s : string <- "x"`, `(block (var s string "x"))`)
	checkTree(t, "f()", "(block (call f))")
	checkTree(t, "f(1, g(2))", "(block (call f 1 (call g 2)))")
	checkTree(t, "fun add(a : int, b : int)\n\ta + b\nend",
		"(block (fun add (a:int b:int) (block (+ a b))))")
	checkTree(t, "if a then 1 else if b then 2 else 3 end",
		"(block (if (then a (block 1)) (then b (block 2)) (else (block 3))))")
	checkTree(t, "if a then\n\t1\nend", "(block (if (then a (block 1))))")
	checkTree(t, "for i < 3 do\n\ti <- i + 1\nend",
		"(block (for (block (< i 3)) (block (<- i (+ i 1)))))")
	checkTree(t, "1\n2; 3", "(block 1 2 3)")
	checkTree(t, "", "(block)")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		source string
		msg    string
	}{
		{"1 +", "<input>:1:4: expected an expression, got <EOF>: parse error"},
		{"(1", "<input>:1:3: expected <)>, got <EOF>: parse error"},
		{"if 1 then 2", "<input>:1:12: expected <end>, got <EOF>: parse error"},
		{"if 1 2 end", "<input>:1:6: expected <then>, got <integer>: parse error"},
		{"for 1 do 2", "<input>:1:11: expected <end>, got <EOF>: parse error"},
		{"var x <- 1", "<input>:1:7: expected <:>, got <<->: parse error"},
		{"fun f(a) a end", "<input>:1:8: expected <:>, got <)>: parse error"},
		{"f(1 2)", "<input>:1:5: expected <)>, got <integer>: parse error"},
		{"99999999999999999999", "<input>:1:1: integer literal 99999999999999999999 out of range: parse error"},
		{"end", "<input>:1:1: expected <EOF>, got <end>: parse error"},
	}

	for _, tt := range tests {
		_, err := Parse("", tt.source)
		require.Error(t, err, tt.source)
		assert.True(t, errors.Is(err, ErrParse), tt.source)
		assert.Equal(t, tt.msg, err.Error())
	}
}

func TestParseLexErrorsStopEarly(t *testing.T) {
	_, err := Parse("", "1 + @")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLex))
	assert.False(t, errors.Is(err, ErrParse))
}
