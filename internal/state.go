package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers can classify failures with errors.Is.
var (
	ErrLex        = errors.New("lex error")
	ErrParse      = errors.New("parse error")
	ErrResolution = errors.New("resolution error")
	ErrArity      = errors.New("arity error")
	ErrType       = errors.New("type error")
	ErrArithmetic = errors.New("arithmetic fault")
)

// Lexer errors
const (
	errIllegalChar      = "illegal character %q"
	errUnclosedString   = "closing \" was expected"
	errUnclosedComment  = "closing */ was expected"
	errUnknownEscape    = "unknown escape sequence \\%c"
	errIncompleteDigram = "expected %q after %q, got %q"
)

// Parser errors
const (
	errUnexpectedToken = "expected %v, got %v"
	errUnexpectedAtom  = "expected an expression, got %v"
	errIntegerRange    = "integer literal %s out of range"
)

// Runtime errors
const (
	errUndefinedVar      = "undefined variable %s"
	errUndefinedFn       = "undefined function %s"
	errUndefinedOp       = "cannot apply %s to %v and %v"
	errUndefinedUnary    = "cannot apply unary %s to %v"
	errNotTruthy         = "truthiness of %v is undefined"
	errNotCallable       = "cannot call a value of type %v"
	errEmptyBlock        = "cannot evaluate an empty block"
	errUnknownType       = "unknown type name %q"
	errWrongArgCount     = "function %s takes %d arguments, called with %d"
	errWrongArgType      = "function %s expects argument %d to be %v, got %v"
	errNotInteger        = "cannot convert %q to <int>"
	errDivisionByZero    = "division by zero"
	errNegativeZeroPower = "zero raised to a negative power"
	errRepeatOverflow    = "string repeated %d times is too long"
)

// sourceError is the panic payload used to unwind the scanner, the parser and
// the evaluator up to their entry points.
type sourceError struct {
	err error
}

// interpreterState stores the state of a interpreter
type interpreterState struct {
	source string
	name   string
	tokens []token
	root   *blockExpr
}

func newError(kind error, pos position, format string, args ...interface{}) error {
	return errors.Wrapf(kind, "%v: %s", pos, fmt.Sprintf(format, args...))
}

func (s *interpreterState) fatalError(kind error, pos position, format string, args ...interface{}) {
	panic(sourceError{err: newError(kind, pos, format, args...)})
}

func (s *interpreterState) runtimeErr(kind error, tk *token, format string, args ...interface{}) {
	s.fatalError(kind, tk.pos, format, args...)
}

// runtimeFailure unwinds with an error produced by an operator or a call,
// prefixed with the position of tk.
func (s *interpreterState) runtimeFailure(err error, tk *token) {
	panic(sourceError{err: errors.Wrapf(err, "%v", tk.pos)})
}

// recoverError turns a sourceError panic into err. Other panics keep unwinding.
func recoverError(err *error) {
	if r := recover(); r != nil {
		srcErr, ok := r.(sourceError)
		if !ok {
			panic(r)
		}
		*err = srcErr.err
	}
}
