package internal

import (
	"strconv"

	"github.com/pkg/errors"
)

// kestrelInt is a mutable cell: assignment rewrites value in place so every
// binding holding the same *kestrelInt sees the change.
type kestrelInt struct {
	value int64
}

func newInt(v int64) *kestrelInt {
	return &kestrelInt{value: v}
}

func applyOpToInts(op func(x, y int64) (value, error)) operatorApply {
	return func(left, right value) (value, error) {
		return op(left.(*kestrelInt).value, right.(*kestrelInt).value)
	}
}

func compareInts(cmp func(x, y int64) bool) operatorApply {
	return applyOpToInts(func(x, y int64) (value, error) {
		return boolToInt(cmp(x, y)), nil
	})
}

var intOperations = map[operatorKey]operatorApply{
	{opAdd, typeInt, typeInt}: applyOpToInts(func(x, y int64) (value, error) {
		return newInt(x + y), nil
	}),
	{opAdd, typeInt, typeString}: func(left, right value) (value, error) {
		return newString(left.String() + right.String()), nil
	},
	{opSub, typeInt, typeInt}: applyOpToInts(func(x, y int64) (value, error) {
		return newInt(x - y), nil
	}),
	{opMul, typeInt, typeInt}: applyOpToInts(func(x, y int64) (value, error) {
		return newInt(x * y), nil
	}),
	{opDiv, typeInt, typeInt}: applyOpToInts(func(x, y int64) (value, error) {
		if y == 0 {
			return nil, errors.Wrap(ErrArithmetic, errDivisionByZero)
		}
		return newInt(x / y), nil
	}),
	{opMod, typeInt, typeInt}: applyOpToInts(func(x, y int64) (value, error) {
		if y == 0 {
			return nil, errors.Wrap(ErrArithmetic, errDivisionByZero)
		}
		return newInt(x % y), nil
	}),
	{opPow, typeInt, typeInt}: applyOpToInts(intPow),
	{opEq, typeInt, typeInt}:  compareInts(func(x, y int64) bool { return x == y }),
	{opLt, typeInt, typeInt}:  compareInts(func(x, y int64) bool { return x < y }),
	{opLte, typeInt, typeInt}: compareInts(func(x, y int64) bool { return x <= y }),
	{opGt, typeInt, typeInt}:  compareInts(func(x, y int64) bool { return x > y }),
	{opGte, typeInt, typeInt}: compareInts(func(x, y int64) bool { return x >= y }),
	{opAssign, typeInt, typeInt}: func(left, right value) (value, error) {
		left.(*kestrelInt).value = right.(*kestrelInt).value
		return right, nil
	},
}

// intPow raises base to exp using integer arithmetic. A negative exponent
// yields the truncated fraction, which is 0 unless the base is 1 or -1.
func intPow(base, exp int64) (value, error) {
	if exp < 0 {
		switch base {
		case 0:
			return nil, errors.Wrap(ErrArithmetic, errNegativeZeroPower)
		case 1:
			return newInt(1), nil
		case -1:
			if exp%2 == 0 {
				return newInt(1), nil
			}
			return newInt(-1), nil
		}
		return newInt(0), nil
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		if exp > 0 {
			base *= base
		}
	}
	return newInt(result), nil
}

func (n *kestrelInt) kind() valueType {
	return typeInt
}

func (n *kestrelInt) truthy() (bool, error) {
	return n.value != 0, nil
}

func (n *kestrelInt) negate() *kestrelInt {
	return newInt(-n.value)
}

func (n *kestrelInt) toInteger() (*kestrelInt, error) {
	return n, nil
}

func (n *kestrelInt) toString() *kestrelString {
	return newString(n.String())
}

func (n *kestrelInt) String() string {
	return strconv.FormatInt(n.value, 10)
}

// parseInt converts decimal text, with an optional sign, to an integer.
func parseInt(text string) (*kestrelInt, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrType, errNotInteger, text)
	}
	return newInt(v), nil
}
