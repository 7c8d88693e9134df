package internal

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// kestrelString is a mutable cell, see kestrelInt.
type kestrelString struct {
	value string
}

func newString(s string) *kestrelString {
	return &kestrelString{value: s}
}

func applyOpToStrings(op func(x, y string) value) operatorApply {
	return func(left, right value) (value, error) {
		return op(left.(*kestrelString).value, right.(*kestrelString).value), nil
	}
}

func concat(left, right value) (value, error) {
	return newString(left.String() + right.String()), nil
}

var stringOperations = map[operatorKey]operatorApply{
	{opAdd, typeString, typeString}: concat,
	{opAdd, typeString, typeInt}:    concat,
	{opMul, typeString, typeInt}: func(left, right value) (value, error) {
		s := left.(*kestrelString).value
		n := right.(*kestrelInt).value
		if n <= 0 || s == "" {
			return newString(""), nil
		}
		if n > math.MaxInt/int64(len(s)) {
			return nil, errors.Wrapf(ErrArithmetic, errRepeatOverflow, n)
		}
		return newString(strings.Repeat(s, int(n))), nil
	},
	{opEq, typeString, typeString}: applyOpToStrings(func(x, y string) value {
		return boolToInt(x == y)
	}),
	{opLt, typeString, typeString}: applyOpToStrings(func(x, y string) value {
		return boolToInt(x < y)
	}),
	{opLte, typeString, typeString}: applyOpToStrings(func(x, y string) value {
		return boolToInt(x <= y)
	}),
	{opGt, typeString, typeString}: applyOpToStrings(func(x, y string) value {
		return boolToInt(x > y)
	}),
	{opGte, typeString, typeString}: applyOpToStrings(func(x, y string) value {
		return boolToInt(x >= y)
	}),
	{opAssign, typeString, typeString}: func(left, right value) (value, error) {
		left.(*kestrelString).value = right.(*kestrelString).value
		return right, nil
	},
}

func (s *kestrelString) kind() valueType {
	return typeString
}

func (s *kestrelString) truthy() (bool, error) {
	return s.value != "", nil
}

func (s *kestrelString) toInteger() (*kestrelInt, error) {
	return parseInt(s.value)
}

func (s *kestrelString) toString() *kestrelString {
	return s
}

func (s *kestrelString) String() string {
	return s.value
}
