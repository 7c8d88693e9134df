package internal

import (
	"github.com/pkg/errors"

	"kestrel/internal/tokens"
)

type operator string

const (
	opAdd    operator = "+"
	opSub    operator = "-"
	opMul    operator = "*"
	opDiv    operator = "/"
	opMod    operator = "%"
	opPow    operator = "^"
	opEq     operator = "=="
	opNeq    operator = "!="
	opLt     operator = "<"
	opLte    operator = "<="
	opGt     operator = ">"
	opGte    operator = ">="
	opAnd    operator = "&&"
	opOr     operator = "||"
	opAssign operator = "<-"
	opNot    operator = "!"
)

var binaryOperators = map[tokens.TokenType]operator{
	tokens.PLUS:          opAdd,
	tokens.MINUS:         opSub,
	tokens.STAR:          opMul,
	tokens.SLASH:         opDiv,
	tokens.MOD:           opMod,
	tokens.POWER:         opPow,
	tokens.EQUAL_EQUAL:   opEq,
	tokens.BANG_EQUAL:    opNeq,
	tokens.LESS:          opLt,
	tokens.LESS_EQUAL:    opLte,
	tokens.GREATER:       opGt,
	tokens.GREATER_EQUAL: opGte,
	tokens.AND:           opAnd,
	tokens.OR:            opOr,
	tokens.ASSIGN:        opAssign,
}

type operatorApply func(left, right value) (value, error)

// operatorKey selects the handler for an operator applied to a pair of
// operand types.
type operatorKey struct {
	op    operator
	left  valueType
	right valueType
}

var operations = mergeOperations(
	intOperations,
	stringOperations,
	voidOperations,
)

func mergeOperations(tables ...map[operatorKey]operatorApply) map[operatorKey]operatorApply {
	merged := make(map[operatorKey]operatorApply)
	for _, table := range tables {
		for key, apply := range table {
			merged[key] = apply
		}
	}
	return merged
}

// applyOperator evaluates left op right. Logical operators and != are
// derived from truthy and ==; every other combination must be present in
// the operations table.
func applyOperator(op operator, left, right value) (value, error) {
	switch op {
	case opAnd, opOr:
		l, err := left.truthy()
		if err != nil {
			return nil, err
		}
		r, err := right.truthy()
		if err != nil {
			return nil, err
		}
		if op == opAnd {
			return boolToInt(l && r), nil
		}
		return boolToInt(l || r), nil
	case opNeq:
		eq, err := applyOperator(opEq, left, right)
		if err != nil {
			return nil, err
		}
		return applyUnary(opNot, eq)
	}

	apply, ok := operations[operatorKey{op: op, left: left.kind(), right: right.kind()}]
	if !ok {
		return nil, errors.Wrapf(ErrType, errUndefinedOp, op, left.kind(), right.kind())
	}
	return apply(left, right)
}

// applyUnary evaluates a prefix operator: ! inverts truthiness, - negates
// and + returns the operand untouched.
func applyUnary(op operator, operand value) (value, error) {
	switch op {
	case opNot:
		t, err := operand.truthy()
		if err != nil {
			return nil, err
		}
		return boolToInt(!t), nil
	case opAdd:
		return operand, nil
	case opSub:
		if n, ok := operand.(*kestrelInt); ok {
			return n.negate(), nil
		}
	}
	return nil, errors.Wrapf(ErrType, errUndefinedUnary, op, operand.kind())
}
