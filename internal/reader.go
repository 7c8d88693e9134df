package internal

import (
	"fmt"
	"strconv"
	"strings"
)

//R generic type
type R interface{}

func printTree(root *blockExpr) string {
	return root.accept(stringVisitor{}).(string)
}

type stringVisitor struct{}

func (v stringVisitor) visitIntegerExpr(expr *integerExpr) R {
	return strconv.FormatInt(expr.value, 10)
}

func (v stringVisitor) visitStringExpr(expr *stringExpr) R {
	return strconv.Quote(expr.literal.lexeme)
}

func (v stringVisitor) visitBlockExpr(expr *blockExpr) R {
	out := "(block"
	for _, ex := range expr.exprs {
		out += fmt.Sprintf(" %v", ex.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitVarExpr(expr *varExpr) R {
	return fmt.Sprintf("(var %s %s %v)", expr.name.lexeme, expr.typeName.lexeme, expr.initializer.accept(v))
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}

func (v stringVisitor) visitFnExpr(expr *fnExpr) R {
	params := make([]string, len(expr.params))
	for i, p := range expr.params {
		params[i] = p.name.lexeme + ":" + p.typeName.lexeme
	}
	return fmt.Sprintf("(fun %s (%s) %v)", expr.name.lexeme, strings.Join(params, " "), expr.body.accept(v))
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	out := "(call " + expr.callee.lexeme
	for _, arg := range expr.arguments {
		out += fmt.Sprintf(" %v", arg.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.lexeme, expr.right.accept(v))
}

func (v stringVisitor) visitIfExpr(expr *ifExpr) R {
	out := "(if"
	for _, b := range expr.branches {
		out += fmt.Sprintf(" (then %v %v)", b.condition.accept(v), b.body.accept(v))
	}
	if expr.elseBranch != nil {
		out += fmt.Sprintf(" (else %v)", expr.elseBranch.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitForExpr(expr *forExpr) R {
	return fmt.Sprintf("(for %v %v)", expr.condition.accept(v), expr.body.accept(v))
}
