package internal

import (
	"kestrel/internal/tokens"
)

type exec struct {
	state *interpreterState

	globals *env
	env     *env
}

var unaryOperators = map[tokens.TokenType]operator{
	tokens.BANG:  opNot,
	tokens.MINUS: opSub,
	tokens.PLUS:  opAdd,
}

func newExec(state *interpreterState, globals *env) *exec {
	return &exec{
		state:   state,
		globals: globals,
		env:     globals,
	}
}

// interpret evaluates the parsed program against the global environment.
func (e *exec) interpret() (result value, err error) {
	defer recoverError(&err)
	return e.evaluate(e.state.root), nil
}

func (e *exec) evaluate(ex expr) value {
	return ex.accept(e).(value)
}

// evaluateIn evaluates ex with env as the current environment.
func (e *exec) evaluateIn(env *env, ex expr) value {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	return e.evaluate(ex)
}

func (e *exec) visitIntegerExpr(expr *integerExpr) R {
	return newInt(expr.value)
}

func (e *exec) visitStringExpr(expr *stringExpr) R {
	return newString(expr.literal.lexeme)
}

func (e *exec) visitBlockExpr(expr *blockExpr) R {
	if len(expr.exprs) == 0 {
		e.state.runtimeErr(ErrType, expr.start, errEmptyBlock)
	}
	return e.executeBlock(expr.exprs, newEnv(e.env))
}

// executeBlock evaluates every expression in env and returns the value of
// the last one.
func (e *exec) executeBlock(exprs []expr, env *env) value {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	var last value
	for _, ex := range exprs {
		last = e.evaluate(ex)
	}
	return last
}

func (e *exec) visitVarExpr(expr *varExpr) R {
	e.env.define(expr.name.lexeme, e.evaluate(expr.initializer))
	return void
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	v, ok := e.env.get(expr.name.lexeme)
	if !ok {
		e.state.runtimeErr(ErrResolution, expr.name, errUndefinedVar, expr.name.lexeme)
	}
	return v
}

func (e *exec) visitFnExpr(expr *fnExpr) R {
	params := make([]param, len(expr.params))
	for i, p := range expr.params {
		typ, ok := typeOf(p.typeName.lexeme)
		if !ok {
			e.state.runtimeErr(ErrType, p.typeName, errUnknownType, p.typeName.lexeme)
		}
		params[i] = param{name: p.name.lexeme, typ: typ}
	}
	fn := &kestrelFunction{
		id:     declarationKey(expr.name.lexeme, params),
		params: params,
		body:   expr.body,
	}
	e.env.define(fn.id, fn)
	return void
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	arguments := make([]value, len(expr.arguments))
	for i, arg := range expr.arguments {
		arguments[i] = e.evaluate(arg)
	}

	key := callKey(expr.callee.lexeme, arguments)
	callee, ok := e.env.get(key)
	if !ok {
		e.state.runtimeErr(ErrResolution, expr.callee, errUndefinedFn, key)
	}

	fn, isFn := callee.(callable)
	if !isFn {
		e.state.runtimeErr(ErrType, expr.callee, errNotCallable, callee.kind())
	}

	result, err := fn.call(e, e.env, arguments)
	if err != nil {
		e.state.runtimeFailure(err, expr.callee)
	}
	return result
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := e.evaluate(expr.left)
	right := e.evaluate(expr.right)
	result, err := applyOperator(binaryOperators[expr.operator.token], left, right)
	if err != nil {
		e.state.runtimeFailure(err, expr.operator)
	}
	return result
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	result, err := applyUnary(unaryOperators[expr.operator.token], e.evaluate(expr.right))
	if err != nil {
		e.state.runtimeFailure(err, expr.operator)
	}
	return result
}

func (e *exec) visitIfExpr(expr *ifExpr) R {
	for _, b := range expr.branches {
		if e.truthy(e.evaluate(b.condition), expr.keyword) {
			return e.evaluate(b.body)
		}
	}
	if expr.elseBranch != nil {
		return e.evaluate(expr.elseBranch)
	}
	return void
}

// visitForExpr opens a single environment for the whole loop. The condition
// and the body are blocks, so each evaluation still gets its own child scope.
func (e *exec) visitForExpr(expr *forExpr) R {
	loop := newEnv(e.env)
	for e.truthy(e.evaluateIn(loop, expr.condition), expr.keyword) {
		e.evaluateIn(loop, expr.body)
	}
	return void
}

func (e *exec) truthy(v value, tk *token) bool {
	t, err := v.truthy()
	if err != nil {
		e.state.runtimeFailure(err, tk)
	}
	return t
}
