package internal

type env struct {
	enclosing *env
	values    map[string]value
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]value),
	}
}

// get resolves name through the chain. A value found in an enclosing
// environment is cached in e before it is returned; the cache holds the
// same cell, so later assignments through any alias stay visible.
func (e *env) get(name string) (value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing == nil {
		return nil, false
	}
	v, ok := e.enclosing.get(name)
	if ok {
		e.values[name] = v
	}
	return v, ok
}

func (e *env) define(name string, v value) {
	e.values[name] = v
}

// registerBuiltin installs a native function under its overload key.
func (e *env) registerBuiltin(name string, params []param, callFn nativeCallback) {
	fn := &nativeFn{
		id:     declarationKey(name, params),
		params: params,
		callFn: callFn,
	}
	e.define(fn.id, fn)
}

func (e *env) registerConstant(name string, v value) {
	e.define(name, v)
}
