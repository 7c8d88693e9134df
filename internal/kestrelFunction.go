package internal

import (
	"github.com/pkg/errors"
)

type kestrelFunction struct {
	id     string
	params []param
	body   *blockExpr
}

// nativeCallback runs a builtin. env holds the bound parameters and is a
// child of the caller's environment.
type nativeCallback func(env *env) (value, error)

type nativeFn struct {
	id     string
	params []param
	callFn nativeCallback
}

func (f *kestrelFunction) kind() valueType {
	return typeFun
}

func (f *kestrelFunction) truthy() (bool, error) {
	return false, errors.Wrapf(ErrType, errNotTruthy, f.kind())
}

func (f *kestrelFunction) call(exec *exec, caller *env, arguments []value) (value, error) {
	env, err := bindArguments(caller, f.id, f.params, arguments)
	if err != nil {
		return nil, err
	}
	return exec.evaluateIn(env, f.body), nil
}

func (f *kestrelFunction) String() string {
	return "fun " + f.id
}

func (n *nativeFn) kind() valueType {
	return typeFun
}

func (n *nativeFn) truthy() (bool, error) {
	return false, errors.Wrapf(ErrType, errNotTruthy, n.kind())
}

func (n *nativeFn) call(exec *exec, caller *env, arguments []value) (value, error) {
	env, err := bindArguments(caller, n.id, n.params, arguments)
	if err != nil {
		return nil, err
	}
	return n.callFn(env)
}

func (n *nativeFn) String() string {
	return "[builtin] fun " + n.id
}
