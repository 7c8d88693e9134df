package internal

import (
	"strings"

	"github.com/pkg/errors"
)

type callable interface {
	value
	call(exec *exec, caller *env, arguments []value) (value, error)
}

type param struct {
	name string
	typ  valueType
}

// overloadKey mangles a function name with the type tags of its parameters,
// so print(1) and print("a") resolve to print<int> and print<string>.
func overloadKey(name string, types []valueType) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, t := range types {
		sb.WriteString(string(t))
	}
	return sb.String()
}

func declarationKey(name string, params []param) string {
	types := make([]valueType, len(params))
	for i, p := range params {
		types[i] = p.typ
	}
	return overloadKey(name, types)
}

func callKey(name string, arguments []value) string {
	types := make([]valueType, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.kind()
	}
	return overloadKey(name, types)
}

// bindArguments opens the environment a call runs in. Its parent is the
// caller's environment, not the one the function was declared in.
func bindArguments(caller *env, id string, params []param, arguments []value) (*env, error) {
	if len(params) != len(arguments) {
		return nil, errors.Wrapf(ErrArity, errWrongArgCount, id, len(params), len(arguments))
	}
	env := newEnv(caller)
	for i, p := range params {
		if arguments[i].kind() != p.typ {
			return nil, errors.Wrapf(ErrType, errWrongArgType, id, i, p.typ, arguments[i].kind())
		}
		env.define(p.name, arguments[i])
	}
	return env, nil
}
