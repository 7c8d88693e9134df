package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLookupCachesParentHits(t *testing.T) {
	root := newEnv(nil)
	x := newInt(5)
	root.define("x", x)

	child := newEnv(newEnv(root))
	v, ok := child.get("x")
	require.True(t, ok)
	assert.Same(t, x, v)

	cached, ok := child.values["x"]
	require.True(t, ok, "lookup should be cached in the child")
	assert.Same(t, x, cached)

	x.value = 9
	v, _ = child.get("x")
	assert.Equal(t, "9", v.String())
}

func TestEnvMissesAreNotCached(t *testing.T) {
	root := newEnv(nil)
	child := newEnv(root)

	_, ok := child.get("missing")
	assert.False(t, ok)
	assert.Empty(t, child.values)

	root.define("missing", newString("late"))
	v, ok := child.get("missing")
	require.True(t, ok)
	assert.Equal(t, "late", v.String())
}

func TestEnvDefineShadows(t *testing.T) {
	root := newEnv(nil)
	root.define("x", newInt(1))
	child := newEnv(root)
	child.define("x", newInt(2))

	v, _ := child.get("x")
	assert.Equal(t, "2", v.String())
	v, _ = root.get("x")
	assert.Equal(t, "1", v.String())
}

func TestOverloadKeys(t *testing.T) {
	assert.Equal(t, "f", overloadKey("f", nil))
	assert.Equal(t, "f<int><string>", overloadKey("f", []valueType{typeInt, typeString}))
	assert.Equal(t, "print<fun>", declarationKey("print", []param{{name: "value", typ: typeFun}}))
	assert.Equal(t, "g<int><void>", callKey("g", []value{newInt(1), void}))
}

func TestBindArguments(t *testing.T) {
	caller := newEnv(nil)
	caller.define("outer", newInt(7))
	params := []param{{name: "a", typ: typeInt}, {name: "b", typ: typeString}}

	a := newInt(1)
	env, err := bindArguments(caller, "f<int><string>", params, []value{a, newString("s")})
	require.NoError(t, err)
	bound, _ := env.get("a")
	assert.Same(t, a, bound)
	outer, ok := env.get("outer")
	require.True(t, ok)
	assert.Equal(t, "7", outer.String())

	_, err = bindArguments(caller, "f<int><string>", params, []value{a})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArity))
	assert.Equal(t, "function f<int><string> takes 2 arguments, called with 1: arity error", err.Error())

	_, err = bindArguments(caller, "f<int><string>", params, []value{a, a})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrType))
	assert.Equal(t, "function f<int><string> expects argument 1 to be <string>, got <int>: type error", err.Error())
}

func TestGlobals(t *testing.T) {
	globals := newEnv(nil)
	defineGlobals(globals, &testPrinter{})

	for _, key := range []string{
		"int<int>", "int<string>", "string<int>", "string<string>",
		"print<int>", "print<string>", "print<fun>", "print<void>",
		"length<string>", "true", "false",
	} {
		_, ok := globals.get(key)
		assert.True(t, ok, key)
	}
	_, ok := globals.get("print")
	assert.False(t, ok)
}

func TestBuiltinArgument(t *testing.T) {
	env := newEnv(nil)
	env.define("value", newString("x"))
	assert.Equal(t, "x", argument(env).String())

	assert.Panics(t, func() {
		argument(newEnv(nil))
	})
}
