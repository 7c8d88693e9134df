package internal

import "unicode/utf8"

func defineGlobals(e *env, p IPrinter) {
	defineConversions(e)
	defineIo(e, p)
	defineStrings(e)
	defineConstants(e)
}

// argument returns the single parameter every builtin is declared with.
func argument(env *env) value {
	v, ok := env.get("value")
	if !ok {
		panic("builtin called without a bound value parameter")
	}
	return v
}

func defineConversions(e *env) {
	toInteger := func(env *env) (value, error) {
		return argument(env).(converter).toInteger()
	}
	e.registerBuiltin("int", []param{{name: "value", typ: typeString}}, toInteger)
	e.registerBuiltin("int", []param{{name: "value", typ: typeInt}}, toInteger)

	toString := func(env *env) (value, error) {
		return argument(env).(converter).toString(), nil
	}
	e.registerBuiltin("string", []param{{name: "value", typ: typeString}}, toString)
	e.registerBuiltin("string", []param{{name: "value", typ: typeInt}}, toString)
}

func defineIo(e *env, p IPrinter) {
	println := func(env *env) (value, error) {
		if _, err := p.Println(argument(env).String()); err != nil {
			return nil, err
		}
		return void, nil
	}
	for _, typ := range []valueType{typeInt, typeString, typeFun, typeVoid} {
		e.registerBuiltin("print", []param{{name: "value", typ: typ}}, println)
	}
}

func defineStrings(e *env) {
	length := func(env *env) (value, error) {
		return newInt(int64(utf8.RuneCountInString(argument(env).(*kestrelString).value))), nil
	}
	e.registerBuiltin("length", []param{{name: "value", typ: typeString}}, length)
}

func defineConstants(e *env) {
	e.registerConstant("true", newInt(1))
	e.registerConstant("false", newInt(0))
}
