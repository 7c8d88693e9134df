package internal

type valueType string

const (
	typeInt    valueType = "<int>"
	typeString valueType = "<string>"
	typeFun    valueType = "<fun>"
	typeVoid   valueType = "<void>"
)

var typeNames = map[string]valueType{
	"int":    typeInt,
	"string": typeString,
	"fun":    typeFun,
	"void":   typeVoid,
}

// value is implemented by every runtime value. The set of implementations is
// closed: *kestrelInt, *kestrelString, *kestrelFunction, *nativeFn and
// *kestrelVoid.
type value interface {
	kind() valueType
	truthy() (bool, error)
	String() string
}

// converter is implemented by the values that int() and string() accept.
type converter interface {
	toInteger() (*kestrelInt, error)
	toString() *kestrelString
}

func typeOf(name string) (valueType, bool) {
	t, ok := typeNames[name]
	return t, ok
}

func boolToInt(b bool) *kestrelInt {
	if b {
		return newInt(1)
	}
	return newInt(0)
}
