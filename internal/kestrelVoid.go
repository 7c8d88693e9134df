package internal

type kestrelVoid struct{}

// void is the only kestrelVoid. Declarations, loops and print return it.
var void = &kestrelVoid{}

var voidOperations = map[operatorKey]operatorApply{
	{opEq, typeVoid, typeVoid}: func(left, right value) (value, error) {
		return newInt(1), nil
	},
}

func (v *kestrelVoid) kind() valueType {
	return typeVoid
}

func (v *kestrelVoid) truthy() (bool, error) {
	return false, nil
}

func (v *kestrelVoid) String() string {
	return "<void>"
}
