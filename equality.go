package ekans

import "bytes"

// Equals implements `=`: exactly two arguments of any type. A type
// mismatch is false; Number and Character compare by value;
// String and Symbol compare by byte equality; any other variant
// pairing (Boolean, Nil, Pair, Environment, Closure) is fatal rather than
// silently resolving to false.
func Equals(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 2 {
		fatalf("equals requires exactly two arguments")
	}
	v1 := env.envBindings[0]
	v2 := env.envBindings[1]

	var result bool
	switch {
	case !v1.Is(v2.tag):
		result = false
	case v1.Is(TagNumber):
		result = v1.num == v2.num
	case v1.Is(TagCharacter):
		result = v1.char == v2.char
	case v1.Is(TagSymbol):
		result = bytes.Equal(v1.bytes, v2.bytes)
	case v1.Is(TagString):
		result = bytes.Equal(v1.bytes, v2.bytes)
	default:
		fatalf("unsupported type encountered in equals")
	}
	rt.NewBoolean(result, out)
}
