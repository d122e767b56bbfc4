package ekans

// CharLessEqual implements `char<=`: exactly two Characters.
func CharLessEqual(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 2 {
		fatalf("char<= requires exactly two arguments")
	}
	if !env.envBindings[0].Is(TagCharacter) {
		fatalf("char<= requires its 1st argument to be character")
	}
	if !env.envBindings[1].Is(TagCharacter) {
		fatalf("char<= requires its 2nd argument to be character")
	}
	rt.NewBoolean(env.envBindings[0].char <= env.envBindings[1].char, out)
}

// CharGreaterEqual implements `char>=`: exactly two Characters.
func CharGreaterEqual(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 2 {
		fatalf("char>= requires exactly two arguments")
	}
	if !env.envBindings[0].Is(TagCharacter) {
		fatalf("char>= requires its 1st argument to be character")
	}
	if !env.envBindings[1].Is(TagCharacter) {
		fatalf("char>= requires its 2nd argument to be character")
	}
	rt.NewBoolean(env.envBindings[0].char >= env.envBindings[1].char, out)
}

// CharToInt implements `char→int`: exactly one Character.
func CharToInt(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("char→int requires exactly one argument")
	}
	if !env.envBindings[0].Is(TagCharacter) {
		fatalf("char→int requires its 1st argument to be character")
	}
	rt.NewNumber(int(env.envBindings[0].char), out)
}
