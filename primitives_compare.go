package ekans

// LessThan implements `<`: exactly two Numbers.
func LessThan(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 2 {
		fatalf("< requires exactly two arguments")
	}
	if !env.envBindings[0].Is(TagNumber) {
		fatalf("< requires its 1st argument to be number")
	}
	if !env.envBindings[1].Is(TagNumber) {
		fatalf("< requires its 2nd argument to be number")
	}
	rt.NewBoolean(env.envBindings[0].num < env.envBindings[1].num, out)
}

// GreaterThan implements `>`: exactly two Numbers.
func GreaterThan(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 2 {
		fatalf("> requires exactly two arguments")
	}
	if !env.envBindings[0].Is(TagNumber) {
		fatalf("> requires its 1st argument to be number")
	}
	if !env.envBindings[1].Is(TagNumber) {
		fatalf("> requires its 2nd argument to be number")
	}
	rt.NewBoolean(env.envBindings[0].num > env.envBindings[1].num, out)
}

// Not implements `not`: exactly one Boolean.
func Not(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("not requires exactly one argument")
	}
	if !env.envBindings[0].Is(TagBoolean) {
		fatalf("not requires its 1st argument to be boolean")
	}
	rt.NewBoolean(!env.envBindings[0].boolean, out)
}
