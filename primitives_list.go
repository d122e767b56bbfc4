package ekans

// Cons implements `cons`: exactly two arguments of any type.
func Cons(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 2 {
		fatalf("cons requires exactly two arguments")
	}
	rt.NewPair(env.envBindings[0], env.envBindings[1], out)
}

// List implements `list`: builds a proper list from zero or more
// arguments, right-to-left, terminated by Nil.
func List(rt *Runtime, env *Value, out **Value) {
	var result *Value
	rt.NewNil(&result)
	rt.PushRootSlot(&result)
	for i := len(env.envBindings) - 1; i >= 0; i-- {
		var temp *Value
		rt.PushRootSlot(&temp)
		rt.NewPair(env.envBindings[i], result, &temp)
		rt.PopRootSlots(1)
		result = temp
	}
	rt.PopRootSlots(1)
	*out = result
}

// IsNull implements `null?`: true iff the single argument is Nil.
func IsNull(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("null? requires exactly one argument")
	}
	rt.NewBoolean(env.envBindings[0].Is(TagNil), out)
}

// IsPair implements `pair?`: true iff the single argument is a Pair.
func IsPair(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("pair? requires exactly one argument")
	}
	rt.NewBoolean(env.envBindings[0].Is(TagPair), out)
}

// carOf returns the head of a Pair, fatal on anything else.
func carOf(v *Value) *Value {
	if !v.Is(TagPair) {
		fatalf("requires its argument to be a pair")
	}
	return v.pairHead
}

// cdrOf returns the tail of a Pair, fatal on anything else.
func cdrOf(v *Value) *Value {
	if !v.Is(TagPair) {
		fatalf("requires its argument to be a pair")
	}
	return v.pairTail
}

// Car implements `car`: exactly one Pair argument.
func Car(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("car requires exactly one argument")
	}
	if !env.envBindings[0].Is(TagPair) {
		fatalf("car requires its 1st argument to be a pair")
	}
	*out = env.envBindings[0].pairHead
}

// Cdr implements `cdr`: exactly one Pair argument.
func Cdr(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("cdr requires exactly one argument")
	}
	if !env.envBindings[0].Is(TagPair) {
		fatalf("cdr requires its 1st argument to be a pair")
	}
	*out = env.envBindings[0].pairTail
}

// Cadr implements `cadr` = car(cdr(list)).
func Cadr(rt *Runtime, env *Value, out **Value) {
	*out = carOf(cdrOf(env.envBindings[0]))
}

// Caddr implements `caddr` = car(cdr(cdr(list))).
func Caddr(rt *Runtime, env *Value, out **Value) {
	*out = carOf(cdrOf(cdrOf(env.envBindings[0])))
}

// Cddr implements `cddr` = cdr(cdr(list)).
func Cddr(rt *Runtime, env *Value, out **Value) {
	*out = cdrOf(cdrOf(env.envBindings[0]))
}

// Cdadr implements `cdadr` = cdr(car(cdr(list))).
func Cdadr(rt *Runtime, env *Value, out **Value) {
	*out = cdrOf(carOf(cdrOf(env.envBindings[0])))
}

// Cddadr implements `cddadr` = cdr(cdr(car(cdr(list)))).
func Cddadr(rt *Runtime, env *Value, out **Value) {
	*out = cdrOf(cdrOf(carOf(cdrOf(env.envBindings[0]))))
}

// Caadr implements `caadr` = car(car(cdr(list))).
func Caadr(rt *Runtime, env *Value, out **Value) {
	*out = carOf(carOf(cdrOf(env.envBindings[0])))
}

// Caar implements `caar` = car(car(list)).
func Caar(rt *Runtime, env *Value, out **Value) {
	*out = carOf(carOf(env.envBindings[0]))
}

// Cdar implements `cdar` = cdr(car(list)).
func Cdar(rt *Runtime, env *Value, out **Value) {
	*out = cdrOf(carOf(env.envBindings[0]))
}

// Cdddr implements `cdddr` = cdr(cdr(cdr(list))).
func Cdddr(rt *Runtime, env *Value, out **Value) {
	*out = cdrOf(cdrOf(cdrOf(env.envBindings[0])))
}

// Cadddr implements `cadddr` = car(cdr(cdr(cdr(list)))).
func Cadddr(rt *Runtime, env *Value, out **Value) {
	*out = carOf(cdrOf(cdrOf(cdrOf(env.envBindings[0]))))
}

// Member implements `member`: returns a Boolean reporting whether
// target occurs in list under equals, not the matching tail. The
// list must end in Nil; anything else found where a Pair or Nil is
// expected is fatal.
func Member(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 2 {
		fatalf("member requires exactly two arguments")
	}
	target := env.envBindings[0]
	list := env.envBindings[1]
	rt.PushRootSlot(&target)
	rt.PushRootSlot(&list)
	for list.Is(TagPair) {
		head := list.pairHead
		var equalsEnv *Value
		rt.PushRootSlot(&head)
		rt.PushRootSlot(&equalsEnv)
		rt.NewEnvironment(nil, 2, &equalsEnv)
		SetEnvironment(equalsEnv, 0, target)
		SetEnvironment(equalsEnv, 1, head)
		var result *Value
		rt.PushRootSlot(&result)
		Equals(rt, equalsEnv, &result)
		if IsTrue(result) {
			rt.PopRootSlots(5)
			rt.NewBoolean(true, out)
			return
		}
		rt.PopRootSlots(3)
		list = list.pairTail
	}
	rt.PopRootSlots(2)
	if !list.Is(TagNil) {
		fatalf("the list must end with a nil type to be valid")
	}
	rt.NewBoolean(false, out)
}

// StringToList implements `string→list`: right-to-left cons build of
// a String's bytes into a list of Characters.
func StringToList(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("string→list requires exactly one argument")
	}
	if !env.envBindings[0].Is(TagString) {
		fatalf("string→list requires its 1st argument to be string")
	}
	src := env.envBindings[0].bytes
	var result *Value
	rt.NewNil(&result)
	rt.PushRootSlot(&result)
	for i := len(src) - 1; i >= 0; i-- {
		var c *Value
		rt.PushRootSlot(&c)
		rt.NewCharacter(src[i], &c)
		var temp *Value
		rt.PushRootSlot(&temp)
		rt.NewPair(c, result, &temp)
		rt.PopRootSlots(2)
		result = temp
	}
	rt.PopRootSlots(1)
	*out = result
}
