package ekans

// StringAppend implements `string-append`: concatenates zero or more
// Strings into a new String.
func StringAppend(rt *Runtime, env *Value, out **Value) {
	b := newBuilder()
	for _, arg := range env.envBindings {
		if !arg.Is(TagString) {
			fatalf("string-append: requires argument to be a string")
		}
		b.writeBytes(arg.bytes)
	}
	rt.NewString(b.bytes(), out)
}

// Format implements `format`: the first argument is a String
// containing `~a` placeholders, filled left-to-right from the
// remaining arguments using each argument's compact text form. Too
// few arguments for the placeholders present is fatal.
func Format(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) < 1 {
		fatalf("format requires at least one argument")
	}
	if !env.envBindings[0].Is(TagString) {
		fatalf("format requires its 1st argument to be string")
	}
	fmtStr := env.envBindings[0].bytes
	args := env.envBindings[1:]
	argIdx := 0
	b := newBuilder()
	for i := 0; i < len(fmtStr); i++ {
		if fmtStr[i] == '~' && i+1 < len(fmtStr) && fmtStr[i+1] == 'a' {
			if argIdx >= len(args) {
				fatalf("format: arguments index error")
			}
			b.writeBytes(Text(args[argIdx]))
			argIdx++
			i++
		} else {
			b.writeByte(fmtStr[i])
		}
	}
	rt.NewString(b.bytes(), out)
}

// ListToString implements `list→string`: concatenates the compact
// text form of every element of a proper list. The list must end in
// Nil; anything else found instead of a Pair or Nil is fatal.
func ListToString(rt *Runtime, env *Value, out **Value) {
	if len(env.envBindings) != 1 {
		fatalf("list→string requires exactly one argument")
	}
	if !env.envBindings[0].Is(TagPair) && !env.envBindings[0].Is(TagNil) {
		fatalf("list→string requires its 1st argument to be a list")
	}
	b := newBuilder()
	list := env.envBindings[0]
	for list.Is(TagPair) {
		b.writeBytes(Text(list.pairHead))
		list = list.pairTail
		if list.Is(TagNil) {
			break
		}
		if !list.Is(TagPair) {
			fatalf("list→string: the list must end with a nil type")
		}
	}
	rt.NewString(b.bytes(), out)
}
