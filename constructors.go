package ekans

// NewNumber allocates a Number value, writes it to out, and registers
// it with the heap list. The out-handle is written before the value
// is appended to the heap so that, if the caller has already rooted
// out, a collection triggered later in the same expression can trace
// the new object.
func (rt *Runtime) NewNumber(n int, out **Value) {
	result := mustAllocateValue()
	result.tag = TagNumber
	result.num = n
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}

// NewBoolean allocates a Boolean value.
func (rt *Runtime) NewBoolean(b bool, out **Value) {
	result := mustAllocateValue()
	result.tag = TagBoolean
	result.boolean = b
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}

// NewCharacter allocates a Character value.
func (rt *Runtime) NewCharacter(c byte, out **Value) {
	result := mustAllocateValue()
	result.tag = TagCharacter
	result.char = c
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}

// NewString allocates a String value, taking ownership of a private
// copy of s.
func (rt *Runtime) NewString(s []byte, out **Value) {
	result := mustAllocateValue()
	result.tag = TagString
	result.bytes = append([]byte(nil), s...)
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}

// NewSymbol allocates a Symbol value. Symbols and Strings are
// identical payloads that differ only in printing and (optionally)
// interning policy; this runtime does not intern.
func (rt *Runtime) NewSymbol(s []byte, out **Value) {
	result := mustAllocateValue()
	result.tag = TagSymbol
	result.bytes = append([]byte(nil), s...)
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}

// NewNil allocates the empty-list marker value.
func (rt *Runtime) NewNil(out **Value) {
	result := mustAllocateValue()
	result.tag = TagNil
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}

// NewPair allocates a cons cell with the given head and tail
// references.
func (rt *Runtime) NewPair(head, tail *Value, out **Value) {
	result := mustAllocateValue()
	result.tag = TagPair
	result.pairHead = head
	result.pairTail = tail
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}

// NewEnvironment allocates a fixed-size, zero-initialized (all
// bindings absent) indexed frame with the given parent, which may be
// nil for the root environment. parent, if non-nil, must itself be an
// Environment.
func (rt *Runtime) NewEnvironment(parent *Value, size int, out **Value) {
	if parent != nil && !parent.Is(TagEnvironment) {
		fatalf("expected an environment as the parent of a new environment")
	}
	result := mustAllocateValue()
	result.tag = TagEnvironment
	result.envParent = parent
	result.envBindings = make([]*Value, size)
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}

// NewClosure allocates a closure over env (which must be an
// Environment) and the given native function.
func (rt *Runtime) NewClosure(env *Value, fn NativeFunction, out **Value) {
	if !env.Is(TagEnvironment) {
		fatalf("expected an environment when creating a closure")
	}
	result := mustAllocateValue()
	result.tag = TagClosure
	result.closureEnv = env
	result.closureFn = fn
	*out = result
	rt.append(result)
	rt.maybeAutoCollect()
}
