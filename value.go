package ekans

// Tag is the variant discriminant stored in every Value. The high bit
// is reserved for the collector's mark bit and must never be treated
// as part of the variant identity by callers.
type Tag uint16

const (
	TagNumber Tag = iota
	TagBoolean
	TagCharacter
	TagString
	TagSymbol
	TagNil
	TagPair
	TagEnvironment
	TagClosure
)

// markBit is folded into the tag field rather than kept in a separate
// bitmap or bitset.
const markBit Tag = 1 << 15

// NativeFunction is the calling convention every closure and every
// built-in primitive implements: it receives the Environment acting
// as its argument vector and writes its result into the out-handle.
type NativeFunction func(rt *Runtime, env *Value, out **Value)

// Value is every heap object the runtime manages. A single struct
// holds the fields for all variants instead of a tagged union (Go has
// no unions); which fields are meaningful is determined entirely by
// tag. Value is never constructed directly by callers — use the NewX
// constructors in constructors.go, which also register the result
// with the heap list.
type Value struct {
	tag Tag

	// heap list membership (heap.go)
	prev, next *Value

	// Number
	num int

	// Boolean
	boolean bool

	// Character
	char byte

	// String / Symbol: an owned byte sequence, not null-terminated.
	bytes []byte

	// Pair
	pairHead, pairTail *Value

	// Environment
	envParent   *Value
	envBindings []*Value

	// Closure
	closureEnv *Value
	closureFn  NativeFunction
}

// Is tests the variant, ignoring the mark bit.
func (v *Value) Is(tag Tag) bool {
	return v.tag&^markBit == tag&^markBit
}

// markThis sets the collector's mark bit.
func (v *Value) markThis() {
	v.tag |= markBit
}

// resetThis clears the collector's mark bit.
func (v *Value) resetThis() {
	v.tag &^= markBit
}

// marked reports whether v carries the mark bit, or is absent — an
// absent reference is trivially "live" so traversal code does not
// need a nil check at every call site.
func marked(v *Value) bool {
	return v == nil || v.tag&markBit != 0
}

// Number returns the payload of a Number value. The caller must have
// already checked Is(TagNumber); this does not re-check the tag.
func (v *Value) Number() int { return v.num }

// Boolean returns the payload of a Boolean value.
func (v *Value) Boolean() bool { return v.boolean }

// Character returns the payload of a Character value.
func (v *Value) Character() byte { return v.char }

// Bytes returns the owned byte sequence of a String or Symbol value.
func (v *Value) Bytes() []byte { return v.bytes }

// PairHead returns the head reference of a Pair value.
func (v *Value) PairHead() *Value { return v.pairHead }

// PairTail returns the tail reference of a Pair value.
func (v *Value) PairTail() *Value { return v.pairTail }

// SetPairTail mutates the tail reference of a Pair in place, used only
// to build cyclic structures for GC cycle-safety testing — there is no
// corresponding public mutator in the ABI, since the language itself
// never mutates a pair after construction.
func (v *Value) SetPairTail(t *Value) { v.pairTail = t }
