package ekans

// Print writes the decorated, human-facing form of v to the returned
// byte slice with a trailing newline: Pairs as `'(...)`, improper
// tails separated by " . ", Nil as `'()`, quoted Strings, quoted
// Symbols, `#t`/`#f` Booleans, and `#\c` Characters.
func Print(v *Value) []byte {
	b := newBuilder()
	printHelper(v, b)
	b.writeByte('\n')
	return b.bytes()
}

// printHelper writes the decorated form of v without a trailing
// newline; used directly and recursively for nested Pair elements, so
// a nested Pair is decorated exactly the same way as a top-level one.
func printHelper(v *Value, b *builder) {
	switch {
	case v.Is(TagNumber):
		b.writeInt(v.num)
	case v.Is(TagBoolean):
		b.writeBool(v.boolean)
	case v.Is(TagCharacter):
		b.writeString("#\\")
		b.writeByte(v.char)
	case v.Is(TagSymbol):
		b.writeByte('\'')
		b.writeBytes(v.bytes)
	case v.Is(TagString):
		b.writeByte('"')
		b.writeBytes(v.bytes)
		b.writeByte('"')
	case v.Is(TagPair):
		b.writeString("'(")
		cur := v
		for {
			printHelper(cur.pairHead, b)
			cur = cur.pairTail
			if cur.Is(TagNil) {
				b.writeByte(')')
				break
			} else if cur.Is(TagPair) {
				b.writeByte(' ')
			} else {
				b.writeString(" . ")
				printHelper(cur, b)
				b.writeByte(')')
				break
			}
		}
	case v.Is(TagNil):
		b.writeString("'()")
	default:
		fatalf("print_ekans_value: unsupported type")
	}
}

// Text renders the compact internal form of v used by format,
// list→string, and string-append: bare `(...)` Pairs (no leading
// quote), unquoted String/Symbol bytes, Characters as their bare byte
// (no `#\` prefix), same Boolean rendering as Print. There is no
// trailing newline.
func Text(v *Value) []byte {
	b := newBuilder()
	textHelper(v, b)
	return b.bytes()
}

func textHelper(v *Value, b *builder) {
	switch {
	case v.Is(TagNumber):
		b.writeInt(v.num)
	case v.Is(TagBoolean):
		b.writeBool(v.boolean)
	case v.Is(TagCharacter):
		b.writeByte(v.char)
	case v.Is(TagSymbol):
		b.writeBytes(v.bytes)
	case v.Is(TagString):
		b.writeBytes(v.bytes)
	case v.Is(TagPair):
		b.writeByte('(')
		cur := v
		for {
			textHelper(cur.pairHead, b)
			cur = cur.pairTail
			if cur.Is(TagNil) {
				b.writeByte(')')
				break
			} else if cur.Is(TagPair) {
				b.writeByte(' ')
			} else {
				b.writeString(" . ")
				textHelper(cur, b)
				b.writeByte(')')
				break
			}
		}
	case v.Is(TagNil):
		b.writeString("()")
	default:
		fatalf("ekans_value_to_string: unsupported type")
	}
}
