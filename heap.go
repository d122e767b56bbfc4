package ekans

// Runtime bundles the single mutator's global state: the heap list
// sentinels, the root registry, and the captured program arguments.
// There is exactly one Runtime live at a time in any real embedding;
// bundling its state into a struct threaded explicitly through every
// call keeps that single-mutator invariant without resorting to
// package-level mutable vars.
type Runtime struct {
	head, tail Value

	roots *rootSlot

	args []string

	options RuntimeOptions
}

// append links a freshly allocated Value in just before the tail
// sentinel, in O(1). The sentinels themselves are never collected and
// never carry a payload.
func (rt *Runtime) append(v *Value) {
	v.prev = rt.tail.prev
	v.next = &rt.tail
	v.prev.next = v
	v.next.prev = v
}

// HeapLen walks the heap list and counts live (non-sentinel) nodes.
// It is O(heap size); exposed mainly for tests that assert on heap
// shape.
func (rt *Runtime) HeapLen() int {
	n := 0
	for cur := rt.head.next; cur != &rt.tail; cur = cur.next {
		n++
	}
	return n
}

// HeapEmpty reports whether the heap list holds no live allocations,
// i.e. head.next == &tail.
func (rt *Runtime) HeapEmpty() bool {
	return rt.head.next == &rt.tail
}
