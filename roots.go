package ekans

// rootSlot is a single entry in the root registry: the address of a
// mutator-owned variable that may hold a Value reference. The
// collector never receives a Value directly — only the address of a
// handle — so that it always sees through later updates to that
// handle.
type rootSlot struct {
	slot **Value
	next *rootSlot
}

// PushRootSlot registers the address of a mutator-stack variable as a
// GC root. Every local that may hold a Value across a call that can
// allocate must be registered before that call; registration scope
// must be balanced with stack scope (LIFO), mirrored by PopRootSlots.
func (rt *Runtime) PushRootSlot(slot **Value) {
	rt.roots = &rootSlot{slot: slot, next: rt.roots}
}

// PopRootSlots pops the top n root registrations, last-in-first-out.
func (rt *Runtime) PopRootSlots(n int) {
	for i := 0; i < n; i++ {
		rt.roots = rt.roots.next
	}
}

// RootSlotDepth reports how many slots are currently registered. It
// exists so callers (and tests) can assert balanced push/pop
// discipline without threading their own counters.
func (rt *Runtime) RootSlotDepth() int {
	depth := 0
	for cur := rt.roots; cur != nil; cur = cur.next {
		depth++
	}
	return depth
}
