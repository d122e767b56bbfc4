package ekans

// Initialize installs the heap list's sentinels and captures the
// program's arguments (excluding argv[0], matching the `args`
// primitive's contract) for later use by Args. This is the runtime
// entry point a compiled program's main forwards argc/argv into.
func Initialize(args []string) *Runtime {
	rt := &Runtime{}
	rt.head.next = &rt.tail
	rt.tail.prev = &rt.head
	if len(args) > 1 {
		rt.args = append([]string(nil), args[1:]...)
	}
	return rt
}

// Finalize runs a final collection with no roots pushed, which frees
// every remaining live allocation — double-free cannot occur because
// swept objects are unlinked from the heap list before being dropped.
func (rt *Runtime) Finalize() {
	rt.Collect()
}
