package ekans

// RuntimeOptions carries the handful of host-tunable knobs a runtime
// instance accepts: small, named, typed settings instead of a bag of
// interface{} values.
type RuntimeOptions struct {
	// AutoCollectAfterEachConstruction, when true, runs Collect
	// after every allocating constructor call. Constructors never
	// trigger collection on their own in the generated-code ABI;
	// this knob exists only so tests and the cmd/ driver can opt
	// into a stress mode that exercises the collector far more
	// aggressively than generated code ever would. Defaults to
	// false.
	AutoCollectAfterEachConstruction bool
}

// DefaultRuntimeOptions returns the options a freshly Initialize'd
// Runtime uses when the caller does not provide its own.
func DefaultRuntimeOptions() RuntimeOptions {
	return RuntimeOptions{
		AutoCollectAfterEachConstruction: false,
	}
}

// SetOptions replaces rt's options wholesale.
func (rt *Runtime) SetOptions(opts RuntimeOptions) {
	rt.options = opts
}

// maybeAutoCollect runs Collect if the stress-testing knob is
// enabled. A no-op in normal operation, since constructors never
// trigger collection on their own.
func (rt *Runtime) maybeAutoCollect() {
	if rt.options.AutoCollectAfterEachConstruction {
		rt.Collect()
	}
}
