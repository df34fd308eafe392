package profile

// Profiler describes a profiling session.
type Profiler struct {
	// Mode is one of [Modes]. An empty or unknown mode disables profiling.
	Mode string
	// Dir is the output directory. Empty selects the working directory.
	Dir string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Start begins profiling and returns a [Stopper] that writes the profile.
// Start and Stop are always safe to call; without the pprof build tag, or
// with no mode, they do nothing.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
