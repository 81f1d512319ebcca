package artwork

// State is the lifecycle state of a single artwork load.
type State int

const (
	// Loading is entered whenever the resolved source changes.
	Loading State = iota
	// Loaded is terminal for a source; only a source change leaves it.
	Loaded
	// Failed is terminal for a source; the fallback frame is shown.
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Loader tracks the load lifecycle of one card's artwork. It owns no I/O:
// the host fetches the resolved source and fires the success or failure
// signal handed out by SetSource. Signals are bound to the source
// generation they were issued for, so a signal arriving after the source
// has changed is a no-op. Loader is not safe for concurrent use; all
// transitions are expected on a single event loop.
type Loader struct {
	state      State
	source     string
	generation int
	started    bool
}

// NewLoader returns a loader with no source yet. Call SetSource before
// reading State.
func NewLoader() *Loader {
	return &Loader{}
}

// SetSource resolves the first non-empty candidate URL and enters Loading
// for it, returning the success and failure signals the host must fire
// when the fetch settles. Supplying the same resolved source again is a
// no-op reset-wise: the current state is kept and fresh signals for the
// current generation are returned. If every candidate is empty the loader
// goes straight to Failed and the returned signals do nothing.
func (l *Loader) SetSource(candidates ...string) (loaded, failed func()) {
	source := ""
	for _, c := range candidates {
		if c != "" {
			source = c
			break
		}
	}

	if !l.started || source != l.source {
		l.started = true
		l.source = source
		l.generation++
		if source == "" {
			l.state = Failed
		} else {
			l.state = Loading
		}
	}

	gen := l.generation
	loaded = func() {
		if gen == l.generation && l.state == Loading {
			l.state = Loaded
		}
	}
	failed = func() {
		if gen == l.generation && l.state == Loading {
			l.state = Failed
		}
	}
	return loaded, failed
}

// State returns the current lifecycle state.
func (l *Loader) State() State {
	return l.state
}

// Source returns the URL resolved by the last SetSource call, or "" when
// no candidate was usable.
func (l *Loader) Source() string {
	return l.source
}
