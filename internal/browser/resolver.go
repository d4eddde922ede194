package browser

// The resolver selects the one Source used for the remainder of a run.
// Resolution happens at most once per process; the result is immutable
// and safe to share across concurrent download tasks without locking.
//
// Two distinct selection policies coexist deliberately:
//   - ResolveAuto probes in fixed priority order Chrome > Firefox >
//     Safari > Edge.
//   - ResolveDefault is the backward-compatible policy used when the
//     user gave no browser flag at all: Firefox if available, otherwise
//     priority auto-detection.

// newSource constructs the strategy for a kind. kind must be one of the
// closed set; ParseKind guarantees that for user input.
func newSource(kind Kind) Source {
	switch kind {
	case KindChrome:
		return newChromeSource()
	case KindFirefox:
		return newFirefoxSource()
	case KindEdge:
		return newEdgeSource()
	default:
		return newSafariSource()
	}
}

// Resolve returns the source for an explicitly requested kind.
// If that browser is not available the resolution fails with a
// NotAvailableError; it never silently substitutes another browser.
func Resolve(kind Kind) (Source, error) {
	return resolveExplicit(newSource(kind))
}

func resolveExplicit(s Source) (Source, error) {
	if !s.IsAvailable() {
		return nil, &NotAvailableError{Kind: s.Kind()}
	}
	return s, nil
}

// ResolveAuto probes all browsers in priority order and returns the
// first available one. If none are available it fails with a
// NoBrowsersError naming every attempted kind.
func ResolveAuto() (Source, error) {
	candidates := make([]Source, 0, len(Kinds()))
	for _, kind := range Kinds() {
		candidates = append(candidates, newSource(kind))
	}
	return resolveAuto(candidates)
}

func resolveAuto(candidates []Source) (Source, error) {
	attempted := make([]Kind, 0, len(candidates))
	for _, s := range candidates {
		if s.IsAvailable() {
			return s, nil
		}
		attempted = append(attempted, s.Kind())
	}
	return nil, &NoBrowsersError{Attempted: attempted}
}

// ResolveDefault implements the legacy default policy: prefer Firefox,
// fall back to priority auto-detection when Firefox is not available.
func ResolveDefault() (Source, error) {
	if ff := newFirefoxSource(); ff.IsAvailable() {
		return ff, nil
	}
	return ResolveAuto()
}
