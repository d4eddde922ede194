package browser

import "strings"

// Kind identifies a supported browser. The set is closed: Chrome,
// Firefox, Safari and Edge. Unknown names are a parse failure, never
// a default.
type Kind string

const (
	KindChrome  Kind = "chrome"
	KindFirefox Kind = "firefox"
	KindSafari  Kind = "safari"
	KindEdge    Kind = "edge"
)

// Kinds returns all supported browser kinds in auto-detection
// priority order.
func Kinds() []Kind {
	return []Kind{KindChrome, KindFirefox, KindSafari, KindEdge}
}

// String returns the lowercase browser name.
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a case-insensitive browser name into a Kind.
// Unrecognized names return an UnsupportedError.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "chrome":
		return KindChrome, nil
	case "firefox":
		return KindFirefox, nil
	case "safari":
		return KindSafari, nil
	case "edge":
		return KindEdge, nil
	default:
		return "", &UnsupportedError{Name: name}
	}
}
