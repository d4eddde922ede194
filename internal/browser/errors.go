package browser

import (
	"fmt"
	"strings"
)

// kindNames joins all supported browser names for error messages.
func kindNames() string {
	ks := Kinds()
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// UnsupportedError is returned when a browser name cannot be parsed
// into a supported Kind.
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("browser %q is not supported (supported: %s)", e.Name, kindNames())
}

// NotAvailableError is returned when a recognized browser is not
// installed or has no usable cookie store on this machine. During
// auto-detection it is a skip-and-continue signal; for explicit
// selection it is fatal.
type NotAvailableError struct {
	Kind Kind
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("browser %s is not available or has no cookie store", e.Kind)
}

// NoBrowsersError is returned when auto-detection exhausts every
// candidate without finding a usable cookie store.
type NoBrowsersError struct {
	Attempted []Kind
}

func (e *NoBrowsersError) Error() string {
	names := make([]string, len(e.Attempted))
	for i, k := range e.Attempted {
		names[i] = k.String()
	}
	return fmt.Sprintf("no supported browsers found (tried: %s)", strings.Join(names, ", "))
}

// FetchError is returned when a cookie store is present but could not
// be read (locked, corrupt, or unparsable).
type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch cookies from %s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
