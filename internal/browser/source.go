package browser

import (
	"os"
	"time"
)

// Cookie represents a single HTTP cookie read from a browser cookie
// store. Immutable once created; it lives only for the duration of one
// fetch-and-filter operation and is never cached to disk.
// Value is SENSITIVE and must never be logged or formatted into error
// messages. Only Name and Domain may appear in debug output.
type Cookie struct {
	// Name is the cookie name.
	Name string
	// Value is the cookie value. SENSITIVE, never log.
	Value string
	// Domain is the cookie domain (may have a leading dot for
	// subdomain-inclusive cookies).
	Domain string
	// Path is the cookie path scope.
	Path string
	// Expiry is the cookie expiration time. Zero means a session
	// cookie with no explicit expiry.
	Expiry time.Time
	// Secure indicates the cookie should only be sent over HTTPS.
	Secure bool
	// HttpOnly indicates the cookie is not accessible via JavaScript.
	HttpOnly bool
}

// Source is the capability implemented once per supported browser.
// FetchCookies reads the browser's local cookie store for the given
// domain set; it may read a local, possibly encrypted, per-user file
// but never writes or modifies browser state. IsAvailable performs a
// fast, non-destructive presence check and never fails; on uncertainty
// it reports false.
type Source interface {
	FetchCookies(domains []string) ([]Cookie, error)
	IsAvailable() bool
	Kind() Kind
}

// firstExisting returns the first path in candidates that exists as a
// regular file, or "" if none do.
func firstExisting(candidates []string) string {
	for _, p := range candidates {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// domainVariants expands a domain set into the exact and leading-dot
// forms stored by browsers (example.com and .example.com).
func domainVariants(domains []string) []string {
	variants := make([]string, 0, len(domains)*2)
	for _, d := range domains {
		if d == "" {
			continue
		}
		if d[0] == '.' {
			d = d[1:]
		}
		variants = append(variants, d, "."+d)
	}
	return variants
}

// domainInSet reports whether a stored cookie domain belongs to the
// requested domain set, treating a leading dot as insignificant for
// membership (matching proper is done by the cookiejar package).
func domainInSet(cookieDomain string, domains []string) bool {
	bare := cookieDomain
	if bare != "" && bare[0] == '.' {
		bare = bare[1:]
	}
	for _, d := range domains {
		if d != "" && d[0] == '.' {
			d = d[1:]
		}
		if bare == d {
			return true
		}
	}
	return false
}
