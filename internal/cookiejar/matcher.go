package cookiejar

import (
	"net/url"
	"strings"

	"github.com/snagdl/snag/internal/browser"
)

// Matches reports whether a cookie applies to the given URL. It is a
// pure function: identical inputs always yield identical results.
//
// Domain: a leading-dot cookie domain (".example.com") matches the bare
// domain and every subdomain of it; otherwise the cookie domain must
// equal the URL host exactly. Path: the URL path must start with the
// cookie path, with "/" matching everything. Secure cookies are only
// sent over https.
func Matches(c browser.Cookie, u *url.URL) bool {
	if c.Secure && u.Scheme != "https" {
		return false
	}
	if !domainMatches(c.Domain, u.Hostname()) {
		return false
	}
	return pathMatches(c.Path, u.Path)
}

func domainMatches(cookieDomain, host string) bool {
	if cookieDomain == "" || host == "" {
		return false
	}
	if cookieDomain == host {
		return true
	}
	if !strings.HasPrefix(cookieDomain, ".") {
		return false
	}
	// ".example.com" matches example.com itself and any subdomain:
	// the suffix check keeps the dot, so "where.fexample.com" never
	// matches ".example.com".
	return host == cookieDomain[1:] || strings.HasSuffix(host, cookieDomain)
}

func pathMatches(cookiePath, urlPath string) bool {
	if cookiePath == "" || cookiePath == "/" {
		return true
	}
	if urlPath == "" {
		urlPath = "/"
	}
	return strings.HasPrefix(urlPath, cookiePath)
}
