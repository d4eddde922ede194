// Package cookiejar turns a resolved browser cookie source into HTTP
// Cookie header values. It derives the relevant domain set for a URL,
// filters fetched cookies through domain/path/secure matching, and
// formats the survivors as a single request header value.
package cookiejar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/snagdl/snag/internal/browser"
	"github.com/snagdl/snag/pkg/logger"
)

// Provider fetches and filters cookies for target URLs using the one
// Source resolved for this run. The source is read-only after
// resolution, so a single Provider is safe to share across concurrent
// download tasks.
type Provider struct {
	source browser.Source
	log    logger.Logger
}

// NewProvider creates a Provider over the resolved source. A nil
// logger disables logging.
func NewProvider(source browser.Source, log logger.Logger) *Provider {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Provider{source: source, log: log}
}

// HeaderForURL returns the Cookie request-header value for the given
// URL, e.g. "sid=abc; theme=dark". No matching cookies is success with
// an empty string; absence of cookies never blocks an otherwise valid
// unauthenticated download. A store read failure propagates as the
// source's typed error.
func (p *Provider) HeaderForURL(rawurl string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawurl, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("url %q has no host", rawurl)
	}

	domains := relevantDomains(host)
	cookies, err := p.source.FetchCookies(domains)
	if err != nil {
		return "", err
	}

	now := time.Now()
	matched := cookies[:0:0]
	for _, c := range cookies {
		if !c.Expiry.IsZero() && c.Expiry.Before(now) {
			continue
		}
		if Matches(c, u) {
			matched = append(matched, c)
		}
	}
	p.log.Info("matched %d of %d cookies from %s for %s",
		len(matched), len(cookies), p.source.Kind(), host)

	return BuildHeader(matched), nil
}

// BuildHeader builds an HTTP Cookie header value from a slice of cookies.
// Format: "name1=val1; name2=val2". Empty input yields "".
func BuildHeader(cookies []browser.Cookie) string {
	if len(cookies) == 0 {
		return ""
	}

	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "; ")
}
