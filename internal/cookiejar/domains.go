package cookiejar

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// relevantDomains returns the domain set a cookie store should be
// queried for: the full URL host plus every parent domain down to the
// registrable domain (eTLD+1). This covers cookies set with a
// leading-dot or parent-domain scope.
//
// For "dl.media.example.com" the set is:
//
//	dl.media.example.com, media.example.com, example.com
//
// Hosts without a derivable registrable domain (IP literals,
// localhost) yield just the host itself.
func relevantDomains(host string) []string {
	host = strings.TrimSuffix(strings.ToLower(host), ".")

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return []string{host}
	}

	domains := []string{host}
	for host != etld1 {
		i := strings.Index(host, ".")
		if i < 0 {
			break
		}
		host = host[i+1:]
		domains = append(domains, host)
	}
	return domains
}
