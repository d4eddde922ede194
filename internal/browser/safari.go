package browser

import "runtime"

// safariSource reads cookies from Safari's binarycookies store.
// Safari exists only on macOS; on other platforms the source is simply
// never available.
type safariSource struct {
	cookiePaths []string
	darwin      bool
}

func newSafariSource() *safariSource {
	return &safariSource{
		cookiePaths: safariCookiePaths(userHomeDir()),
		darwin:      runtime.GOOS == "darwin",
	}
}

func (s *safariSource) Kind() Kind {
	return KindSafari
}

func (s *safariSource) IsAvailable() bool {
	if !s.darwin {
		return false
	}
	return firstExisting(s.cookiePaths) != ""
}

func (s *safariSource) FetchCookies(domains []string) ([]Cookie, error) {
	if !s.darwin {
		return nil, &NotAvailableError{Kind: KindSafari}
	}
	path := firstExisting(s.cookiePaths)
	if path == "" {
		return nil, &NotAvailableError{Kind: KindSafari}
	}

	// binarycookies files are small and not locked by Safari; read in place.
	cookies, err := readBinaryCookies(path, domains)
	if err != nil {
		return nil, &FetchError{Kind: KindSafari, Err: err}
	}
	return cookies, nil
}

var _ Source = (*safariSource)(nil)
