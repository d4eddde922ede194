package browser

import "path/filepath"

// chromiumSource reads cookies from a Chromium-family browser (Chrome
// or Edge). It owns no state beyond its kind and candidate store paths.
type chromiumSource struct {
	kind        Kind
	cookiePaths []string
}

func newChromeSource() *chromiumSource {
	return &chromiumSource{
		kind:        KindChrome,
		cookiePaths: chromeCookiePaths(userHomeDir()),
	}
}

func newEdgeSource() *chromiumSource {
	return &chromiumSource{
		kind:        KindEdge,
		cookiePaths: edgeCookiePaths(userHomeDir()),
	}
}

func (s *chromiumSource) Kind() Kind {
	return s.kind
}

// IsAvailable reports whether a cookie database exists at any of the
// candidate paths. It never fails; a stat error means not available.
func (s *chromiumSource) IsAvailable() bool {
	return firstExisting(s.cookiePaths) != ""
}

// FetchCookies copies the live cookie database to a temp dir and reads
// it there, so the running browser is never locked out.
func (s *chromiumSource) FetchCookies(domains []string) ([]Cookie, error) {
	path := firstExisting(s.cookiePaths)
	if path == "" {
		return nil, &NotAvailableError{Kind: s.kind}
	}

	tempDir, cleanup, err := safeCopy(path)
	if err != nil {
		return nil, &FetchError{Kind: s.kind, Err: err}
	}
	defer cleanup()

	cookies, err := readChromiumStore(filepath.Join(tempDir, filepath.Base(path)), domains)
	if err != nil {
		return nil, &FetchError{Kind: s.kind, Err: err}
	}
	return cookies, nil
}

var (
	_ Source = (*chromiumSource)(nil)
)
