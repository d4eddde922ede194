package browser

import (
	"os"
	"path/filepath"
)

// firefoxSource reads cookies from Firefox. The cookie database lives
// inside the default profile, which is resolved through profiles.ini.
type firefoxSource struct {
	profilesIniPaths []string
}

func newFirefoxSource() *firefoxSource {
	return &firefoxSource{
		profilesIniPaths: firefoxProfilesIniPaths(userHomeDir()),
	}
}

func (s *firefoxSource) Kind() Kind {
	return KindFirefox
}

// storePath resolves the default profile's cookies.sqlite, or "" when
// no profile with a cookie store exists.
func (s *firefoxSource) storePath() string {
	for _, iniPath := range s.profilesIniPaths {
		profileDir := parseProfilesIni(iniPath)
		if profileDir == "" {
			continue
		}
		cookiePath := filepath.Join(profileDir, "cookies.sqlite")
		if info, err := os.Stat(cookiePath); err == nil && !info.IsDir() {
			return cookiePath
		}
	}
	return ""
}

func (s *firefoxSource) IsAvailable() bool {
	return s.storePath() != ""
}

func (s *firefoxSource) FetchCookies(domains []string) ([]Cookie, error) {
	path := s.storePath()
	if path == "" {
		return nil, &NotAvailableError{Kind: KindFirefox}
	}

	tempDir, cleanup, err := safeCopy(path)
	if err != nil {
		return nil, &FetchError{Kind: KindFirefox, Err: err}
	}
	defer cleanup()

	cookies, err := readFirefoxStore(filepath.Join(tempDir, filepath.Base(path)), domains)
	if err != nil {
		return nil, &FetchError{Kind: KindFirefox, Err: err}
	}
	return cookies, nil
}

var _ Source = (*firefoxSource)(nil)
