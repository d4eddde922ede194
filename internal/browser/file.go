package browser

import "os"

// kindFile labels a FileSource in errors and logs. It is not a member
// of the closed BrowserKind set and ParseKind never produces it.
const kindFile Kind = "cookie-file"

// FileSource implements the Source capability over a Netscape-format
// cookie text file (cookies.txt), selected explicitly by the user.
type FileSource struct {
	Path string
}

// NewFileSource creates a source that reads the Netscape cookie file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Kind() Kind {
	return kindFile
}

func (s *FileSource) IsAvailable() bool {
	info, err := os.Stat(s.Path)
	return err == nil && !info.IsDir()
}

func (s *FileSource) FetchCookies(domains []string) ([]Cookie, error) {
	cookies, err := readNetscape(s.Path, domains)
	if err != nil {
		return nil, &FetchError{Kind: kindFile, Err: err}
	}
	return cookies, nil
}

var _ Source = (*FileSource)(nil)
