package snaglib

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/spf13/afero"
)

// Size unit constants for byte conversions.
const (
	B  int64 = 1
	KB       = 1024 * B
	MB       = 1024 * KB
)

const (
	DEF_CHUNK_SIZE = 32 * KB
	DEF_USER_AGENT = "Snag/1.0"
)

// task performs one job's fetch-and-write. Each task owns its job
// exclusively; it blocks only on its own network and disk I/O, never
// on a sibling.
type task struct {
	client    *http.Client
	fs        afero.Fs
	dir       string
	userAgent string
	handlers  *Handlers

	job *Job
	// cookieHeader is the pre-resolved Cookie header value for this
	// job's URL; empty means no cookies are sent.
	cookieHeader string
}

// run drives the job through Fetching -> Writing -> Succeeded|Failed.
// The returned error is also recorded on the job.
func (t *task) run() error {
	err := t.download()
	if err != nil {
		t.job.fail(err)
		t.handlers.error(t.job, err)
		return err
	}
	t.job.Status = StatusSucceeded
	t.handlers.complete(t.job)
	return nil
}

func (t *task) download() error {
	t.job.Status = StatusFetching

	req, err := http.NewRequest(http.MethodGet, t.job.URL, nil)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	var headers Headers
	headers.InitOrUpdate(USER_AGENT_KEY, t.userAgent)
	if t.cookieHeader != "" {
		headers.Update(COOKIE_KEY, t.cookieHeader)
	}
	headers.Set(req.Header)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	// Name from the final URL so redirects influence the fallback rules.
	name, err := ResolveFileName(resp.Request.URL, resp.Header.Get("Content-Disposition"))
	if err != nil {
		return err
	}
	t.job.Name = name
	t.job.TotalBytes = resp.ContentLength
	t.handlers.spawn(t.job)

	return t.write(resp.Body)
}

// write streams the response body to the target path, overwriting any
// existing file there. A mid-stream failure leaves a partial file; the
// engine makes no temp-file-then-rename guarantee.
func (t *task) write(body io.Reader) error {
	t.job.Status = StatusWriting

	dest := filepath.Join(t.dir, t.job.Name)
	f, err := t.fs.Create(dest)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dest, err)
	}
	defer f.Close()

	buf := make([]byte, DEF_CHUNK_SIZE)
	for {
		nr, rerr := body.Read(buf)
		if nr > 0 {
			nw, werr := f.Write(buf[:nr])
			t.job.BytesWritten += int64(nw)
			if werr != nil {
				return fmt.Errorf("writing %s: %w", dest, werr)
			}
			if nw < nr {
				return fmt.Errorf("writing %s: %w", dest, io.ErrShortWrite)
			}
			t.handlers.progress(t.job, nw)
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("reading response body: %w", rerr)
		}
	}
}
