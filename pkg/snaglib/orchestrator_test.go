package snaglib

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
)

type stubCookies struct {
	headers map[string]string
	err     error
}

func (s *stubCookies) HeaderForURL(rawurl string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.headers[rawurl], nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/a.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "content of a")
	})
	mux.HandleFunc("/b.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "content of b")
	})
	mux.HandleFunc("/missing.txt", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunDownloadsAll(t *testing.T) {
	srv := newTestServer(t)
	fs := afero.NewMemMapFs()

	o := NewOrchestrator(srv.Client(), &OrchestratorOpts{Fs: fs})
	jobs, err := o.Run([]string{srv.URL + "/a.txt", srv.URL + "/b.txt"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	for i, want := range []string{"a.txt", "b.txt"} {
		job := jobs[i]
		if job.Status != StatusSucceeded {
			t.Errorf("job %d status = %v, want succeeded (err: %v)", i, job.Status, job.Err)
		}
		if job.Name != want {
			t.Errorf("job %d name = %q, want %q", i, job.Name, want)
		}
		data, rerr := afero.ReadFile(fs, want)
		if rerr != nil {
			t.Fatalf("output file %s missing: %v", want, rerr)
		}
		if len(data) == 0 || job.BytesWritten != int64(len(data)) {
			t.Errorf("job %d wrote %d bytes, file has %d", i, job.BytesWritten, len(data))
		}
	}
}

func TestRunPartialFailure(t *testing.T) {
	srv := newTestServer(t)
	fs := afero.NewMemMapFs()

	badURL := srv.URL + "/missing.txt"
	o := NewOrchestrator(srv.Client(), &OrchestratorOpts{Fs: fs})
	jobs, err := o.Run([]string{srv.URL + "/a.txt", badURL, srv.URL + "/b.txt"})
	if err == nil {
		t.Fatal("Run succeeded despite a 404 job")
	}
	if !strings.Contains(err.Error(), badURL) {
		t.Errorf("aggregate error %q does not name the failed url", err)
	}

	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Errorf("aggregate error does not unwrap to *StatusError: %v", err)
	} else if serr.Code != http.StatusNotFound {
		t.Errorf("StatusError.Code = %d, want 404", serr.Code)
	}

	// Sibling successes survive the failure.
	for _, name := range []string{"a.txt", "b.txt"} {
		if _, rerr := afero.ReadFile(fs, name); rerr != nil {
			t.Errorf("successful sibling %s not written: %v", name, rerr)
		}
	}
	if jobs[1].Status != StatusFailed || jobs[1].Err == nil {
		t.Errorf("failed job not marked failed: %+v", jobs[1])
	}
}

func TestRunNoJobs(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	_, err := o.Run(nil)
	if !errors.Is(err, ErrNoJobs) {
		t.Errorf("error = %v, want ErrNoJobs", err)
	}
}

func TestRunCookieResolutionAbortsEarly(t *testing.T) {
	srv := newTestServer(t)
	fs := afero.NewMemMapFs()

	o := NewOrchestrator(srv.Client(), &OrchestratorOpts{
		Fs:      fs,
		Cookies: &stubCookies{err: errors.New("cookie store locked")},
	})
	_, err := o.Run([]string{srv.URL + "/a.txt"})
	if err == nil {
		t.Fatal("Run succeeded despite a cookie resolution failure")
	}
	// Nothing may be downloaded when cookie resolution fails up front.
	if exists, _ := afero.Exists(fs, "a.txt"); exists {
		t.Error("a.txt was written despite the aborted run")
	}
}

func TestRunSendsHeaders(t *testing.T) {
	var mu sync.Mutex
	got := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got["Cookie"] = r.Header.Get("Cookie")
		got["User-Agent"] = r.Header.Get("User-Agent")
		mu.Unlock()
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	rawurl := srv.URL + "/file.txt"
	o := NewOrchestrator(srv.Client(), &OrchestratorOpts{
		Fs:        fs,
		UserAgent: "snag-test/1.0",
		Cookies:   &stubCookies{headers: map[string]string{rawurl: "sid=abc"}},
	})
	if _, err := o.Run([]string{rawurl}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got["Cookie"] != "sid=abc" {
		t.Errorf("Cookie header = %q, want %q", got["Cookie"], "sid=abc")
	}
	if got["User-Agent"] != "snag-test/1.0" {
		t.Errorf("User-Agent header = %q, want %q", got["User-Agent"], "snag-test/1.0")
	}
}

func TestRunContentDispositionNaming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="named.bin"`)
		fmt.Fprint(w, "data")
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	o := NewOrchestrator(srv.Client(), &OrchestratorOpts{Fs: fs})
	jobs, err := o.Run([]string{srv.URL + "/whatever.tmp"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if jobs[0].Name != "named.bin" {
		t.Errorf("job name = %q, want %q", jobs[0].Name, "named.bin")
	}
	if _, rerr := afero.ReadFile(fs, "named.bin"); rerr != nil {
		t.Errorf("named.bin not written: %v", rerr)
	}
}

func TestRunOverwritesExisting(t *testing.T) {
	srv := newTestServer(t)
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "a.txt", []byte("stale much longer content"), 0o644); err != nil {
		t.Fatal(err)
	}

	o := NewOrchestrator(srv.Client(), &OrchestratorOpts{Fs: fs})
	if _, err := o.Run([]string{srv.URL + "/a.txt"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	data, err := afero.ReadFile(fs, "a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content of a" {
		t.Errorf("file content = %q, want fresh download", data)
	}
}

func TestRunCallbacks(t *testing.T) {
	srv := newTestServer(t)
	fs := afero.NewMemMapFs()

	var spawned, completed int
	var progressed int64
	handlers := &Handlers{
		SpawnHandler: func(job *Job) {
			spawned++
			if job.Name == "" {
				t.Error("spawn fired before the name was resolved")
			}
		},
		ProgressHandler: func(job *Job, nwritten int) { progressed += int64(nwritten) },
		CompleteHandler: func(job *Job) { completed++ },
		ErrorHandler: func(job *Job, err error) {
			t.Errorf("unexpected error callback: %v", err)
		},
	}

	o := NewOrchestrator(srv.Client(), &OrchestratorOpts{Fs: fs, Handlers: handlers})
	jobs, err := o.Run([]string{srv.URL + "/a.txt"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if spawned != 1 || completed != 1 {
		t.Errorf("spawned=%d completed=%d, want 1 each", spawned, completed)
	}
	if progressed != jobs[0].BytesWritten {
		t.Errorf("progress callbacks reported %d bytes, job wrote %d", progressed, jobs[0].BytesWritten)
	}
}
