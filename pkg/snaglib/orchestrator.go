package snaglib

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/snagdl/snag/pkg/logger"
)

// CookieProvider supplies the Cookie request-header value for a URL.
// An empty value with a nil error means "no cookies apply", which is
// not a failure.
type CookieProvider interface {
	HeaderForURL(rawurl string) (string, error)
}

// OrchestratorOpts configures an Orchestrator. Zero values get
// engine defaults.
type OrchestratorOpts struct {
	// Cookies supplies per-URL cookie headers; nil disables cookie
	// integration entirely.
	Cookies CookieProvider
	// DownloadDirectory is where output files land. Defaults to the
	// current working directory.
	DownloadDirectory string
	// UserAgent overrides the engine default User-Agent.
	UserAgent string
	// Handlers carries progress callbacks.
	Handlers *Handlers
	// Fs is the target filesystem. Defaults to the OS filesystem;
	// tests inject an in-memory one.
	Fs afero.Fs
	// Logger receives run-level log messages.
	Logger logger.Logger
}

// Orchestrator runs one download task per URL, all concurrently with
// no throttling: one goroutine per URL, unbounded. Sibling tasks fail
// independently; a failed URL never aborts the others, and successful
// outputs are never rolled back.
type Orchestrator struct {
	client    *http.Client
	cookies   CookieProvider
	dir       string
	userAgent string
	handlers  *Handlers
	fs        afero.Fs
	log       logger.Logger
}

// NewOrchestrator creates an orchestrator using the given HTTP client.
// Transport-level timeouts are the client's concern; the engine imposes
// none of its own.
func NewOrchestrator(client *http.Client, opts *OrchestratorOpts) *Orchestrator {
	if client == nil {
		client = &http.Client{}
	}
	if opts == nil {
		opts = &OrchestratorOpts{}
	}
	o := &Orchestrator{
		client:    client,
		cookies:   opts.Cookies,
		dir:       opts.DownloadDirectory,
		userAgent: opts.UserAgent,
		handlers:  opts.Handlers,
		fs:        opts.Fs,
		log:       opts.Logger,
	}
	if o.userAgent == "" {
		o.userAgent = DEF_USER_AGENT
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.log == nil {
		o.log = logger.NewNopLogger()
	}
	return o
}

// Run downloads every URL concurrently and waits for all tasks to
// reach a terminal state. It returns the jobs (one per URL, in input
// order) plus an aggregate error that enumerates each failed URL and
// its cause, or nil when every task succeeded.
//
// Cookie headers are resolved for all URLs up front; a cookie store
// failure aborts the run before any download begins.
func (o *Orchestrator) Run(urls []string) ([]*Job, error) {
	if len(urls) == 0 {
		return nil, ErrNoJobs
	}

	cookieHeaders := make([]string, len(urls))
	if o.cookies != nil {
		for i, u := range urls {
			header, err := o.cookies.HeaderForURL(u)
			if err != nil {
				return nil, fmt.Errorf("resolving cookies for %s: %w", u, err)
			}
			cookieHeaders[i] = header
		}
	}

	jobs := make([]*Job, len(urls))
	wg := &sync.WaitGroup{}
	for i, u := range urls {
		job := &Job{URL: u, Status: StatusPending, TotalBytes: -1}
		jobs[i] = job

		t := &task{
			client:       o.client,
			fs:           o.fs,
			dir:          o.dir,
			userAgent:    o.userAgent,
			handlers:     o.handlers,
			job:          job,
			cookieHeader: cookieHeaders[i],
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := t.run(); err != nil {
				o.log.Error("download of %s failed: %v", t.job.URL, err)
			}
		}()
	}
	wg.Wait()

	var result *multierror.Error
	for _, job := range jobs {
		if job.Status == StatusFailed {
			result = multierror.Append(result, fmt.Errorf("%s: %w", job.URL, job.Err))
		}
	}
	return jobs, result.ErrorOrNil()
}
