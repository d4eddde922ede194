package snaglib

import (
	"errors"
	"fmt"
)

var (
	// ErrNoJobs is returned when the orchestrator is started with an
	// empty URL list.
	ErrNoJobs = errors.New("no urls to download")

	// ErrNoFilename is returned when neither the Content-Disposition
	// header, the URL path, nor the URL host yield a usable file name.
	// The engine refuses to guess.
	ErrNoFilename = errors.New("unable to determine a file name")
)

// StatusError is a non-2xx HTTP response, recorded per task.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("server returned %s", e.Status)
	}
	return fmt.Sprintf("server returned status %d", e.Code)
}
