package snaglib

// Status is the lifecycle state of one download job.
// Terminal states (Succeeded, Failed) are final; a job never retries.
type Status int

const (
	// StatusPending means the job has been created but not started.
	StatusPending Status = iota
	// StatusFetching means the HTTP request is in flight.
	StatusFetching
	// StatusWriting means the response body is streaming to disk.
	StatusWriting
	// StatusSucceeded means the file was fully written.
	StatusSucceeded
	// StatusFailed means the job hit a terminal error; Err holds the cause.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFetching:
		return "fetching"
	case StatusWriting:
		return "writing"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Job tracks one URL's download. It is created by the orchestrator and
// mutated only by its owning task; handler callbacks observe it
// synchronously from that task's goroutine.
type Job struct {
	// URL is the source URL as given.
	URL string
	// Name is the resolved output file name; empty until naming resolves.
	Name string
	// Status is the current lifecycle state.
	Status Status
	// BytesWritten is the number of body bytes written to disk so far.
	BytesWritten int64
	// TotalBytes is the declared content length, or -1 when the server
	// did not declare one (indeterminate progress).
	TotalBytes int64
	// Err is the terminal failure cause when Status is StatusFailed.
	Err error
}

// fail marks the job failed with the given cause.
func (j *Job) fail(err error) {
	j.Status = StatusFailed
	j.Err = err
}
