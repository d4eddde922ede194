package snaglib

// Handlers carries the progress callbacks for a run. Each callback is
// invoked from the goroutine of the task that owns the job, never
// concurrently for the same job. Any handler may be nil.
type Handlers struct {
	// SpawnHandler fires once per job after its name and total size
	// are known, before the body starts streaming.
	SpawnHandler func(job *Job)
	// ProgressHandler fires after each chunk is written to disk.
	ProgressHandler func(job *Job, nwritten int)
	// CompleteHandler fires when a job reaches StatusSucceeded.
	CompleteHandler func(job *Job)
	// ErrorHandler fires when a job reaches StatusFailed.
	ErrorHandler func(job *Job, err error)
}

func (h *Handlers) spawn(job *Job) {
	if h != nil && h.SpawnHandler != nil {
		h.SpawnHandler(job)
	}
}

func (h *Handlers) progress(job *Job, nwritten int) {
	if h != nil && h.ProgressHandler != nil {
		h.ProgressHandler(job, nwritten)
	}
}

func (h *Handlers) complete(job *Job) {
	if h != nil && h.CompleteHandler != nil {
		h.CompleteHandler(job)
	}
}

func (h *Handlers) error(job *Job, err error) {
	if h != nil && h.ErrorHandler != nil {
		h.ErrorHandler(job, err)
	}
}
