package cmd

import (
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/snagdl/snag/pkg/snaglib"
)

// barSet maps jobs to their progress bars. Spawn callbacks arrive from
// each task's own goroutine, so the map is mutex guarded.
type barSet struct {
	p    *mpb.Progress
	mu   sync.Mutex
	bars map[*snaglib.Job]*mpb.Bar
}

func newBarSet(p *mpb.Progress) *barSet {
	return &barSet{p: p, bars: make(map[*snaglib.Job]*mpb.Bar)}
}

func (b *barSet) handlers() *snaglib.Handlers {
	return &snaglib.Handlers{
		SpawnHandler:    b.spawn,
		ProgressHandler: b.progress,
		CompleteHandler: b.complete,
		ErrorHandler:    b.fail,
	}
}

// spawn creates the bar once the job's name and size are known. Jobs
// without a declared content length get a spinner instead of a bar.
func (b *barSet) spawn(job *snaglib.Job) {
	name := job.Name
	var bar *mpb.Bar
	if job.TotalBytes > 0 {
		barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")
		bar = b.p.New(job.TotalBytes,
			barStyle,
			mpb.PrependDecorators(
				decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
				decor.OnComplete(
					decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 4}), "Complete",
				),
			),
			mpb.AppendDecorators(
				decor.AverageSpeed(decor.SizeB1024(0), "% .2f"),
			),
		)
	} else {
		bar = b.p.New(0,
			mpb.SpinnerStyle(),
			mpb.PrependDecorators(
				decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			),
			mpb.AppendDecorators(
				decor.CurrentKibiByte("% .2f"),
			),
		)
	}
	b.mu.Lock()
	b.bars[job] = bar
	b.mu.Unlock()
}

func (b *barSet) bar(job *snaglib.Job) *mpb.Bar {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bars[job]
}

func (b *barSet) progress(job *snaglib.Job, nwritten int) {
	if bar := b.bar(job); bar != nil {
		bar.IncrBy(nwritten)
	}
}

// complete finalizes spinner bars whose total was unknown until EOF.
func (b *barSet) complete(job *snaglib.Job) {
	if bar := b.bar(job); bar != nil && job.TotalBytes <= 0 {
		bar.SetTotal(job.BytesWritten, true)
	}
}

func (b *barSet) fail(job *snaglib.Job, err error) {
	if bar := b.bar(job); bar != nil {
		bar.Abort(false)
	}
}
