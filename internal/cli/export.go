package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/deckshow/internal/format"
	"github.com/agbru/deckshow/internal/ui"
	"github.com/agbru/deckshow/internal/widgets"
)

// ExportProgress reports a deck export on a line oriented writer. Update
// matches printing.Progress and may be called from any goroutine.
type ExportProgress struct {
	out     io.Writer
	quiet   bool
	spinner Spinner
	start   time.Time

	mu   sync.Mutex
	done int
}

// NewExportProgress returns a reporter writing to out. A quiet reporter
// prints nothing but errors.
func NewExportProgress(out io.Writer, quiet bool) *ExportProgress {
	p := &ExportProgress{out: out, quiet: quiet}
	if !quiet {
		p.spinner = newSpinner(spinner.WithWriter(out))
	}
	return p
}

// Start begins the progress display.
func (p *ExportProgress) Start() {
	p.start = time.Now()
	if p.spinner == nil {
		return
	}
	p.spinner.UpdateSuffix(" Laying out slides...")
	p.spinner.Start()
}

// Update records done of total pages rendered.
func (p *ExportProgress) Update(done, total int) {
	p.mu.Lock()
	p.done = done
	p.mu.Unlock()
	if p.spinner == nil || total <= 0 {
		return
	}
	p.spinner.UpdateSuffix(progressLine(done, total))
}

func progressLine(done, total int) string {
	fraction := float64(done) / float64(total)
	return fmt.Sprintf(" Rendering pages %s %d/%d", widgets.Bar(fraction, ProgressBarWidth), done, total)
}

// Finish stops the display and prints the outcome of the export.
func (p *ExportProgress) Finish(dest string, err error) {
	if p.spinner != nil {
		p.spinner.Stop()
	}
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	t := ui.GetCurrentTheme()
	elapsed := format.FormatExecutionDuration(time.Since(p.start))
	if err != nil {
		fmt.Fprintf(p.out, "%s after %d page(s), %s: %v\n", t.Paint(t.Error, "Export failed"), done, elapsed, err)
		return
	}
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s pages to %s in %s\n",
		t.Paint(t.Success, "Exported"),
		t.Paint(t.Primary, fmt.Sprint(done)),
		t.Paint(t.Bold, dest),
		elapsed,
	)
}
