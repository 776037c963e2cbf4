package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides feedback while a generation request is in flight. A
// single request can take tens of seconds, so silence reads as a hang.
type Reporter interface {
	Start(message string)
	Finish(message string)
}

// NewReporter returns a TerminalReporter if running in an interactive
// terminal, or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays an indeterminate spinner in the terminal.
type TerminalReporter struct {
	bar  *progressbar.ProgressBar
	quit chan struct{}
}

func (r *TerminalReporter) Start(message string) {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	r.quit = make(chan struct{})
	go func(bar *progressbar.ProgressBar, quit chan struct{}) {
		for {
			select {
			case <-quit:
				return
			case <-time.After(100 * time.Millisecond):
				_ = bar.Add(1)
			}
		}
	}(r.bar, r.quit)
}

func (r *TerminalReporter) Finish(message string) {
	if r.bar != nil {
		close(r.quit)
		_ = r.bar.Finish()
		r.bar = nil
	}
	fmt.Fprintln(os.Stderr, message)
}

// CIReporter prints plain lines suitable for CI logs.
type CIReporter struct{}

func (r *CIReporter) Start(message string) {
	fmt.Fprintln(os.Stderr, message)
}

func (r *CIReporter) Finish(message string) {
	fmt.Fprintln(os.Stderr, message)
}
