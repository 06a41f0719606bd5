package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Reporter shows one step of the pipeline at a time. On a TTY it runs
// an animated spinner; otherwise it prints one line per step.
type Reporter struct {
	out     io.Writer
	caps    TerminalCapabilities
	symbols Symbols
	spin    *spinner.Spinner
}

// NewReporter builds a reporter for out using the detected terminal
// capabilities.
func NewReporter(out io.Writer, caps TerminalCapabilities) *Reporter {
	return &Reporter{
		out:     out,
		caps:    caps,
		symbols: SelectSymbols(caps),
	}
}

// Start begins a step. Any running spinner is finished first.
func (r *Reporter) Start(message string) {
	r.stopSpinner()

	if !r.caps.IsTTY {
		fmt.Fprintf(r.out, "%s...\n", message)
		return
	}

	r.spin = spinner.New(spinner.CharSets[r.symbols.SpinnerSet], 100*time.Millisecond,
		spinner.WithWriter(r.out))
	r.spin.Suffix = " " + message
	if r.caps.SupportsColor {
		r.spin.Color("cyan")
	}
	r.spin.Start()
}

// Done finishes the current step with a success mark.
func (r *Reporter) Done(message string) {
	r.stopSpinner()
	fmt.Fprintf(r.out, "%s %s\n", r.symbols.Checkmark, message)
}

// Fail finishes the current step with a failure mark.
func (r *Reporter) Fail(message string) {
	r.stopSpinner()
	fmt.Fprintf(r.out, "%s %s\n", r.symbols.Failure, message)
}

// Stop clears any running spinner without printing a result line.
func (r *Reporter) Stop() {
	r.stopSpinner()
}

func (r *Reporter) stopSpinner() {
	if r.spin != nil {
		r.spin.Stop()
		r.spin = nil
	}
}
