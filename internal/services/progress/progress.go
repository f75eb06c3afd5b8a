// Package progress reports advancement over the collected file list.
package progress

import (
	"io"

	"github.com/pterm/pterm"
)

// Reporter tracks progress over a known number of steps.
type Reporter interface {
	Start(total int) error
	Advance(label string)
	Stop() error
}

const defaultTitle = "Processing"

// BarReporter renders a pterm progress bar.
type BarReporter struct {
	writer io.Writer
	title  string
	bar    *pterm.ProgressbarPrinter
}

// NewBarReporter returns a Reporter drawing to writer.
func NewBarReporter(writer io.Writer, title string) *BarReporter {
	if title == "" {
		title = defaultTitle
	}
	return &BarReporter{writer: writer, title: title}
}

// Start draws an empty bar sized for total steps.
func (reporter *BarReporter) Start(total int) error {
	if total <= 0 {
		return nil
	}
	bar, startError := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(reporter.title).
		WithWriter(reporter.writer).
		WithShowElapsedTime(true).
		Start()
	if startError != nil {
		return startError
	}
	reporter.bar = bar
	return nil
}

// Advance moves the bar one step and shows label as the current item.
func (reporter *BarReporter) Advance(label string) {
	if reporter.bar == nil {
		return
	}
	if label != "" {
		reporter.bar.UpdateTitle(reporter.title + ": " + label)
	}
	reporter.bar.Increment()
}

// Stop finishes the bar.
func (reporter *BarReporter) Stop() error {
	if reporter.bar == nil {
		return nil
	}
	_, stopError := reporter.bar.Stop()
	reporter.bar = nil
	return stopError
}

// Discard is a Reporter that draws nothing.
type Discard struct{}

// Start does nothing.
func (Discard) Start(int) error { return nil }

// Advance does nothing.
func (Discard) Advance(string) {}

// Stop does nothing.
func (Discard) Stop() error { return nil }

var (
	_ Reporter = (*BarReporter)(nil)
	_ Reporter = Discard{}
)
