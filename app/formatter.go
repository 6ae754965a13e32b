package app

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/noodlebox/worldclock/dispatch"
	"github.com/noodlebox/worldclock/region"
	"github.com/noodlebox/worldclock/source"
	"github.com/noodlebox/worldclock/visibility"
)

// cellWriter is the UI operation a formatter's tasks perform.
type cellWriter interface {
	SetCellText(i int, s string)
}

// formatter renders the latest instant for one region after every
// publication and posts the text to that region's cell.
type formatter struct {
	index  int
	entry  region.Entry
	source *source.Source
	wake   <-chan struct{}
	flag   *visibility.Flag
	post   func(dispatch.Task)
	cells  cellWriter
	logger *log.Logger
}

func (f *formatter) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-f.wake:
			f.render()
		}
	}
}

// render skips the cycle before the first instant and while clocks are
// hidden; hidden rows are neither produced nor posted.
func (f *formatter) render() {
	if !f.flag.Visible() {
		return
	}
	text, ok := f.text()
	if !ok {
		return
	}
	i, cells := f.index, f.cells
	f.post(func() { cells.SetCellText(i, text) })
	f.logger.Debug("rendered", "region", f.entry.Label, "text", text)
}

// refresh writes the latest instant straight into the cell. Only the UI
// goroutine may call it.
func (f *formatter) refresh() {
	if text, ok := f.text(); ok {
		f.cells.SetCellText(f.index, text)
	}
}

func (f *formatter) text() (string, bool) {
	now, ok := f.source.Latest()
	if !ok {
		return "", false
	}
	return f.entry.Format(now), true
}
