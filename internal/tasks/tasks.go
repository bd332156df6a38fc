package tasks

import (
	"github.com/desertthunder/mpdfmt/internal/formatter"
	"github.com/desertthunder/mpdfmt/internal/translator"
)

// WriteFunc persists one export and returns the path it was written to.
//
// [formatter.WriteExport] is the default.
type WriteFunc func(export *formatter.Export, format formatter.Format, path string) (string, error)

// ExportEngine runs bulk exports.
type ExportEngine struct {
	write WriteFunc
	clock translator.Clock
}

// NewExportEngine creates an engine writing with write, stamping manifests with clock.
// Nil arguments select [formatter.WriteExport] and [translator.SystemClock].
func NewExportEngine(write WriteFunc, clock translator.Clock) *ExportEngine {
	if write == nil {
		write = formatter.WriteExport
	}
	if clock == nil {
		clock = translator.SystemClock
	}
	return &ExportEngine{write: write, clock: clock}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *ExportEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
		// Channel full, skip this update
	}
}
