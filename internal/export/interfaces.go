package export

import (
	"io"

	"github.com/ytget/texture-checker/internal/model"
)

// Exporter defines the interface for the report export service.
type Exporter interface {
	Encode(w io.Writer, report *model.Report, format Format) error
	Export(report *model.Report, path string) (string, error)
}
