package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/texture-checker/internal/model"
	"github.com/ytget/texture-checker/internal/platform"
)

// Format is a report serialization format
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// File naming constants
const (
	ReportFilePrefix = "texture-report-"
	ReportTimeLayout = "20060102-150405"
	ExtensionJSON    = ".json"
	ExtensionYAML    = ".yaml"
	ExtensionYAMLAlt = ".yml"
	JSONIndent       = "  "
	YAMLIndent       = 2
)

// ParseFormat converts a user supplied name into a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", name)
	}
}

// FormatFromPath picks the format from the file extension, JSON by default
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtensionYAML, ExtensionYAMLAlt:
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Extension returns the file extension for the format
func (f Format) Extension() string {
	if f == FormatYAML {
		return ExtensionYAML
	}
	return ExtensionJSON
}

// DefaultFileName suggests a file name for report in the given format
func DefaultFileName(report *model.Report, format Format) string {
	return ReportFilePrefix + report.CreatedAt.Format(ReportTimeLayout) + format.Extension()
}

// Service handles report export operations
type Service struct{}

// NewService creates a new export service
func NewService() *Service {
	return &Service{}
}

// Encode writes report to w in the given format
func (s *Service) Encode(w io.Writer, report *model.Report, format Format) error {
	if report == nil {
		return fmt.Errorf("report is nil")
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", JSONIndent)
		enc.SetEscapeHTML(false)
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(YAMLIndent)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// Export writes report to path, choosing the format from its extension.
// A directory path receives a file with the default name. Returns the written path.
func (s *Service) Export(report *model.Report, path string) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report is nil")
	}

	if platform.IsDirectory(path) {
		path = filepath.Join(path, DefaultFileName(report, FormatJSON))
	}
	format := FormatFromPath(path)

	var buf bytes.Buffer
	if err := s.Encode(&buf, report, format); err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), platform.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	log.Printf("Exported report %s to %s (%s)", report.ID, path, format)
	return path, nil
}
