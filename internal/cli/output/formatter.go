package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Format represents the output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format. YAML is the default.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &YAMLFormatter{}
	}
}

// Detect picks YAML for terminals and JSON for everything else, so piped
// output stays machine-readable.
func Detect(w io.Writer) Format {
	f, ok := w.(*os.File)
	if !ok {
		return FormatJSON
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return FormatYAML
	}
	return FormatJSON
}
