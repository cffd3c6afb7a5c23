// Package export renders finished characters as downloadable documents
package export

import (
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Format selects the document type
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// defaultBaseName is used when the character has no name
const defaultBaseName = "character"

// ParseFormat reads a format name. An empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", errors.InvalidArgumentf("unsupported export format %q", s).
			WithMeta("format", s)
	}
}

// Document is a rendered export
type Document struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Options tunes rendering
type Options struct {
	// FontPath points at a TrueType font with CJK coverage for PDF output.
	// Without it the PDF uses English labels and a core font.
	FontPath string
}

// Render produces the document for sheet in the requested format
func Render(sheet chargen.Sheet, format Format, opts Options) (*Document, error) {
	switch format {
	case FormatJSON, "":
		data, err := JSON(sheet)
		if err != nil {
			return nil, err
		}
		return &Document{
			FileName:    FileName(sheet.Name, FormatJSON),
			ContentType: "application/json",
			Data:        data,
		}, nil
	case FormatPDF:
		data, err := PDF(sheet, opts)
		if err != nil {
			return nil, err
		}
		return &Document{
			FileName:    FileName(sheet.Name, FormatPDF),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, errors.InvalidArgumentf("unsupported export format %q", format)
	}
}

// FileName suggests "<name>.<ext>", falling back to "character.<ext>" when
// the name is blank. Path separators are replaced.
func FileName(name string, format Format) string {
	base := strings.TrimSpace(name)
	base = strings.NewReplacer("/", "_", `\`, "_").Replace(base)
	if base == "" || base == "." || base == ".." {
		base = defaultBaseName
	}
	return base + "." + string(format)
}
