// package formatter renders translated MPD responses to various formats (MPD text, JSON, CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/mpdfmt/internal/shared"
	"github.com/desertthunder/mpdfmt/internal/translator"
	"github.com/fhs/gompd/v2/mpd"
)

// Format names an output format.
type Format string

const (
	FormatMPD      Format = "mpd"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatAttrs    Format = "attrs" // JSON array of client-side attribute maps
)

// Formats lists every supported [Format].
var Formats = []Format{FormatMPD, FormatJSON, FormatCSV, FormatMarkdown, FormatAttrs}

// ParseFormat validates a format name. "md" is accepted for Markdown.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatMPD, FormatJSON, FormatCSV, FormatMarkdown, FormatAttrs:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrInvalidFormat, name)
	}
}

// Extension returns the file extension used when writing f to disk.
func (f Format) Extension() string {
	switch f {
	case FormatJSON, FormatAttrs:
		return ".json"
	case FormatCSV:
		return ".csv"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// Export is a titled batch of responses, one per track.
type Export struct {
	Title     string             `json:"title"`
	Responses []translator.Pairs `json:"responses"`
}

var tagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)

// ExportToMPD writes responses as protocol lines. With terminate set, an "OK" line closes the output as MPD does.
func ExportToMPD(export *Export, terminate bool) []byte {
	var buf bytes.Buffer

	for _, response := range export.Responses {
		for _, pair := range response {
			buf.WriteString(pair.String())
			buf.WriteByte('\n')
		}
	}

	if terminate {
		buf.WriteString("OK\n")
	}

	return buf.Bytes()
}

// ExportToStyledMPD is [ExportToMPD] with tags highlighted for terminals. Responses are separated by blank lines.
func ExportToStyledMPD(export *Export) []byte {
	var buf bytes.Buffer

	for i, response := range export.Responses {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for _, pair := range response {
			buf.WriteString(fmt.Sprintf("%s: %s\n", tagStyle.Render(pair.Tag), pair.Value))
		}
	}

	return buf.Bytes()
}

// ExportToJSON converts an Export to JSON. Integer values stay JSON numbers.
func ExportToJSON(export *Export, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(export, "", "  ")
	} else {
		data, err = json.Marshal(export)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return data, nil
}

// ExportToAttrs converts each response to the [mpd.Attrs] map an MPD client builds from it.
func ExportToAttrs(export *Export, pretty bool) ([]byte, error) {
	attrs := make([]mpd.Attrs, len(export.Responses))
	for i, response := range export.Responses {
		attrs[i] = response.Attrs()
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(attrs, "", "  ")
	} else {
		data, err = json.Marshal(attrs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attrs: %w", err)
	}

	return data, nil
}

// ExportToCSV converts an Export to CSV format with columns: Index, Tag, Value
//
// Index is the 1-based position of the response within the export.
func ExportToCSV(export *Export) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Index", "Tag", "Value"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, response := range export.Responses {
		for _, pair := range response {
			record := []string{strconv.Itoa(i + 1), pair.Tag, pair.Value.String()}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts an Export to Markdown, one table per response.
func ExportToMarkdown(export *Export) []byte {
	var buf bytes.Buffer

	title := export.Title
	if title == "" {
		title = "MPD Responses"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Responses**: %d\n", len(export.Responses)))

	for i, response := range export.Responses {
		heading, _ := response.Lookup(translator.TagTitle)
		if heading.String() == "" {
			file, _ := response.Lookup(translator.TagFile)
			heading = file
		}

		buf.WriteString(fmt.Sprintf("\n## %d. %s\n\n", i+1, heading))
		buf.WriteString("| Tag | Value |\n")
		buf.WriteString("| --- | --- |\n")
		for _, pair := range response {
			buf.WriteString(fmt.Sprintf("| %s | %s |\n", pair.Tag, escapeCell(pair.Value.String())))
		}
	}

	return buf.Bytes()
}

// Render dispatches to the exporter for format.
//
// pretty indents JSON output and highlights MPD lines; it has no effect on CSV or Markdown.
func Render(export *Export, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatMPD:
		if pretty {
			return ExportToStyledMPD(export), nil
		}
		return ExportToMPD(export, true), nil
	case FormatJSON:
		data, err := ExportToJSON(export, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatAttrs:
		data, err := ExportToAttrs(export, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatCSV:
		return ExportToCSV(export)
	case FormatMarkdown:
		return ExportToMarkdown(export), nil
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidFormat, format)
	}
}

// WriteExport renders export in format and writes it to path.
//
// Defaults to {slug(title)}{ext} as the filename. Styling is never written to files.
func WriteExport(export *Export, format Format, path string) (string, error) {
	if path == "" {
		path = Slug(export.Title) + format.Extension()
	}

	data, err := Render(export, format, format == FormatJSON || format == FormatAttrs)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", format, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return path, nil
}

// Slug lowercases s and replaces runs of anything but letters and digits with "-".
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "export"
	}
	return slug
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
