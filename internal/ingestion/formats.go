package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format is a supported resume document format
type Format string

// Supported formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

var extensionFormats = map[string]Format{
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatMarkdown,
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
}

// UnsupportedFormatError is returned for files whose extension has no extractor
type UnsupportedFormatError struct {
	Name      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("unsupported resume format for %s: missing file extension", e.Name)
	}
	return fmt.Sprintf("unsupported resume format for %s: %s", e.Name, e.Extension)
}

// DetectFormat maps a file name to its Format by extension
func DetectFormat(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	format, ok := extensionFormats[ext]
	if !ok {
		return "", &UnsupportedFormatError{Name: name, Extension: ext}
	}
	return format, nil
}

// ExtractText returns the cleaned plain text of a document
func ExtractText(name string, data []byte) (string, Format, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return "", "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDOCX:
		text, err = extractDOCXText(data)
	default:
		text = string(data)
	}
	if err != nil {
		return "", format, fmt.Errorf("failed to extract text from %s: %w", name, err)
	}

	return CleanText(text), format, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxBreakRe = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTagRe    = regexp.MustCompile(`<[^>]+>`)
)

func extractDOCXText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxPlainText(doc.Editable().GetContent()), nil
}

// docxPlainText reduces document.xml to text, one paragraph per line
func docxPlainText(xml string) string {
	text := docxBreakRe.ReplaceAllStringFunc(xml, func(tag string) string {
		if tag == "<w:tab/>" {
			return " "
		}
		return "\n"
	})
	text = xmlTagRe.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}
