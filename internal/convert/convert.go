// Package convert recovers plain text from CV documents. It is the boundary
// between binary file formats and the extraction engine: everything
// downstream operates on the single line-ordered string produced here.
package convert

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// FromFile converts a PDF or Word document into line-ordered plain text.
// For PDFs, positioned fragments are regrouped into lines per page; for
// Word documents, text runs are recovered from the document markup, one
// line per paragraph. Returns *UnsupportedFormatError,
// *NoExtractableTextError, or *ConversionError on failure.
func FromFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return fromPDF(path)
	case ".docx", ".doc":
		return fromWord(path)
	default:
		ext := filepath.Ext(path)
		if ext == "" {
			ext = "(no extension)"
		}
		return "", &UnsupportedFormatError{Format: ext}
	}
}

// fromPDF extracts the text layer page by page, regrouping positioned
// fragments into reading-order lines. Pages without any text items are
// skipped with a warning; they are usually scanned images.
func fromPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ConversionError{Message: fmt.Sprintf("opening PDF %s", path), Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		items := make([]TextItem, 0, len(content.Text))
		for _, t := range content.Text {
			items = append(items, TextItem{Text: t.S, X: t.X, Y: t.Y})
		}

		lines := GroupLines(items)
		if len(lines) == 0 {
			log.Printf("Warning: page %d of %s has no text items (possible image-based page)", pageNum, path)
			continue
		}

		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", &NoExtractableTextError{Path: path}
	}
	return text, nil
}

// fromWord extracts the text of a .docx document. Legacy .doc files are
// attempted with the same reader; genuinely old binary files fail with a
// ConversionError.
func fromWord(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ConversionError{Message: fmt.Sprintf("opening Word document %s", path), Cause: err}
	}
	defer func() { _ = doc.Close() }()

	// GetContent returns the WordprocessingML body, not plain text.
	text, err := wordTextFromXML(doc.Editable().GetContent())
	if err != nil {
		return "", &ConversionError{Message: fmt.Sprintf("reading Word document %s", path), Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &NoExtractableTextError{Path: path}
	}
	return text, nil
}

// wordTextFromXML flattens WordprocessingML into plain text. Text lives in
// w:t runs; each w:p paragraph ends a line, and w:br, w:cr, and w:tab carry
// the breaks within one.
func wordTextFromXML(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var sb strings.Builder
	inRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRun = true
			case "br", "cr":
				sb.WriteString("\n")
			case "tab":
				sb.WriteString("\t")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
