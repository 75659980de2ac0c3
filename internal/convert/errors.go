package convert

import "fmt"

// UnsupportedFormatError is returned when the input file is neither a PDF
// nor a Word document. It is fatal; no extraction is attempted.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (only PDF and Word documents are supported)", e.Format)
}

// NoExtractableTextError is returned when conversion succeeds but yields no
// text at all, typically for scanned, image-based, or protected documents.
type NoExtractableTextError struct {
	Path string
}

func (e *NoExtractableTextError) Error() string {
	return fmt.Sprintf("no extractable text in %s: the document appears to be scanned, image-based, or protected; try a text-based PDF or a .docx file", e.Path)
}

// ConversionError wraps a failure from the underlying document reader.
type ConversionError struct {
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conversion failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("conversion failed: %s", e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
