package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/cv-parser/internal/convert"
)

// HTTPStatus maps a conversion error to the appropriate HTTP status code.
// Anything unrecognized is treated as a server-side failure.
func HTTPStatus(err error) int {
	var unsupported *convert.UnsupportedFormatError
	var noText *convert.NoExtractableTextError
	var conversion *convert.ConversionError

	switch {
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &noText):
		return http.StatusUnprocessableEntity
	case errors.As(err, &conversion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
