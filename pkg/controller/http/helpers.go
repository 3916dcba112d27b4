package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(context.Background()).Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error, status int) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// statusFromError maps domain sentinel errors to HTTP status codes. Unknown
// errors are treated as internal.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrUnsupportedFileType),
		errors.Is(err, model.ErrEmptyFile),
		errors.Is(err, model.ErrInvalidEncoding),
		errors.Is(err, model.ErrTooManyFiles):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, model.ErrReviewNotFound),
		errors.Is(err, model.ErrReportNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
