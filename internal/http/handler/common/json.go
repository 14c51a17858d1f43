package common

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

const maxBodySize = 1 << 20

func WriteJSON(w http.ResponseWriter, r *http.Request, statusCode int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	if err := encoder.Encode(value); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(errors.WithStack(err)))
	}
}

// ReadJSON decodes the request body into value. A malformed body is
// reported as a 400 error.
func ReadJSON(w http.ResponseWriter, r *http.Request, value any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))

	if err := decoder.Decode(value); err != nil {
		return errors.WithStack(NewError(err.Error(), CodeValidation, "Invalid request body", http.StatusBadRequest))
	}

	return nil
}
