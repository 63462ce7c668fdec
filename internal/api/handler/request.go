package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/blaisecz/wellness-tracker/internal/logging"
	"github.com/blaisecz/wellness-tracker/pkg/problem"
	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 64 << 10

// decodeJSON reads exactly one JSON object into dst, rejecting unknown
// fields and values of the wrong type.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := sonic.ConfigStd.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

// parseIntParam parses an integer query parameter in [min, max]. A missing
// parameter yields defaultValue.
func parseIntParam(r *http.Request, name string, defaultValue, min, max int) (int, *problem.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < min || parsed > max {
		return 0, &problem.FieldError{
			Field:   name,
			Message: fmt.Sprintf("must be an integer between %d and %d", min, max),
		}
	}
	return parsed, nil
}

// internalError logs err against the request and writes a 500.
func internalError(w http.ResponseWriter, r *http.Request, detail string, err error) {
	logging.FromContext(r.Context()).Error(detail, "error", err)
	problem.InternalError(detail).Write(w)
}
