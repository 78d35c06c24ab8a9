// Package respond writes JSON responses and maps domain errors to HTTP status codes.
// Store errors are never echoed to clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/observability/logging"
	artUC "magazine-press/internal/usecase/article"
	authorUC "magazine-press/internal/usecase/author"
	magUC "magazine-press/internal/usecase/magazine"
)

// ErrInvalidJSON is returned by DecodeJSON when the body is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid JSON body")

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes err with the given status code as-is. Use only for messages
// safe to show to clients.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorBody{Error: err.Error()})
}

// StatusFor maps an error returned by the use cases to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest
	case errors.Is(err, authorUC.ErrAuthorNotFound),
		errors.Is(err, magUC.ErrMagazineNotFound),
		errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DomainError writes the response for an error returned by a use case.
// Validation failures carry their field; internal errors are logged with the
// request's logger and answered with a generic message.
func DomainError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	code := StatusFor(err)
	if code >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("internal server error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		JSON(w, code, ErrorBody{Error: "internal server error"})
		return
	}

	body := ErrorBody{Error: err.Error()}
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		body.Field = verr.Field
	}
	JSON(w, code, body)
}

// DecodeJSON decodes the request body into v. A value of the wrong JSON type
// becomes a ValidationError naming the offending field; any other decode
// failure is ErrInvalidJSON.
func DecodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &entity.ValidationError{Field: typeErr.Field, Message: typeMessage(typeErr.Type)}
	}
	return ErrInvalidJSON
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.String:
		return "must be a string"
	default:
		return "must be of type " + t.String()
	}
}
