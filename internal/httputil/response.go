package httputil

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/xautrade/meeting-server-go/internal/errors"
)

// Envelope is the uniform response shape returned by every endpoint,
// on success and on expected failure alike.
type Envelope struct {
	Success    bool           `json:"success"`
	StatusCode int            `json:"status_code"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data"`
}

func OK(message string, data map[string]any) Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return Envelope{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	}
}

func Fail(status int, message string) Envelope {
	return Envelope{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Data:       map[string]any{},
	}
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteEnvelope writes the envelope with an HTTP status mirroring its status_code.
func WriteEnvelope(w http.ResponseWriter, env Envelope) {
	WriteJSON(w, env.StatusCode, env)
}

// WriteError converts an error into a failure envelope. Unknown errors are
// masked as a generic internal failure so transport-level detail never
// reaches the boundary.
func WriteError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal("An unexpected error occurred")
	}
	WriteEnvelope(w, Fail(StatusFromCode(appErr.Code), appErr.Message))
}

// StatusFromCode maps ErrorCode to the envelope status_code. Duplicate
// registrations, bad credentials and upstream failures all surface as 400,
// matching the external contract.
func StatusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeConflict,
		apperrors.ErrCodeBadCredentials,
		apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeMissingRequired,
		apperrors.ErrCodeUpstreamAuth,
		apperrors.ErrCodeUpstreamRequest:
		return http.StatusBadRequest

	case apperrors.ErrCodeUnauthenticated:
		return http.StatusUnauthorized

	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound

	case apperrors.ErrCodeInternal,
		apperrors.ErrCodeDatabase:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
