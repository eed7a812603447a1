package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/circos/pkg/errors"
	"github.com/matzehuels/circos/pkg/observability"
)

// errorBody is the JSON error response.
type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps an error code to an HTTP status. Geometry errors in an
// otherwise well-formed figure are 422; malformed input is 400.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeDuplicateID, errors.ErrCodeLayoutOverflow, errors.ErrCodeDegenerateSector,
		errors.ErrCodeUnknownSector, errors.ErrCodeInvalidRange, errors.ErrCodeLayoutNotSolved:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidFigure, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func errNotFound(format string, args ...any) error {
	return errors.New(errors.ErrCodeNotFound, format, args...)
}

// writeError writes err as a JSON error with its mapped status. Internal
// errors are logged and their details withheld.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		s.writeStatus(w, r, http.StatusRequestEntityTooLarge, string(errors.ErrCodeInvalidInput), "request body too large")
		return
	}

	code := errors.GetCode(err)
	status := statusFor(code)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "error", err)
		code, msg = errors.ErrCodeInternal, "internal error"
	}
	s.writeStatus(w, r, status, string(code), msg)
}

func (s *Server) writeStatus(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, status, errorBody{Code: code, Message: msg, RequestID: RequestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
