package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/taskmanager/internal/server/auth"
	"github.com/iudanet/taskmanager/internal/server/tasks"
	"github.com/iudanet/taskmanager/internal/validation"
	"github.com/iudanet/taskmanager/pkg/api"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// responder содержит общие методы записи ответов
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}

// writeError переводит ошибку сервисного слоя в HTTP ответ.
// Причина внутренних ошибок только логируется.
func (h responder) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fields validation.Errors
	var maxBytes *http.MaxBytesError

	switch {
	case errors.As(err, &fields):
		resp := api.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "validation failed",
			Fields:  make([]api.FieldError, 0, len(fields)),
		}
		for _, f := range fields {
			resp.Fields = append(resp.Fields, api.FieldError{Field: f.Field, Message: f.Message})
		}
		h.sendJSON(w, resp, http.StatusBadRequest)
	case errors.As(err, &maxBytes):
		h.sendError(w, "request body too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, errInvalidBody):
		h.sendError(w, errInvalidBody.Error(), http.StatusBadRequest)
	case errors.Is(err, auth.ErrEmailTaken):
		h.sendError(w, "email already registered", http.StatusConflict)
	case errors.Is(err, auth.ErrInvalidCredentials):
		h.sendError(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, tasks.ErrNoIdentity):
		h.sendError(w, "not authenticated", http.StatusUnauthorized)
	case errors.Is(err, tasks.ErrNotFound):
		h.sendError(w, "Task not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON читает тело запроса в dst.
// Неверный тип поля превращается в ошибку валидации этого поля.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var maxBytes *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytes):
		return err
	case errors.As(err, &typeErr) && typeErr.Field != "":
		var errs validation.Errors
		errs.Add(typeErr.Field, fmt.Sprintf("%s must be a %s", typeErr.Field, jsonKind(typeErr.Type.Kind().String())))
		return errs
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: empty body", errInvalidBody)
	default:
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
}

func jsonKind(goKind string) string {
	switch goKind {
	case "bool":
		return "boolean"
	case "ptr":
		return "value"
	default:
		return goKind
	}
}
