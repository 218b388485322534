package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/auth"
	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/talents"
)

// AppError carries the HTTP status for a failed request.
type AppError struct {
	Status  int
	Message string
	Data    any
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func newAppError(status int, message string, cause error) *AppError {
	return &AppError{Status: status, Message: message, Cause: cause}
}

// classify maps domain errors to an AppError.
func classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var verr *talents.ValidationError
	switch {
	case errors.As(err, &verr):
		return &AppError{Status: fiber.StatusUnprocessableEntity, Message: "validation failed", Data: verr.Fields, Cause: err}
	case errors.Is(err, store.ErrNotFound):
		return newAppError(fiber.StatusNotFound, messageNotFound, err)
	case errors.Is(err, store.ErrDuplicateApplication):
		return newAppError(fiber.StatusConflict, "already applied to this job", err)
	case errors.Is(err, store.ErrDuplicateEmail):
		return newAppError(fiber.StatusConflict, store.ErrDuplicateEmail.Error(), err)
	case errors.Is(err, store.ErrInvalidTransition):
		return newAppError(fiber.StatusConflict, store.ErrInvalidTransition.Error(), err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return newAppError(fiber.StatusUnauthorized, "invalid email or password", err)
	case errors.Is(err, auth.ErrInvalidToken):
		return newAppError(fiber.StatusUnauthorized, messageUnauthorized, err)
	case errors.Is(err, store.ErrNotConfigured), errors.Is(err, ai.ErrDisabled):
		return newAppError(fiber.StatusServiceUnavailable, err.Error(), err)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return newAppError(fiberErr.Code, fiberErr.Message, err)
	}
	return newAppError(fiber.StatusInternalServerError, messageInternal, err)
}

// errorMiddleware renders handler errors and panics as envelopes. Server
// errors never leak their cause to the client.
func errorMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Path()))
				err = replyError(c, fiber.StatusInternalServerError, messageInternal, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		appErr := classify(err)
		if appErr.Status >= fiber.StatusInternalServerError && appErr.Status != fiber.StatusServiceUnavailable {
			logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			return replyError(c, fiber.StatusInternalServerError, messageInternal, nil)
		}
		logger.Debug("request rejected", zap.String("path", c.Path()), zap.Int("status", appErr.Status), zap.Error(err))
		return replyError(c, appErr.Status, appErr.Message, appErr.Data)
	}
}
