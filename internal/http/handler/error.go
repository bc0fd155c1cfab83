package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"moneyapi/internal/http/middleware"
	"moneyapi/internal/repository"
	"moneyapi/internal/service"
	"moneyapi/internal/validation"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "VALIDATION_FAILED")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

func writeValidationError(c *fiber.Ctx, verr *validation.Error) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_FAILED",
			Message: "payload failed validation",
			Fields:  verr.Fields,
		},
	})
}

// notFound answers 404 with an empty body.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Send(nil)
}

// parseBody decodes and validates the request payload into v. On failure the
// error response has already been written and ok is false.
func parseBody(c *fiber.Ctx, v any) (ok bool, err error) {
	if err := c.BodyParser(v); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
	}
	if err := validation.Struct(v); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return false, writeValidationError(c, verr)
		}
		return false, err
	}
	return true, nil
}

// businessError maps domain errors to 400 responses and hands anything else
// to the global error handler.
func businessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPessoaInexistenteOuInativa):
		return writeError(c, fiber.StatusBadRequest, "PESSOA_INEXISTENTE_OU_INATIVA", "pessoa inexistente ou inativa")
	case errors.Is(err, repository.ErrInvalidReference):
		return writeError(c, fiber.StatusBadRequest, "INVALID_REFERENCE", "categoria or pessoa does not exist")
	default:
		return err
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses. Errors that are not *fiber.Error are logged and reported as 500.
func ErrorHandler(logger log.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "full authentication is required")
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", "access denied")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusServiceUnavailable:
			return writeError(c, status, "SERVICE_UNAVAILABLE", "dependency unavailable")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			if fe != nil && status < fiber.StatusInternalServerError {
				return writeError(c, status, "REQUEST_REJECTED", fe.Message)
			}
			logger.WithFields(log.Fields{
				"request_id": middleware.RequestIDFrom(c),
				"method":     c.Method(),
				"path":       c.Path(),
			}).WithError(err).Error("unhandled error")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
