package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/pkg/logger"
	"github.com/jhoicas/office-api/pkg/validator"
)

// Títulos del sobre de error.
const (
	titleNotFound     = "Non-existent Information"
	titleUsedData     = "Provided Information"
	titleInvalidData  = "Invalid Data"
	titleForbidden    = "Access Forbidden"
	titleBadRequest   = "Bad Request"
	titleUnauthorized = "Unauthorized"
	titleInternal     = "Internal Error"
)

// ErrorHandler es el único traductor de errores a HTTP (fiber.Config.ErrorHandler).
// now se usa para el timestamp del sobre.
func ErrorHandler(log *logger.Logger, now func() time.Time) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, title, message := classify(err)
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error interno")
			message = "Unexpected error"
		}
		return c.Status(code).JSON(dto.ErrorResponse{
			StatusCode: code,
			Status:     statusName(code),
			Title:      title,
			Message:    message,
			Timestamp:  now().Format(dto.TimestampLayout),
		})
	}
}

func classify(err error) (code int, title, message string) {
	message = err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		message = derr.Message
	}

	var verr *validator.Error
	var ferr *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, titleNotFound, message
	case errors.Is(err, domain.ErrUsedData):
		return fiber.StatusBadRequest, titleUsedData, message
	case errors.Is(err, domain.ErrInvalidData):
		return fiber.StatusBadRequest, titleInvalidData, message
	case errors.Is(err, domain.ErrLoginFailed):
		return fiber.StatusForbidden, titleForbidden, message
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, titleInvalidData, verr.Error()
	case errors.As(err, &ferr):
		return ferr.Code, fiberTitle(ferr.Code), ferr.Message
	default:
		return fiber.StatusInternalServerError, titleInternal, message
	}
}

func fiberTitle(code int) string {
	switch code {
	case fiber.StatusBadRequest:
		return titleBadRequest
	case fiber.StatusUnauthorized:
		return titleUnauthorized
	case fiber.StatusForbidden:
		return titleForbidden
	case fiber.StatusNotFound:
		return titleNotFound
	}
	if code >= fiber.StatusInternalServerError {
		return titleInternal
	}
	return utils.StatusMessage(code)
}

// statusName convierte 404 en "NOT_FOUND".
func statusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(code), " ", "_"))
}
