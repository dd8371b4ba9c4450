package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/pkg/logger"
)

// RequestLogger registra método, ruta, status, latencia y, si la ruta es
// autenticada, el principal. El error (si lo hay) ya fue traducido por el
// ErrorHandler cuando se lee el status.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		p := GetPrincipal(c)
		log.ForPrincipal(p.ID, p.Role.String()).
			ForStatus(status).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}
