package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/office-api/pkg/validator"
)

// bind parsea el cuerpo JSON en out y lo valida con las etiquetas validate.
func bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Malformed request body")
	}
	return validator.Struct(out)
}

// uuidParam lee un parámetro de ruta que debe ser UUID.
func uuidParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+": "+raw)
	}
	return id.String(), nil
}
