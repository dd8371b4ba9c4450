package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/internal/application/auth"
	"github.com/jhoicas/office-api/internal/application/dto"
)

// AuthHandler maneja el login de empresas y empleados.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// LoginCompany godoc
// @Summary      Login de empresa
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompanyLoginRequest  true  "name, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/companies/login [post]
func (h *AuthHandler) LoginCompany(c *fiber.Ctx) error {
	var in dto.CompanyLoginRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.LoginCompany(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// LoginEmployee godoc
// @Summary      Login de empleado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeLoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/employees/login [post]
func (h *AuthHandler) LoginEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeLoginRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.LoginEmployee(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
