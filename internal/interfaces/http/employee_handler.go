package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/application/usecase"
)

// EmployeeHandler maneja /api/employees.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Contratar empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Empleados de la empresa
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Empleado por username
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        username  path  string  true  "username"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{username} [get]
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetPrincipal(c), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Despedir empleado
// @Tags         employees
// @Security     BearerAuth
// @Param        username  path  string  true  "username"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/employees/{username} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("username")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Perfil del empleado autenticado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EmployeeResponse
// @Router       /api/employees/me [get]
func (h *EmployeeHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateSelf godoc
// @Summary      Actualizar datos propios
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateEmployeeRequest  true  "name, username, email, password"
// @Success      200   {object}  dto.EmployeeResponse
// @Router       /api/employees [put]
func (h *EmployeeHandler) UpdateSelf(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteSelf godoc
// @Summary      Eliminar la cuenta propia
// @Tags         employees
// @Security     BearerAuth
// @Success      204
// @Router       /api/employees [delete]
func (h *EmployeeHandler) DeleteSelf(c *fiber.Ctx) error {
	if err := h.uc.DeleteSelf(c.UserContext(), GetPrincipal(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
