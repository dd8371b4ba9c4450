package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para Company y su dirección.
type CompanyHandler struct {
	uc      *usecase.CompanyUseCase
	address *usecase.AddressUseCase
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, address *usecase.AddressUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, address: address}
}

// Create godoc
// @Summary      Registrar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa y dirección"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Perfil de la empresa autenticada
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateCompanyRequest  true  "name, cnpj, password"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa y todo su contenido
// @Tags         companies
// @Security     BearerAuth
// @Success      204
// @Router       /api/companies [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAddress godoc
// @Summary      Dirección de la empresa
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AddressResponse
// @Router       /api/addresses [get]
func (h *CompanyHandler) GetAddress(c *fiber.Ctx) error {
	out, err := h.address.Get(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateAddress godoc
// @Summary      Actualizar dirección de la empresa
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddressRequest  true  "Dirección"
// @Success      200   {object}  dto.AddressResponse
// @Router       /api/addresses [put]
func (h *CompanyHandler) UpdateAddress(c *fiber.Ctx) error {
	var in dto.AddressRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.address.Update(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
