package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/application/usecase"
)

// ProjectHandler maneja /api/projects (solo COMPANY).
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proyecto y asignar manager
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ProjectRequest  true  "deadline dd/MM/yyyy"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.ProjectRequest
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
// @Summary      Proyectos de la empresa
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ProjectResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Proyecto por ID
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), GetPrincipal(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "ID del proyecto"
// @Param        body  body  dto.ProjectRequest  true  "Datos del proyecto"
// @Success      200   {object}  dto.ProjectResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.ProjectRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proyecto (los equipos quedan sin proyecto)
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del proyecto"
// @Success      204
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
