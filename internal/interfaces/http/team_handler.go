package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/application/usecase"
)

// TeamHandler maneja /api/teams.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// Create godoc
// @Summary      Crear equipo en el proyecto del manager
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTeamRequest  true  "name, usernames"
// @Success      201   {object}  dto.TeamResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/teams [post]
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTeamRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Renombrar equipo y ajustar miembros
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del equipo"
// @Param        body  body  dto.UpdateTeamRequest  true  "name, to_add, to_remove"
// @Success      200   {object}  dto.TeamResponse
// @Router       /api/teams/{id} [put]
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateTeamRequest
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
// @Summary      Eliminar equipo
// @Tags         teams
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del equipo"
// @Success      204
// @Router       /api/teams/{id} [delete]
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByCompany godoc
// @Summary      Equipos de la empresa
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TeamResponse
// @Router       /api/teams [get]
func (h *TeamHandler) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByProject godoc
// @Summary      Equipos del proyecto del manager
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TeamResponse
// @Router       /api/teams/project [get]
func (h *TeamHandler) ListByProject(c *fiber.Ctx) error {
	out, err := h.uc.ListByProject(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
