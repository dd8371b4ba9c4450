package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/application/usecase"
)

// TaskHandler maneja /api/tasks.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarea en el proyecto del manager
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TaskRequest  true  "deadline dd/MM/yyyy HH:mm"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.TaskRequest
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
// @Summary      Tareas del proyecto en el que trabaja el solicitante
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Tarea por ID
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Actualizar tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string           true  "ID de la tarea"
// @Param        body  body  dto.TaskRequest  true  "Datos de la tarea"
// @Success      200   {object}  dto.TaskResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.TaskRequest
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
// @Summary      Eliminar tarea y sus comentarios
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la tarea"
// @Success      204
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
