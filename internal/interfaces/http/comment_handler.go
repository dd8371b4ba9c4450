package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/application/usecase"
)

// CommentHandler maneja /api/comments. En POST y GET :id es el id de la tarea;
// en PUT y DELETE es el id del comentario.
type CommentHandler struct {
	uc *usecase.CommentUseCase
}

func NewCommentHandler(uc *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Create godoc
// @Summary      Comentar una tarea
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "ID de la tarea"
// @Param        body  body  dto.CommentRequest  true  "content"
// @Success      201   {object}  dto.CommentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.CommentRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), taskID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByTask godoc
// @Summary      Comentarios de una tarea (más recientes primero)
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {array}  dto.CommentResponse
// @Router       /api/comments/{id} [get]
func (h *CommentHandler) ListByTask(c *fiber.Ctx) error {
	taskID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByTask(c.UserContext(), GetPrincipal(c), taskID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Comentarios propios
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CommentResponse
// @Router       /api/comments [get]
func (h *CommentHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar comentario propio
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "ID del comentario"
// @Param        body  body  dto.CommentRequest  true  "content"
// @Success      200   {object}  dto.CommentResponse
// @Router       /api/comments/{id} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.CommentRequest
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
// @Summary      Eliminar comentario propio
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del comentario"
// @Success      204
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
