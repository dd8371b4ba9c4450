package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jhoicas/office-api/internal/application/access"
	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

// CommentUseCase comentarios sobre tareas.
type CommentUseCase struct {
	tx  TxRunner
	now Clock
}

// NewCommentUseCase construye el caso de uso de comentarios.
func NewCommentUseCase(tx TxRunner) *CommentUseCase {
	return &CommentUseCase{tx: tx, now: systemClock}
}

// Create comenta una tarea del proyecto en el que trabaja el llamador; si la
// tarea es de otro proyecto responde ErrTaskNotFound.
func (uc *CommentUseCase) Create(ctx context.Context, p entity.Principal, taskID string, in dto.CommentRequest) (*dto.CommentResponse, error) {
	var out *dto.CommentResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		e, err := access.ResolveEmployee(ctx, r.Employees, p)
		if err != nil {
			return err
		}
		task, err := r.Tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		if task == nil {
			return domain.ErrTaskNotFound
		}
		project, err := access.WorkingProject(ctx, r.Projects, r.Teams, e)
		if err != nil {
			if errors.Is(err, domain.ErrNotWorkingOnProject) {
				return domain.ErrTaskNotFound
			}
			return err
		}
		if err := access.AssertOwnership(project.ID, task.ProjectID, domain.ErrTaskNotFound); err != nil {
			return err
		}
		comment := &entity.Comment{
			ID:       uuid.New().String(),
			TaskID:   task.ID,
			OwnerID:  e.ID,
			Content:  in.Content,
			PostedAt: uc.now(),
		}
		if err := r.Comments.Create(ctx, comment); err != nil {
			return err
		}
		out, err = singleComment(ctx, r, comment)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update cambia el contenido; posted_at no se modifica.
func (uc *CommentUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.CommentRequest) (*dto.CommentResponse, error) {
	var out *dto.CommentResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		comment, err := ownComment(ctx, r, p, id)
		if err != nil {
			return err
		}
		comment.Content = in.Content
		if err := r.Comments.Update(ctx, comment); err != nil {
			return err
		}
		out, err = singleComment(ctx, r, comment)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un comentario propio.
func (uc *CommentUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	return uc.tx.Run(ctx, func(r repository.Set) error {
		comment, err := ownComment(ctx, r, p, id)
		if err != nil {
			return err
		}
		return r.Comments.Delete(ctx, comment.ID)
	})
}

// ListByTask comentarios de una tarea del proyecto gestionado por el manager.
func (uc *CommentUseCase) ListByTask(ctx context.Context, p entity.Principal, taskID string) ([]dto.CommentResponse, error) {
	var out []dto.CommentResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		task, err := managedTask(ctx, r, p, taskID)
		if err != nil {
			return err
		}
		list, err := r.Comments.ListByTask(ctx, task.ID)
		if err != nil {
			return err
		}
		out, err = commentViews(ctx, r, list)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMine comentarios del empleado autenticado, más recientes primero.
func (uc *CommentUseCase) ListMine(ctx context.Context, p entity.Principal) ([]dto.CommentResponse, error) {
	var out []dto.CommentResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		e, err := access.ResolveEmployee(ctx, r.Employees, p)
		if err != nil {
			return err
		}
		list, err := r.Comments.ListByOwner(ctx, e.ID)
		if err != nil {
			return err
		}
		out, err = commentViews(ctx, r, list)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func ownComment(ctx context.Context, r repository.Set, p entity.Principal, id string) (*entity.Comment, error) {
	e, err := access.ResolveEmployee(ctx, r.Employees, p)
	if err != nil {
		return nil, err
	}
	comment, err := r.Comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	if err := access.AssertOwnership(e.ID, comment.OwnerID, domain.ErrCommentNotFound); err != nil {
		return nil, err
	}
	return comment, nil
}

func singleComment(ctx context.Context, r repository.Set, c *entity.Comment) (*dto.CommentResponse, error) {
	views, err := commentViews(ctx, r, []*entity.Comment{c})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
