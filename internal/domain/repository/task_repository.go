package repository

import (
	"context"

	"github.com/jhoicas/office-api/internal/domain/entity"
)

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	IDsByTitle(ctx context.Context, title string) ([]string, error)
	Update(ctx context.Context, task *entity.Task) error
	// Delete elimina en cascada sus comentarios.
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error)
}

// CommentRepository define el puerto de persistencia para Comment.
// Los listados van del más reciente al más antiguo.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id string) error
	ListByTask(ctx context.Context, taskID string) ([]*entity.Comment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Comment, error)
}
