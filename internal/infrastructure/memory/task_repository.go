package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

var (
	_ repository.TaskRepository    = (*TaskRepo)(nil)
	_ repository.CommentRepository = (*CommentRepo)(nil)
)

// TaskRepo tareas dentro de una transacción go-memdb.
type TaskRepo struct{ tx *tx }

func (r *TaskRepo) Create(_ context.Context, task *entity.Task) error {
	if err := unique(r.tx, tableTasks, "title", task.Title, task.ID, taskKey); err != nil {
		return err
	}
	return put(r.tx, tableTasks, task)
}

func (r *TaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	return first[entity.Task](r.tx, tableTasks, "id", id)
}

func (r *TaskRepo) IDsByTitle(_ context.Context, title string) ([]string, error) {
	return ids(r.tx, tableTasks, "title", title, taskKey)
}

func (r *TaskRepo) Update(_ context.Context, task *entity.Task) error {
	ok, err := exists(r.tx, tableTasks, task.ID)
	if err != nil || !ok {
		return err
	}
	if err := unique(r.tx, tableTasks, "title", task.Title, task.ID, taskKey); err != nil {
		return err
	}
	return put(r.tx, tableTasks, task)
}

func (r *TaskRepo) Delete(_ context.Context, id string) error {
	return r.tx.deleteTask(id)
}

func (r *TaskRepo) ListByProject(_ context.Context, projectID string) ([]*entity.Task, error) {
	out, err := all[entity.Task](r.tx, tableTasks, "project_id", projectID)
	if err != nil {
		return nil, err
	}
	sortBy(out, func(t *entity.Task) string { return t.Title })
	return out, nil
}

func (t *tx) deleteTask(id string) error {
	if err := remove(t, tableComments, "task_id", id); err != nil {
		return err
	}
	return remove(t, tableTasks, "id", id)
}

// CommentRepo comentarios dentro de una transacción go-memdb.
type CommentRepo struct{ tx *tx }

func (r *CommentRepo) Create(_ context.Context, c *entity.Comment) error {
	return put(r.tx, tableComments, c)
}

func (r *CommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	return first[entity.Comment](r.tx, tableComments, "id", id)
}

func (r *CommentRepo) Update(_ context.Context, c *entity.Comment) error {
	ok, err := exists(r.tx, tableComments, c.ID)
	if err != nil || !ok {
		return err
	}
	return put(r.tx, tableComments, c)
}

func (r *CommentRepo) Delete(_ context.Context, id string) error {
	return remove(r.tx, tableComments, "id", id)
}

func (r *CommentRepo) ListByTask(_ context.Context, taskID string) ([]*entity.Comment, error) {
	return r.list("task_id", taskID)
}

func (r *CommentRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Comment, error) {
	return r.list("owner_id", ownerID)
}

// list ordena del más reciente al más antiguo; empate por id descendente.
func (r *CommentRepo) list(index, value string) ([]*entity.Comment, error) {
	out, err := all[entity.Comment](r.tx, tableComments, index, value)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PostedAt.Equal(b.PostedAt) {
			return a.ID > b.ID
		}
		return a.PostedAt.After(b.PostedAt)
	})
	return out, nil
}
