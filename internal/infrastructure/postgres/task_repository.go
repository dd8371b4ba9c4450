package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

var (
	_ repository.TaskRepository    = (*TaskRepo)(nil)
	_ repository.CommentRepository = (*CommentRepo)(nil)
)

// TaskRepo implementación de TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, project_id, title, description, deadline, created_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Deadline, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Deadline = t.Deadline.UTC()
	return &t, nil
}

func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, t.ID, t.ProjectID, t.Title, t.Description, t.Deadline, t.CreatedAt)
	return writeErr("insert task", err)
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t, err := scanTask(r.q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r *TaskRepo) IDsByTitle(ctx context.Context, title string) ([]string, error) {
	return collectIDs(ctx, r.q, "task ids by title", `SELECT id FROM tasks WHERE title = $1`, title)
}

func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	_, err := r.q.Exec(ctx, `UPDATE tasks SET title = $2, description = $3, deadline = $4 WHERE id = $1`,
		t.ID, t.Title, t.Description, t.Deadline)
	return writeErr("update task", err)
}

// Delete borra la tarea; sus comentarios caen por ON DELETE CASCADE.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *TaskRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = $1 ORDER BY lower(title)`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// CommentRepo implementación de CommentRepository sobre PostgreSQL.
type CommentRepo struct {
	q Querier
}

func NewCommentRepository(q Querier) *CommentRepo {
	return &CommentRepo{q: q}
}

const commentColumns = `id, task_id, owner_id, content, posted_at`

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var c entity.Comment
	if err := row.Scan(&c.ID, &c.TaskID, &c.OwnerID, &c.Content, &c.PostedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	query := `INSERT INTO comments (` + commentColumns + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, c.ID, c.TaskID, c.OwnerID, c.Content, c.PostedAt)
	return writeErr("insert comment", err)
}

func (r *CommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c, err := scanComment(r.q.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

// Update solo cambia el contenido; posted_at se conserva.
func (r *CommentRepo) Update(ctx context.Context, c *entity.Comment) error {
	_, err := r.q.Exec(ctx, `UPDATE comments SET content = $2 WHERE id = $1`, c.ID, c.Content)
	return writeErr("update comment", err)
}

func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (r *CommentRepo) list(ctx context.Context, op, where string, arg any) ([]*entity.Comment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE `+where+` ORDER BY posted_at DESC, id DESC`, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListByTask comentarios de la tarea, más recientes primero.
func (r *CommentRepo) ListByTask(ctx context.Context, taskID string) ([]*entity.Comment, error) {
	return r.list(ctx, "list task comments", "task_id = $1", taskID)
}

func (r *CommentRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Comment, error) {
	return r.list(ctx, "list owner comments", "owner_id = $1", ownerID)
}
