package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

var (
	_ repository.ProjectRepository = (*ProjectRepo)(nil)
	_ repository.TeamRepository    = (*TeamRepo)(nil)
)

// ProjectRepo implementación de ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	q Querier
}

func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, company_id, manager_id, name, description, deadline, created_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	if err := row.Scan(&p.ID, &p.CompanyID, &p.ManagerID, &p.Name, &p.Description, &p.Deadline, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Deadline = p.Deadline.UTC()
	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.CompanyID, p.ManagerID, p.Name, p.Description, p.Deadline, p.CreatedAt)
	return writeErr("insert project", err)
}

func (r *ProjectRepo) get(ctx context.Context, op, where string, arg any) (*entity.Project, error) {
	p, err := scanProject(r.q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE `+where, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	return r.get(ctx, "get project", "id = $1", id)
}

// GetByManager devuelve el proyecto gestionado por managerID (manager_id es UNIQUE).
func (r *ProjectRepo) GetByManager(ctx context.Context, managerID string) (*entity.Project, error) {
	return r.get(ctx, "get project by manager", "manager_id = $1", managerID)
}

func (r *ProjectRepo) IDsByName(ctx context.Context, name string) ([]string, error) {
	return collectIDs(ctx, r.q, "project ids by name", `SELECT id FROM projects WHERE name = $1`, name)
}

func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects SET manager_id = $2, name = $3, description = $4, deadline = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.ManagerID, p.Name, p.Description, p.Deadline)
	return writeErr("update project", err)
}

// Delete borra el proyecto; tareas y comentarios caen por ON DELETE CASCADE.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE company_id = $1 ORDER BY lower(name)`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// TeamRepo implementación de TeamRepository sobre PostgreSQL.
type TeamRepo struct {
	q Querier
}

func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

const teamColumns = `id, company_id, project_id, name, created_at`

func scanTeam(row pgx.Row) (*entity.Team, error) {
	var t entity.Team
	var projectID *string
	if err := row.Scan(&t.ID, &t.CompanyID, &projectID, &t.Name, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.ProjectID = fromNull(projectID)
	return &t, nil
}

func (r *TeamRepo) Create(ctx context.Context, t *entity.Team) error {
	query := `INSERT INTO teams (` + teamColumns + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, t.ID, t.CompanyID, nullString(t.ProjectID), t.Name, t.CreatedAt)
	return writeErr("insert team", err)
}

func (r *TeamRepo) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	t, err := scanTeam(r.q.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

func (r *TeamRepo) IDsByName(ctx context.Context, name string) ([]string, error) {
	return collectIDs(ctx, r.q, "team ids by name", `SELECT id FROM teams WHERE name = $1`, name)
}

func (r *TeamRepo) Update(ctx context.Context, t *entity.Team) error {
	_, err := r.q.Exec(ctx, `UPDATE teams SET name = $2, project_id = $3 WHERE id = $1`,
		t.ID, t.Name, nullString(t.ProjectID))
	return writeErr("update team", err)
}

// Delete borra el equipo; employees.team_id queda en NULL (ON DELETE SET NULL).
func (r *TeamRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

func (r *TeamRepo) list(ctx context.Context, op, where string, arg any) ([]*entity.Team, error) {
	rows, err := r.q.Query(ctx, `SELECT `+teamColumns+` FROM teams WHERE `+where+` ORDER BY lower(name)`, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TeamRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Team, error) {
	return r.list(ctx, "list teams", "company_id = $1", companyID)
}

func (r *TeamRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Team, error) {
	return r.list(ctx, "list project teams", "project_id = $1", projectID)
}

func (r *TeamRepo) DetachProject(ctx context.Context, projectID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE teams SET project_id = NULL WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("detach project: %w", err)
	}
	return nil
}
