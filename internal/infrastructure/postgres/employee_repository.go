package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, company_id, name, username, cpf, email, password_hash, role, team_id, created_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var role string
	var teamID *string
	if err := row.Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.Username, &e.CPF, &e.Email,
		&e.PasswordHash, &role, &teamID, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Role = entity.Role(role)
	e.TeamID = fromNull(teamID)
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, e.Name, e.Username, e.CPF, e.Email,
		e.PasswordHash, string(e.Role), nullString(e.TeamID), e.CreatedAt,
	)
	return writeErr("insert employee", err)
}

func (r *EmployeeRepo) get(ctx context.Context, op, where string, arg any) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE `+where, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.get(ctx, "get employee", "id = $1", id)
}

// GetByUsername obtiene un empleado por username (único global).
func (r *EmployeeRepo) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	return r.get(ctx, "get employee by username", "username = $1", username)
}

func (r *EmployeeRepo) IDsByUsername(ctx context.Context, username string) ([]string, error) {
	return collectIDs(ctx, r.q, "employee ids by username", `SELECT id FROM employees WHERE username = $1`, username)
}

func (r *EmployeeRepo) IDsByCPF(ctx context.Context, cpf string) ([]string, error) {
	return collectIDs(ctx, r.q, "employee ids by cpf", `SELECT id FROM employees WHERE cpf = $1`, cpf)
}

func (r *EmployeeRepo) IDsByEmail(ctx context.Context, email string) ([]string, error) {
	return collectIDs(ctx, r.q, "employee ids by email", `SELECT id FROM employees WHERE email = $1`, email)
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, username = $3, email = $4, password_hash = $5,
			role = $6, team_id = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Username, e.Email, e.PasswordHash, string(e.Role), nullString(e.TeamID),
	)
	return writeErr("update employee", err)
}

// Delete borra el empleado; comments.owner_id tiene ON DELETE CASCADE.
// Si gestiona un proyecto la FK projects.manager_id lo impide.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) list(ctx context.Context, op, where string, arg any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE `+where+` ORDER BY lower(username)`, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error) {
	return r.list(ctx, "list employees", "company_id = $1", companyID)
}

func (r *EmployeeRepo) ListByTeam(ctx context.Context, teamID string) ([]*entity.Employee, error) {
	return r.list(ctx, "list team members", "team_id = $1", teamID)
}

// ClearTeam deja sin equipo a los miembros de teamID.
func (r *EmployeeRepo) ClearTeam(ctx context.Context, teamID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE employees SET team_id = NULL WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("clear team: %w", err)
	}
	return nil
}
