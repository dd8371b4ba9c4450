package memory

import (
	"context"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo empleados dentro de una transacción go-memdb.
type EmployeeRepo struct{ tx *tx }

func (r *EmployeeRepo) check(e *entity.Employee) error {
	for index, value := range map[string]string{"username": e.Username, "cpf": e.CPF, "email": e.Email} {
		if err := unique(r.tx, tableEmployees, index, value, e.ID, employeeKey); err != nil {
			return err
		}
	}
	return nil
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	if err := r.check(e); err != nil {
		return err
	}
	return put(r.tx, tableEmployees, e)
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return first[entity.Employee](r.tx, tableEmployees, "id", id)
}

func (r *EmployeeRepo) GetByUsername(_ context.Context, username string) (*entity.Employee, error) {
	return first[entity.Employee](r.tx, tableEmployees, "username", username)
}

func (r *EmployeeRepo) IDsByUsername(_ context.Context, username string) ([]string, error) {
	return ids(r.tx, tableEmployees, "username", username, employeeKey)
}

func (r *EmployeeRepo) IDsByCPF(_ context.Context, cpf string) ([]string, error) {
	return ids(r.tx, tableEmployees, "cpf", cpf, employeeKey)
}

func (r *EmployeeRepo) IDsByEmail(_ context.Context, email string) ([]string, error) {
	return ids(r.tx, tableEmployees, "email", email, employeeKey)
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	ok, err := exists(r.tx, tableEmployees, e.ID)
	if err != nil || !ok {
		return err
	}
	if err := r.check(e); err != nil {
		return err
	}
	return put(r.tx, tableEmployees, e)
}

// Delete falla si el empleado gestiona un proyecto (FK projects.manager_id).
func (r *EmployeeRepo) Delete(_ context.Context, id string) error {
	managed, err := first[entity.Project](r.tx, tableProjects, "manager_id", id)
	if err != nil {
		return err
	}
	if managed != nil {
		return errForeignKey("employees", "projects_manager_id_fkey")
	}
	return r.tx.deleteEmployee(id)
}

func (r *EmployeeRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Employee, error) {
	return r.list("company_id", companyID)
}

func (r *EmployeeRepo) ListByTeam(_ context.Context, teamID string) ([]*entity.Employee, error) {
	return r.list("team_id", teamID)
}

func (r *EmployeeRepo) list(index, value string) ([]*entity.Employee, error) {
	out, err := all[entity.Employee](r.tx, tableEmployees, index, value)
	if err != nil {
		return nil, err
	}
	sortBy(out, func(e *entity.Employee) string { return e.Username })
	return out, nil
}

func (r *EmployeeRepo) ClearTeam(_ context.Context, teamID string) error {
	return r.tx.clearTeam(teamID)
}

// deleteEmployee replica ON DELETE CASCADE de comments.owner_id.
func (t *tx) deleteEmployee(id string) error {
	if err := remove(t, tableComments, "owner_id", id); err != nil {
		return err
	}
	return remove(t, tableEmployees, "id", id)
}

// clearTeam replica ON DELETE SET NULL de employees.team_id.
func (t *tx) clearTeam(teamID string) error {
	members, err := all[entity.Employee](t, tableEmployees, "team_id", teamID)
	if err != nil {
		return err
	}
	for _, e := range members {
		e.TeamID = ""
		if err := put(t, tableEmployees, e); err != nil {
			return err
		}
	}
	return nil
}
