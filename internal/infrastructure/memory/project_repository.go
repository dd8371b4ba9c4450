package memory

import (
	"context"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

var (
	_ repository.ProjectRepository = (*ProjectRepo)(nil)
	_ repository.TeamRepository    = (*TeamRepo)(nil)
)

// ProjectRepo proyectos dentro de una transacción go-memdb.
type ProjectRepo struct{ tx *tx }

func (r *ProjectRepo) check(p *entity.Project) error {
	if err := unique(r.tx, tableProjects, "name", p.Name, p.ID, projectKey); err != nil {
		return err
	}
	return unique(r.tx, tableProjects, "manager_id", p.ManagerID, p.ID, projectKey)
}

func (r *ProjectRepo) Create(_ context.Context, p *entity.Project) error {
	if err := r.check(p); err != nil {
		return err
	}
	return put(r.tx, tableProjects, p)
}

func (r *ProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	return first[entity.Project](r.tx, tableProjects, "id", id)
}

func (r *ProjectRepo) GetByManager(_ context.Context, managerID string) (*entity.Project, error) {
	return first[entity.Project](r.tx, tableProjects, "manager_id", managerID)
}

func (r *ProjectRepo) IDsByName(_ context.Context, name string) ([]string, error) {
	return ids(r.tx, tableProjects, "name", name, projectKey)
}

func (r *ProjectRepo) Update(_ context.Context, p *entity.Project) error {
	ok, err := exists(r.tx, tableProjects, p.ID)
	if err != nil || !ok {
		return err
	}
	if err := r.check(p); err != nil {
		return err
	}
	return put(r.tx, tableProjects, p)
}

func (r *ProjectRepo) Delete(_ context.Context, id string) error {
	return r.tx.deleteProject(id)
}

func (r *ProjectRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Project, error) {
	out, err := all[entity.Project](r.tx, tableProjects, "company_id", companyID)
	if err != nil {
		return nil, err
	}
	sortBy(out, func(p *entity.Project) string { return p.Name })
	return out, nil
}

// deleteProject replica teams.project_id ON DELETE SET NULL y la cascada de
// tasks (y sus comments).
func (t *tx) deleteProject(id string) error {
	if err := t.detachProject(id); err != nil {
		return err
	}
	tasks, err := all[entity.Task](t, tableTasks, "project_id", id)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if err := t.deleteTask(task.ID); err != nil {
			return err
		}
	}
	return remove(t, tableProjects, "id", id)
}

func (t *tx) detachProject(projectID string) error {
	teams, err := all[entity.Team](t, tableTeams, "project_id", projectID)
	if err != nil {
		return err
	}
	for _, team := range teams {
		team.ProjectID = ""
		if err := put(t, tableTeams, team); err != nil {
			return err
		}
	}
	return nil
}

// TeamRepo equipos dentro de una transacción go-memdb.
type TeamRepo struct{ tx *tx }

func (r *TeamRepo) Create(_ context.Context, team *entity.Team) error {
	if err := unique(r.tx, tableTeams, "name", team.Name, team.ID, teamKey); err != nil {
		return err
	}
	return put(r.tx, tableTeams, team)
}

func (r *TeamRepo) GetByID(_ context.Context, id string) (*entity.Team, error) {
	return first[entity.Team](r.tx, tableTeams, "id", id)
}

func (r *TeamRepo) IDsByName(_ context.Context, name string) ([]string, error) {
	return ids(r.tx, tableTeams, "name", name, teamKey)
}

func (r *TeamRepo) Update(_ context.Context, team *entity.Team) error {
	ok, err := exists(r.tx, tableTeams, team.ID)
	if err != nil || !ok {
		return err
	}
	if err := unique(r.tx, tableTeams, "name", team.Name, team.ID, teamKey); err != nil {
		return err
	}
	return put(r.tx, tableTeams, team)
}

func (r *TeamRepo) Delete(_ context.Context, id string) error {
	if err := r.tx.clearTeam(id); err != nil {
		return err
	}
	return remove(r.tx, tableTeams, "id", id)
}

func (r *TeamRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Team, error) {
	return r.list("company_id", companyID)
}

func (r *TeamRepo) ListByProject(_ context.Context, projectID string) ([]*entity.Team, error) {
	return r.list("project_id", projectID)
}

func (r *TeamRepo) list(index, value string) ([]*entity.Team, error) {
	out, err := all[entity.Team](r.tx, tableTeams, index, value)
	if err != nil {
		return nil, err
	}
	sortBy(out, func(t *entity.Team) string { return t.Name })
	return out, nil
}

func (r *TeamRepo) DetachProject(_ context.Context, projectID string) error {
	return r.tx.detachProject(projectID)
}
