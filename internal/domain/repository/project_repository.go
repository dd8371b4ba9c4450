package repository

import (
	"context"

	"github.com/jhoicas/office-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	// GetByManager devuelve el proyecto que gestiona el empleado, o nil.
	GetByManager(ctx context.Context, managerID string) (*entity.Project, error)
	IDsByName(ctx context.Context, name string) ([]string, error)
	Update(ctx context.Context, project *entity.Project) error
	// Delete elimina en cascada tareas y comentarios. Los equipos deben desvincularse antes.
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Project, error)
}

// TeamRepository define el puerto de persistencia para Team.
type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	GetByID(ctx context.Context, id string) (*entity.Team, error)
	IDsByName(ctx context.Context, name string) ([]string, error)
	Update(ctx context.Context, team *entity.Team) error
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Team, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Team, error)
	// DetachProject deja project_id vacío en los equipos del proyecto.
	DetachProject(ctx context.Context, projectID string) error
}
