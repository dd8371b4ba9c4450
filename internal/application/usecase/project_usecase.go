package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/office-api/internal/application/access"
	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/membership"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

// ProjectUseCase proyectos de la empresa y asignación de su manager.
type ProjectUseCase struct {
	tx  TxRunner
	now Clock
}

// NewProjectUseCase construye el caso de uso de proyectos.
func NewProjectUseCase(tx TxRunner) *ProjectUseCase {
	return &ProjectUseCase{tx: tx, now: systemClock}
}

// Create crea el proyecto y promueve al manager indicado (queda MANAGER y sin equipo).
func (uc *ProjectUseCase) Create(ctx context.Context, p entity.Principal, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	now := uc.now()
	var out *dto.ProjectResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		project := &entity.Project{
			ID:          uuid.New().String(),
			CompanyID:   company.ID,
			Name:        in.Name,
			Description: in.Description,
			CreatedAt:   now,
		}
		if err := uc.apply(ctx, r, project, in, "", now); err != nil {
			return err
		}
		if err := r.Projects.Create(ctx, project); err != nil {
			return err
		}
		out, err = projectView(ctx, r, project, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza nombre, descripción, fecha límite y manager. Mantener el
// mismo manager es válido; el anterior conserva el rol MANAGER.
func (uc *ProjectUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	now := uc.now()
	var out *dto.ProjectResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		project, err := uc.owned(ctx, r, p, id)
		if err != nil {
			return err
		}
		project.Name = in.Name
		project.Description = in.Description
		if err := uc.apply(ctx, r, project, in, project.ID, now); err != nil {
			return err
		}
		if err := r.Projects.Update(ctx, project); err != nil {
			return err
		}
		out, err = projectView(ctx, r, project, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete desvincula los equipos del proyecto y lo elimina junto con sus tareas.
func (uc *ProjectUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	return uc.tx.Run(ctx, func(r repository.Set) error {
		project, err := uc.owned(ctx, r, p, id)
		if err != nil {
			return err
		}
		if err := r.Teams.DetachProject(ctx, project.ID); err != nil {
			return err
		}
		return r.Projects.Delete(ctx, project.ID)
	})
}

// List proyectos de la empresa autenticada.
func (uc *ProjectUseCase) List(ctx context.Context, p entity.Principal) ([]dto.ProjectResponse, error) {
	now := uc.now()
	var out []dto.ProjectResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		list, err := r.Projects.ListByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		out, err = projectViews(ctx, r, list, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get proyecto de la empresa autenticada.
func (uc *ProjectUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.ProjectResponse, error) {
	now := uc.now()
	var out *dto.ProjectResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		project, err := uc.owned(ctx, r, p, id)
		if err != nil {
			return err
		}
		out, err = projectView(ctx, r, project, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *ProjectUseCase) owned(ctx context.Context, r repository.Set, p entity.Principal, id string) (*entity.Project, error) {
	company, err := access.ResolveCompany(ctx, r.Companies, p)
	if err != nil {
		return nil, err
	}
	project, err := r.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}
	if err := access.AssertOwnership(company.ID, project.CompanyID, domain.ErrProjectNotFound); err != nil {
		return nil, err
	}
	return project, nil
}

// apply valida nombre y fecha límite y asigna el manager; persiste al manager promovido.
func (uc *ProjectUseCase) apply(ctx context.Context, r repository.Set, project *entity.Project, in dto.ProjectRequest, excludingID string, now time.Time) error {
	if err := checkUnique(ctx, "name", r.Projects.IDsByName, project.Name, excludingID); err != nil {
		return err
	}
	deadline, err := membership.ParseProjectDeadline(in.Deadline)
	if err != nil {
		return err
	}
	if err := membership.ValidateProjectDeadline(deadline, now); err != nil {
		return err
	}
	project.Deadline = deadline

	candidate, err := r.Employees.GetByUsername(ctx, in.ManagerUsername)
	if err != nil {
		return err
	}
	var managing *entity.Project
	if candidate != nil {
		if managing, err = r.Projects.GetByManager(ctx, candidate.ID); err != nil {
			return err
		}
	}
	if err := membership.AssignManager(project, candidate, managing); err != nil {
		return err
	}
	return r.Employees.Update(ctx, candidate)
}
