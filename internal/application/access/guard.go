// Package access resuelve el principal del token a una entidad de dominio y
// confirma que las entidades pedidas pertenecen a su colección. Fuera del
// tenant se responde "no encontrado", nunca "prohibido".
package access

import (
	"context"

	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

// ResolveCompany busca la empresa cuyo id es el sujeto del token.
func ResolveCompany(ctx context.Context, companies repository.CompanyRepository, p entity.Principal) (*entity.Company, error) {
	if !p.IsCompany() {
		return nil, domain.ErrCompanyNotFound
	}
	c, err := companies.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return c, nil
}

// ResolveEmployee busca el empleado cuyo id es el sujeto del token.
func ResolveEmployee(ctx context.Context, employees repository.EmployeeRepository, p entity.Principal) (*entity.Employee, error) {
	if !p.IsEmployee() && !p.IsManager() {
		return nil, domain.ErrEmployeeNotFound
	}
	e, err := employees.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return e, nil
}

// AssertOwnership devuelve notFound salvo que el dueño del candidato
// (empresa, proyecto o empleado) coincida con ownerID.
func AssertOwnership(ownerID, candidateOwnerID string, notFound error) error {
	if ownerID == "" || ownerID != candidateOwnerID {
		return notFound
	}
	return nil
}

// ManagedProject proyecto que gestiona el manager.
func ManagedProject(ctx context.Context, projects repository.ProjectRepository, manager *entity.Employee) (*entity.Project, error) {
	if !manager.IsManager() {
		return nil, domain.ErrNotWorkingOnProject
	}
	p, err := projects.GetByManager(ctx, manager.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotWorkingOnProject
	}
	return p, nil
}

// WorkingProject proyecto en el que trabaja el empleado: el que gestiona si es
// MANAGER, o el de su equipo si es EMPLOYEE.
func WorkingProject(ctx context.Context, projects repository.ProjectRepository, teams repository.TeamRepository, e *entity.Employee) (*entity.Project, error) {
	if e.IsManager() {
		return ManagedProject(ctx, projects, e)
	}
	if !e.OnTeam() {
		return nil, domain.ErrNotWorkingOnProject
	}
	team, err := teams.GetByID(ctx, e.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil || team.ProjectID == "" {
		return nil, domain.ErrNotWorkingOnProject
	}
	p, err := projects.GetByID(ctx, team.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotWorkingOnProject
	}
	return p, nil
}
