package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/office-api/internal/application/access"
	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/membership"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

// TeamUseCase equipos creados y administrados por un manager.
type TeamUseCase struct {
	tx  TxRunner
	now Clock
}

// NewTeamUseCase construye el caso de uso de equipos.
func NewTeamUseCase(tx TxRunner) *TeamUseCase {
	return &TeamUseCase{tx: tx, now: systemClock}
}

// Create crea el equipo en la empresa del manager y, si gestiona uno, en su
// proyecto. Cada username pasa por AddTeamMember; cualquier fallo revierte todo.
func (uc *TeamUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	var out *dto.TeamResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		manager, err := access.ResolveEmployee(ctx, r.Employees, p)
		if err != nil {
			return err
		}
		if err := checkUnique(ctx, "name", r.Teams.IDsByName, in.Name, ""); err != nil {
			return err
		}
		team := &entity.Team{
			ID:        uuid.New().String(),
			CompanyID: manager.CompanyID,
			Name:      in.Name,
			CreatedAt: uc.now(),
		}
		project, err := r.Projects.GetByManager(ctx, manager.ID)
		if err != nil {
			return err
		}
		if project != nil {
			team.ProjectID = project.ID
		}
		if err := r.Teams.Create(ctx, team); err != nil {
			return err
		}
		if err := addMembers(ctx, r, team, in.Usernames); err != nil {
			return err
		}
		out, err = teamView(ctx, r, team)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update renombra (excluyendo al propio equipo de la unicidad), agrega to_add y
// luego quita to_remove.
func (uc *TeamUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	var out *dto.TeamResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		team, err := uc.owned(ctx, r, p, id)
		if err != nil {
			return err
		}
		if err := checkUnique(ctx, "name", r.Teams.IDsByName, in.Name, team.ID); err != nil {
			return err
		}
		team.Name = in.Name
		if err := r.Teams.Update(ctx, team); err != nil {
			return err
		}
		if err := addMembers(ctx, r, team, in.ToAdd); err != nil {
			return err
		}
		for _, username := range dedupe(in.ToRemove) {
			e, err := r.Employees.GetByUsername(ctx, username)
			if err != nil {
				return err
			}
			if err := membership.RemoveTeamMember(team, e); err != nil {
				return err
			}
			if err := r.Employees.Update(ctx, e); err != nil {
				return err
			}
		}
		out, err = teamView(ctx, r, team)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el equipo; sus miembros quedan sin equipo.
func (uc *TeamUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	return uc.tx.Run(ctx, func(r repository.Set) error {
		team, err := uc.owned(ctx, r, p, id)
		if err != nil {
			return err
		}
		if err := r.Employees.ClearTeam(ctx, team.ID); err != nil {
			return err
		}
		return r.Teams.Delete(ctx, team.ID)
	})
}

// ListByCompany equipos de la empresa autenticada.
func (uc *TeamUseCase) ListByCompany(ctx context.Context, p entity.Principal) ([]dto.TeamResponse, error) {
	var out []dto.TeamResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		list, err := r.Teams.ListByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		out, err = teamViews(ctx, r, list)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByProject equipos del proyecto que gestiona el manager autenticado.
func (uc *TeamUseCase) ListByProject(ctx context.Context, p entity.Principal) ([]dto.TeamResponse, error) {
	var out []dto.TeamResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		manager, err := access.ResolveEmployee(ctx, r.Employees, p)
		if err != nil {
			return err
		}
		project, err := access.ManagedProject(ctx, r.Projects, manager)
		if err != nil {
			return err
		}
		list, err := r.Teams.ListByProject(ctx, project.ID)
		if err != nil {
			return err
		}
		out, err = teamViews(ctx, r, list)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// owned equipo de la misma empresa que el manager; si no, "no encontrado".
func (uc *TeamUseCase) owned(ctx context.Context, r repository.Set, p entity.Principal, id string) (*entity.Team, error) {
	manager, err := access.ResolveEmployee(ctx, r.Employees, p)
	if err != nil {
		return nil, err
	}
	team, err := r.Teams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrTeamNotFound
	}
	if err := access.AssertOwnership(manager.CompanyID, team.CompanyID, domain.ErrTeamNotFound); err != nil {
		return nil, err
	}
	return team, nil
}

func addMembers(ctx context.Context, r repository.Set, team *entity.Team, usernames []string) error {
	for _, username := range dedupe(usernames) {
		e, err := r.Employees.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if err := membership.AddTeamMember(team, e); err != nil {
			return err
		}
		if err := r.Employees.Update(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
