package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/membership"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

// Construcción de respuestas. Se ejecutan dentro de la misma tx que las lee.

func entityToAddressResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		ZipCode:      a.ZipCode,
		Number:       a.Number,
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func employeeView(ctx context.Context, r repository.Set, e *entity.Employee) (*dto.EmployeeResponse, error) {
	out := &dto.EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Username: e.Username,
		CPF:      e.CPF,
		Email:    e.Email,
		Role:     e.Role.String(),
	}
	var projectID string
	if e.IsManager() {
		p, err := r.Projects.GetByManager(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out.Project = p.Name
		}
	} else if e.OnTeam() {
		team, err := r.Teams.GetByID(ctx, e.TeamID)
		if err != nil {
			return nil, err
		}
		if team != nil {
			out.Team = team.Name
			projectID = team.ProjectID
		}
	}
	if projectID != "" {
		p, err := r.Projects.GetByID(ctx, projectID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out.Project = p.Name
		}
	}
	return out, nil
}

func employeeViews(ctx context.Context, r repository.Set, list []*entity.Employee) ([]dto.EmployeeResponse, error) {
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		v, err := employeeView(ctx, r, e)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func projectView(ctx context.Context, r repository.Set, p *entity.Project, now time.Time) (*dto.ProjectResponse, error) {
	out := &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Deadline:    p.Deadline.Format(dto.DateLayout),
		Expired:     membership.ProjectExpired(p, now),
	}
	manager, err := r.Employees.GetByID(ctx, p.ManagerID)
	if err != nil {
		return nil, err
	}
	if manager != nil {
		out.ManagerUsername = manager.Username
	}
	teams, err := r.Teams.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		out.Teams = append(out.Teams, t.Name)
	}
	return out, nil
}

func projectViews(ctx context.Context, r repository.Set, list []*entity.Project, now time.Time) ([]dto.ProjectResponse, error) {
	out := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		v, err := projectView(ctx, r, p, now)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func teamView(ctx context.Context, r repository.Set, t *entity.Team) (*dto.TeamResponse, error) {
	out := &dto.TeamResponse{ID: t.ID, Name: t.Name, Members: []string{}}
	if t.ProjectID != "" {
		p, err := r.Projects.GetByID(ctx, t.ProjectID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out.Project = p.Name
		}
	}
	members, err := r.Employees.ListByTeam(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		out.Members = append(out.Members, m.Username)
	}
	return out, nil
}

func teamViews(ctx context.Context, r repository.Set, list []*entity.Team) ([]dto.TeamResponse, error) {
	out := make([]dto.TeamResponse, 0, len(list))
	for _, t := range list {
		v, err := teamView(ctx, r, t)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// commentViews resuelve el username de cada autor una sola vez.
func commentViews(ctx context.Context, r repository.Set, list []*entity.Comment) ([]dto.CommentResponse, error) {
	owners := map[string]string{}
	out := make([]dto.CommentResponse, 0, len(list))
	for _, c := range list {
		username, ok := owners[c.OwnerID]
		if !ok {
			owner, err := r.Employees.GetByID(ctx, c.OwnerID)
			if err != nil {
				return nil, err
			}
			if owner != nil {
				username = owner.Username
			}
			owners[c.OwnerID] = username
		}
		out = append(out, dto.CommentResponse{
			ID:            c.ID,
			TaskID:        c.TaskID,
			Content:       c.Content,
			PostedAt:      c.PostedAt.Format(dto.TimestampLayout),
			OwnerUsername: username,
		})
	}
	return out, nil
}

func taskView(ctx context.Context, r repository.Set, t *entity.Task, now time.Time) (*dto.TaskResponse, error) {
	comments, err := r.Comments.ListByTask(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	views, err := commentViews(ctx, r, comments)
	if err != nil {
		return nil, err
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Deadline:    t.Deadline.Format(dto.DateTimeLayout),
		Expired:     membership.TaskExpired(t, now),
		Comments:    views,
	}, nil
}
