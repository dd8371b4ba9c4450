package access_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/office-api/internal/application/access"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
	"github.com/jhoicas/office-api/internal/infrastructure/memory"
)

func withRepos(t *testing.T, fn func(ctx context.Context, r repository.Set)) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Run(context.Background(), func(r repository.Set) error {
		ctx := context.Background()
		require.NoError(t, r.Companies.Create(ctx, &entity.Company{ID: "c1", Name: "Acme", CNPJ: "11222333000181"}))
		require.NoError(t, r.Employees.Create(ctx, &entity.Employee{ID: "m", CompanyID: "c1", Username: "m", CPF: "1", Email: "m@x", Role: entity.RoleManager}))
		require.NoError(t, r.Employees.Create(ctx, &entity.Employee{ID: "j", CompanyID: "c1", Username: "j", CPF: "2", Email: "j@x", Role: entity.RoleEmployee, TeamID: "t1"}))
		require.NoError(t, r.Employees.Create(ctx, &entity.Employee{ID: "k", CompanyID: "c1", Username: "k", CPF: "3", Email: "k@x", Role: entity.RoleEmployee, TeamID: "t2"}))
		require.NoError(t, r.Projects.Create(ctx, &entity.Project{ID: "p1", CompanyID: "c1", ManagerID: "m", Name: "Apollo"}))
		require.NoError(t, r.Teams.Create(ctx, &entity.Team{ID: "t1", CompanyID: "c1", ProjectID: "p1", Name: "Red"}))
		require.NoError(t, r.Teams.Create(ctx, &entity.Team{ID: "t2", CompanyID: "c1", Name: "Idle"}))
		fn(ctx, r)
		return nil
	}))
}

func TestResolveCompany(t *testing.T) {
	withRepos(t, func(ctx context.Context, r repository.Set) {
		c, err := access.ResolveCompany(ctx, r.Companies, entity.Principal{ID: "c1", Role: entity.RoleCompany})
		require.NoError(t, err)
		assert.Equal(t, "Acme", c.Name)

		_, err = access.ResolveCompany(ctx, r.Companies, entity.Principal{ID: "nope", Role: entity.RoleCompany})
		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

		// Un empleado nunca se resuelve como empresa.
		_, err = access.ResolveCompany(ctx, r.Companies, entity.Principal{ID: "c1", Role: entity.RoleManager})
		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})
}

func TestResolveEmployee(t *testing.T) {
	withRepos(t, func(ctx context.Context, r repository.Set) {
		e, err := access.ResolveEmployee(ctx, r.Employees, entity.Principal{ID: "j", Role: entity.RoleEmployee})
		require.NoError(t, err)
		assert.Equal(t, "j", e.Username)

		_, err = access.ResolveEmployee(ctx, r.Employees, entity.Principal{ID: "ghost", Role: entity.RoleEmployee})
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
		_, err = access.ResolveEmployee(ctx, r.Employees, entity.Principal{ID: "j", Role: entity.RoleCompany})
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

		m, err := access.ResolveEmployee(ctx, r.Employees, entity.Principal{ID: "m", Role: entity.RoleManager})
		require.NoError(t, err)
		assert.True(t, m.IsManager())
	})
}

func TestAssertOwnership_ReportaNotFound(t *testing.T) {
	assert.NoError(t, access.AssertOwnership("c1", "c1", domain.ErrProjectNotFound))
	assert.ErrorIs(t, access.AssertOwnership("c1", "c2", domain.ErrProjectNotFound), domain.ErrProjectNotFound)
	assert.ErrorIs(t, access.AssertOwnership("", "", domain.ErrTaskNotFound), domain.ErrNotFound)
}

func TestWorkingProject(t *testing.T) {
	withRepos(t, func(ctx context.Context, r repository.Set) {
		m, _ := r.Employees.GetByID(ctx, "m")
		j, _ := r.Employees.GetByID(ctx, "j")
		k, _ := r.Employees.GetByID(ctx, "k")

		p, err := access.WorkingProject(ctx, r.Projects, r.Teams, m)
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)

		p, err = access.WorkingProject(ctx, r.Projects, r.Teams, j)
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)

		// Equipo sin proyecto.
		_, err = access.WorkingProject(ctx, r.Projects, r.Teams, k)
		assert.ErrorIs(t, err, domain.ErrNotWorkingOnProject)

		_, err = access.ManagedProject(ctx, r.Projects, j)
		assert.ErrorIs(t, err, domain.ErrNotWorkingOnProject)
	})
}
