package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
)

func apollo(manager string) dto.ProjectRequest {
	return dto.ProjectRequest{Name: "Apollo", Description: "moon", ManagerUsername: manager, Deadline: "20/12/2026"}
}

func TestProjectCreate_PromueveManagerYLoSacaDelEquipo(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	lead := o.hire(acme, "lead", cpfLucas)
	maria := o.hire(acme, "maria", cpfMaria)

	// lead gestiona un proyecto y arma un equipo con maria.
	_, err := o.projects.Create(ctx, acme, dto.ProjectRequest{Name: "Gemini", Description: "d", ManagerUsername: "lead", Deadline: "20/12/2026"})
	require.NoError(t, err)
	team, err := o.teams.Create(ctx, asManager(lead), dto.CreateTeamRequest{Name: "Red", Usernames: []string{"maria"}})
	require.NoError(t, err)
	require.Equal(t, team.ID, o.employee(maria.ID).TeamID)

	out, err := o.projects.Create(ctx, acme, apollo("maria"))
	require.NoError(t, err)
	assert.Equal(t, "maria", out.ManagerUsername)
	assert.Equal(t, "20/12/2026", out.Deadline)
	assert.False(t, out.Expired)

	m := o.employee(maria.ID)
	assert.Equal(t, entity.RoleManager, m.Role)
	assert.Empty(t, m.TeamID)
}

func TestProjectCreate_Validaciones(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	o.hire(acme, "maria", cpfMaria)
	o.hire(acme, "joao", cpfJoao)

	_, err := o.projects.Create(ctx, acme, apollo("ghost"))
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	in := apollo("maria")
	in.Deadline = "17/10/2026"
	_, err = o.projects.Create(ctx, acme, in)
	assert.ErrorIs(t, err, domain.ErrDeadlineInPast)

	in.Deadline = "2026-12-20"
	_, err = o.projects.Create(ctx, acme, in)
	assert.ErrorIs(t, err, domain.ErrInvalidDeadlineFormat)

	// Hoy es válido para proyectos.
	in.Deadline = "18/10/2026"
	_, err = o.projects.Create(ctx, acme, in)
	require.NoError(t, err)

	_, err = o.projects.Create(ctx, acme, apollo("joao"))
	assert.ErrorIs(t, err, domain.ErrUsedData)

	second := dto.ProjectRequest{Name: "Gemini", Description: "d", ManagerUsername: "maria", Deadline: "20/12/2026"}
	_, err = o.projects.Create(ctx, acme, second)
	assert.ErrorIs(t, err, domain.ErrEmployeeAlreadyManaging)
}

func TestProjectCreate_ManagerDeOtraEmpresa(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	globex, err := o.companies.Register(ctx, dto.CreateCompanyRequest{Name: "Globex", CNPJ: "12345678000195", Password: "pw", Address: address()})
	require.NoError(t, err)
	o.hire(entity.Principal{ID: globex.ID, Role: entity.RoleCompany}, "hank", cpfPedro)

	_, err = o.projects.Create(ctx, acme, apollo("hank"))
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestProjectUpdate_MismoManagerYCambio(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	maria := o.hire(acme, "maria", cpfMaria)
	joao := o.hire(acme, "joao", cpfJoao)
	created, err := o.projects.Create(ctx, acme, apollo("maria"))
	require.NoError(t, err)

	in := apollo("maria")
	in.Description = "mars"
	out, err := o.projects.Update(ctx, acme, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "mars", out.Description)

	out, err = o.projects.Update(ctx, acme, created.ID, apollo("joao"))
	require.NoError(t, err)
	assert.Equal(t, "joao", out.ManagerUsername)
	assert.Equal(t, entity.RoleManager, o.employee(joao.ID).Role)
	// El manager anterior no se degrada.
	assert.Equal(t, entity.RoleManager, o.employee(maria.ID).Role)
}

func TestProjectDelete_DesvinculaEquiposYBorraTareas(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	maria := o.hire(acme, "maria", cpfMaria)
	o.hire(acme, "joao", cpfJoao)
	o.hire(acme, "pedro", cpfPedro)
	manager := asManager(maria)

	project, err := o.projects.Create(ctx, acme, apollo("maria"))
	require.NoError(t, err)
	t1, err := o.teams.Create(ctx, manager, dto.CreateTeamRequest{Name: "T1", Usernames: []string{"joao"}})
	require.NoError(t, err)
	t2, err := o.teams.Create(ctx, manager, dto.CreateTeamRequest{Name: "T2", Usernames: []string{"pedro"}})
	require.NoError(t, err)
	task, err := o.tasks.Create(ctx, manager, dto.TaskRequest{Title: "Design", Description: "d", Deadline: "20/11/2026 18:00"})
	require.NoError(t, err)

	require.NoError(t, o.projects.Delete(ctx, acme, project.ID))

	for _, id := range []string{t1.ID, t2.ID} {
		team := o.team(id)
		require.NotNil(t, team, "el equipo no se borra")
		assert.Empty(t, team.ProjectID)
	}
	_, err = o.projects.Get(ctx, acme, project.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	_, err = o.tasks.Get(ctx, manager, task.ID)
	assert.ErrorIs(t, err, domain.ErrNotWorkingOnProject)
	// El manager conserva su rol.
	assert.Equal(t, entity.RoleManager, o.employee(maria.ID).Role)
}

func TestProject_OtroTenantEsNotFound(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	o.hire(acme, "maria", cpfMaria)
	project, err := o.projects.Create(ctx, acme, apollo("maria"))
	require.NoError(t, err)
	globex, err := o.companies.Register(ctx, dto.CreateCompanyRequest{Name: "Globex", CNPJ: "12345678000195", Password: "pw", Address: address()})
	require.NoError(t, err)
	other := entity.Principal{ID: globex.ID, Role: entity.RoleCompany}

	_, err = o.projects.Get(ctx, other, project.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.ErrorIs(t, o.projects.Delete(ctx, other, project.ID), domain.ErrProjectNotFound)

	list, err := o.projects.List(ctx, acme)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Apollo", list[0].Name)
}
