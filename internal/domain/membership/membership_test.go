package membership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/membership"
)

const acme = "company-acme"

func employee(id string, role entity.Role, teamID string) *entity.Employee {
	return &entity.Employee{ID: id, CompanyID: acme, Username: id, Role: role, TeamID: teamID}
}

func TestAssignManager_PromueveYSacaDelEquipo(t *testing.T) {
	// Sin importar el estado previo, el manager queda MANAGER y sin equipo.
	cases := []*entity.Employee{
		employee("e1", entity.RoleEmployee, ""),
		employee("e2", entity.RoleEmployee, "team-1"),
		employee("e3", entity.RoleManager, ""),
	}
	for _, e := range cases {
		p := &entity.Project{ID: "p-" + e.ID, CompanyID: acme}

		require.NoError(t, membership.AssignManager(p, e, nil), e.ID)

		assert.Equal(t, entity.RoleManager, e.Role, e.ID)
		assert.Empty(t, e.TeamID, e.ID)
		assert.Equal(t, e.ID, p.ManagerID, e.ID)
	}
}

func TestAssignManager_OtraEmpresaEsNotFound(t *testing.T) {
	p := &entity.Project{ID: "p1", CompanyID: acme}
	foreign := &entity.Employee{ID: "x", CompanyID: "other", Role: entity.RoleEmployee}

	assert.ErrorIs(t, membership.AssignManager(p, foreign, nil), domain.ErrEmployeeNotFound)
	assert.ErrorIs(t, membership.AssignManager(p, nil, nil), domain.ErrEmployeeNotFound)
	assert.Empty(t, p.ManagerID)
}

func TestAssignManager_RolInvalidoNoSePromueve(t *testing.T) {
	p := &entity.Project{ID: "p1", CompanyID: acme}
	for _, role := range []entity.Role{entity.RoleCompany, entity.Role(""), entity.Role("ADMIN")} {
		e := &entity.Employee{ID: "x", CompanyID: acme, Role: role, TeamID: "team-1"}

		err := membership.AssignManager(p, e, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidRoleTransition, string(role))
		assert.ErrorIs(t, err, domain.ErrInvalidData, string(role))
		assert.Equal(t, role, e.Role)
		assert.Equal(t, "team-1", e.TeamID)
		assert.Empty(t, p.ManagerID)
	}
}

func TestAssignManager_YaGestionaOtroProyecto(t *testing.T) {
	m := employee("m", entity.RoleManager, "")
	current := &entity.Project{ID: "p1", CompanyID: acme, ManagerID: "m"}
	other := &entity.Project{ID: "p2", CompanyID: acme}

	err := membership.AssignManager(other, m, current)
	assert.ErrorIs(t, err, domain.ErrEmployeeAlreadyManaging)
	assert.Empty(t, other.ManagerID)

	// Reasignarlo a su propio proyecto es válido.
	assert.NoError(t, membership.AssignManager(current, m, current))
}

func TestAddTeamMember_Exito(t *testing.T) {
	team := &entity.Team{ID: "t1", CompanyID: acme}
	j := employee("j", entity.RoleEmployee, "")

	require.NoError(t, membership.AddTeamMember(team, j))
	assert.Equal(t, "t1", j.TeamID)
}

func TestAddTeamMember_YaEnEquipoIncluyendoElMismo(t *testing.T) {
	t1 := &entity.Team{ID: "t1", CompanyID: acme}
	t2 := &entity.Team{ID: "t2", CompanyID: acme}
	j := employee("j", entity.RoleEmployee, "")
	require.NoError(t, membership.AddTeamMember(t1, j))

	assert.ErrorIs(t, membership.AddTeamMember(t2, j), domain.ErrEmployeeAlreadyOnTeam)
	assert.ErrorIs(t, membership.AddTeamMember(t1, j), domain.ErrEmployeeAlreadyOnTeam)
	assert.Equal(t, "t1", j.TeamID)
}

func TestAddTeamMember_ManagerNoPuedeUnirse(t *testing.T) {
	m := employee("m", entity.RoleEmployee, "")
	p := &entity.Project{ID: "p1", CompanyID: acme}
	require.NoError(t, membership.AssignManager(p, m, nil))

	err := membership.AddTeamMember(&entity.Team{ID: "t1", CompanyID: acme}, m)

	assert.ErrorIs(t, err, domain.ErrManagerCannotJoinTeam)
	assert.ErrorIs(t, err, domain.ErrInvalidData)
	assert.Empty(t, m.TeamID)
}

func TestAddTeamMember_OrdenDeValidaciones(t *testing.T) {
	team := &entity.Team{ID: "t1", CompanyID: acme}

	foreign := &entity.Employee{ID: "x", CompanyID: "other", Role: entity.RoleManager, TeamID: "t9"}
	assert.ErrorIs(t, membership.AddTeamMember(team, foreign), domain.ErrEmployeeNotFound)
	assert.ErrorIs(t, membership.AddTeamMember(team, nil), domain.ErrEmployeeNotFound)

	// Un manager con equipo (estado inválido) reporta primero el equipo.
	odd := employee("odd", entity.RoleManager, "t9")
	assert.ErrorIs(t, membership.AddTeamMember(team, odd), domain.ErrEmployeeAlreadyOnTeam)
}

func TestInvariante_MiembroNuncaEsManager(t *testing.T) {
	team := &entity.Team{ID: "t1", CompanyID: acme}
	staff := []*entity.Employee{
		employee("a", entity.RoleEmployee, ""),
		employee("b", entity.RoleManager, ""),
		employee("c", entity.RoleEmployee, "t2"),
	}
	for i, e := range staff {
		_ = membership.AddTeamMember(team, e)
		if i == 0 {
			_ = membership.AssignManager(&entity.Project{ID: "p", CompanyID: acme}, e, nil)
		}
	}
	for _, e := range staff {
		if e.OnTeam() {
			assert.NotEqual(t, entity.RoleManager, e.Role, e.ID)
		}
	}
}

func TestRemoveTeamMember(t *testing.T) {
	t1 := &entity.Team{ID: "t1", CompanyID: acme}
	t2 := &entity.Team{ID: "t2", CompanyID: acme}
	j := employee("j", entity.RoleEmployee, "t1")

	assert.ErrorIs(t, membership.RemoveTeamMember(t2, j), domain.ErrEmployeeNotInTeam)
	assert.ErrorIs(t, membership.RemoveTeamMember(t1, nil), domain.ErrEmployeeNotFound)

	require.NoError(t, membership.RemoveTeamMember(t1, j))
	assert.Empty(t, j.TeamID)
	assert.ErrorIs(t, membership.RemoveTeamMember(t1, j), domain.ErrEmployeeNotInTeam)
}

func TestValidateUniqueName(t *testing.T) {
	assert.NoError(t, membership.ValidateUniqueName("name", nil, ""))
	assert.NoError(t, membership.ValidateUniqueName("name", []string{"t1"}, "t1"))

	err := membership.ValidateUniqueName("name", []string{"t1"}, "")
	assert.ErrorIs(t, err, domain.ErrNameAlreadyUsed)
	assert.ErrorIs(t, err, domain.ErrUsedData)

	assert.ErrorIs(t, membership.ValidateUniqueName("name", []string{"t1", "t2"}, "t1"), domain.ErrNameAlreadyUsed)
}

func TestValidateDeadline_LimiteInclusivo(t *testing.T) {
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, membership.ValidateDeadline(now, now))
	assert.NoError(t, membership.ValidateDeadline(now.Add(time.Minute), now))
	assert.ErrorIs(t, membership.ValidateDeadline(now.Add(-time.Nanosecond), now), domain.ErrDeadlineInPast)
}

func TestValidateProjectDeadline_HoyEsValido(t *testing.T) {
	now := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)
	today, err := membership.ParseProjectDeadline("18/10/2026")
	require.NoError(t, err)
	yesterday, err := membership.ParseProjectDeadline("17/10/2026")
	require.NoError(t, err)

	assert.NoError(t, membership.ValidateProjectDeadline(today, now))
	assert.ErrorIs(t, membership.ValidateProjectDeadline(yesterday, now), domain.ErrDeadlineInPast)
}

func TestParseDeadlines(t *testing.T) {
	d, err := membership.ParseTaskDeadline("25/12/2026 18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 25, 18, 30, 0, 0, time.UTC), d)

	for _, raw := range []string{"", "2026-12-25", "32/01/2026", "25/12/2026 25:00"} {
		_, err := membership.ParseTaskDeadline(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidDeadlineFormat, raw)
	}
	_, err = membership.ParseProjectDeadline("25/12/2026 10:00")
	assert.ErrorIs(t, err, domain.ErrInvalidDeadlineFormat)
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	assert.False(t, membership.ProjectExpired(&entity.Project{Deadline: membership.StartOfDay(now)}, now))
	assert.True(t, membership.ProjectExpired(&entity.Project{Deadline: now.AddDate(0, 0, -1)}, now))
	assert.True(t, membership.TaskExpired(&entity.Task{Deadline: now.Add(-time.Minute)}, now))
	assert.False(t, membership.TaskExpired(&entity.Task{Deadline: now}, now))
}
