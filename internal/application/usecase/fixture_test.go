package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
	"github.com/jhoicas/office-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// office agrupa los casos de uso sobre un mismo store en memoria y reloj fijo.
type office struct {
	t         *testing.T
	store     *memory.Store
	companies *CompanyUseCase
	addresses *AddressUseCase
	employees *EmployeeUseCase
	projects  *ProjectUseCase
	teams     *TeamUseCase
	tasks     *TaskUseCase
	comments  *CommentUseCase
}

func newOffice(t *testing.T) *office {
	t.Helper()
	store := memory.NewStore()
	o := &office{
		t:         t,
		store:     store,
		companies: NewCompanyUseCase(store),
		addresses: NewAddressUseCase(store),
		employees: NewEmployeeUseCase(store),
		projects:  NewProjectUseCase(store),
		teams:     NewTeamUseCase(store),
		tasks:     NewTaskUseCase(store),
		comments:  NewCommentUseCase(store),
	}
	o.companies.now = fixedClock
	o.employees.now = fixedClock
	o.projects.now = fixedClock
	o.teams.now = fixedClock
	o.tasks.now = fixedClock
	o.comments.now = fixedClock
	return o
}

func address() *dto.AddressRequest {
	return &dto.AddressRequest{
		ZipCode: "01001000", Number: "100", Street: "Praça da Sé",
		Neighborhood: "Sé", City: "São Paulo", State: "SP",
	}
}

func (o *office) registerAcme() entity.Principal {
	o.t.Helper()
	out, err := o.companies.Register(context.Background(), dto.CreateCompanyRequest{
		Name: "Acme", CNPJ: "11222333000181", Password: "pw", Address: address(),
	})
	require.NoError(o.t, err)
	return entity.Principal{ID: out.ID, Role: entity.RoleCompany}
}

// hire crea un empleado y devuelve su principal (el rol se relee en cada caso de uso).
func (o *office) hire(company entity.Principal, username, cpf string) entity.Principal {
	o.t.Helper()
	out, err := o.employees.Create(context.Background(), company, dto.CreateEmployeeRequest{
		Name: username, Username: username, CPF: cpf, Email: username + "@acme.io", Password: "pw",
	})
	require.NoError(o.t, err)
	return entity.Principal{ID: out.ID, Role: entity.RoleEmployee}
}

func (o *office) employee(id string) *entity.Employee {
	o.t.Helper()
	var e *entity.Employee
	require.NoError(o.t, o.store.Run(context.Background(), func(r repository.Set) error {
		var err error
		e, err = r.Employees.GetByID(context.Background(), id)
		return err
	}))
	require.NotNil(o.t, e)
	return e
}

func (o *office) team(id string) *entity.Team {
	o.t.Helper()
	var team *entity.Team
	require.NoError(o.t, o.store.Run(context.Background(), func(r repository.Set) error {
		var err error
		team, err = r.Teams.GetByID(context.Background(), id)
		return err
	}))
	return team
}

func asManager(p entity.Principal) entity.Principal {
	return entity.Principal{ID: p.ID, Role: entity.RoleManager}
}

// CPFs válidos para las fixtures.
const (
	cpfMaria = "52998224725"
	cpfJoao  = "11144477735"
	cpfPedro = "12345678909"
	cpfLucas = "98765432100"
)
