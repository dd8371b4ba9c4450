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

func TestEmployeeCreate_Unicidad(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	o.hire(acme, "maria", cpfMaria)

	cases := []dto.CreateEmployeeRequest{
		{Name: "x", Username: "maria", CPF: cpfJoao, Email: "x@acme.io", Password: "pw"},
		{Name: "x", Username: "x", CPF: cpfMaria, Email: "x@acme.io", Password: "pw"},
		{Name: "x", Username: "x", CPF: cpfJoao, Email: "maria@acme.io", Password: "pw"},
	}
	for _, in := range cases {
		_, err := o.employees.Create(ctx, acme, in)
		assert.ErrorIs(t, err, domain.ErrUsedData, in.Username)
	}

	out, err := o.employees.Create(ctx, acme, dto.CreateEmployeeRequest{
		Name: "João", Username: "joao", CPF: "111.444.777-35", Email: "joao@acme.io", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMPLOYEE", out.Role)
	assert.Equal(t, cpfJoao, out.CPF)
}

func TestEmployeeUpdate_PropiosDatosNoColisionan(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	maria := o.hire(acme, "maria", cpfMaria)
	o.hire(acme, "joao", cpfJoao)

	out, err := o.employees.Update(ctx, maria, dto.UpdateEmployeeRequest{
		Name: "Maria S.", Username: "maria", Email: "maria@acme.io", Password: "new",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria S.", out.Name)

	_, err = o.employees.Update(ctx, maria, dto.UpdateEmployeeRequest{
		Name: "Maria", Username: "joao", Email: "maria@acme.io", Password: "new",
	})
	assert.ErrorIs(t, err, domain.ErrNameAlreadyUsed)
}

func TestEmployeeGet_OtroTenantEsNotFound(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	o.hire(acme, "maria", cpfMaria)
	globex, err := o.companies.Register(ctx, dto.CreateCompanyRequest{
		Name: "Globex", CNPJ: "12345678000195", Password: "pw", Address: address(),
	})
	require.NoError(t, err)
	other := entity.Principal{ID: globex.ID, Role: entity.RoleCompany}

	_, err = o.employees.Get(ctx, other, "maria")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.ErrorIs(t, o.employees.Delete(ctx, other, "maria"), domain.ErrEmployeeNotFound)

	got, err := o.employees.Get(ctx, acme, "maria")
	require.NoError(t, err)
	assert.Equal(t, "maria", got.Username)

	list, err := o.employees.List(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeDelete_ManagerNoSePuedeBorrar(t *testing.T) {
	o := newOffice(t)
	ctx := context.Background()
	acme := o.registerAcme()
	maria := o.hire(acme, "maria", cpfMaria)
	joao := o.hire(acme, "joao", cpfJoao)
	_, err := o.projects.Create(ctx, acme, dto.ProjectRequest{
		Name: "Apollo", Description: "d", ManagerUsername: "maria", Deadline: "20/12/2026",
	})
	require.NoError(t, err)

	err = o.employees.Delete(ctx, acme, "maria")
	assert.ErrorIs(t, err, domain.ErrEmployeeManagesProject)
	assert.ErrorIs(t, o.employees.DeleteSelf(ctx, asManager(maria)), domain.ErrInvalidData)

	require.NoError(t, o.employees.DeleteSelf(ctx, joao))
	_, err = o.employees.Me(ctx, joao)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
