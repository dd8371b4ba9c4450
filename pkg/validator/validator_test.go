package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/office-api/pkg/validator"
)

type employeePayload struct {
	Name    string   `json:"name" validate:"notblank"`
	CPF     string   `json:"cpf" validate:"cpf"`
	CNPJ    string   `json:"cnpj" validate:"omitempty,cnpj"`
	Email   string   `json:"email" validate:"required,email"`
	ZipCode string   `json:"zip_code" validate:"omitempty,len=8"`
	Members []string `json:"usernames" validate:"omitempty,min=1,dive,notblank"`
}

func TestStruct_Valido(t *testing.T) {
	err := validator.Struct(&employeePayload{
		Name:  "Ana",
		CPF:   "529.982.247-25",
		CNPJ:  "11222333000181",
		Email: "ana@acme.com",
	})
	assert.NoError(t, err)
}

func TestStruct_MensajesPorCampo(t *testing.T) {
	err := validator.Struct(&employeePayload{
		Name:    "   ",
		CPF:     "12345678900",
		CNPJ:    "11222333000182",
		Email:   "no-es-email",
		ZipCode: "123",
	})
	require.Error(t, err)

	var verr *validator.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "name is required")
	assert.Contains(t, verr.Messages, "cpf must be a valid CPF")
	assert.Contains(t, verr.Messages, "cnpj must be a valid CNPJ")
	assert.Contains(t, verr.Messages, "email must be a valid email")
	assert.Contains(t, verr.Messages, "zip_code must be exactly 8 characters")
}

func TestStruct_DiveEnElementos(t *testing.T) {
	err := validator.Struct(&employeePayload{
		Name:    "Ana",
		CPF:     "52998224725",
		Email:   "ana@acme.com",
		Members: []string{"joao", " "},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is required")
}

func TestStruct_UsernameReservado(t *testing.T) {
	type payload struct {
		Username string `json:"username" validate:"notblank,ne_ignore_case=me"`
	}
	for _, name := range []string{"me", "ME", "Me"} {
		err := validator.Struct(&payload{Username: name})
		require.Error(t, err, name)
		assert.Equal(t, "username cannot be 'me'", err.Error())
	}
	assert.NoError(t, validator.Struct(&payload{Username: "meg"}))
}

func TestStruct_PunteroOpcionalSeValidaSiLlega(t *testing.T) {
	type inner struct {
		ZipCode string `json:"zip_code" validate:"notblank,len=8"`
	}
	type payload struct {
		Address *inner `json:"address" validate:"omitempty"`
	}
	assert.NoError(t, validator.Struct(&payload{}))
	err := validator.Struct(&payload{Address: &inner{ZipCode: "1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zip_code must be exactly 8 characters")
}
