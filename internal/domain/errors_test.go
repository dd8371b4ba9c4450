package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/office-api/internal/domain"
)

func TestErrores_TipoPorErrorsIs(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{domain.ErrTeamNotFound, domain.ErrNotFound},
		{domain.ErrNotWorkingOnProject, domain.ErrNotFound},
		{domain.ErrNameAlreadyUsed, domain.ErrUsedData},
		{domain.ErrManagerCannotJoinTeam, domain.ErrInvalidData},
		{domain.ErrDeadlineInPast, domain.ErrInvalidData},
		{domain.ErrPasswordMismatch, domain.ErrLoginFailed},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.kind, tc.err.Error())
	}
	assert.False(t, errors.Is(domain.ErrTeamNotFound, domain.ErrInvalidData))
}

func TestErrores_EnvueltosConservanTipoYMensaje(t *testing.T) {
	err := fmt.Errorf("team: %w", domain.ErrEmployeeAlreadyOnTeam)

	assert.ErrorIs(t, err, domain.ErrEmployeeAlreadyOnTeam)
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	var derr *domain.Error
	assert.ErrorAs(t, err, &derr)
	assert.Equal(t, "Already on a team", derr.Message)
}

func TestNameAlreadyUsed_EncadenaTipos(t *testing.T) {
	err := domain.NameAlreadyUsed("username")

	assert.ErrorIs(t, err, domain.ErrNameAlreadyUsed)
	assert.ErrorIs(t, err, domain.ErrUsedData)
	assert.Equal(t, "username already in use", err.Error())
}
