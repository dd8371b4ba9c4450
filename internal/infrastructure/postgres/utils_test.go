package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/office-api/internal/domain"
)

func TestWriteErr_UniqueViolationEsNameAlreadyUsed(t *testing.T) {
	err := writeErr("insert employee", &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})
	assert.ErrorIs(t, err, domain.ErrNameAlreadyUsed)
	assert.ErrorIs(t, err, domain.ErrUsedData)
}

func TestWriteErr_EnvuelveOtrosErrores(t *testing.T) {
	base := errors.New("conexión cerrada")
	err := writeErr("update task", base)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "update task")
	assert.NoError(t, writeErr("x", nil))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, isNoRows(errors.New("otro")))
}

func TestNullString(t *testing.T) {
	assert.Nil(t, nullString(""))
	v := nullString("abc")
	require.NotNil(t, v)
	assert.Equal(t, "abc", fromNull(v))
	assert.Equal(t, "", fromNull(nil))
}

func TestMigrationsEmbebidas(t *testing.T) {
	script, err := migrationsFS.ReadFile("migrations/001_init.sql")
	require.NoError(t, err)
	for _, table := range []string{"companies", "addresses", "employees", "projects", "teams", "tasks", "comments"} {
		assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS "+table)
	}
}
