package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain"
)

func design() dto.TaskRequest {
	return dto.TaskRequest{Title: "Design", Description: "draft", Deadline: "20/11/2026 18:00"}
}

func TestTaskCreate_YListadoDelEquipo(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()
	_, err := f.teams.Create(ctx, f.manager, dto.CreateTeamRequest{Name: "Red", Usernames: []string{"joao"}})
	require.NoError(t, err)

	task, err := f.tasks.Create(ctx, f.manager, design())
	require.NoError(t, err)
	assert.Equal(t, "20/11/2026 18:00", task.Deadline)
	assert.False(t, task.Expired)

	list, err := f.tasks.List(ctx, f.joao)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, task.ID, list[0].ID)

	list, err = f.tasks.List(ctx, f.manager)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// pedro no está en ningún equipo.
	_, err = f.tasks.List(ctx, f.pedro)
	assert.ErrorIs(t, err, domain.ErrNotWorkingOnProject)
}

func TestTaskCreate_Validaciones(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	past := design()
	past.Deadline = "18/10/2026 09:59"
	_, err := f.tasks.Create(ctx, f.manager, past)
	assert.ErrorIs(t, err, domain.ErrDeadlineInPast)

	// Igual a "ahora" es válido.
	exact := design()
	exact.Deadline = fixedNow.Format("02/01/2006 15:04")
	_, err = f.tasks.Create(ctx, f.manager, exact)
	require.NoError(t, err)

	_, err = f.tasks.Create(ctx, f.manager, design())
	assert.ErrorIs(t, err, domain.ErrUsedData)

	// Sin proyecto gestionado.
	other := design()
	other.Title = "Other"
	_, err = f.tasks.Create(ctx, asManager(f.pedro), other)
	assert.ErrorIs(t, err, domain.ErrNotWorkingOnProject)
}

func TestTaskUpdate_ExcluyeASiMismaYExpira(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()
	task, err := f.tasks.Create(ctx, f.manager, design())
	require.NoError(t, err)

	in := design()
	in.Description = "final"
	out, err := f.tasks.Update(ctx, f.manager, task.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "final", out.Description)

	// Dos meses después la tarea figura vencida.
	f.tasks.now = func() time.Time { return fixedNow.AddDate(0, 2, 0) }
	got, err := f.tasks.Get(ctx, f.manager, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Expired)
}

func TestTask_OtroProyectoEsNotFound(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()
	task, err := f.tasks.Create(ctx, f.manager, design())
	require.NoError(t, err)

	_, err = f.projects.Create(ctx, f.acme, dto.ProjectRequest{Name: "Gemini", Description: "d", ManagerUsername: "pedro", Deadline: "20/12/2026"})
	require.NoError(t, err)
	pedro := asManager(f.pedro)

	_, err = f.tasks.Get(ctx, pedro, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.ErrorIs(t, f.tasks.Delete(ctx, pedro, task.ID), domain.ErrTaskNotFound)

	require.NoError(t, f.tasks.Delete(ctx, f.manager, task.ID))
	_, err = f.tasks.Get(ctx, f.manager, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
