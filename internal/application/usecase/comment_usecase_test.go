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

func TestCommentCreate_SoloEnElProyectoDondeTrabaja(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()
	_, err := f.teams.Create(ctx, f.manager, dto.CreateTeamRequest{Name: "Red", Usernames: []string{"joao"}})
	require.NoError(t, err)
	task, err := f.tasks.Create(ctx, f.manager, design())
	require.NoError(t, err)

	out, err := f.comments.Create(ctx, f.joao, task.ID, dto.CommentRequest{Content: "on it"})
	require.NoError(t, err)
	assert.Equal(t, "joao", out.OwnerUsername)
	assert.Equal(t, "18/10/2026 10:00:00", out.PostedAt)

	_, err = f.comments.Create(ctx, f.manager, task.ID, dto.CommentRequest{Content: "thanks"})
	require.NoError(t, err)

	// pedro no trabaja en el proyecto.
	_, err = f.comments.Create(ctx, f.pedro, task.ID, dto.CommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = f.comments.Create(ctx, f.joao, "missing", dto.CommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestComment_ListadosMasRecientesPrimero(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()
	_, err := f.teams.Create(ctx, f.manager, dto.CreateTeamRequest{Name: "Red", Usernames: []string{"joao"}})
	require.NoError(t, err)
	task, err := f.tasks.Create(ctx, f.manager, design())
	require.NoError(t, err)

	first, err := f.comments.Create(ctx, f.joao, task.ID, dto.CommentRequest{Content: "first"})
	require.NoError(t, err)
	f.comments.now = func() time.Time { return fixedNow.Add(time.Hour) }
	second, err := f.comments.Create(ctx, f.joao, task.ID, dto.CommentRequest{Content: "second"})
	require.NoError(t, err)

	mine, err := f.comments.ListMine(ctx, f.joao)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	byTask, err := f.comments.ListByTask(ctx, f.manager, task.ID)
	require.NoError(t, err)
	assert.Len(t, byTask, 2)

	got, err := f.tasks.Get(ctx, f.manager, task.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "second", got.Comments[0].Content)
}

func TestComment_SoloElAutorEditaOBorra(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()
	_, err := f.teams.Create(ctx, f.manager, dto.CreateTeamRequest{Name: "Red", Usernames: []string{"joao", "pedro"}})
	require.NoError(t, err)
	task, err := f.tasks.Create(ctx, f.manager, design())
	require.NoError(t, err)
	c, err := f.comments.Create(ctx, f.joao, task.ID, dto.CommentRequest{Content: "draft"})
	require.NoError(t, err)

	_, err = f.comments.Update(ctx, f.pedro, c.ID, dto.CommentRequest{Content: "hijack"})
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	assert.ErrorIs(t, f.comments.Delete(ctx, f.pedro, c.ID), domain.ErrCommentNotFound)

	f.comments.now = func() time.Time { return fixedNow.Add(time.Hour) }
	out, err := f.comments.Update(ctx, f.joao, c.ID, dto.CommentRequest{Content: "final"})
	require.NoError(t, err)
	assert.Equal(t, "final", out.Content)
	assert.Equal(t, c.PostedAt, out.PostedAt, "posted_at no cambia al editar")

	require.NoError(t, f.comments.Delete(ctx, f.joao, c.ID))
	mine, err := f.comments.ListMine(ctx, f.joao)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestComment_TareaBorradaArrastraComentarios(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()
	_, err := f.teams.Create(ctx, f.manager, dto.CreateTeamRequest{Name: "Red", Usernames: []string{"joao"}})
	require.NoError(t, err)
	task, err := f.tasks.Create(ctx, f.manager, design())
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, f.joao, task.ID, dto.CommentRequest{Content: "x"})
	require.NoError(t, err)

	require.NoError(t, f.tasks.Delete(ctx, f.manager, task.ID))

	mine, err := f.comments.ListMine(ctx, f.joao)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
