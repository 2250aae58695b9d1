package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexjohnson-dev/portfolio-backend/internal/database"
)

func newTestService(t *testing.T) (*Service, context.Context) {
	t.Helper()
	return NewService(database.NewMemoryStore()), context.Background()
}

func TestEnsureDefaultIdempotent(t *testing.T) {
	svc, ctx := newTestService(t)

	created, err := svc.EnsureDefault(ctx, Default())
	require.NoError(t, err)
	require.True(t, created)

	// second call must be a no-op
	created, err = svc.EnsureDefault(ctx, Default())
	require.NoError(t, err)
	require.False(t, created)

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alex Johnson", p.Name)
	require.NotEmpty(t, p.ID, "identifier should be rendered as text")
	require.True(t, p.CreatedAt.Equal(p.UpdatedAt), "fresh profile should have created_at == updated_at")
	require.Len(t, p.Projects, 1)
}

func TestGetMissingProfile(t *testing.T) {
	svc, ctx := newTestService(t)
	_, err := svc.Get(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc, ctx := newTestService(t)
	_, err := svc.EnsureDefault(ctx, Default())
	require.NoError(t, err)

	before, err := svc.Get(ctx)
	require.NoError(t, err)

	bio := "new bio"
	p, err := svc.Update(ctx, &Update{Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, "new bio", p.Bio)
	// untouched fields stay as they were
	require.Equal(t, before.Name, p.Name)
	require.Equal(t, before.Title, p.Title)
	require.Equal(t, before.Skills, p.Skills)
	// updated_at always refreshed
	require.False(t, p.UpdatedAt.Before(before.UpdatedAt))
	require.True(t, p.CreatedAt.Equal(before.CreatedAt))
}

func TestUpdateNoChangeStillSucceeds(t *testing.T) {
	svc, ctx := newTestService(t)
	_, err := svc.EnsureDefault(ctx, Default())
	require.NoError(t, err)

	cur, err := svc.Get(ctx)
	require.NoError(t, err)

	// writing the same value must not be reported as a missing profile
	p, err := svc.Update(ctx, &Update{Bio: &cur.Bio})
	require.NoError(t, err)
	require.Equal(t, cur.Bio, p.Bio)
}

func TestUpdateMissingProfile(t *testing.T) {
	svc, ctx := newTestService(t)
	name := "x"
	_, err := svc.Update(ctx, &Update{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddProjectAppends(t *testing.T) {
	svc, ctx := newTestService(t)
	_, err := svc.EnsureDefault(ctx, Default())
	require.NoError(t, err)

	before, err := svc.Get(ctx)
	require.NoError(t, err)

	prj, err := svc.AddProject(ctx, &ProjectInput{Name: "CLI Tool", Description: "terminal helper"})
	require.NoError(t, err)
	require.NotEmpty(t, prj.ID)
	require.NotNil(t, prj.Technologies, "technologies should default to empty, not null")

	after, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, after.Projects, len(before.Projects)+1)
	last := after.Projects[len(after.Projects)-1]
	require.Equal(t, prj.ID, last.ID)
	require.Equal(t, "CLI Tool", last.Name)

	// identifiers stay unique across appends
	seen := map[string]bool{}
	for _, p := range after.Projects {
		require.False(t, seen[p.ID], "duplicate project id %s", p.ID)
		seen[p.ID] = true
	}

	// appending a project leaves updated_at alone
	require.True(t, after.UpdatedAt.Equal(before.UpdatedAt))
}

func TestAddProjectMissingProfile(t *testing.T) {
	svc, ctx := newTestService(t)
	_, err := svc.AddProject(ctx, &ProjectInput{Name: "p", Description: "d"})
	require.ErrorIs(t, err, ErrNotFound)
}
