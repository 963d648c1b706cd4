package reminder

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/auth"
	"keepnote/internal/lifecycle"
)

func newTestService(requireAuth bool) (*Service, *MemStore) {
	store := NewMemStore()
	return NewService(store, zerolog.Nop(), requireAuth), store
}

func TestCreateAssignsIDWhenBlank(t *testing.T) {
	svc, _ := newTestService(false)

	res := svc.Create(context.Background(), auth.Anonymous(), Reminder{Name: "standup"})
	require.Equal(t, lifecycle.StatusOK, res.Status)

	assert.NotEmpty(t, res.Entity.ID)
	assert.False(t, res.Entity.CreationDate.IsZero())
}

func TestCreateKeepsClientID(t *testing.T) {
	svc, _ := newTestService(false)

	res := svc.Create(context.Background(), auth.Anonymous(), Reminder{ID: "r1", Name: "standup"})
	require.Equal(t, lifecycle.StatusOK, res.Status)
	assert.Equal(t, "r1", res.Entity.ID)
}

func TestCreateDuplicateIDConflict(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	require.Equal(t, lifecycle.StatusOK, svc.Create(ctx, auth.Anonymous(), Reminder{ID: "r1", Name: "a"}).Status)

	res := svc.Create(ctx, auth.Anonymous(), Reminder{ID: "r1", Name: "b"})
	assert.Equal(t, lifecycle.StatusConflict, res.Status)

	got := svc.Get(ctx, "r1")
	require.Equal(t, lifecycle.StatusOK, got.Status)
	assert.Equal(t, "a", got.Entity.Name, "duplicate create must not overwrite")
}

func TestRequireAuthPolicy(t *testing.T) {
	svc, store := newTestService(true)
	ctx := context.Background()

	res := svc.Create(ctx, auth.Anonymous(), Reminder{ID: "r1"})
	assert.Equal(t, lifecycle.StatusUnauthorized, res.Status)

	rows, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	res = svc.Create(ctx, auth.WithIdentity("u1"), Reminder{ID: "r1"})
	assert.Equal(t, lifecycle.StatusOK, res.Status)

	// reads stay open under the policy
	assert.Equal(t, lifecycle.StatusOK, svc.Get(ctx, "r1").Status)
	assert.Equal(t, lifecycle.StatusOK, svc.List(ctx).Status)

	// mutations remain gated
	assert.Equal(t, lifecycle.StatusUnauthorized, svc.Update(ctx, auth.Anonymous(), "r1", Reminder{Name: "x"}).Status)
	assert.Equal(t, lifecycle.StatusUnauthorized, svc.Delete(ctx, auth.Anonymous(), "r1").Status)
}

func TestUpdatePreservesCreationDate(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	created := svc.Create(ctx, auth.Anonymous(), Reminder{ID: "r1", Name: "a"}).Entity

	res := svc.Update(ctx, auth.Anonymous(), "r1", Reminder{Name: "b", Type: "email"})
	require.Equal(t, lifecycle.StatusOK, res.Status)

	assert.Equal(t, "b", res.Entity.Name)
	assert.Equal(t, "email", res.Entity.Type)
	assert.True(t, res.Entity.CreationDate.Equal(created.CreationDate))
}

func TestUpdateMissing(t *testing.T) {
	svc, _ := newTestService(false)

	res := svc.Update(context.Background(), auth.Anonymous(), "ghost", Reminder{Name: "x"})
	assert.Equal(t, lifecycle.StatusNotFound, res.Status)
}

func TestDeleteThenRead(t *testing.T) {
	svc, _ := newTestService(false)
	ctx := context.Background()

	svc.Create(ctx, auth.Anonymous(), Reminder{ID: "r1"})

	assert.Equal(t, lifecycle.StatusOK, svc.Delete(ctx, auth.Anonymous(), "r1").Status)
	assert.Equal(t, lifecycle.StatusNotFound, svc.Get(ctx, "r1").Status)
	assert.Equal(t, lifecycle.StatusNotFound, svc.Delete(ctx, auth.Anonymous(), "r1").Status)
}
