package note

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/lifecycle"
)

func newTestService() (*Service, *MemStore) {
	store := NewMemStore()
	return NewService(store, zerolog.Nop()), store
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res := svc.Create(ctx, Note{Title: "t", Content: "c", Status: "active"})
	require.Equal(t, lifecycle.StatusOK, res.Status)

	created := res.Entity
	assert.NotZero(t, created.ID, "id is store-assigned")
	assert.False(t, created.CreatedAt.IsZero(), "created timestamp is server-assigned")
	assert.Equal(t, "t", created.Title)
	assert.Equal(t, "c", created.Content)
	assert.Equal(t, "active", created.Status)

	got := svc.Get(ctx, created.ID)
	require.Equal(t, lifecycle.StatusOK, got.Status)
	assert.Equal(t, created, got.Entity)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		note Note
	}{
		{"empty title", Note{Content: "c", Status: "active"}},
		{"empty content", Note{Title: "t", Status: "active"}},
		{"empty status", Note{Title: "t", Content: "c"}},
		{"whitespace only", Note{Title: " ", Content: "c", Status: "active"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService()
			res := svc.Create(context.Background(), tt.note)
			assert.Equal(t, lifecycle.StatusValidationFailed, res.Status)

			rows, err := store.GetAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, rows, "validation failures never reach the store")
		})
	}
}

func TestCreateExtractsTags(t *testing.T) {
	svc, _ := newTestService()

	res := svc.Create(context.Background(), Note{
		Title:   "t",
		Content: "call #Bob about #bob and #Work",
		Status:  "active",
	})
	require.Equal(t, lifecycle.StatusOK, res.Status)
	assert.Equal(t, []string{"bob", "work"}, []string(res.Entity.Tags))
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := svc.Create(ctx, Note{Title: "t", Content: "c", Status: "active"}).Entity

	res := svc.Update(ctx, created.ID, Note{Title: "t2", Content: "c2", Status: "completed"})
	require.Equal(t, lifecycle.StatusOK, res.Status)

	updated := res.Entity
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "creation time survives updates")
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "completed", updated.Status)
}

func TestUpdateIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := svc.Create(ctx, Note{Title: "t", Content: "c", Status: "active"}).Entity

	payload := Note{Title: "t2", Content: "c2 #tag", Status: "active"}
	first := svc.Update(ctx, created.ID, payload)
	second := svc.Update(ctx, created.ID, payload)
	require.Equal(t, lifecycle.StatusOK, first.Status)
	require.Equal(t, lifecycle.StatusOK, second.Status)

	assert.Equal(t, first.Entity.Title, second.Entity.Title)
	assert.Equal(t, first.Entity.Content, second.Entity.Content)
	assert.Equal(t, first.Entity.Status, second.Entity.Status)
	assert.Equal(t, first.Entity.Tags, second.Entity.Tags)
	assert.True(t, second.Entity.CreatedAt.Equal(first.Entity.CreatedAt))
}

func TestUpdateMissing(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	res := svc.Update(ctx, 42, Note{Title: "t", Content: "c", Status: "active"})
	assert.Equal(t, lifecycle.StatusNotFound, res.Status)

	rows, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows, "failed update is a no-op on the store")
}

func TestDeleteThenReadNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := svc.Create(ctx, Note{Title: "t", Content: "c", Status: "active"}).Entity

	require.Equal(t, lifecycle.StatusOK, svc.Delete(ctx, created.ID).Status)
	assert.Equal(t, lifecycle.StatusNotFound, svc.Get(ctx, created.ID).Status)
	assert.Equal(t, lifecycle.StatusNotFound, svc.Delete(ctx, created.ID).Status)
	// repeated reads keep yielding the same outcome
	assert.Equal(t, lifecycle.StatusNotFound, svc.Get(ctx, created.ID).Status)
}

func TestList(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.Create(ctx, Note{Title: "a", Content: "c", Status: "active"})
	svc.Create(ctx, Note{Title: "b", Content: "c", Status: "completed"})

	res := svc.List(ctx)
	require.Equal(t, lifecycle.StatusOK, res.Status)
	assert.Len(t, res.Entity, 2)
}

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"none", "plain text", nil},
		{"dedup and lowercase", "#Go #go #GO", []string{"go"}},
		{"mixed", "ship #alpha then #beta", []string{"alpha", "beta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.content))
		})
	}
}
