package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/auth"
	"keepnote/internal/config"
	httpx "keepnote/internal/http"
	"keepnote/internal/reminder"
)

func newReminderServer(requireAuth bool) (stdhttp.Handler, *auth.JWT) {
	store := reminder.NewMemStore()
	jwtSvc := auth.NewJWT("test-secret")
	cfg := config.Config{ReminderRequireAuth: requireAuth}
	return httpx.NewReminderRouter(cfg, store, jwtSvc, zerolog.Nop()), jwtSvc
}

func TestReminderCRUD(t *testing.T) {
	h, _ := newReminderServer(false)

	// create with client-supplied id, no auth required by default
	rec := doJSON(h, stdhttp.MethodPost, "/api/v1/reminder", "", map[string]any{"id": "r1", "name": "standup"})
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	var created reminder.Reminder
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "r1", created.ID)
	assert.False(t, created.CreationDate.IsZero())

	// duplicate
	assert.Equal(t, stdhttp.StatusConflict,
		doJSON(h, stdhttp.MethodPost, "/api/v1/reminder", "", map[string]any{"id": "r1"}).Code)

	// blank id gets one assigned
	rec = doJSON(h, stdhttp.MethodPost, "/api/v1/reminder", "", map[string]any{"name": "review"})
	require.Equal(t, stdhttp.StatusCreated, rec.Code)
	var assigned reminder.Reminder
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&assigned))
	assert.NotEmpty(t, assigned.ID)

	// read
	assert.Equal(t, stdhttp.StatusOK, doJSON(h, stdhttp.MethodGet, "/api/v1/reminder/r1", "", nil).Code)
	assert.Equal(t, stdhttp.StatusNotFound, doJSON(h, stdhttp.MethodGet, "/api/v1/reminder/ghost", "", nil).Code)

	rec = doJSON(h, stdhttp.MethodGet, "/api/v1/reminder", "", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var rows []reminder.Reminder
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	assert.Len(t, rows, 2)

	// update
	rec = doJSON(h, stdhttp.MethodPut, "/api/v1/reminder/r1", "", map[string]any{"name": "renamed"})
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var updated reminder.Reminder
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "renamed", updated.Name)

	assert.Equal(t, stdhttp.StatusNotFound,
		doJSON(h, stdhttp.MethodPut, "/api/v1/reminder/ghost", "", map[string]any{"name": "x"}).Code)

	// delete
	assert.Equal(t, stdhttp.StatusOK, doJSON(h, stdhttp.MethodDelete, "/api/v1/reminder/r1", "", nil).Code)
	assert.Equal(t, stdhttp.StatusNotFound, doJSON(h, stdhttp.MethodDelete, "/api/v1/reminder/r1", "", nil).Code)
	assert.Equal(t, stdhttp.StatusNotFound, doJSON(h, stdhttp.MethodGet, "/api/v1/reminder/r1", "", nil).Code)
}

func TestReminderGatePolicy(t *testing.T) {
	h, jwtSvc := newReminderServer(true)

	body := map[string]any{"id": "r1", "name": "standup"}
	assert.Equal(t, stdhttp.StatusUnauthorized,
		doJSON(h, stdhttp.MethodPost, "/api/v1/reminder", "", body).Code)

	tok, err := jwtSvc.Sign("u1")
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusCreated,
		doJSON(h, stdhttp.MethodPost, "/api/v1/reminder", tok, body).Code)

	// reads stay open even when mutations are gated
	assert.Equal(t, stdhttp.StatusOK, doJSON(h, stdhttp.MethodGet, "/api/v1/reminder/r1", "", nil).Code)

	assert.Equal(t, stdhttp.StatusUnauthorized,
		doJSON(h, stdhttp.MethodDelete, "/api/v1/reminder/r1", "", nil).Code)
	assert.Equal(t, stdhttp.StatusOK, doJSON(h, stdhttp.MethodGet, "/api/v1/reminder/r1", "", nil).Code)
}
