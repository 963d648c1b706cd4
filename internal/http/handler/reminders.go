package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"keepnote/internal/auth"
	"keepnote/internal/lifecycle"
	"keepnote/internal/reminder"
)

// ReminderHandler serves the JSON reminder API under /api/v1/reminder.
type ReminderHandler struct {
	Svc *reminder.Service
}

type reminderReq struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reminderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	res := h.Svc.Create(r.Context(), auth.FromRequest(r), reminder.Reminder{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
	})
	switch res.Status {
	case lifecycle.StatusOK:
		writeJSON(w, http.StatusCreated, res.Entity)
	case lifecycle.StatusUnauthorized:
		w.WriteHeader(http.StatusUnauthorized)
	default:
		w.WriteHeader(http.StatusConflict)
	}
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	res := h.Svc.List(r.Context())
	if res.Status != lifecycle.StatusOK {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, res.Entity)
}

func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	res := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if res.Status != lifecycle.StatusOK {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, res.Entity)
}

func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req reminderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	res := h.Svc.Update(r.Context(), auth.FromRequest(r), chi.URLParam(r, "id"), reminder.Reminder{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
	})
	switch res.Status {
	case lifecycle.StatusOK:
		writeJSON(w, http.StatusOK, res.Entity)
	case lifecycle.StatusUnauthorized:
		w.WriteHeader(http.StatusUnauthorized)
	case lifecycle.StatusNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusConflict)
	}
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res := h.Svc.Delete(r.Context(), auth.FromRequest(r), chi.URLParam(r, "id"))
	switch res.Status {
	case lifecycle.StatusOK:
		w.WriteHeader(http.StatusOK)
	case lifecycle.StatusUnauthorized:
		w.WriteHeader(http.StatusUnauthorized)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}
