package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"keepnote/internal/auth"
	"keepnote/internal/category"
	"keepnote/internal/lifecycle"
)

// CategoryHandler serves the JSON category API. Failures carry only a
// status code; diagnostic detail stays in the logs.
type CategoryHandler struct {
	Svc *category.Service
}

type categoryReq struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	res := h.Svc.Create(r.Context(), auth.FromRequest(r), category.Category{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
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

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	res := h.Svc.List(r.Context(), auth.FromRequest(r))
	switch res.Status {
	case lifecycle.StatusOK:
		writeJSON(w, http.StatusOK, res.Entity)
	case lifecycle.StatusUnauthorized:
		w.WriteHeader(http.StatusUnauthorized)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req categoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	res := h.Svc.Update(r.Context(), auth.FromRequest(r), id, category.Category{
		Name:        req.Name,
		Description: req.Description,
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

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	res := h.Svc.Delete(r.Context(), auth.FromRequest(r), id)
	switch res.Status {
	case lifecycle.StatusOK:
		w.WriteHeader(http.StatusOK)
	case lifecycle.StatusUnauthorized:
		w.WriteHeader(http.StatusUnauthorized)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}
