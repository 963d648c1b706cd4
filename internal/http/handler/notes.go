package handler

import (
	"net/http"
	"strconv"

	"keepnote/internal/lifecycle"
	"keepnote/internal/note"
)

// NoteHandler serves the page-oriented note endpoints. The view layer
// is external; these handlers answer with the model a page would render
// (the note list plus an optional inline message) or a redirect.
type NoteHandler struct {
	Svc *note.Service
}

type notePage struct {
	Notes   []note.Note `json:"notes"`
	Message string      `json:"message,omitempty"`
}

// renderPage re-displays the current list with an inline message. Page
// endpoints never answer with a bare error page.
func (h *NoteHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	page := notePage{Notes: []note.Note{}, Message: msg}
	if res := h.Svc.List(r.Context()); res.Status == lifecycle.StatusOK {
		page.Notes = res.Entity
	}
	writeJSON(w, status, page)
}

func noteFromForm(r *http.Request) note.Note {
	return note.Note{
		Title:   r.FormValue("noteTitle"),
		Content: r.FormValue("noteContent"),
		Status:  r.FormValue("noteStatus"),
	}
}

func noteID(r *http.Request, field string) (int, bool) {
	id, err := strconv.Atoi(r.FormValue(field))
	return id, err == nil
}

// Index lists all notes.
func (h *NoteHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "")
}

// AddForm returns the blank form model for a new note.
func (h *NoteHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, note.Note{})
}

// SaveNote creates a note from form fields and sends the browser back
// to the list.
func (h *NoteHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	res := h.Svc.Create(r.Context(), noteFromForm(r))
	switch res.Status {
	case lifecycle.StatusOK:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case lifecycle.StatusValidationFailed:
		h.renderPage(w, r, http.StatusOK, "Fill every field..")
	default:
		h.renderPage(w, r, http.StatusConflict, "note could not be saved")
	}
}

// EditForm fetches an existing note as the form model for editing.
func (h *NoteHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r, "NoteID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := h.Svc.Get(r.Context(), id)
	if res.Status != lifecycle.StatusOK {
		h.renderPage(w, r, http.StatusNotFound, "note not found")
		return
	}
	writeJSON(w, http.StatusOK, res.Entity)
}

// DeleteNote removes a note and sends the browser back to the list.
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r, "NoteID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := h.Svc.Delete(r.Context(), id)
	if res.Status != lifecycle.StatusOK {
		h.renderPage(w, r, http.StatusNotFound, "note not found")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Add is the explicit-field create variant: it answers with the
// refreshed list, and an empty required field re-displays the list with
// an inline message instead of an error status.
func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	res := h.Svc.Create(r.Context(), noteFromForm(r))
	switch res.Status {
	case lifecycle.StatusOK:
		h.renderPage(w, r, http.StatusOK, "")
	case lifecycle.StatusValidationFailed:
		h.renderPage(w, r, http.StatusOK, "Fill every field..")
	default:
		h.renderPage(w, r, http.StatusConflict, "note could not be saved")
	}
}

// Update is the explicit-field full-record replace variant.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r, "noteId")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := h.Svc.Update(r.Context(), id, noteFromForm(r))
	switch res.Status {
	case lifecycle.StatusOK:
		h.renderPage(w, r, http.StatusOK, "")
	case lifecycle.StatusNotFound:
		h.renderPage(w, r, http.StatusNotFound, "note not found")
	case lifecycle.StatusValidationFailed:
		h.renderPage(w, r, http.StatusOK, "Fill every field..")
	default:
		h.renderPage(w, r, http.StatusConflict, "note could not be updated")
	}
}

// Delete is the explicit-field delete variant.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r, "noteId")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	res := h.Svc.Delete(r.Context(), id)
	if res.Status != lifecycle.StatusOK {
		h.renderPage(w, r, http.StatusNotFound, "note not found")
		return
	}
	h.renderPage(w, r, http.StatusOK, "")
}
