package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"keepnote/internal/auth"
	"keepnote/internal/category"
	"keepnote/internal/config"
	"keepnote/internal/http/handler"
	mw "keepnote/internal/http/middleware"
	"keepnote/internal/note"
	"keepnote/internal/reminder"
)

func base(cfg config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// NewNoteRouter wires the page-oriented note service.
func NewNoteRouter(cfg config.Config, store note.Store, log zerolog.Logger) http.Handler {
	r := base(cfg)

	h := &handler.NoteHandler{Svc: note.NewService(store, log)}
	r.Get("/", h.Index)
	r.Get("/addNote", h.AddForm)
	r.Post("/saveNote", h.SaveNote)
	r.Get("/updateNote", h.EditForm)
	r.Get("/deleteNote", h.DeleteNote)
	r.Post("/add", h.Add)
	r.Post("/update", h.Update)
	r.Post("/delete", h.Delete)

	return r
}

// NewCategoryRouter wires the session-gated category API.
func NewCategoryRouter(cfg config.Config, store category.Store, jwtSvc *auth.JWT, log zerolog.Logger) http.Handler {
	r := base(cfg)

	h := &handler.CategoryHandler{Svc: category.NewService(store, log)}
	r.Route("/category", func(r chi.Router) {
		r.Use(auth.Extract(jwtSvc))

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// NewReminderRouter wires the reminder API. The auth gate on mutating
// operations follows cfg.ReminderRequireAuth.
func NewReminderRouter(cfg config.Config, store reminder.Store, jwtSvc *auth.JWT, log zerolog.Logger) http.Handler {
	r := base(cfg)

	h := &handler.ReminderHandler{Svc: reminder.NewService(store, log, cfg.ReminderRequireAuth)}
	r.Route("/api/v1/reminder", func(r chi.Router) {
		r.Use(auth.Extract(jwtSvc))

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
