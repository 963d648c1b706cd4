package gateway

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LogFilter records the method and target of every request ahead of
// routing. It applies unconditionally and never short-circuits.
type LogFilter struct {
	Log zerolog.Logger
}

func (f *LogFilter) Applies(*http.Request) bool { return true }
func (f *LogFilter) Order() int                 { return 1 }
func (f *LogFilter) Phase() Phase               { return PhasePre }

func (f *LogFilter) Execute(r *http.Request) Result {
	f.Log.Info().
		Str("method", r.Method).
		Str("uri", r.URL.RequestURI()).
		Msg("request")
	return Pass(r)
}

// TraceFilter attaches a request id so gateway and service logs can be
// correlated. An id supplied by the caller is kept.
type TraceFilter struct{}

func (TraceFilter) Applies(*http.Request) bool { return true }
func (TraceFilter) Order() int                 { return 2 }
func (TraceFilter) Phase() Phase               { return PhasePre }

func (TraceFilter) Execute(r *http.Request) Result {
	if r.Header.Get("X-Request-Id") == "" {
		r.Header.Set("X-Request-Id", uuid.NewString())
	}
	return Pass(r)
}

// CompletionFilter logs the routed response status after the fact.
type CompletionFilter struct {
	Log zerolog.Logger
}

func (f *CompletionFilter) Applies(*http.Request) bool { return true }
func (f *CompletionFilter) Order() int                 { return 1 }
func (f *CompletionFilter) Phase() Phase               { return PhasePost }

func (f *CompletionFilter) Execute(r *http.Request) Result {
	f.Log.Info().
		Str("method", r.Method).
		Str("uri", r.URL.RequestURI()).
		Int("status", ResponseStatus(r)).
		Msg("response")
	return Pass(r)
}
