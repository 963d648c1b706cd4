package gateway

import (
	"context"
	"net/http"
	"sort"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Pipeline is the ordered filter chain built once at startup and held
// immutable afterwards. Filters sort ascending by Order within each
// phase; registration order breaks ties.
type Pipeline struct {
	pre  []Filter
	post []Filter
}

func NewPipeline(filters ...Filter) *Pipeline {
	p := &Pipeline{}
	for _, f := range filters {
		switch f.Phase() {
		case PhasePre:
			p.pre = append(p.pre, f)
		case PhasePost:
			p.post = append(p.post, f)
		}
	}
	sort.SliceStable(p.pre, func(i, j int) bool { return p.pre[i].Order() < p.pre[j].Order() })
	sort.SliceStable(p.post, func(i, j int) bool { return p.post[i].Order() < p.post[j].Order() })
	return p
}

type respStatusKey struct{}

// ResponseStatus exposes the routed response status to post filters.
// Zero before the response is produced.
func ResponseStatus(r *http.Request) int {
	if v, ok := r.Context().Value(respStatusKey{}).(int); ok {
		return v
	}
	return 0
}

// Handler runs the pre phase, the routed handler, then the post phase.
// A short-circuiting pre filter skips both the remaining filters and
// the handler. Post filters run after the response is written, so a
// short-circuit there only stops the rest of the chain.
func (p *Pipeline) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, f := range p.pre {
			if !f.Applies(r) {
				continue
			}
			out := f.Execute(r)
			if out.Response != nil {
				w.WriteHeader(out.Response.Status)
				_, _ = w.Write(out.Response.Body)
				return
			}
			if out.Request != nil {
				r = out.Request
			}
		}

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		pr := r.WithContext(context.WithValue(r.Context(), respStatusKey{}, ww.Status()))
		for _, f := range p.post {
			if !f.Applies(pr) {
				continue
			}
			out := f.Execute(pr)
			if out.Response != nil {
				break
			}
			if out.Request != nil {
				pr = out.Request
			}
		}
	})
}
