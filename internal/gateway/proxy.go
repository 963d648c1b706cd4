package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
)

// NewProxy routes by path prefix to the three resource services:
// /category to the category service, /api/v1/reminder to the reminder
// service, and everything else to the note service.
func NewProxy(noteURL, categoryURL, reminderURL string) (http.Handler, error) {
	noteProxy, err := upstream(noteURL)
	if err != nil {
		return nil, err
	}
	categoryProxy, err := upstream(categoryURL)
	if err != nil {
		return nil, err
	}
	reminderProxy, err := upstream(reminderURL)
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/category"):
			categoryProxy.ServeHTTP(w, r)
		case strings.HasPrefix(r.URL.Path, "/api/v1/reminder"):
			reminderProxy.ServeHTTP(w, r)
		default:
			noteProxy.ServeHTTP(w, r)
		}
	}), nil
}

func upstream(raw string) (*httputil.ReverseProxy, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return httputil.NewSingleHostReverseProxy(u), nil
}
