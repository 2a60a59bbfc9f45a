// Package dashboardapitest provides an in-process fake of the analytics
// backend for tests.
package dashboardapitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Response is a canned reply for one report route.
type Response struct {
	Status int
	Body   string
}

// RecordedRequest is what the fake saw for one call.
type RecordedRequest struct {
	Path        string
	ContentType string
	RequestID   string
	Body        []byte
}

// Decode unmarshals the recorded request body into v.
func (r RecordedRequest) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Server is a fake analytics backend mounted under an API prefix.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []RecordedRequest
}

// NewServer starts a fake backend serving POST {prefix}/dashboard/... routes.
// Both reports answer 200 with an empty array until configured otherwise.
// The server is closed when the test finishes.
func NewServer(t testing.TB, prefix string) *Server {
	t.Helper()

	s := &Server{
		responses: map[string]Response{
			MostUsedDomains: {Status: http.StatusOK, Body: `[]`},
			ServerUsage:     {Status: http.StatusOK, Body: `[]`},
		},
	}

	r := chi.NewRouter()
	r.Route(prefix, func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Post("/most-used-domains", s.handle(MostUsedDomains))
			r.Post("/server-usage-by-time-range", s.handle(ServerUsage))
		})
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Route keys for Respond.
const (
	MostUsedDomains = "most-used-domains"
	ServerUsage     = "server-usage-by-time-range"
)

// Respond sets the canned reply for route.
func (s *Server) Respond(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[route] = Response{Status: status, Body: body}
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) handle(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-ID"),
			Body:        body,
		})
		resp := s.responses[route]
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Status)
		_, _ = io.WriteString(w, resp.Body)
	}
}
