// Package osditest runs an in-memory Action Network API for tests.
package osditest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the path the fake API is mounted under.
const APIPrefix = "/api/v2/"

// Request is one call received by the server.
type Request struct {
	Method    string
	Path      string
	Token     string
	RequestID string
	Status    int
	Body      json.RawMessage
}

// Server is a fake OSDI endpoint backed by httptest.
type Server struct {
	*httptest.Server

	Token  string
	Logger *slog.Logger // optional request log
	Tags   []string     // served by GET tags
	// PageSize is the number of tags per page; 0 means all on one page.
	PageSize int
	// FailPeopleWith, when non-zero, makes POST people/ answer that status.
	FailPeopleWith int
	// FailUpsertWith, when non-zero, makes PUT people/{id} answer that status.
	FailUpsertWith int

	mu       sync.Mutex
	requests []Request
	nextID   int
}

// New starts a server that accepts token.
func New(token string) *Server {
	s := &Server{Token: token}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.record)
	r.Use(s.logRequests)
	r.Use(s.auth)
	r.Route("/api/v2", func(r chi.Router) {
		r.Post("/people/", s.createPerson)
		r.Put("/people/{id}", s.updatePerson)
		r.Get("/tags", s.listTags)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL returns the API entry point, with trailing slash.
func (s *Server) BaseURL() string {
	return s.URL + APIPrefix
}

// Requests returns a copy of the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestsTo returns the calls with the given method.
func (s *Server) RequestsTo(method string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) == 0 {
			body = nil
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Token:     r.Header.Get("OSDI-API-Token"),
			RequestID: middleware.GetReqID(r.Context()),
			Body:      body,
		})
		s.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("OSDI-API-Token") != s.Token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "API Key invalid or not present"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) createPerson(w http.ResponseWriter, r *http.Request) {
	if s.FailPeopleWith != 0 {
		writeJSON(w, s.FailPeopleWith, map[string]string{"error": http.StatusText(s.FailPeopleWith)})
		return
	}

	var signup map[string]any
	if err := json.NewDecoder(r.Body).Decode(&signup); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.nextID++
	id := strconv.Itoa(s.nextID)
	s.mu.Unlock()

	person, _ := signup["person"].(map[string]any)
	if person == nil {
		person = map[string]any{}
	}
	person["identifiers"] = []string{"action_network:" + id}
	person["_links"] = map[string]any{
		"self": map[string]string{"href": s.URL + APIPrefix + "people/" + id},
	}
	writeJSON(w, http.StatusOK, person)
}

func (s *Server) updatePerson(w http.ResponseWriter, r *http.Request) {
	if s.FailUpsertWith != 0 {
		writeJSON(w, s.FailUpsertWith, map[string]string{"error": http.StatusText(s.FailUpsertWith)})
		return
	}

	id := chi.URLParam(r, "id")
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	patch["identifiers"] = []string{"action_network:" + id}
	patch["_links"] = map[string]any{
		"self": map[string]string{"href": s.URL + APIPrefix + "people/" + id},
	}
	writeJSON(w, http.StatusOK, patch)
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	size := s.PageSize
	if size <= 0 {
		size = len(s.Tags) + 1
	}

	start := (page - 1) * size
	end := start + size
	if start > len(s.Tags) {
		start = len(s.Tags)
	}
	if end > len(s.Tags) {
		end = len(s.Tags)
	}

	tags := make([]map[string]string, 0, end-start)
	for _, name := range s.Tags[start:end] {
		tags = append(tags, map[string]string{"name": name})
	}

	links := map[string]any{
		"self": map[string]string{"href": fmt.Sprintf("%s%stags?page=%d", s.URL, APIPrefix, page)},
	}
	if end < len(s.Tags) {
		links["next"] = map[string]string{"href": fmt.Sprintf("%s%stags?page=%d", s.URL, APIPrefix, page+1)}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_pages": (len(s.Tags) + size - 1) / size,
		"page":        page,
		"_links":      links,
		"_embedded":   map[string]any{"osdi:tags": tags},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/hal+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
