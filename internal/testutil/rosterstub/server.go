// Package rosterstub is an in-memory activities server implementing the
// roster HTTP contract for tests.
package rosterstub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync"

	"github.com/gorilla/mux"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/roster"
)

// Request is a recorded inbound call.
type Request struct {
	Method        string
	Path          string
	EscapedPath   string
	Email         string
	Authorization string
	RequestID     string
	TraceParent   string
}

// Server is a roster server backed by memory.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	users      map[string]string
	activities []roster.Activity
	requests   []Request
	overrides  map[string]override
}

type override struct {
	status int
	body   string
}

// TB is the subset of testing.TB the stub needs.
type TB interface {
	Helper()
	Cleanup(func())
}

// Option customises a Server.
type Option func(*Server)

// WithUsers replaces the accepted username/password pairs.
func WithUsers(users map[string]string) Option {
	return func(s *Server) { s.users = users }
}

// WithActivities replaces the seeded roster. Order is preserved on the wire.
func WithActivities(activities ...roster.Activity) Option {
	return func(s *Server) { s.activities = activities }
}

// New starts a stub server seeded with a few activities and the "jdoe"/"secret"
// teacher account. It is closed when the test ends.
func New(t TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		users:      map[string]string{"jdoe": "secret"},
		activities: DefaultActivities(),
		overrides:  map[string]override{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

// DefaultActivities returns the seed roster.
func DefaultActivities() []roster.Activity {
	return []roster.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{},
		},
	}
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	r.UseEncodedPath()
	r.Use(s.record)
	r.HandleFunc("/check-auth", s.handleCheckAuth).Methods(http.MethodGet)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/activities", s.handleActivities).Methods(http.MethodGet)
	r.HandleFunc("/activities/{name}/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/activities/{name}/unregister", s.handleUnregister).Methods(http.MethodDelete)
	return r
}

// Fail makes every call to route answer status with body until Clear is
// called. route is one of "check-auth", "login", "activities", "signup" or
// "unregister".
func (s *Server) Fail(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[route] = override{status: status, body: body}
}

// Clear removes a Fail override.
func (s *Server) Clear(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides, route)
}

// Requests returns every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Count returns how many requests matched method and decoded path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Participants returns the current participants of activity.
func (s *Server) Participants(activity string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(activity); i >= 0 {
		return slices.Clone(s.activities[i].Participants)
	}
	return nil
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			EscapedPath:   r.URL.EscapedPath(),
			Email:         r.URL.Query().Get("email"),
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			TraceParent:   r.Header.Get("Traceparent"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) overridden(w http.ResponseWriter, route string) bool {
	s.mu.Lock()
	o, ok := s.overrides[route]
	s.mu.Unlock()
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(o.status)
	_, _ = w.Write([]byte(o.body))
	return true
}

func (s *Server) authenticate(r *http.Request) (string, bool) {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	want, known := s.users[user]
	return user, known && want == pass
}

func (s *Server) handleCheckAuth(w http.ResponseWriter, r *http.Request) {
	if s.overridden(w, "check-auth") {
		return
	}
	if user, ok := s.authenticate(r); ok {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": true, "username": user})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.overridden(w, "login") {
		return
	}
	user, ok := s.authenticate(r)
	if !ok {
		w.Header().Set("WWW-Authenticate", "Basic")
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful", "username": user})
}

func (s *Server) handleActivities(w http.ResponseWriter, _ *http.Request) {
	if s.overridden(w, "activities") {
		return
	}
	s.mu.Lock()
	snapshot := roster.Roster{Activities: slices.Clone(s.activities)}
	body, err := snapshot.MarshalJSON()
	s.mu.Unlock()
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if s.overridden(w, "signup") {
		return
	}
	name, email, ok := s.mutationArgs(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(name)
	if i < 0 {
		writeDetail(w, http.StatusNotFound, "Activity not found")
		return
	}
	a := &s.activities[i]
	if slices.Contains(a.Participants, email) {
		writeDetail(w, http.StatusBadRequest, "Student is already signed up")
		return
	}
	if len(a.Participants) >= a.MaxParticipants {
		writeDetail(w, http.StatusBadRequest, "Activity full")
		return
	}
	a.Participants = append(a.Participants, email)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed up " + email + " for " + name})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	if s.overridden(w, "unregister") {
		return
	}
	name, email, ok := s.mutationArgs(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(name)
	if i < 0 {
		writeDetail(w, http.StatusNotFound, "Activity not found")
		return
	}
	a := &s.activities[i]
	j := slices.Index(a.Participants, email)
	if j < 0 {
		writeDetail(w, http.StatusBadRequest, "Student is not signed up for this activity")
		return
	}
	a.Participants = slices.Delete(a.Participants, j, j+1)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Unregistered " + email + " from " + name})
}

func (s *Server) mutationArgs(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	if _, ok := s.authenticate(r); !ok {
		w.Header().Set("WWW-Authenticate", "Basic")
		writeDetail(w, http.StatusUnauthorized, "Authentication required")
		return "", "", false
	}
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid activity name")
		return "", "", false
	}
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Email is required")
		return "", "", false
	}
	return name, email, true
}

// indexOf must be called with s.mu held.
func (s *Server) indexOf(name string) int {
	return slices.IndexFunc(s.activities, func(a roster.Activity) bool { return a.Name == name })
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
