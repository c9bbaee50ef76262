// Package testutil provides an in-memory stub of the remote gym-management
// API for exercising the client core without a real backend.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gymkit/dashboard/internal/api/dto"
)

// Account is a login account known to the stub backend.
type Account struct {
	Password string
	Role     string
	User     dto.UserPayload
}

// GymAPI is a stub backend holding members and trainers in memory. It issues
// a fixed bearer token at login and rejects authenticated calls without it.
type GymAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	nextID   int
	token    string
	Accounts map[string]Account
	Members  []dto.MemberPayload
	Trainers []dto.TrainerPayload
	// Requests counts calls per "METHOD /path" key.
	Requests map[string]int
	// RawBodies keeps the last request body per "METHOD /path" key.
	RawBodies map[string]string
	// FailAuth forces 401 on every authenticated endpoint.
	FailAuth bool
	// Blocker, when set, is received from before answering collection GETs;
	// tests use it to hold a fetch in flight.
	Blocker chan struct{}
}

// NewGymAPI starts the stub.
func NewGymAPI() *GymAPI {
	api := &GymAPI{
		token:     "stub-token",
		Accounts:  map[string]Account{},
		Requests:  map[string]int{},
		RawBodies: map[string]string{},
		nextID:    1,
	}
	api.Server = httptest.NewServer(http.HandlerFunc(api.handle))
	return api
}

// Close shuts the stub down.
func (a *GymAPI) Close() {
	a.Server.Close()
}

// URL returns the stub's base URL.
func (a *GymAPI) URL() string {
	return a.Server.URL
}

// Token returns the bearer token the stub issues at login.
func (a *GymAPI) Token() string {
	return a.token
}

// CountRequests returns how many calls matched the "METHOD /path" key.
func (a *GymAPI) CountRequests(key string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Requests[key]
}

// LastBody returns the last request body seen for the "METHOD /path" key.
func (a *GymAPI) LastBody(key string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.RawBodies[key]
}

func (a *GymAPI) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	a.mu.Lock()
	a.Requests[key]++
	a.mu.Unlock()

	if r.Method == http.MethodPost || r.Method == http.MethodPut {
		data, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(data))
		a.mu.Lock()
		a.RawBodies[key] = string(data)
		a.mu.Unlock()
	}

	if r.URL.Path == "/auth/login" && r.Method == http.MethodPost {
		a.handleLogin(w, r)
		return
	}

	if !a.authorized(r) {
		writeError(w, http.StatusUnauthorized, "session expired")
		return
	}

	switch {
	case r.URL.Path == "/members" && r.Method == http.MethodGet:
		a.blockMaybe()
		a.respond(w, http.StatusOK, a.snapshotMembers())
	case r.URL.Path == "/members" && r.Method == http.MethodPost:
		a.createMember(w, r)
	case strings.HasPrefix(r.URL.Path, "/members/") && r.Method == http.MethodPut:
		a.updateMember(w, r)
	case strings.HasPrefix(r.URL.Path, "/members/") && r.Method == http.MethodDelete:
		a.deleteMember(w, r)
	case r.URL.Path == "/trainers" && r.Method == http.MethodGet:
		a.blockMaybe()
		a.respond(w, http.StatusOK, a.snapshotTrainers())
	case r.URL.Path == "/trainers" && r.Method == http.MethodPost:
		a.createTrainer(w, r)
	case strings.HasPrefix(r.URL.Path, "/trainers/") && r.Method == http.MethodPut:
		a.updateTrainer(w, r)
	case strings.HasPrefix(r.URL.Path, "/trainers/") && r.Method == http.MethodDelete:
		a.deleteTrainer(w, r)
	default:
		writeError(w, http.StatusNotFound, "no such endpoint")
	}
}

func (a *GymAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	a.mu.Lock()
	account, ok := a.Accounts[req.Username]
	a.mu.Unlock()
	if !ok || account.Password != req.Password {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	a.respond(w, http.StatusOK, dto.LoginResponse{
		Token: a.token,
		User:  account.User,
		Role:  account.Role,
	})
}

func (a *GymAPI) authorized(r *http.Request) bool {
	a.mu.Lock()
	fail := a.FailAuth
	a.mu.Unlock()
	if fail {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+a.token
}

func (a *GymAPI) blockMaybe() {
	a.mu.Lock()
	blocker := a.Blocker
	a.mu.Unlock()
	if blocker != nil {
		<-blocker
	}
}

func (a *GymAPI) snapshotMembers() []dto.MemberPayload {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]dto.MemberPayload, len(a.Members))
	copy(out, a.Members)
	return out
}

func (a *GymAPI) snapshotTrainers() []dto.TrainerPayload {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]dto.TrainerPayload, len(a.Trainers))
	copy(out, a.Trainers)
	return out
}

func (a *GymAPI) createMember(w http.ResponseWriter, r *http.Request) {
	var req dto.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	a.mu.Lock()
	payload := dto.MemberPayload{
		ID:            fmt.Sprintf("m%d", a.nextID),
		Name:          req.Name,
		Username:      req.Username,
		Email:         req.Email,
		Phone:         req.Phone,
		Plan:          req.Plan,
		TrainerID:     req.TrainerID,
		PaymentStatus: req.PaymentStatus,
		Status:        req.Status,
	}
	a.nextID++
	a.Members = append(a.Members, payload)
	a.mu.Unlock()
	a.respond(w, http.StatusCreated, payload)
}

func (a *GymAPI) updateMember(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/members/")
	var req dto.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, m := range a.Members {
		if m.ID == id {
			m.Name = req.Name
			m.Email = req.Email
			m.Phone = req.Phone
			m.Plan = req.Plan
			m.TrainerID = req.TrainerID
			m.PaymentStatus = req.PaymentStatus
			m.Status = req.Status
			a.Members[i] = m
			a.respond(w, http.StatusOK, m)
			return
		}
	}
	writeError(w, http.StatusNotFound, "member not found")
}

func (a *GymAPI) deleteMember(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/members/")
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, m := range a.Members {
		if m.ID == id {
			a.Members = append(a.Members[:i], a.Members[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "member not found")
}

func (a *GymAPI) createTrainer(w http.ResponseWriter, r *http.Request) {
	var req dto.TrainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	a.mu.Lock()
	payload := dto.TrainerPayload{
		ID:              fmt.Sprintf("t%d", a.nextID),
		Name:            req.Name,
		Username:        req.Username,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		SalaryStatus:    req.SalaryStatus,
		Status:          req.Status,
	}
	a.nextID++
	a.Trainers = append(a.Trainers, payload)
	a.mu.Unlock()
	a.respond(w, http.StatusCreated, payload)
}

func (a *GymAPI) updateTrainer(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/trainers/")
	var req dto.TrainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, t := range a.Trainers {
		if t.ID == id {
			t.Name = req.Name
			t.Specialization = req.Specialization
			t.ExperienceYears = req.ExperienceYears
			t.SalaryStatus = req.SalaryStatus
			t.Status = req.Status
			a.Trainers[i] = t
			a.respond(w, http.StatusOK, t)
			return
		}
	}
	writeError(w, http.StatusNotFound, "trainer not found")
}

func (a *GymAPI) deleteTrainer(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/trainers/")
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, t := range a.Trainers {
		if t.ID == id {
			a.Trainers = append(a.Trainers[:i], a.Trainers[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "trainer not found")
}

func (a *GymAPI) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Message: message})
}
