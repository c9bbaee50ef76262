package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/auth"
	"github.com/gymkit/dashboard/internal/clients"
	"github.com/gymkit/dashboard/internal/domain"
	"github.com/gymkit/dashboard/pkg/util"
)

// Store holds the single active session and its persisted mirror. Logging in
// overwrites any prior session entirely; there is never a partially populated
// one.
type Store struct {
	storage Storage
	client  *clients.GymClient
	logger  *zap.Logger

	mu      sync.RWMutex
	current *domain.Session
}

// NewStore builds the store.
func NewStore(storage Storage, client *clients.GymClient, logger *zap.Logger) *Store {
	return &Store{storage: storage, client: client, logger: logger}
}

// Restore reads persisted fields and adopts them as the active session.
// All of token, user, and role must be present together; anything less, or an
// expired token, reads as absent.
func (s *Store) Restore(ctx context.Context) (*domain.Session, bool) {
	token, okToken, err := s.storage.Get(ctx, KeyToken)
	if err != nil || !okToken {
		return nil, false
	}
	rawUser, okUser, err := s.storage.Get(ctx, KeyUser)
	if err != nil || !okUser {
		return nil, false
	}
	rawRole, okRole, err := s.storage.Get(ctx, KeyRole)
	if err != nil || !okRole {
		return nil, false
	}

	role := domain.Role(rawRole)
	if !role.Valid() {
		return nil, false
	}
	if auth.TokenExpired(token, time.Now()) {
		s.logger.Info("persisted session expired, discarding")
		_ = s.storage.Clear(ctx)
		return nil, false
	}

	var user domain.Identity
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, false
	}

	sess := &domain.Session{Token: token, User: user, Role: role}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.logger.Info("session restored",
		zap.String("username", user.Username),
		zap.String("role", string(role)),
	)
	return sess, true
}

// Login authenticates against the backend and adopts the returned session.
// Empty credentials are rejected locally before any network call; a backend
// rejection surfaces its message verbatim.
func (s *Store) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, util.NewValidationError("please enter username and password")
	}

	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	role := domain.Role(resp.Role)
	if resp.Token == "" || !role.Valid() {
		return nil, util.NewAuthError("login response missing token or role", 0)
	}

	sess := &domain.Session{
		Token: resp.Token,
		User:  resp.User.ToDomain(),
		Role:  role,
	}
	if err := s.persist(ctx, sess); err != nil {
		// The session is still usable for this process; only persistence failed.
		s.logger.Warn("failed to persist session", zap.Error(err))
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.logger.Info("logged in",
		zap.String("username", sess.User.Username),
		zap.String("role", string(sess.Role)),
	)
	return sess, nil
}

// Logout clears the in-memory session and its persisted mirror.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
	s.logger.Info("logged out")
}

// Current returns the active session, if any.
func (s *Store) Current() (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// Token supplies the active bearer token for outbound calls.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) persist(ctx context.Context, sess *domain.Session) error {
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, KeyToken, sess.Token); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, KeyUser, string(rawUser)); err != nil {
		return err
	}
	return s.storage.Set(ctx, KeyRole, string(sess.Role))
}
