package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ayushyaa-be/internal/kvstore"
	"ayushyaa-be/internal/logger"

	"go.uber.org/zap"
)

func sessionKey(clientID string) string {
	return "session:" + clientID
}

// Session is the current actor for one client: anonymous (nil), a registered
// user, or the admin. It is persisted under (auth, session:<client-id>).
type Session struct {
	mu       sync.Mutex
	store    kvstore.Store
	registry *Registry
	admin    *AdminCredential
	clientID string
	current  *User
}

func NewSession(store kvstore.Store, registry *Registry, admin *AdminCredential, clientID string) (*Session, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	return &Session{
		store:    store,
		registry: registry,
		admin:    admin,
		clientID: clientID,
	}, nil
}

// Restore rehydrates the persisted session without re-checking credentials.
func (s *Session) Restore(ctx context.Context) (*User, error) {
	raw, err := s.store.Get(ctx, kvstore.NamespaceAuth, sessionKey(s.clientID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedPersistSession, err)
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		logger.FromCtx(ctx).Warn("discarding unreadable session", zap.Error(err))
		return nil, nil
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return &u, nil
}

func (s *Session) Signup(ctx context.Context, email, password, name string) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "session"),
		zap.String("method", "Signup"),
	)
	log.Info("started")

	if email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.registry.Register(ctx, email, password, name)
	if err != nil {
		log.Warn("failed", zap.Error(err))
		return User{}, err
	}

	if err := s.establish(ctx, u); err != nil {
		log.Error("failed", zap.Error(err))
		return User{}, err
	}

	log.Info("success", zap.String("user_id", u.ID))
	return u, nil
}

func (s *Session) Login(ctx context.Context, email, password string) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "session"),
		zap.String("method", "Login"),
	)

	if email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.registry.Authenticate(ctx, email, password)
	if err != nil {
		log.Warn("failed", zap.Error(err))
		return User{}, err
	}

	if err := s.establish(ctx, u); err != nil {
		log.Error("failed", zap.Error(err))
		return User{}, err
	}

	log.Info("success", zap.String("user_id", u.ID))
	return u, nil
}

func (s *Session) AdminLogin(ctx context.Context, username, password string) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "session"),
		zap.String("method", "AdminLogin"),
	)

	if !s.admin.Verify(username, password) {
		log.Warn("failed", zap.String("username", username))
		return User{}, ErrInvalidCredentials
	}

	u := AdminUser()
	if err := s.establish(ctx, u); err != nil {
		log.Error("failed", zap.Error(err))
		return User{}, err
	}

	log.Info("success")
	return u, nil
}

func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, kvstore.NamespaceAuth, sessionKey(s.clientID)); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedPersistSession, err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	logger.FromCtx(ctx).Info("session cleared", zap.String("layer", "session"))
	return nil
}

// Current returns a copy of the signed-in user, or nil when anonymous.
func (s *Session) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *Session) establish(ctx context.Context, u User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedPersistSession, err)
	}
	if err := s.store.Put(ctx, kvstore.NamespaceAuth, sessionKey(s.clientID), raw); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedPersistSession, err)
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return nil
}
