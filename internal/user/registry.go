package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ayushyaa-be/internal/kvstore"
	"ayushyaa-be/internal/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const registryKey = "users"

// Registry is the set of registered accounts, shared by every client and
// persisted as one JSON document under (auth, users). Emails match exactly.
type Registry struct {
	mu    sync.Mutex
	store kvstore.Store
}

func NewRegistry(store kvstore.Store) *Registry {
	return &Registry{store: store}
}

// Register creates a user-role account and returns its public view.
func (r *Registry) Register(ctx context.Context, email, password, name string) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "registry"),
		zap.String("method", "Register"),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load(ctx)
	if err != nil {
		return User{}, err
	}

	if _, exists := findAccount(accounts, email); exists {
		log.Info("duplicate email", zap.String("email", email))
		return User{}, ErrDuplicateEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	acc := account{
		User: User{
			ID:    uuid.NewString(),
			Email: email,
			Name:  name,
			Role:  RoleUser,
		},
		PasswordHash: hash,
	}

	if err := r.save(ctx, append(accounts, acc)); err != nil {
		log.Error("failed to save registry", zap.Error(err))
		return User{}, err
	}

	log.Info("user registered", zap.String("user_id", acc.ID))
	return acc.User, nil
}

// Authenticate returns the account's user when both email and password match.
func (r *Registry) Authenticate(ctx context.Context, email, password string) (User, error) {
	r.mu.Lock()
	accounts, err := r.load(ctx)
	r.mu.Unlock()
	if err != nil {
		return User{}, err
	}

	acc, ok := findAccount(accounts, email)
	if !ok || !CheckPasswordHash(password, acc.PasswordHash) {
		return User{}, ErrInvalidCredentials
	}
	return acc.User, nil
}

func findAccount(accounts []account, email string) (account, bool) {
	return lo.Find(accounts, func(a account) bool {
		return a.Email == email
	})
}

func (r *Registry) load(ctx context.Context) ([]account, error) {
	raw, err := r.store.Get(ctx, kvstore.NamespaceAuth, registryKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadRegistry, err)
	}

	var accounts []account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadRegistry, err)
	}
	return accounts, nil
}

func (r *Registry) save(ctx context.Context, accounts []account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveRegistry, err)
	}
	if err := r.store.Put(ctx, kvstore.NamespaceAuth, registryKey, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveRegistry, err)
	}
	return nil
}
