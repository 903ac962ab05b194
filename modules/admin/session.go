package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/example/storefront-demo/domain/admin"
	"github.com/example/storefront-demo/modules/kvstore"
)

var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionExpired is returned when the persisted session is older
	// than the session TTL.
	ErrSessionExpired = errors.New("session expired")
)

// Manager owns the single admin session and persists it under the
// "adminSession" key. At most one admin is signed in at a time.
type Manager struct {
	mu          sync.RWMutex
	kv          kvstore.Store
	credentials map[string]string
	hasher      *PasswordHasher
	tokens      *TokenManager
	session     *domain.Session
	loaded      bool
	now         func() time.Time
}

// NewManager creates a session manager. credentials maps admin emails
// to bcrypt password hashes.
func NewManager(kv kvstore.Store, credentials map[string]string, tokens *TokenManager) *Manager {
	return &Manager{
		kv:          kv,
		credentials: credentials,
		hasher:      NewPasswordHasher(),
		tokens:      tokens,
		now:         time.Now,
	}
}

// Load reads the persisted session. A missing key means nobody is
// signed in.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := m.kv.Get(ctx, kvstore.KeyAdminSession)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			m.session = nil
			m.loaded = true
			return nil
		}
		return fmt.Errorf("load admin session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("load admin session: %w", err)
	}
	m.session = &session
	m.loaded = true
	return nil
}

// Loaded reports whether Load has completed successfully.
func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Login verifies the credentials, persists a fresh session and returns
// a signed token for it. With rememberMe set the email is stored for
// prefilling the next login form.
func (m *Manager) Login(ctx context.Context, email, password string, rememberMe bool) (string, domain.Session, error) {
	hash, ok := m.credentials[email]
	if !ok || !m.hasher.Verify(password, hash) {
		return "", domain.Session{}, ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	session := domain.Session{
		Email:      email,
		LoginTime:  m.now(),
		RememberMe: rememberMe,
	}
	prev := m.session
	m.session = &session
	if err := m.persistSession(ctx); err != nil {
		m.session = prev
		return "", domain.Session{}, err
	}

	if rememberMe {
		if err := m.kv.Set(ctx, kvstore.KeyRememberedEmail, []byte(email)); err != nil {
			return "", domain.Session{}, fmt.Errorf("remember email: %w", err)
		}
	} else if err := m.kv.Delete(ctx, kvstore.KeyRememberedEmail); err != nil && err != kvstore.ErrKeyNotFound {
		return "", domain.Session{}, fmt.Errorf("forget email: %w", err)
	}

	token, err := m.tokens.Generate(email)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("generate token: %w", err)
	}
	return token, session, nil
}

// CheckSession returns the active session, or nil when nobody is
// signed in. A session past its TTL is cleared and reported as
// ErrSessionExpired.
func (m *Manager) CheckSession(ctx context.Context) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil, nil
	}
	if m.now().Sub(m.session.LoginTime) > SessionTTL {
		if err := m.clearSession(ctx); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}
	session := *m.session
	return &session, nil
}

// Logout clears the session. Logging out while signed out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearSession(ctx)
}

// RememberedEmail returns the email stored by a remember-me login, or
// an empty string when none is stored.
func (m *Manager) RememberedEmail(ctx context.Context) (string, error) {
	data, err := m.kv.Get(ctx, kvstore.KeyRememberedEmail)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return "", nil
		}
		return "", fmt.Errorf("remembered email: %w", err)
	}
	return string(data), nil
}

// ValidateToken verifies a token and returns the admin email it was
// issued for.
func (m *Manager) ValidateToken(token string) (string, error) {
	claims, err := m.tokens.Validate(token)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// persistSession writes the in-memory session. The caller must hold
// the write lock.
func (m *Manager) persistSession(ctx context.Context) error {
	data, err := json.Marshal(m.session)
	if err != nil {
		return fmt.Errorf("persist admin session: %w", err)
	}
	if err := m.kv.Set(ctx, kvstore.KeyAdminSession, data); err != nil {
		return fmt.Errorf("persist admin session: %w", err)
	}
	return nil
}

// clearSession drops the session from memory and the store. The caller
// must hold the write lock.
func (m *Manager) clearSession(ctx context.Context) error {
	prev := m.session
	m.session = nil
	if err := m.kv.Delete(ctx, kvstore.KeyAdminSession); err != nil && err != kvstore.ErrKeyNotFound {
		m.session = prev
		return fmt.Errorf("clear admin session: %w", err)
	}
	return nil
}
