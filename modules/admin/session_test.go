package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/example/storefront-demo/modules/kvstore"
)

func testCredentials(t *testing.T) map[string]string {
	t.Helper()
	credentials, err := HashCredentials(NewPasswordHasherWithCost(bcrypt.MinCost), map[string]string{
		"admin@example.com": "admin123",
	})
	if err != nil {
		t.Fatalf("HashCredentials failed: %v", err)
	}
	return credentials
}

func newTestManager(t *testing.T) (*Manager, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	m := NewManager(kv, testCredentials(t), NewTokenManager(testTokenConfig()))
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return m, kv
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		m, _ := newTestManager(t)
		token, session, err := m.Login(ctx, "admin@example.com", "admin123", false)
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if session.Email != "admin@example.com" {
			t.Errorf("session.Email = %q", session.Email)
		}
		email, err := m.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken failed: %v", err)
		}
		if email != "admin@example.com" {
			t.Errorf("token email = %q", email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		m, _ := newTestManager(t)
		if _, _, err := m.Login(ctx, "admin@example.com", "wrong", false); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		m, _ := newTestManager(t)
		if _, _, err := m.Login(ctx, "nobody@example.com", "admin123", false); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestRememberedEmail(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	if _, _, err := m.Login(ctx, "admin@example.com", "admin123", true); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	email, err := m.RememberedEmail(ctx)
	if err != nil {
		t.Fatalf("RememberedEmail failed: %v", err)
	}
	if email != "admin@example.com" {
		t.Errorf("email = %q, want admin@example.com", email)
	}

	// Logging in without remember-me forgets the stored email.
	if _, _, err := m.Login(ctx, "admin@example.com", "admin123", false); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	email, err = m.RememberedEmail(ctx)
	if err != nil {
		t.Fatalf("RememberedEmail failed: %v", err)
	}
	if email != "" {
		t.Errorf("email = %q, want empty", email)
	}
}

func TestCheckSession(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		m, _ := newTestManager(t)
		session, err := m.CheckSession(ctx)
		if err != nil {
			t.Fatalf("CheckSession failed: %v", err)
		}
		if session != nil {
			t.Errorf("session = %+v, want nil", session)
		}
	})

	t.Run("active session", func(t *testing.T) {
		m, _ := newTestManager(t)
		if _, _, err := m.Login(ctx, "admin@example.com", "admin123", false); err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		session, err := m.CheckSession(ctx)
		if err != nil {
			t.Fatalf("CheckSession failed: %v", err)
		}
		if session == nil || session.Email != "admin@example.com" {
			t.Errorf("session = %+v", session)
		}
	})

	t.Run("expired session is cleared", func(t *testing.T) {
		m, kv := newTestManager(t)
		if _, _, err := m.Login(ctx, "admin@example.com", "admin123", false); err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		m.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
		if _, err := m.CheckSession(ctx); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("err = %v, want ErrSessionExpired", err)
		}

		// The stale session is gone from memory and from the store.
		session, err := m.CheckSession(ctx)
		if err != nil || session != nil {
			t.Errorf("CheckSession after expiry = %+v, %v", session, err)
		}
		if _, err := kv.Get(ctx, kvstore.KeyAdminSession); err != kvstore.ErrKeyNotFound {
			t.Errorf("persisted session still present: %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	m, kv := newTestManager(t)

	// Logging out while signed out is a no-op.
	if err := m.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, _, err := m.Login(ctx, "admin@example.com", "admin123", false); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := m.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	session, err := m.CheckSession(ctx)
	if err != nil || session != nil {
		t.Errorf("CheckSession after logout = %+v, %v", session, err)
	}
	if _, err := kv.Get(ctx, kvstore.KeyAdminSession); err != kvstore.ErrKeyNotFound {
		t.Errorf("persisted session still present: %v", err)
	}
}

func TestSessionPersistence(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	tokens := NewTokenManager(testTokenConfig())
	credentials := testCredentials(t)

	m := NewManager(kv, credentials, tokens)
	if err := m.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, _, err := m.Login(ctx, "admin@example.com", "admin123", false); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	reloaded := NewManager(kv, credentials, tokens)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	session, err := reloaded.CheckSession(ctx)
	if err != nil {
		t.Fatalf("CheckSession failed: %v", err)
	}
	if session == nil || session.Email != "admin@example.com" {
		t.Errorf("session = %+v", session)
	}
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	theme, err := m.Theme(ctx)
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if theme != ThemeLight {
		t.Errorf("default theme = %q, want %q", theme, ThemeLight)
	}

	if err := m.SetTheme(ctx, ThemeDark); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	theme, err = m.Theme(ctx)
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if theme != ThemeDark {
		t.Errorf("theme = %q, want %q", theme, ThemeDark)
	}

	if err := m.SetTheme(ctx, "sepia"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("err = %v, want ErrUnknownTheme", err)
	}
}
