package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/storefront-demo/modules/kvstore"
)

// ErrUnknownTheme is returned when a theme name is not recognized.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme names accepted by SetTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme returns the stored UI theme, defaulting to light.
func (m *Manager) Theme(ctx context.Context) (string, error) {
	data, err := m.kv.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return ThemeLight, nil
		}
		return "", fmt.Errorf("load theme: %w", err)
	}
	return string(data), nil
}

// SetTheme stores the UI theme.
func (m *Manager) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: %s", ErrUnknownTheme, theme)
	}
	if err := m.kv.Set(ctx, kvstore.KeyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("store theme: %w", err)
	}
	return nil
}
