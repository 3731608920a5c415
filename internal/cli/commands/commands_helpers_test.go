package commands

import (
	"path/filepath"
	"testing"

	"ShopAdmin/internal/config"
)

// newTestConfig кладёт токен во временный каталог теста.
func newTestConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:     serverURL,
		TokenFile:     filepath.Join(t.TempDir(), "auth_token"),
		DefaultLocale: "en",
	}
}
