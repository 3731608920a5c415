package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN     string        `env:"DATABASE_URI"`
	AuthSecret      string        `env:"AUTH_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"`
	DefaultLocale   string        `env:"DEFAULT_LOCALE"`
	AdminIdentifier string        `env:"ADMIN_IDENTIFIER"`
	AdminEmail      string        `env:"ADMIN_EMAIL"`
	AdminPassword   string        `env:"ADMIN_PASSWORD"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (пусто — локальный SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни JWT")
	flag.StringVar(&cfg.DefaultLocale, "locale", cfg.DefaultLocale, "default message locale (vi|en)")
	flag.StringVar(&cfg.AdminIdentifier, "admin", cfg.AdminIdentifier, "username of the admin seeded into an empty database")
	flag.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "password of the seeded admin")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the admin server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	cfg.DefaultLocale = strings.ToLower(strings.TrimSpace(cfg.DefaultLocale))
	if cfg.DefaultLocale != "en" {
		cfg.DefaultLocale = "vi"
	}
	if cfg.AdminIdentifier != "" && cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.AdminIdentifier + "@shopadmin.local"
	}
	// BaseURL: только "address:port" без схемы и пути, иначе дефолт
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.TokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, _ = os.UserHomeDir()
		}
		cfg.TokenFile = filepath.Join(dir, "ShopAdmin", "auth_token")
	}
}
