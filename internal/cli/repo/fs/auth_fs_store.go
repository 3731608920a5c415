package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"ShopAdmin/internal/cli/repo"
)

// AuthFSStore — файловое хранилище токена и контекста пользователя для CLI.
// TokenPath пустой — файлы лежат в пользовательском конфиг-каталоге.
type AuthFSStore struct {
	TokenPath string
}

var (
	_ repo.TokenStore       = AuthFSStore{}
	_ repo.UserContextStore = AuthFSStore{}
)

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ShopAdmin"), nil
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.TokenPath != "" {
		return s.TokenPath, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

// last_login лежит рядом с токеном
func (s AuthFSStore) lastLoginPath() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(p), "last_login"), nil
}

func writeFile(p, value string) error {
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

func readFile(p string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// Save сохраняет auth‑токен в файл.
func (s AuthFSStore) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return writeFile(p, token)
}

// Load читает auth‑токен из файла.
func (s AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	tok, err := readFile(p)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", errors.New("empty token file")
	}
	return tok, nil
}

// SaveLogin сохраняет идентификатор пользователя в файл.
func (s AuthFSStore) SaveLogin(identifier string) error {
	if identifier == "" {
		return errors.New("empty login")
	}
	p, err := s.lastLoginPath()
	if err != nil {
		return err
	}
	return writeFile(p, identifier)
}

// LoadLogin читает идентификатор пользователя из файла.
func (s AuthFSStore) LoadLogin() (string, error) {
	p, err := s.lastLoginPath()
	if err != nil {
		return "", err
	}
	login, err := readFile(p)
	if err != nil {
		return "", err
	}
	if login == "" {
		return "", errors.New("no stored login")
	}
	return login, nil
}
