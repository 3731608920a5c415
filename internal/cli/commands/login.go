package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ShopAdmin/internal/cli/api"
	"ShopAdmin/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth token" }
func (loginCmd) Usage() string       { return "login <identifier> [password]" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	candidate := map[string]any{"identifier": args[0]}
	if len(args) == 2 {
		candidate["password"] = args[1]
	}

	// те же правила, что и на сервере: не ходим в сеть с заведомо плохой формой
	if _, err := engine.Login(candidate, cfg.DefaultLocale); err != nil {
		fmt.Fprintln(Out, "Invalid login form:")
		printFieldErrors(asBag(err))
		return errInvalid
	}

	resp, body, err := api.PostJSON(endpoint(cfg, "/api/auth/login"), candidate, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		store := authStore(cfg)
		if err := api.PersistAuthFromResponse(resp, store); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		_ = store.SaveLogin(args[0])
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	case http.StatusUnauthorized:
		return errors.New("invalid login or password")
	case http.StatusUnprocessableEntity:
		if bag, derr := api.FieldErrors(body); derr == nil {
			fmt.Fprintln(Out, "Invalid login form:")
			printFieldErrors(bag)
			return errInvalid
		}
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(loginCmd{}) }
