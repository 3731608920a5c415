package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"ShopAdmin/internal/cli/api"
	"ShopAdmin/internal/config"
)

type meResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the signed-in user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	store := authStore(cfg)
	token, err := store.Load()
	if err != nil {
		fmt.Fprintln(Out, "Status: not logged in")
		return nil
	}
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/auth/me"), token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		last, _ := store.LoadLogin()
		fmt.Fprintf(Out, "Status: session expired (last login: %s)\n", last)
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var me meResponse
	if err := json.Unmarshal(body, &me); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Status: logged in as %s <%s> (%s)\n", me.Username, me.Email, me.Role)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
