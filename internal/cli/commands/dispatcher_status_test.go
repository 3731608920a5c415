package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ShopAdmin/internal/config"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	// зарегистрированы login/status/validate/entities из init()
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{}) })
	if !strings.Contains(out, "ShopAdmin CLI") {
		t.Fatalf("global help expected")
	}
	if !strings.Contains(out, "Entities: login, brand, category, permission, role") {
		t.Fatalf("entity list expected in help, got: %s", out)
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help"}) })
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("usage expected")
	}

	code := Dispatch(context.Background(), &config.Config{}, []string{"help", "login"})
	if code != 0 {
		t.Fatalf("expected 0 for help login, got %d", code)
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "nope"}) })
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command message expected")
	}

	code = Dispatch(context.Background(), &config.Config{}, []string{"no-such"})
	if code != 2 {
		t.Fatalf("expected 2 for unknown command, got %d", code)
	}
}

func TestDispatcher_RunPaths(t *testing.T) {
	// зарегистрируем временную команду
	cmdOK := fakeCmd{name: "x", usage: "x", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return nil }}
	RegisterCmd(cmdOK)
	if code := Dispatch(context.Background(), &config.Config{}, []string{"x"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	cmdUsage := fakeCmd{name: "u", usage: "u <arg>", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return ErrUsage }}
	RegisterCmd(cmdUsage)
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"u"}) })
	if !strings.Contains(out, "Usage: u <arg>") {
		t.Fatalf("usage text expected")
	}

	cmdErr := fakeCmd{name: "e", usage: "e", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return fmt.Errorf("boom") }}
	RegisterCmd(cmdErr)
	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"e"}) })
	if !strings.Contains(out, "e error: boom") {
		t.Fatalf("error line expected, got: %s", out)
	}

	cmdInvalid := fakeCmd{name: "v", usage: "v", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return errInvalid }}
	RegisterCmd(cmdInvalid)
	var code int
	out = withStdoutCapture(t, func() { code = Dispatch(context.Background(), &config.Config{}, []string{"v"}) })
	if code != ExitInvalid || strings.Contains(out, "error:") {
		t.Fatalf("invalid form: code=%d out=%q", code, out)
	}
}

func TestStatus_Run(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/api/auth/me") {
			t.Fatalf("path: %s", r.URL.Path)
		}
		if !strings.Contains(r.Header.Get("Cookie"), "auth_token=tok") {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"username":"admin","email":"admin@shop.local","role":"admin"}`))
	}))
	defer ts.Close()
	cfg := newTestConfig(t, ts.URL)

	// без токена — не ошибка, просто сообщение
	out := withStdoutCapture(t, func() {
		if err := (statusCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("status without token: %v", err)
		}
	})
	if !strings.Contains(out, "not logged in") {
		t.Fatalf("unexpected output: %s", out)
	}

	if err := authStore(cfg).Save("tok"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	out = withStdoutCapture(t, func() {
		if err := (statusCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("status ok failed: %v", err)
		}
	})
	if !strings.Contains(out, "logged in as admin <admin@shop.local> (admin)") {
		t.Fatalf("unexpected output: %s", out)
	}

	// просроченный токен
	_ = authStore(cfg).Save("old")
	_ = authStore(cfg).SaveLogin("admin")
	out = withStdoutCapture(t, func() { _ = (statusCmd{}).Run(context.Background(), cfg, nil) })
	if !strings.Contains(out, "session expired (last login: admin)") {
		t.Fatalf("unexpected output: %s", out)
	}

	// non-200
	ts500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts500.Close()
	cfg500 := newTestConfig(t, ts500.URL)
	_ = authStore(cfg500).Save("tok")
	if err := (statusCmd{}).Run(context.Background(), cfg500, nil); err == nil {
		t.Fatalf("status should fail on non-200")
	}

	// битый JSON
	tsBad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	defer tsBad.Close()
	cfgBad := newTestConfig(t, tsBad.URL)
	_ = authStore(cfgBad).Save("tok")
	if err := (statusCmd{}).Run(context.Background(), cfgBad, nil); err == nil {
		t.Fatalf("status must fail on bad json")
	}

	// ErrUsage при лишних аргументах
	if err := (statusCmd{}).Run(context.Background(), cfg, []string{"extra"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}
