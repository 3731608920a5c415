package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "form.json")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestValidate_Run(t *testing.T) {
	cfg := newTestConfig(t, "")

	out := withStdoutCapture(t, func() {
		if err := (validateCmd{}).Run(context.Background(), cfg, []string{"Category", writeJSON(t, `{"name":"Phones"}`)}); err != nil {
			t.Fatalf("valid form: %v", err)
		}
	})
	if !strings.Contains(out, "category: ok") || !strings.Contains(out, `"name": "Phones"`) {
		t.Fatalf("unexpected output: %s", out)
	}

	out = withStdoutCapture(t, func() {
		err := (validateCmd{}).Run(context.Background(), cfg, []string{"role", writeJSON(t, `{"name":"ab","permissions":[]}`)})
		if err != errInvalid {
			t.Fatalf("expected errInvalid, got %v", err)
		}
	})
	// поля печатаются по алфавиту
	nameAt := strings.Index(out, "name: Role name must be at least 3 characters")
	permAt := strings.Index(out, "permissions: Select at least one permission")
	if nameAt < 0 || permAt < 0 || nameAt > permAt {
		t.Fatalf("unexpected output: %s", out)
	}

	if err := (validateCmd{}).Run(context.Background(), cfg, []string{"order", "x.json"}); err == nil {
		t.Fatalf("unknown entity must fail")
	}
	if err := (validateCmd{}).Run(context.Background(), cfg, []string{"brand", writeJSON(t, `[1]`)}); err == nil {
		t.Fatalf("non-object JSON must fail")
	}
	if err := (validateCmd{}).Run(context.Background(), cfg, []string{"brand"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestEntities_Run(t *testing.T) {
	out := withStdoutCapture(t, func() {
		if err := (entitiesCmd{}).Run(context.Background(), newTestConfig(t, ""), nil); err != nil {
			t.Fatalf("entities: %v", err)
		}
	})
	for _, want := range []string{"login", "brand", "category", "permission", "role", "too_short(3)", "too_few(1)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %s", want, out)
		}
	}
}
