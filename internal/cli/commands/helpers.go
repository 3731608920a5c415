package commands

import (
	"fmt"
	"sort"
	"strings"

	fsrepo "ShopAdmin/internal/cli/repo/fs"
	"ShopAdmin/internal/config"
	"ShopAdmin/internal/validation"
)

// engine — локальный экземпляр правил, тот же, что на сервере.
var engine = validation.NewEngine(nil)

// errInvalid is returned after field errors were printed.
var errInvalid = fmt.Errorf("validation failed")

func authStore(cfg *config.Config) fsrepo.AuthFSStore {
	return fsrepo.AuthFSStore{TokenPath: cfg.TokenFile}
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// printFieldErrors печатает ошибки полей в стабильном порядке.
func printFieldErrors(bag map[string][]string) {
	fields := make([]string, 0, len(bag))
	for f := range bag {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		for _, msg := range bag[f] {
			fmt.Fprintf(Out, "  %s: %s\n", f, msg)
		}
	}
}
