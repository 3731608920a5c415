package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ShopAdmin/internal/config"
	"ShopAdmin/internal/validation"
)

// validateCmd прогоняет JSON-файл через правила локально, без сервера.
type validateCmd struct{}

func (validateCmd) Name() string        { return "validate" }
func (validateCmd) Description() string { return "Check a JSON form against the rules offline" }
func (validateCmd) Usage() string       { return "validate <entity> <file.json>" }

func (validateCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	entity, ok := validation.ParseEntity(args[0])
	if !ok {
		return fmt.Errorf("unknown entity %q (see: entities)", args[0])
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	var candidate map[string]any
	if err := json.Unmarshal(data, &candidate); err != nil {
		return fmt.Errorf("decode %s: %w", args[1], err)
	}

	value, err := engine.Validate(entity, candidate, cfg.DefaultLocale)
	if err != nil {
		if verrs := validation.AsErrors(err); verrs != nil {
			fmt.Fprintf(Out, "%s: invalid\n", entity)
			printFieldErrors(verrs.Bag)
			return errInvalid
		}
		return err
	}
	out, _ := json.MarshalIndent(value, "", "  ")
	fmt.Fprintf(Out, "%s: ok\n%s\n", entity, out)
	return nil
}

func asBag(err error) map[string][]string {
	if verrs := validation.AsErrors(err); verrs != nil {
		return verrs.Bag
	}
	return map[string][]string{"": {err.Error()}}
}

func init() { RegisterCmd(validateCmd{}) }
