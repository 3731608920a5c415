package commands

import (
	"context"
	"fmt"
	"strings"

	"ShopAdmin/internal/config"
	"ShopAdmin/internal/validation"
)

type entitiesCmd struct{}

func (entitiesCmd) Name() string        { return "entities" }
func (entitiesCmd) Description() string { return "List validated entities and their rules" }
func (entitiesCmd) Usage() string       { return "entities" }

func (entitiesCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	for _, e := range validation.Entities() {
		schema, _ := validation.SchemaFor(e)
		fmt.Fprintf(Out, "%s\n", e)
		for _, fr := range schema.Fields {
			kinds := make([]string, 0, len(fr.Rules))
			for _, r := range fr.Rules {
				if r.Limit > 0 {
					kinds = append(kinds, fmt.Sprintf("%s(%d)", r.Kind, r.Limit))
					continue
				}
				kinds = append(kinds, string(r.Kind))
			}
			fmt.Fprintf(Out, "  %-12s %s\n", fr.Field, strings.Join(kinds, ", "))
		}
	}
	return nil
}

func init() { RegisterCmd(entitiesCmd{}) }
