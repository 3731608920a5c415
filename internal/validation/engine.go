package validation

import (
	"errors"
	"fmt"
)

// ErrUnknownEntity is returned for an entity without a schema.
var ErrUnknownEntity = errors.New("unknown entity")

// Engine validates candidates against the entity schemas and resolves
// messages from its catalog.
type Engine struct {
	catalog *Catalog
}

// NewEngine creates an engine. A nil catalog selects DefaultCatalog.
func NewEngine(catalog *Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

// Catalog returns the message catalog of the engine.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Validate checks candidate against the schema of entity. On success it
// returns the normalized value (LoginInput, BrandInput, ...). On failure the
// error is a *Errors holding the first violation of every failing field.
func (e *Engine) Validate(entity Entity, candidate map[string]any, locale string) (any, error) {
	schema, ok := schemas[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	if verrs := e.check(schema, candidate, locale); verrs.Has() {
		return nil, verrs
	}
	return normalize(entity, candidate), nil
}

func (e *Engine) check(schema Schema, candidate map[string]any, locale string) *Errors {
	verrs := &Errors{}
	for _, fr := range schema.Fields {
		value := candidate[fr.Field]
		for _, rule := range fr.Rules {
			if !rule.Check(value) {
				verrs.add(fr.Field, rule.Kind, e.catalog.Message(schema.Entity, fr.Field, rule, locale))
				break
			}
		}
	}
	return verrs
}

// Login validates a login candidate.
func (e *Engine) Login(candidate map[string]any, locale string) (LoginInput, error) {
	return typed[LoginInput](e.Validate(EntityLogin, candidate, locale))
}

// Brand validates a brand candidate.
func (e *Engine) Brand(candidate map[string]any, locale string) (BrandInput, error) {
	return typed[BrandInput](e.Validate(EntityBrand, candidate, locale))
}

// Category validates a category candidate.
func (e *Engine) Category(candidate map[string]any, locale string) (CategoryInput, error) {
	return typed[CategoryInput](e.Validate(EntityCategory, candidate, locale))
}

// Permission validates a permission candidate.
func (e *Engine) Permission(candidate map[string]any, locale string) (PermissionInput, error) {
	return typed[PermissionInput](e.Validate(EntityPermission, candidate, locale))
}

// Role validates a role candidate.
func (e *Engine) Role(candidate map[string]any, locale string) (RoleInput, error) {
	return typed[RoleInput](e.Validate(EntityRole, candidate, locale))
}

func typed[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// AsErrors extracts validation errors from err, or returns nil.
func AsErrors(err error) *Errors {
	var verrs *Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
