package validation

import "strings"

// Entity names a form whose candidates the engine validates.
type Entity string

const (
	EntityLogin      Entity = "login"
	EntityBrand      Entity = "brand"
	EntityCategory   Entity = "category"
	EntityPermission Entity = "permission"
	EntityRole       Entity = "role"
)

// Entities lists every entity with a schema, in a stable order.
func Entities() []Entity {
	return []Entity{EntityLogin, EntityBrand, EntityCategory, EntityPermission, EntityRole}
}

// ParseEntity maps a user supplied name (case-insensitive) to an Entity.
func ParseEntity(s string) (Entity, bool) {
	e := Entity(strings.ToLower(strings.TrimSpace(s)))
	_, ok := schemas[e]
	return e, ok
}

// FieldRules is the ordered rule list for one field.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Schema is the ordered field list for one entity.
type Schema struct {
	Entity Entity
	Fields []FieldRules
}

// schemas is read-only after package init.
var schemas = map[Entity]Schema{
	EntityLogin: {
		Entity: EntityLogin,
		Fields: []FieldRules{
			{Field: "identifier", Rules: []Rule{MinLen(3), MaxLen(100)}},
			// password used to carry MinLen(6); it stays off until the
			// login flow is confirmed to require it.
			{Field: "password", Rules: []Rule{OptionalString()}},
		},
	},
	EntityBrand: {
		Entity: EntityBrand,
		Fields: []FieldRules{
			{Field: "name", Rules: []Rule{MinLen(2)}},
			{Field: "description", Rules: []Rule{OptionalString()}},
			{Field: "logo", Rules: []Rule{URLOrEmpty()}},
			{Field: "website", Rules: []Rule{URLOrEmpty()}},
			{Field: "email", Rules: []Rule{EmailOrEmpty()}},
		},
	},
	EntityCategory: {
		Entity: EntityCategory,
		Fields: []FieldRules{
			{Field: "name", Rules: []Rule{MinLen(3), MaxLen(255)}},
			{Field: "description", Rules: []Rule{OptionalString()}},
			{Field: "icon", Rules: []Rule{OptionalString()}},
			{Field: "parentId", Rules: []Rule{OptionalString()}},
		},
	},
	EntityPermission: {
		Entity: EntityPermission,
		Fields: []FieldRules{
			{Field: "name", Rules: []Rule{Required(), MinLen(3)}},
			{Field: "label", Rules: []Rule{Required(), MinLen(3)}},
			{Field: "group", Rules: []Rule{Required()}},
			{Field: "description", Rules: []Rule{OptionalString()}},
		},
	},
	EntityRole: {
		Entity: EntityRole,
		Fields: []FieldRules{
			{Field: "name", Rules: []Rule{MinLen(3), MaxLen(255)}},
			{Field: "description", Rules: []Rule{OptionalString()}},
			{Field: "permissions", Rules: []Rule{MinItems(1), StringItems()}},
		},
	},
}

// SchemaFor returns the rule table of an entity.
func SchemaFor(e Entity) (Schema, bool) {
	s, ok := schemas[e]
	return s, ok
}

// LoginInput is an accepted login payload.
type LoginInput struct {
	Identifier string  `json:"identifier"`
	Password   *string `json:"password,omitempty"`
}

// BrandInput is an accepted brand create/update payload.
// Optional fields keep the "" sentinel distinct from absence.
type BrandInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Website     *string `json:"website,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// CategoryInput is an accepted category create/update payload.
type CategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

// PermissionInput is an accepted permission create/update payload.
type PermissionInput struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Group       string  `json:"group"`
	Description *string `json:"description,omitempty"`
}

// RoleInput is an accepted role create/update payload.
type RoleInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

// normalize builds the typed value of an entity from a candidate that has
// already passed its schema.
func normalize(e Entity, c map[string]any) any {
	switch e {
	case EntityLogin:
		return LoginInput{
			Identifier: str(c, "identifier"),
			Password:   optStr(c, "password"),
		}
	case EntityBrand:
		return BrandInput{
			Name:        str(c, "name"),
			Description: optStr(c, "description"),
			Logo:        optStr(c, "logo"),
			Website:     optStr(c, "website"),
			Email:       optStr(c, "email"),
		}
	case EntityCategory:
		return CategoryInput{
			Name:        str(c, "name"),
			Description: optStr(c, "description"),
			Icon:        optStr(c, "icon"),
			ParentID:    optStr(c, "parentId"),
		}
	case EntityPermission:
		return PermissionInput{
			Name:        str(c, "name"),
			Label:       str(c, "label"),
			Group:       str(c, "group"),
			Description: optStr(c, "description"),
		}
	case EntityRole:
		items, _ := asSlice(c["permissions"])
		perms := make([]string, 0, len(items))
		for _, it := range items {
			perms = append(perms, it.(string))
		}
		return RoleInput{
			Name:        str(c, "name"),
			Description: optStr(c, "description"),
			Permissions: perms,
		}
	}
	return nil
}

func str(c map[string]any, key string) string {
	s, _ := c[key].(string)
	return s
}

func optStr(c map[string]any, key string) *string {
	s, ok := c[key].(string)
	if !ok {
		return nil
	}
	return &s
}
