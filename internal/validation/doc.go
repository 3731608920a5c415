// Package validation implements the field-validation rule sets that admin
// forms must satisfy before a candidate is forwarded to the backend.
//
// # Overview
//
// Each entity (login, brand, category, permission, role) owns a Schema: an
// ordered list of fields, each with an ordered list of rules. A rule is plain
// data, a Kind plus a predicate over the raw field value:
//
//	{Field: "name", Rules: []Rule{Required(), MinLen(3)}}
//
// Candidates arrive untyped, usually decoded from JSON into map[string]any.
// Fields may be missing or carry the wrong primitive type; such values simply
// fail the field's first rule.
//
// # Basic Usage
//
//	engine := validation.NewEngine(validation.DefaultCatalog())
//	brand, err := engine.Brand(candidate, "vi")
//	if err != nil {
//	    var verrs *validation.Errors
//	    if errors.As(err, &verrs) {
//	        // verrs.Bag: {"logo": ["Logo phải là một URL hợp lệ"]}
//	    }
//	}
//
// # Evaluation
//
// Every field of the schema is evaluated. Within a field, rules run in
// declaration order and the first failing rule stops that field, so an empty
// permission name reports required and never too_short.
//
// # Rule kinds
//
//   - required       — field absent or empty
//   - too_short      — fewer runes than the minimum
//   - too_long       — more runes than the maximum
//   - too_few        — sequence below its minimum cardinality
//   - invalid_format — value fails a structural check (URL, email, type)
//
// # Messages
//
// Messages are not part of the rules. They are resolved from a Catalog keyed
// by (entity, field, kind, locale). The default catalog is embedded from
// messages.yaml and ships Vietnamese (default) and English text.
//
// Error bags serialise the same way the admin UI expects:
//
//	{
//	  "errors": {
//	    "name":        ["Tên danh mục phải có ít nhất 3 ký tự"],
//	    "permissions": ["Vai trò phải có ít nhất một quyền"]
//	  }
//	}
//
// The engine holds no mutable state after construction and may be shared
// between goroutines.
package validation
