package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FieldError is one violation: the field, the rule kind that failed and the
// resolved message.
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Errors collects field violations for one candidate.
// JSON output: {"errors": {"field": ["msg1"]}}
type Errors struct {
	Bag    map[string][]string `json:"errors"`
	Fields []FieldError        `json:"-"`
}

func (e *Errors) add(field string, kind Kind, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
	e.Fields = append(e.Fields, FieldError{Field: field, Kind: kind, Message: msg})
}

// Has returns true if any field failed.
func (e *Errors) Has() bool { return e != nil && len(e.Bag) > 0 }

// First returns the first message for a field.
func (e *Errors) First(field string) string {
	if e == nil {
		return ""
	}
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Kind returns the kind of the first violation recorded for field, or ""
// when the field passed.
func (e *Errors) Kind(field string) Kind {
	if e == nil {
		return ""
	}
	for _, fe := range e.Fields {
		if fe.Field == field {
			return fe.Kind
		}
	}
	return ""
}

// Failed returns the names of all failing fields, sorted.
func (e *Errors) Failed() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.Bag))
	for f := range e.Bag {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Kind))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
