package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Kind identifies which rule a field violated.
type Kind string

const (
	KindRequired      Kind = "required"
	KindTooShort      Kind = "too_short"
	KindTooLong       Kind = "too_long"
	KindTooFew        Kind = "too_few"
	KindInvalidFormat Kind = "invalid_format"
)

// Rule is a single predicate attached to one field.
// Limit carries the bound for length and cardinality rules and is exposed
// to message templates as {min} or {max}.
type Rule struct {
	Kind  Kind
	Limit int
	Check func(value any) bool
}

// structural performs URL and email syntax checks. A *validator.Validate is
// safe for concurrent use once built.
var structural = validator.New()

// Required fails when the value is absent, not a string, or the empty string.
func Required() Rule {
	return Rule{
		Kind: KindRequired,
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && s != ""
		},
	}
}

// MinLen fails when the value is not a string or has fewer than n runes.
func MinLen(n int) Rule {
	return Rule{
		Kind:  KindTooShort,
		Limit: n,
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && utf8.RuneCountInString(s) >= n
		},
	}
}

// MaxLen fails when the value is not a string or has more than n runes.
func MaxLen(n int) Rule {
	return Rule{
		Kind:  KindTooLong,
		Limit: n,
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && utf8.RuneCountInString(s) <= n
		},
	}
}

// OptionalString accepts an absent value or any string.
func OptionalString() Rule {
	return Rule{
		Kind: KindInvalidFormat,
		Check: func(v any) bool {
			if v == nil {
				return true
			}
			_, ok := v.(string)
			return ok
		},
	}
}

// URLOrEmpty accepts an absent value, the empty string, or a URL that has
// both a scheme and a host.
func URLOrEmpty() Rule {
	return Rule{
		Kind:  KindInvalidFormat,
		Check: optionalFormat(IsURL),
	}
}

// EmailOrEmpty accepts an absent value, the empty string, or an address of
// the form local@domain where the domain contains a dot.
func EmailOrEmpty() Rule {
	return Rule{
		Kind:  KindInvalidFormat,
		Check: optionalFormat(IsEmail),
	}
}

// MinItems fails when the value is not a sequence or holds fewer than n
// elements.
func MinItems(n int) Rule {
	return Rule{
		Kind:  KindTooFew,
		Limit: n,
		Check: func(v any) bool {
			items, ok := asSlice(v)
			return ok && len(items) >= n
		},
	}
}

// StringItems fails when any element of the sequence is not a non-empty string.
func StringItems() Rule {
	return Rule{
		Kind: KindInvalidFormat,
		Check: func(v any) bool {
			items, ok := asSlice(v)
			if !ok {
				return false
			}
			for _, it := range items {
				if s, ok := it.(string); !ok || s == "" {
					return false
				}
			}
			return true
		},
	}
}

// IsURL reports whether s parses as a URL with a scheme and a host.
func IsURL(s string) bool {
	if structural.Var(s, "url") != nil {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsEmail reports whether s is a syntactically valid address whose domain
// has at least one dot.
func IsEmail(s string) bool {
	if structural.Var(s, "email") != nil {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}

func optionalFormat(valid func(string) bool) func(any) bool {
	return func(v any) bool {
		if v == nil {
			return true
		}
		s, ok := v.(string)
		if !ok {
			return false
		}
		return s == "" || valid(s)
	}
}

// asSlice accepts both []any (JSON decoding) and []string (typed callers).
func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
