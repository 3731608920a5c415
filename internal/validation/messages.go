package validation

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when a requested locale has no text.
const DefaultLocale = "vi"

//go:embed messages.yaml
var defaultMessages []byte

// localeMessages is the catalog section of one locale.
type localeMessages struct {
	Defaults map[Kind]string  `yaml:"defaults"`
	Fields   map[string]string `yaml:"fields"`
}

// Catalog resolves messages by (entity, field, kind, locale).
type Catalog struct {
	fallback string
	locales  map[string]localeMessages
}

// ParseCatalog decodes a YAML catalog. fallback names the locale used when
// a lookup misses in the requested one.
func ParseCatalog(data []byte, fallback string) (*Catalog, error) {
	var locales map[string]localeMessages
	if err := yaml.Unmarshal(data, &locales); err != nil {
		return nil, fmt.Errorf("parsing message catalog: %w", err)
	}
	if _, ok := locales[fallback]; !ok {
		return nil, fmt.Errorf("message catalog has no %q locale", fallback)
	}
	return &Catalog{fallback: fallback, locales: locales}, nil
}

// DefaultCatalog returns the embedded catalog. It panics if the embedded
// file is broken, which can only happen at build time.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultMessages, DefaultLocale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locales returns the locales present in the catalog.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for l := range c.locales {
		out = append(out, l)
	}
	return out
}

// Match picks the best catalog locale for a requested tag or an
// Accept-Language header value, e.g. "en-US,en;q=0.9" -> "en".
func (c *Catalog) Match(requested string) string {
	for _, part := range strings.Split(requested, ",") {
		tag, _, _ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := c.locales[tag]; ok {
			return tag
		}
		base, _, _ := strings.Cut(tag, "-")
		if _, ok := c.locales[base]; ok {
			return base
		}
	}
	return c.fallback
}

// Message returns the text for a violation. Lookup order: field text in the
// requested locale, kind default in the requested locale, then both again in
// the fallback locale, and finally the kind itself.
func (c *Catalog) Message(entity Entity, field string, rule Rule, locale string) string {
	key := string(entity) + "." + field + "." + string(rule.Kind)
	for _, loc := range []string{c.Match(locale), c.fallback} {
		lm, ok := c.locales[loc]
		if !ok {
			continue
		}
		if msg, ok := lm.Fields[key]; ok {
			return expand(msg, rule)
		}
		if msg, ok := lm.Defaults[rule.Kind]; ok {
			return expand(msg, rule)
		}
	}
	return string(rule.Kind)
}

// Text returns a catalog text by its full key, e.g. "category.parentId.not_found".
// repl holds placeholder/value pairs such as "{ids}", "p1, p2". A key missing
// from both the requested and the fallback locale is returned as is.
func (c *Catalog) Text(key, locale string, repl ...string) string {
	for _, loc := range []string{c.Match(locale), c.fallback} {
		if msg, ok := c.locales[loc].Fields[key]; ok {
			if len(repl) > 1 {
				msg = strings.NewReplacer(repl...).Replace(msg)
			}
			return msg
		}
	}
	return key
}

func expand(msg string, rule Rule) string {
	n := strconv.Itoa(rule.Limit)
	return strings.NewReplacer("{min}", n, "{max}", n).Replace(msg)
}
