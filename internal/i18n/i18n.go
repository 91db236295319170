// Package i18n resolves UI labels for the two supported languages and holds the
// static reference lists (nationality, insurance provider, sex) shown in pickers.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a catalog column.
type Lang string

// Supported languages. Arabic is stored under the legacy code "ur", which is what
// installed clients already have in their preferences.
const (
	English Lang = "en"
	Arabic  Lang = "ur"
)

// LanguageOption is an entry of the language picker.
type LanguageOption struct {
	Code  Lang
	Label string
}

// Languages lists the picker entries, each labelled in its own language.
func Languages() []LanguageOption {
	return []LanguageOption{
		{Code: English, Label: "English"},
		{Code: Arabic, Label: "العربية"},
	}
}

// Normalize maps a stored or user-supplied code onto a catalog column.
// BCP 47 tags are accepted ("en-GB", "ar-AE"); anything unknown becomes English.
func Normalize(code string) Lang {
	code = strings.TrimSpace(code)
	switch Lang(code) {
	case English, Arabic:
		return Lang(code)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return English
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ar", "ur":
		return Arabic
	default:
		return English
	}
}

// Resolver looks keys up in a catalog.
type Resolver struct {
	catalog  map[Key]map[Lang]string
	fallback string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFallback makes unknown keys resolve to text instead of the key itself.
func WithFallback(text string) ResolverOption {
	return func(r *Resolver) { r.fallback = text }
}

// WithCatalog replaces the built-in catalog.
func WithCatalog(c map[Key]map[Lang]string) ResolverOption {
	return func(r *Resolver) { r.catalog = c }
}

// New constructs a resolver over the built-in catalog.
func New(opts ...ResolverOption) *Resolver {
	r := &Resolver{catalog: catalog}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve returns the text for key in lang. A missing translation falls back to English;
// a missing key returns the configured fallback or the key itself.
func (r *Resolver) Resolve(lang string, key Key) string {
	row, ok := r.catalog[key]
	if !ok {
		if r.fallback != "" {
			return r.fallback
		}
		return string(key)
	}
	if s := row[Normalize(lang)]; s != "" {
		return s
	}
	if s := row[English]; s != "" {
		return s
	}
	return string(key)
}

// Resolvef resolves key and formats it with args.
func (r *Resolver) Resolvef(lang string, key Key, args ...any) string {
	return fmt.Sprintf(r.Resolve(lang, key), args...)
}

// Keys returns every key of the catalog.
func (r *Resolver) Keys() []Key {
	out := make([]Key, 0, len(r.catalog))
	for k := range r.catalog {
		out = append(out, k)
	}
	return out
}

var defaultResolver = New()

// Resolve resolves key against the built-in catalog.
func Resolve(lang string, key Key) string { return defaultResolver.Resolve(lang, key) }

// Resolvef resolves and formats key against the built-in catalog.
func Resolvef(lang string, key Key, args ...any) string {
	return defaultResolver.Resolvef(lang, key, args...)
}
