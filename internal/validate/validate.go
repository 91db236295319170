// Package validate checks form values against a declarative field spec.
// Every field is checked independently so the whole error set is returned in one pass.
package validate

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/i18n"
)

// Kind selects the format rule applied to a non-empty value.
type Kind int

// Field kinds.
const (
	Freeform Kind = iota
	Numeric       // digits only
	Date          // YYYY-MM-DD, a real calendar date
	Enum          // member of Field.Choices; i18n.NoneValue counts as empty
)

// Field describes one form field.
type Field struct {
	Required bool
	Kind     Kind
	Choices  []string // Enum only
	Label    i18n.Key // used in messages; empty means the field name
}

// Spec maps field names to their rules.
type Spec map[string]Field

// Errors maps field names to human-readable messages. Empty means valid.
type Errors map[string]string

// OK reports whether there are no errors.
func (e Errors) OK() bool { return len(e) == 0 }

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Merge copies other into e (other wins on conflicts) and returns e.
func (e Errors) Merge(other Errors) Errors {
	if e == nil {
		e = Errors{}
	}
	for k, v := range other {
		e[k] = v
	}
	return e
}

// Err returns nil when valid, otherwise an error wrapping errs.ErrValidation.
func (e Errors) Err() error {
	if e.OK() {
		return nil
	}
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f])
	}
	return fmt.Errorf("%w: %s", errs.ErrValidation, strings.Join(parts, "; "))
}

var rules = validator.New()

// Validate checks values against spec with English messages.
func Validate(values map[string]string, spec Spec) Errors {
	return ValidateLocalized(string(i18n.English), values, spec)
}

// ValidateLocalized checks values against spec, rendering messages in lang.
// Fields present in values but absent from spec are ignored.
func ValidateLocalized(lang string, values map[string]string, spec Spec) Errors {
	out := Errors{}
	for name, f := range spec {
		if msg, ok := check(lang, name, strings.TrimSpace(values[name]), f); !ok {
			out[name] = msg
		}
	}
	return out
}

func check(lang, name, v string, f Field) (string, bool) {
	label := name
	if f.Label != "" {
		label = i18n.Resolve(lang, f.Label)
	}

	if v == "" || (f.Kind == Enum && v == i18n.NoneValue) {
		if f.Required {
			return i18n.Resolvef(lang, i18n.KeyFieldRequired, label), false
		}
		return "", true
	}

	switch f.Kind {
	case Numeric:
		if rules.Var(v, "number") != nil {
			return i18n.Resolvef(lang, i18n.KeyFieldNumeric, label), false
		}
	case Date:
		if rules.Var(v, "datetime=2006-01-02") != nil {
			return i18n.Resolvef(lang, i18n.KeyFieldDate, label), false
		}
	case Enum:
		if !slices.Contains(f.Choices, v) {
			return i18n.Resolvef(lang, i18n.KeyFieldChoice, label), false
		}
	}
	return "", true
}
