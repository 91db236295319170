package i18n

// Option is an entry of a picker: a display label and the value sent to the API.
type Option struct {
	Label string
	Value string
}

// NoneValue is the placeholder entry every picker starts with.
const NoneValue = "NONE"

var sexes = []Option{
	{Label: "None", Value: NoneValue},
	{Label: "Male", Value: "MALE"},
	{Label: "Female", Value: "FEMALE"},
}

// Sexes returns the sex picker.
func Sexes() []Option { return clone(sexes) }

// Nationalities returns the nationality picker.
func Nationalities() []Option { return clone(nationalities) }

// InsuranceProviders returns the insurance company picker.
func InsuranceProviders() []Option { return clone(insuranceProviders) }

// Values returns the option values, skipping the NONE placeholder.
func Values(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Value != NoneValue {
			out = append(out, o.Value)
		}
	}
	return out
}

// LabelOf returns the label of value, or value itself when unknown.
func LabelOf(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func clone(in []Option) []Option { return append([]Option(nil), in...) }
