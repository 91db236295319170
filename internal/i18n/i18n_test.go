package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_EveryKeyInEveryLanguage(t *testing.T) {
	t.Parallel()

	r := New()
	for _, k := range r.Keys() {
		for _, l := range Languages() {
			got := r.Resolve(string(l.Code), k)
			require.NotEmpty(t, got, "key %s lang %s", k, l.Code)
			require.NotEqual(t, string(k), got, "key %s lang %s resolved to itself", k, l.Code)
		}
	}
}

func TestResolve_LanguageSelection(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Sex", Resolve("en", KeySex))
	require.Equal(t, "الجنس", Resolve("ur", KeySex))
	require.Equal(t, "الجنس", Resolve("ar-AE", KeySex))
	require.Equal(t, "Sex", Resolve("", KeySex), "unset language defaults to English")
	require.Equal(t, "Sex", Resolve("fr", KeySex))
}

func TestResolve_UnknownKeyFailsClosed(t *testing.T) {
	t.Parallel()

	require.Equal(t, "nope.key", Resolve("en", Key("nope.key")))
	require.Equal(t, "?", New(WithFallback("?")).Resolve("ur", Key("nope.key")))
}

func TestResolve_MissingTranslationFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	r := New(WithCatalog(map[Key]map[Lang]string{
		"only.en": {English: "hello"},
		"empty":   {},
	}))
	require.Equal(t, "hello", r.Resolve("ur", "only.en"))
	require.Equal(t, "empty", r.Resolve("ur", "empty"))
}

func TestResolvef(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Resend OTP in 12s", Resolvef("en", KeyOTPResendIn, 12))
	require.Equal(t, "Sex is required", Resolvef("en", KeyFieldRequired, Resolve("en", KeySex)))
	require.True(t, strings.Contains(Resolvef("ur", KeyOTPResendIn, 7), "7"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]Lang{
		"en":    English,
		"ur":    Arabic,
		"en-GB": English,
		"ar":    Arabic,
		"ar-AE": Arabic,
		" ur ":  Arabic,
		"de":    English,
		"":      English,
		"xx!":   English,
	}
	for in, want := range cases {
		require.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	require.Len(t, Sexes(), 3)
	require.Equal(t, []string{"MALE", "FEMALE"}, Values(Sexes()))

	nat := Nationalities()
	require.Greater(t, len(nat), 190)
	require.Equal(t, NoneValue, nat[0].Value)
	seen := map[string]bool{}
	for _, o := range nat[1:] {
		require.Len(t, o.Value, 3, "ISO3 code for %s", o.Label)
		require.False(t, seen[o.Value], "duplicate %s", o.Value)
		seen[o.Value] = true
	}
	require.Equal(t, "United Arab Emirates", LabelOf(nat, "ARE"))
	require.Equal(t, "XYZ", LabelOf(nat, "XYZ"))

	ins := InsuranceProviders()
	require.Len(t, ins, 23)
	require.Contains(t, Values(ins), "DAMAN")
	require.NotContains(t, Values(ins), NoneValue)

	// callers cannot mutate the shared lists
	nat[1].Value = "ZZZ"
	require.Equal(t, "AFG", Nationalities()[1].Value)
}

func TestNew_OptionsAlongsidePickerEntries(t *testing.T) {
	t.Parallel()

	opts := []ResolverOption{
		WithCatalog(map[Key]map[Lang]string{KeySex: {English: "Gender"}}),
		WithFallback("-"),
	}
	r := New(opts...)
	sexes := Sexes()

	require.Equal(t, "Gender", r.Resolve("en", KeySex))
	require.Equal(t, "-", r.Resolve("en", KeyName))
	require.Equal(t, Option{Label: "Male", Value: "MALE"}, sexes[1])
	require.Equal(t, []string{"MALE", "FEMALE"}, Values(sexes))
}
