package localization

import (
	"reflect"
	"testing"

	"github.com/bmizerany/assert"
)

func TestTransform(t *testing.T) {
	p, err := ParseProject(`{"keys":[{"key":"hello","localizations":[{"code":"en","value":"Hi"},{"code":"fr","value":"Salut"}]}]}`)
	assert.Equal(t, nil, err)

	got := Transform(p)
	want := Output{
		"en": {"hello": "Hi"},
		"fr": {"hello": "Salut"},
	}
	assert.Equal(t, want, got)

	b, err := Encode(got, FormatJSON)
	assert.Equal(t, nil, err)
	assert.Equal(t, "{\n  \"en\": {\n    \"hello\": \"Hi\"\n  },\n  \"fr\": {\n    \"hello\": \"Salut\"\n  }\n}\n", string(b))
}

func TestTransform_OrderIndependent(t *testing.T) {
	keys := []Key{
		{Key: "hello", Localizations: []Localization{{"en", "Hi"}, {"fr", "Salut"}}},
		{Key: "bye", Localizations: []Localization{{"fr", "Au revoir"}, {"de", "Tschüss"}}},
		{Key: "yes", Localizations: []Localization{{"en", "Yes"}}},
	}
	reversed := make([]Key, len(keys))
	for i, k := range keys {
		reversed[len(keys)-1-i] = k
	}

	a := Transform(&Project{Keys: keys})
	b := Transform(&Project{Keys: reversed})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Transform() depends on key order: %v != %v", a, b)
	}

	locales, translations := a.Count()
	assert.Equal(t, 3, locales)
	assert.Equal(t, 5, translations)
}

func TestTransform_DuplicateLastWins(t *testing.T) {
	got := Transform(&Project{Keys: []Key{
		{Key: "hello", Localizations: []Localization{{"en", "Hi"}}},
		{Key: "hello", Localizations: []Localization{{"en", "Hello"}}},
	}})
	assert.Equal(t, Output{"en": {"hello": "Hello"}}, got)
}

func TestTransform_Empty(t *testing.T) {
	assert.Equal(t, Output{}, Transform(nil))
	assert.Equal(t, Output{}, Transform(&Project{}))
	assert.Equal(t, Output{}, Transform(&Project{Keys: []Key{{Key: "orphan"}}}))
}

func TestParseProject_Invalid(t *testing.T) {
	_, err := ParseProject(`{"keys":`)
	assert.NotEqual(t, nil, err)
}

func TestUnknownLocales(t *testing.T) {
	out := Output{
		"en":            {},
		"fr-CA":         {},
		"not a locale!": {},
		"":              {},
	}
	assert.Equal(t, []string{"", "not a locale!"}, UnknownLocales(out))
	assert.Equal(t, 0, len(UnknownLocales(Output{"en": {}})))
}
