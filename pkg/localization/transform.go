// Package localization turns AppLoc project data into per-locale key/value
// maps and keeps the on-disk localization file in sync with them.
package localization

import (
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// Project is the payload embedded in the API envelope.
type Project struct {
	Keys []Key `json:"keys"`
}

type Key struct {
	Key           string         `json:"key"`
	Localizations []Localization `json:"localizations"`
}

type Localization struct {
	Code  string `json:"code"`
	Value string `json:"value"`
}

// Output maps a locale code to the translations of that locale.
type Output map[string]map[string]string

func ParseProject(data string) (*Project, error) {
	p := new(Project)
	if err := json.Unmarshal([]byte(data), p); err != nil {
		return nil, fmt.Errorf("parse project data: %w", err)
	}
	return p, nil
}

// Transform reshapes key-major project data into a locale-major map. When a
// (key, code) pair repeats, the last value wins.
func Transform(p *Project) Output {
	out := make(Output)
	if p == nil {
		return out
	}

	for _, k := range p.Keys {
		for _, l := range k.Localizations {
			translations, ok := out[l.Code]
			if !ok {
				translations = make(map[string]string)
				out[l.Code] = translations
			}
			translations[k.Key] = l.Value
		}
	}

	return out
}

// UnknownLocales returns the sorted codes of out that do not parse as BCP 47
// language tags.
func UnknownLocales(out Output) []string {
	var codes []string
	for code := range out {
		if _, err := language.Parse(code); err != nil {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	return codes
}

// Count returns the number of locales and the total number of translations.
func (o Output) Count() (locales, translations int) {
	for _, m := range o {
		translations += len(m)
	}
	return len(o), translations
}
