package main

import (
	"strings"
	"unicode"

	"github.com/biter777/countries"
	"github.com/mozillazg/go-unidecode"

	"github.com/pivolan/aviation_accidents/domain/models"
)

// countryAliases maps normalized free-text spellings to the canonical name
// used across all aggregations and map rendering. Keys are lowercase with
// dots stripped and whitespace collapsed.
var countryAliases = map[string]string{
	"usa":                          "United States",
	"us":                           "United States",
	"united states of america":     "United States",
	"uk":                           "United Kingdom",
	"great britain":                "United Kingdom",
	"england":                      "United Kingdom",
	"ussr":                         "Russia",
	"soviet union":                 "Russia",
	"russian federation":           "Russia",
	"burma":                        "Myanmar",
	"zaire":                        "Democratic Republic of the Congo",
	"dr congo":                     "Democratic Republic of the Congo",
	"democratic republic of congo": "Democratic Republic of the Congo",
	"ivory coast":                  "Cote d'Ivoire",
	"cote d'ivoire":                "Cote d'Ivoire",
	"republic of korea":            "South Korea",
	"korea":                        "South Korea",
	"viet nam":                     "Vietnam",
	"uae":                          "United Arab Emirates",
	"netherlands antilles":         "Netherlands",
	"yugoslavia":                   "Serbia",
	"czechoslovakia":               "Czech Republic",
}

// Canonical names must be stable inputs themselves: "Zaire" resolves to
// "Democratic Republic of the Congo", and so does the canonical spelling.
func init() {
	canonicals := make([]string, 0, len(countryAliases))
	for _, canonical := range countryAliases {
		canonicals = append(canonicals, canonical)
	}
	for _, canonical := range canonicals {
		countryAliases[countryAliasKey(canonical)] = canonical
	}
}

// NormalizeCountry resolves a raw country value to its canonical name and
// ISO alpha-3 code. Unmatched names pass through title-cased with matched
// false, they are never dropped.
func NormalizeCountry(raw string) (name string, code string, matched bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, models.UnknownLabel) {
		return models.UnknownLabel, "", true
	}

	if canonical, ok := countryAliases[countryAliasKey(raw)]; ok {
		return canonical, countryAlpha3(canonical), true
	}

	candidate := titleCase(raw)
	if cc := countries.ByName(candidate); cc != countries.Unknown {
		return candidate, cc.Alpha3(), true
	}
	return candidate, "", false
}

func countryAlpha3(name string) string {
	cc := countries.ByName(name)
	if cc == countries.Unknown {
		return ""
	}
	return cc.Alpha3()
}

func countryAliasKey(raw string) string {
	key := strings.ToLower(unidecode.Unidecode(raw))
	key = strings.ReplaceAll(key, ".", "")
	return strings.Join(strings.Fields(key), " ")
}

// titleCase uppercases the first letter of each word, like the source data
// convention ("united states" -> "United States").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		for j, r := range runes {
			if unicode.IsLetter(r) {
				runes[j] = unicode.ToUpper(r)
				break
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
