package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// headerRenames fixes the known-misspelled source column labels after the
// generic normalization pass.
var headerRenames = map[string]string{
	"air-craft_type":         "aircraft_type",
	"aircraft-type":          "aircraft_type",
	"registration_name/mark": "registration",
	"fatilites":              "fatalities",
	"fatalaties":             "fatalities",
}

var headerJunkPattern = regexp.MustCompile(`[^a-z0-9_/-]+`)

// NormalizeHeaders maps arbitrary source header labels to the canonical
// field names: lowercase, underscores, ASCII transliteration, fixed rename
// table, duplicate suffixes.
func NormalizeHeaders(headers []string) []string {
	result := make([]string, len(headers))
	for i, header := range headers {
		result[i] = cleanHeaderName(header, i)
	}
	return ValidateHeaders(result)
}

func cleanHeaderName(header string, index int) string {
	header = strings.TrimSpace(unidecode.Unidecode(header))
	if header == "" {
		return generateColumnName(index)
	}

	cleaned := strings.ToLower(header)
	cleaned = strings.Join(strings.Fields(cleaned), "_")
	if renamed, ok := headerRenames[cleaned]; ok {
		return renamed
	}
	cleaned = headerJunkPattern.ReplaceAllString(cleaned, "_")
	cleaned = strings.NewReplacer("/", "_", "-", "_").Replace(cleaned)
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return generateColumnName(index)
	}
	return cleaned
}

func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// ValidateHeaders appends numeric suffixes to duplicate header names so
// every column keeps its own key.
func ValidateHeaders(headers []string) []string {
	seen := map[string]bool{}
	result := make([]string, len(headers))

	for i, header := range headers {
		name := header
		for counter := 1; seen[name]; counter++ {
			name = fmt.Sprintf("%s_%d", header, counter)
		}
		seen[name] = true
		result[i] = name
	}
	return result
}
