package main

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pivolan/go_utils"

	"github.com/pivolan/aviation_accidents/domain/models"
)

// missingMarkers are the values treated as absent in categorical columns.
var missingMarkers = []string{"", "na", "n/a", "none", "-", "?", "unknown"}

// dateFormats are tried in order; anything else leaves the date null.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02-Jan-2006",
	"01-02-06",
}

// hullLossKeywords mark a damage description as a hull loss, matched
// case-insensitive as substrings. Everything else is Repairable.
var hullLossKeywords = []string{
	"destroyed",
	"hull loss",
	"written off",
	"w/o",
	"damaged beyond repair",
	"dbr",
}

var nonNumericPattern = regexp.MustCompile(`[^0-9-]`)

// CleanRecords turns the raw table into cleaned AccidentRecords: canonical
// headers, deduplicated rows, defaulted missing values, parsed dates,
// canonical countries, coerced fatalities and derived damage type. The
// input table is never mutated. Cleaning its own output again is a no-op.
func CleanRecords(table *models.RawTable) ([]models.AccidentRecord, *models.CleaningReport) {
	headers := NormalizeHeaders(table.Headers)
	col := map[string]int{}
	for i, h := range headers {
		col[h] = i
	}
	cell := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	report := &models.CleaningReport{
		RowsIn:             len(table.Rows),
		UnmatchedCountries: map[string]int{},
	}

	records := make([]models.AccidentRecord, 0, len(table.Rows))
	seen := map[string]bool{}
	for _, row := range table.Rows {
		record := models.AccidentRecord{
			Operator:     normalizeCategorical(cell(row, "operator")),
			AircraftType: normalizeCategorical(cell(row, "aircraft_type")),
			Registration: strings.TrimSpace(cell(row, "registration")),
			Category:     normalizeCategorical(cell(row, "category")),
			Fatalities:   coerceFatalities(cell(row, "fatalities")),
		}

		rawDate := cell(row, "date")
		if date := parseDate(rawDate); date != nil {
			record.Date = date
			record.Year = date.Year()
		} else if !isMissing(rawDate) {
			report.UnparsedDates++
		}

		country, code, matched := NormalizeCountry(normalizeCategorical(cell(row, "country")))
		record.Country = country
		record.CountryCode = code

		damageRaw := cell(row, "damage")
		if damageRaw == "" {
			damageRaw = cell(row, "damage_type")
		}
		record.DamageType = deriveDamageType(damageRaw, record.Fatalities)

		// Dedupe on the cleaned record, not the raw row: rows differing
		// only in noise collapse too, and cleaning stays idempotent.
		key := strings.Join(recordRow(record), "\x1f")
		if seen[key] {
			report.DuplicatesRemoved++
			continue
		}
		seen[key] = true

		// Count unmatched countries per surviving record so the report
		// describes the cleaned dataset, not the raw input.
		if !matched {
			report.UnmatchedCountries[country]++
		}

		records = append(records, record)
		if record.Year > 0 {
			if report.YearMin == 0 || record.Year < report.YearMin {
				report.YearMin = record.Year
			}
			if record.Year > report.YearMax {
				report.YearMax = record.Year
			}
		}
	}
	report.RowsOut = len(records)

	for name, count := range report.UnmatchedCountries {
		log.Printf("country %q not found in reference set (%d rows), kept as-is", name, count)
	}
	return records, report
}

func isMissing(raw string) bool {
	return go_utils.InArray(strings.ToLower(strings.TrimSpace(raw)), missingMarkers)
}

func normalizeCategorical(raw string) string {
	if isMissing(raw) {
		return models.UnknownLabel
	}
	return strings.TrimSpace(raw)
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if isMissing(raw) {
		return nil
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return &t
		}
	}
	return nil
}

// coerceFatalities strips non-numeric noise ("12 (crew)"), parses the rest
// and clamps negatives to zero. Unparseable values become zero.
func coerceFatalities(raw string) int {
	cleaned := nonNumericPattern.ReplaceAllString(raw, "")
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func deriveDamageType(description string, fatalities int) models.DamageType {
	if isMissing(description) {
		// No damage description in the source, fall back to the
		// fatalities heuristic.
		if fatalities > 0 {
			return models.DamageHullLoss
		}
		return models.DamageRepairable
	}
	lower := strings.ToLower(description)
	for _, keyword := range hullLossKeywords {
		if strings.Contains(lower, keyword) {
			return models.DamageHullLoss
		}
	}
	return models.DamageRepairable
}
