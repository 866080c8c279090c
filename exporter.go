package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pivolan/aviation_accidents/domain/models"
)

var cleanedHeaders = []string{
	"date", "year", "country", "country_code", "operator",
	"aircraft_type", "registration", "category", "fatalities", "damage_type",
}

// WriteCleanedCSV writes the cleaned dataset, UTF-8 BOM first so Excel
// opens it correctly.
func WriteCleanedCSV(path string, records []models.AccidentRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	file, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(cleanedHeaders); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	for _, record := range records {
		if err := writer.Write(recordRow(record)); err != nil {
			return &ExportError{Path: path, Err: err}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

func recordRow(r models.AccidentRecord) []string {
	date := ""
	year := ""
	if r.Date != nil {
		date = r.Date.Format("2006-01-02")
		year = strconv.Itoa(r.Year)
	}
	return []string{
		date, year, r.Country, r.CountryCode, r.Operator,
		r.AircraftType, r.Registration, r.Category,
		strconv.Itoa(r.Fatalities), string(r.DamageType),
	}
}

// RecordsTable converts cleaned records back into a raw table, the same
// shape the cleaner accepts. Used to check that cleaning is idempotent.
func RecordsTable(records []models.AccidentRecord) *models.RawTable {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, recordRow(r))
	}
	headers := make([]string, len(cleanedHeaders))
	copy(headers, cleanedHeaders)
	return &models.RawTable{Headers: headers, Rows: rows}
}
