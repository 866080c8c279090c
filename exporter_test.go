package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/aviation_accidents/domain/models"
)

func TestWriteCleanedCSV(t *testing.T) {
	date := time.Date(2001, 7, 29, 0, 0, 0, 0, time.UTC)
	records := []models.AccidentRecord{
		{Date: &date, Year: 2001, Country: "United States", CountryCode: "USA",
			Operator: "Air A", AircraftType: "A320", Category: "Crash",
			Fatalities: 12, DamageType: models.DamageHullLoss},
		{Country: "Unknown", Operator: "Unknown", AircraftType: "Unknown",
			Category: "Unknown", DamageType: models.DamageRepairable},
	}

	path := filepath.Join(t.TempDir(), "out", "accidents_clean.csv")
	err := WriteCleanedCSV(path, records)
	assert.NoError(t, err)

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "\xEF\xBB\xBF"), "missing UTF-8 BOM")

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(raw), "\xEF\xBB\xBF")))
	rows, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, cleanedHeaders, rows[0])
	assert.Equal(t, "2001-07-29", rows[1][0])
	assert.Equal(t, "2001", rows[1][1])
	assert.Equal(t, "Hull Loss", rows[1][9])
	assert.Equal(t, "", rows[2][0], "null date stays empty")
	assert.Equal(t, "", rows[2][1])
}

func TestWriteCleanedCSVUnwritablePath(t *testing.T) {
	err := WriteCleanedCSV(filepath.Join(string(byte(0)), "x.csv"), nil)
	assert.Error(t, err)
	var exportErr *ExportError
	assert.ErrorAs(t, err, &exportErr)
}

func TestRecordsTableRoundTrip(t *testing.T) {
	date := time.Date(2001, 7, 29, 0, 0, 0, 0, time.UTC)
	records := []models.AccidentRecord{
		{Date: &date, Year: 2001, Country: "France", CountryCode: "FRA",
			Operator: "Air A", AircraftType: "A320", Category: "Crash",
			Fatalities: 3, DamageType: models.DamageHullLoss},
	}
	table := RecordsTable(records)

	assert.Equal(t, cleanedHeaders, table.Headers)
	assert.Len(t, table.Rows, 1)

	cleaned, _ := CleanRecords(table)
	assert.Equal(t, records, cleaned)
}
