package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/aviation_accidents/domain/models"
)

func TestFormatCountryTable(t *testing.T) {
	out := FormatCountryTable([]models.CountryCount{
		{Country: "United States", Code: "USA", Count: 42},
		{Country: "France", Code: "FRA", Count: 7},
	})

	assert.Contains(t, out, "COUNTRY")
	assert.Contains(t, out, "ACCIDENTS")
	assert.Contains(t, out, "United States")
	assert.Contains(t, out, "42")
	// Rows keep the input order.
	assert.Less(t, strings.Index(out, "United States"), strings.Index(out, "France"))
}

func TestFormatCrossTab(t *testing.T) {
	tab := &models.CrossTab{
		Categories: []string{"Crash", "Weather"},
		Damages:    []models.DamageType{models.DamageHullLoss, models.DamageRepairable},
		Counts: map[string]map[models.DamageType]int{
			"Crash":   {models.DamageHullLoss: 3, models.DamageRepairable: 1},
			"Weather": {models.DamageRepairable: 2},
		},
	}
	out := FormatCrossTab(tab)

	assert.Contains(t, out, "HULL LOSS")
	assert.Contains(t, out, "REPAIRABLE")
	assert.Contains(t, out, "Crash")
	assert.Contains(t, out, "Weather")
}

func TestFormatSafetyTable(t *testing.T) {
	out := FormatSafetyTable([]models.OperatorSafety{
		{Operator: "Air A", Accidents: 5, Fatalities: 10, SafetyIndex: 200},
	})

	assert.Contains(t, out, "Air A")
	assert.Contains(t, out, "200.0")
}

func TestBuildInsights(t *testing.T) {
	records := []models.AccidentRecord{
		{Country: "France", Operator: "Air A", AircraftType: "A320", Category: "Crash",
			Year: 2000, Fatalities: 3, DamageType: models.DamageHullLoss},
		{Country: "France", Operator: "Air A", AircraftType: "A320", Category: "Crash",
			Year: 2001, Fatalities: 0, DamageType: models.DamageRepairable},
		{Country: "Spain", Operator: "Air B", AircraftType: "B737", Category: "Weather",
			Year: 2002, Fatalities: 1, DamageType: models.DamageHullLoss},
	}
	insights := BuildInsights(records, 1)

	assert.Len(t, insights, 8)
	assert.Equal(t, "Top 15 countries share", insights[0].Title)
	assert.Contains(t, insights[0].Body, "100.00%")
	assert.Contains(t, insights[2].Body, "Pearson correlation")
}
