package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/aviation_accidents/domain/models"
)

func TestTopCountriesBarRender(t *testing.T) {
	bar := TopCountriesBar([]models.CountryCount{
		{Country: "United States", Code: "USA", Count: 762},
		{Country: "Russia", Code: "RUS", Count: 539},
	})

	buf := &bytes.Buffer{}
	assert.NoError(t, bar.Render(buf))
	html := buf.String()
	assert.Contains(t, html, "United States")
	assert.Contains(t, html, "accidents")
}

func TestWorldMapSkipsUncodedCountries(t *testing.T) {
	worldMap := WorldMap([]models.CountryCount{
		{Country: "United States", Code: "USA", Count: 762},
		{Country: "Atlantis Republic", Code: "", Count: 3},
	})

	buf := &bytes.Buffer{}
	assert.NoError(t, worldMap.Render(buf))
	html := buf.String()
	assert.Contains(t, html, "United States")
	assert.NotContains(t, html, "Atlantis Republic")
}

func TestOperatorTreemapRender(t *testing.T) {
	treemap := OperatorTreemap([]models.OperatorGroup{
		{Country: "France", Operator: "Air A", Count: 4},
		{Country: "France", Operator: "Air B", Count: 2},
		{Country: "Spain", Operator: "Air C", Count: 1},
	})

	buf := &bytes.Buffer{}
	assert.NoError(t, treemap.Render(buf))
	html := buf.String()
	assert.Contains(t, html, "France")
	assert.Contains(t, html, "Air B")
}

func TestDamageHeatmapRender(t *testing.T) {
	tab := &models.CrossTab{
		Categories: []string{"Crash", "Weather"},
		Damages:    []models.DamageType{models.DamageHullLoss, models.DamageRepairable},
		Counts: map[string]map[models.DamageType]int{
			"Crash":   {models.DamageHullLoss: 3},
			"Weather": {models.DamageRepairable: 2},
		},
	}

	buf := &bytes.Buffer{}
	assert.NoError(t, DamageHeatmap(tab).Render(buf))
	html := buf.String()
	assert.Contains(t, html, "Hull Loss")
	assert.Contains(t, html, "Weather")
}

func TestRenderChartsPage(t *testing.T) {
	bar := TopCountriesBar([]models.CountryCount{{Country: "France", Code: "FRA", Count: 7}})
	tab := &models.CrossTab{
		Categories: []string{"Crash"},
		Damages:    []models.DamageType{models.DamageHullLoss, models.DamageRepairable},
		Counts:     map[string]map[models.DamageType]int{"Crash": {models.DamageHullLoss: 1}},
	}

	buf := &bytes.Buffer{}
	assert.NoError(t, RenderChartsPage(buf, bar, DamageHeatmap(tab)))
	assert.Contains(t, buf.String(), "France")
}
