package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "accidents.csv")
	csv := "Date,Country,Operator,Air-Craft Type,Category,Fatilites,Damage\n" +
		"2001-01-01,USA,Air A,A320,Crash,12,Aircraft destroyed\n" +
		"2001-01-01,USA,Air A,A320,Crash,12,Aircraft destroyed\n" +
		"2002-02-02,U.S.A.,Air A,A320,Crash,0,minor damage\n" +
		"2003-03-03,France,Air B,B737,Weather,N/A,\n" +
		"bad date,atlantis,Air C,DC-3,Unknown,-3,minor\n"
	assert.NoError(t, os.WriteFile(input, []byte(csv), 0644))

	outputDir := filepath.Join(dir, "out")
	err := RunPipeline(input, outputDir, 1)
	assert.NoError(t, err)

	for _, name := range []string{
		"accidents_clean.csv",
		"top_countries.png",
		"top_countries.html",
		"world_map.html",
		"operator_treemap.html",
		"category_heatmap.html",
		"charts.html",
		"report.html",
	} {
		info, err := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, err, "missing artifact %s", name)
		if err == nil {
			assert.Greater(t, info.Size(), int64(0), "empty artifact %s", name)
		}
	}

	report, err := os.ReadFile(filepath.Join(outputDir, "report.html"))
	assert.NoError(t, err)
	assert.Contains(t, string(report), "Operator safety index")
}

func TestRunPipelineMissingInput(t *testing.T) {
	err := RunPipeline(filepath.Join(t.TempDir(), "nope.csv"), t.TempDir(), 5)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}
