package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pivolan/aviation_accidents/plot"
)

// RunPipeline is the whole batch: load, clean, analyze, render, report.
// Linear, single pass, fails fast on load/export errors.
func RunPipeline(inputPath, outputDir string, minAccidentsSafety int) error {
	table, err := LoadTable(inputPath)
	if err != nil {
		return err
	}

	records, report := CleanRecords(table)
	log.Printf("cleaned %d -> %d rows (%d duplicates removed, %d unparseable dates, %d unmatched countries)",
		report.RowsIn, report.RowsOut, report.DuplicatesRemoved, report.UnparsedDates, len(report.UnmatchedCountries))
	if report.YearMin > 0 {
		log.Printf("date range: %d to %d", report.YearMin, report.YearMax)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return &ExportError{Path: outputDir, Err: err}
	}
	if err := WriteCleanedCSV(filepath.Join(outputDir, "accidents_clean.csv"), records); err != nil {
		return err
	}

	countryCounts := CountByCountry(records)
	top15 := TopCountries(countryCounts, 15)

	labels := make([]string, 0, len(top15))
	values := make([]float64, 0, len(top15))
	for _, c := range top15 {
		labels = append(labels, c.Country)
		values = append(values, float64(c.Count))
	}
	png, err := plot.DrawPlotBar(plot.NewDataLabelsForGraph(labels, values, "Top 15 Countries by Aviation Accidents"))
	if err != nil {
		return fmt.Errorf("render top countries bar: %w", err)
	}
	pngPath := filepath.Join(outputDir, "top_countries.png")
	if err := os.WriteFile(pngPath, png, 0644); err != nil {
		return &ExportError{Path: pngPath, Err: err}
	}

	bar := plot.TopCountriesBar(top15)
	worldMap := plot.WorldMap(countryCounts)
	treemap := plot.OperatorTreemap(CountByCountryOperator(records))
	heatmap := plot.DamageHeatmap(CrossTabCategoryDamage(records))

	chartFiles := []struct {
		name  string
		title string
		chart renderable
	}{
		{"top_countries.html", "Top 15 Countries by Aviation Accidents", bar},
		{"world_map.html", "Global Distribution of Aviation Accidents", worldMap},
		{"operator_treemap.html", "Accidents by Country and Operator", treemap},
		{"category_heatmap.html", "Accident Categories vs Damage Type", heatmap},
	}
	for _, cf := range chartFiles {
		if err := renderChartFile(filepath.Join(outputDir, cf.name), cf.chart); err != nil {
			return err
		}
	}

	chartsPath := filepath.Join(outputDir, "charts.html")
	chartsFile, err := os.Create(chartsPath)
	if err != nil {
		return &ExportError{Path: chartsPath, Err: err}
	}
	err = plot.RenderChartsPage(chartsFile, bar, worldMap, treemap, heatmap)
	chartsFile.Close()
	if err != nil {
		return &ExportError{Path: chartsPath, Err: err}
	}

	slides := []Slide{
		{
			Title: "Aviation Accidents Analysis",
			Text: fmt.Sprintf("%d accident records analyzed.\nSource: %s",
				len(records), inputPath),
		},
	}
	for _, cf := range chartFiles {
		slides = append(slides, Slide{Title: cf.title, Frame: cf.name})
	}
	for _, insight := range BuildInsights(records, minAccidentsSafety) {
		slides = append(slides, Slide{Title: insight.Title, Text: insight.Body})
	}
	if err := WriteDeck(filepath.Join(outputDir, "report.html"), "Aviation Accidents Analysis", slides); err != nil {
		return err
	}

	log.Printf("report written to %s", filepath.Join(outputDir, "report.html"))
	return nil
}

type renderable interface {
	Render(w io.Writer) error
}

func renderChartFile(path string, chart renderable) error {
	file, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer file.Close()
	if err := chart.Render(file); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
