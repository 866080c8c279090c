package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/aviation_accidents/domain/models"
)

func FormatCountryTable(counts []models.CountryCount) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Country", "Code", "Accidents"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Country, c.Code, c.Count})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func FormatAircraftTable(stats []models.AircraftStat) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Aircraft Type", "Accidents", "Fatalities", "Fatality Rate"})
	for _, s := range stats {
		t.AppendRow(table.Row{s.AircraftType, s.Accidents, s.Fatalities, fmt.Sprintf("%.2f", s.FatalityRate)})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func FormatOperatorFatalitiesTable(totals []models.OperatorFatalities) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Operator", "Fatalities"})
	for _, o := range totals {
		t.AppendRow(table.Row{o.Operator, o.Fatalities})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func FormatSafetyTable(safety []models.OperatorSafety) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Operator", "Accidents", "Fatalities", "Safety Index"})
	for _, s := range safety {
		t.AppendRow(table.Row{s.Operator, s.Accidents, s.Fatalities, fmt.Sprintf("%.1f", s.SafetyIndex)})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func FormatDominantCategoryTable(dominant []models.CountryCategory) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Country", "Dominant Category", "Accidents"})
	for _, d := range dominant {
		t.AppendRow(table.Row{d.Country, d.Category, d.Count})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func FormatCrossTab(tab *models.CrossTab) string {
	t := table.NewWriter()
	header := table.Row{"Category"}
	for _, d := range tab.Damages {
		header = append(header, string(d))
	}
	t.AppendHeader(header)
	for _, category := range tab.Categories {
		row := table.Row{category}
		for _, d := range tab.Damages {
			row = append(row, tab.Get(category, d))
		}
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func limitOperatorFatalities(totals []models.OperatorFatalities, n int) []models.OperatorFatalities {
	if len(totals) > n {
		return totals[:n]
	}
	return totals
}

func limitSafety(safety []models.OperatorSafety, n int) []models.OperatorSafety {
	if len(safety) > n {
		return safety[:n]
	}
	return safety
}

// BuildInsights renders the numbered summary blocks of the report in the
// same order the original analysis printed them.
func BuildInsights(records []models.AccidentRecord, minAccidentsSafety int) []models.Insight {
	countryCounts := CountByCountry(records)
	top15 := TopCountries(countryCounts, 15)
	aircraftStats := AircraftTypeStats(records)

	insights := []models.Insight{
		{
			Title: "Top 15 countries share",
			Body: fmt.Sprintf("Top 15 countries account for %.2f%% of all recorded accidents.",
				TopShare(top15, len(records))*100),
		},
		{
			Title: "Countries with most accidents",
			Body:  FormatCountryTable(TopCountries(countryCounts, 5)),
		},
	}

	if corr, ok := CorrelationYearFatalities(records); ok {
		insights = append(insights, models.Insight{
			Title: "Correlation between year and fatalities",
			Body:  fmt.Sprintf("Pearson correlation year vs fatalities: %.4f", corr),
		})
	} else {
		insights = append(insights, models.Insight{
			Title: "Correlation between year and fatalities",
			Body:  "Not enough records with a known year to compute a correlation.",
		})
	}

	insights = append(insights,
		models.Insight{
			Title: "Dominant accident category per country",
			Body:  FormatDominantCategoryTable(DominantCategoryPerCountry(records)),
		},
		models.Insight{
			Title: "Most common aircraft types",
			Body:  FormatAircraftTable(TopAircraftByAccidents(aircraftStats, 10)),
		},
		models.Insight{
			Title: "Operators with highest total fatalities",
			Body:  FormatOperatorFatalitiesTable(limitOperatorFatalities(OperatorFatalitiesRanking(records), 10)),
		},
		models.Insight{
			Title: "Deadliest aircraft types per accident",
			Body:  FormatAircraftTable(topAircraftStats(aircraftStats, 10)),
		},
		models.Insight{
			Title: fmt.Sprintf("Operator safety index (min %d accidents)", minAccidentsSafety),
			Body:  FormatSafetyTable(limitSafety(SafetyIndexByOperator(records, minAccidentsSafety), 10)),
		},
	)
	return insights
}

func topAircraftStats(stats []models.AircraftStat, n int) []models.AircraftStat {
	if len(stats) > n {
		return stats[:n]
	}
	return stats
}
