package main

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pivolan/aviation_accidents/domain/models"
)

// All aggregations are pure functions over the cleaned slice, independent
// of each other. Sort orders break ties on the name so output is stable.

func CountByCountry(records []models.AccidentRecord) []models.CountryCount {
	counts := map[string]int{}
	codes := map[string]string{}
	for _, r := range records {
		counts[r.Country]++
		if r.CountryCode != "" {
			codes[r.Country] = r.CountryCode
		}
	}
	result := make([]models.CountryCount, 0, len(counts))
	for country, count := range counts {
		result = append(result, models.CountryCount{Country: country, Code: codes[country], Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Country < result[j].Country
	})
	return result
}

func TopCountries(counts []models.CountryCount, n int) []models.CountryCount {
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// TopShare is the fraction of all accidents covered by the given top list.
func TopShare(top []models.CountryCount, total int) float64 {
	if total == 0 {
		return 0
	}
	sum := 0
	for _, c := range top {
		sum += c.Count
	}
	return float64(sum) / float64(total)
}

func CountByCountryOperator(records []models.AccidentRecord) []models.OperatorGroup {
	type key struct{ country, operator string }
	counts := map[key]int{}
	for _, r := range records {
		counts[key{r.Country, r.Operator}]++
	}
	result := make([]models.OperatorGroup, 0, len(counts))
	for k, count := range counts {
		result = append(result, models.OperatorGroup{Country: k.country, Operator: k.operator, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		if result[i].Country != result[j].Country {
			return result[i].Country < result[j].Country
		}
		return result[i].Operator < result[j].Operator
	})
	return result
}

func CrossTabCategoryDamage(records []models.AccidentRecord) *models.CrossTab {
	tab := &models.CrossTab{
		Damages: []models.DamageType{models.DamageHullLoss, models.DamageRepairable},
		Counts:  map[string]map[models.DamageType]int{},
	}
	for _, r := range records {
		row, ok := tab.Counts[r.Category]
		if !ok {
			row = map[models.DamageType]int{}
			tab.Counts[r.Category] = row
			tab.Categories = append(tab.Categories, r.Category)
		}
		row[r.DamageType]++
	}
	sort.Strings(tab.Categories)
	return tab
}

// CorrelationYearFatalities is the Pearson coefficient between year and
// fatalities over records with a known year. ok is false when there are
// fewer than two such records or one side has zero variance.
func CorrelationYearFatalities(records []models.AccidentRecord) (float64, bool) {
	var years, fatalities []float64
	for _, r := range records {
		if r.Year == 0 {
			continue
		}
		years = append(years, float64(r.Year))
		fatalities = append(fatalities, float64(r.Fatalities))
	}
	if len(years) < 2 {
		return 0, false
	}
	corr := stat.Correlation(years, fatalities, nil)
	if corr != corr { // NaN, zero variance on one side
		return 0, false
	}
	return corr, true
}

func AircraftTypeStats(records []models.AccidentRecord) []models.AircraftStat {
	accidents := map[string]int{}
	fatalities := map[string]int{}
	for _, r := range records {
		accidents[r.AircraftType]++
		fatalities[r.AircraftType] += r.Fatalities
	}
	result := make([]models.AircraftStat, 0, len(accidents))
	for aircraft, count := range accidents {
		result = append(result, models.AircraftStat{
			AircraftType: aircraft,
			Accidents:    count,
			Fatalities:   fatalities[aircraft],
			FatalityRate: float64(fatalities[aircraft]) / float64(count),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].FatalityRate != result[j].FatalityRate {
			return result[i].FatalityRate > result[j].FatalityRate
		}
		return result[i].AircraftType < result[j].AircraftType
	})
	return result
}

// TopAircraftByAccidents re-sorts the aircraft stats by accident count.
func TopAircraftByAccidents(stats []models.AircraftStat, n int) []models.AircraftStat {
	sorted := make([]models.AircraftStat, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Accidents != sorted[j].Accidents {
			return sorted[i].Accidents > sorted[j].Accidents
		}
		return sorted[i].AircraftType < sorted[j].AircraftType
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func OperatorFatalitiesRanking(records []models.AccidentRecord) []models.OperatorFatalities {
	totals := map[string]int{}
	for _, r := range records {
		totals[r.Operator] += r.Fatalities
	}
	result := make([]models.OperatorFatalities, 0, len(totals))
	for operator, total := range totals {
		result = append(result, models.OperatorFatalities{Operator: operator, Fatalities: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Fatalities != result[j].Fatalities {
			return result[i].Fatalities > result[j].Fatalities
		}
		return result[i].Operator < result[j].Operator
	})
	return result
}

// SafetyIndexByOperator is fatalities per 100 accidents. Operators with
// fewer than minAccidents are excluded, so there is no division by zero
// and no noise from one-off operators.
func SafetyIndexByOperator(records []models.AccidentRecord, minAccidents int) []models.OperatorSafety {
	accidents := map[string]int{}
	fatalities := map[string]int{}
	for _, r := range records {
		accidents[r.Operator]++
		fatalities[r.Operator] += r.Fatalities
	}
	result := []models.OperatorSafety{}
	for operator, count := range accidents {
		if count < minAccidents {
			continue
		}
		result = append(result, models.OperatorSafety{
			Operator:    operator,
			Accidents:   count,
			Fatalities:  fatalities[operator],
			SafetyIndex: float64(fatalities[operator]) / float64(count) * 100,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SafetyIndex != result[j].SafetyIndex {
			return result[i].SafetyIndex > result[j].SafetyIndex
		}
		return result[i].Operator < result[j].Operator
	})
	return result
}

// DominantCategoryPerCountry is the mode of category per country. Ties go
// to the lexicographically smallest category so reruns are deterministic.
func DominantCategoryPerCountry(records []models.AccidentRecord) []models.CountryCategory {
	counts := map[string]map[string]int{}
	for _, r := range records {
		if counts[r.Country] == nil {
			counts[r.Country] = map[string]int{}
		}
		counts[r.Country][r.Category]++
	}
	result := make([]models.CountryCategory, 0, len(counts))
	for country, categories := range counts {
		best := models.CountryCategory{Country: country}
		for category, count := range categories {
			if count > best.Count || (count == best.Count && category < best.Category) {
				best.Category = category
				best.Count = count
			}
		}
		result = append(result, best)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Country < result[j].Country
	})
	return result
}
