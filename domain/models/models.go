package models

import "time"

type DamageType string

const (
	DamageHullLoss   DamageType = "Hull Loss"
	DamageRepairable DamageType = "Repairable"
)

const UnknownLabel = "Unknown"

// AccidentRecord is one cleaned accident row. Date is nil when the source
// value could not be parsed; Year is 0 in that case.
type AccidentRecord struct {
	Date         *time.Time
	Year         int
	Country      string
	CountryCode  string
	Operator     string
	AircraftType string
	Registration string
	Category     string
	Fatalities   int
	DamageType   DamageType
}

// RawTable is the loader output: original header labels and string cells.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// CleaningReport summarizes what the cleaner changed or could not resolve.
type CleaningReport struct {
	RowsIn             int
	RowsOut            int
	DuplicatesRemoved  int
	UnparsedDates      int
	UnmatchedCountries map[string]int
	YearMin            int
	YearMax            int
}

type CountryCount struct {
	Country string
	Code    string
	Count   int
}

type OperatorGroup struct {
	Country  string
	Operator string
	Count    int
}

// CrossTab holds category x damage type counts with stable axis order.
type CrossTab struct {
	Categories []string
	Damages    []DamageType
	Counts     map[string]map[DamageType]int
}

func (c *CrossTab) Get(category string, damage DamageType) int {
	if row, ok := c.Counts[category]; ok {
		return row[damage]
	}
	return 0
}

type AircraftStat struct {
	AircraftType string
	Accidents    int
	Fatalities   int
	FatalityRate float64
}

type OperatorFatalities struct {
	Operator   string
	Fatalities int
}

// OperatorSafety is fatalities per 100 accidents for one operator.
type OperatorSafety struct {
	Operator    string
	Accidents   int
	Fatalities  int
	SafetyIndex float64
}

type CountryCategory struct {
	Country  string
	Category string
	Count    int
}

// Insight is one text block of the final report.
type Insight struct {
	Title string
	Body  string
}
