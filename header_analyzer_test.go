package main

import (
	"reflect"
	"testing"
)

func TestNormalizeHeaders(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "Canonical accident columns",
			input: []string{"Date", "Country", "Operator", "Air-Craft Type", "Fatilites", "Category"},
			want:  []string{"date", "country", "operator", "aircraft_type", "fatalities", "category"},
		},
		{
			name:  "Registration rename",
			input: []string{"Registration Name/Mark", "Damage"},
			want:  []string{"registration", "damage"},
		},
		{
			name:  "Whitespace and case",
			input: []string{"  Aircraft  Type ", "FATALITIES"},
			want:  []string{"aircraft_type", "fatalities"},
		},
		{
			name:  "Special characters stripped",
			input: []string{"User Name!", "Age#"},
			want:  []string{"user_name", "age"},
		},
		{
			name:  "Duplicate headers get suffixes",
			input: []string{"Country", "Country", "Country"},
			want:  []string{"country", "country_1", "country_2"},
		},
		{
			name:  "Empty headers get generated names",
			input: []string{"", "Operator", ""},
			want:  []string{"column_1", "operator", "column_3"},
		},
		{
			name:  "Non ASCII transliterated",
			input: []string{"Straße", "País"},
			want:  []string{"strasse", "pais"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHeaders(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeHeaders(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateHeaders(t *testing.T) {
	got := ValidateHeaders([]string{"name", "name", "name", "age"})
	want := []string{"name", "name_1", "name_2", "age"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateHeaders = %v, want %v", got, want)
	}
}
