package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pivolan/aviation_accidents/domain/models"
)

// LoadTable reads a spreadsheet (.xlsx or .csv, optionally zip/gz/lz4
// archived) into a RawTable with the original header labels. All failures
// come back as *LoadError.
func LoadTable(filePath string) (*models.RawTable, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, &LoadError{Path: filePath, Err: err}
	}

	unpackedPath, err := unpackArchive(filePath)
	if err != nil {
		return nil, &LoadError{Path: filePath, Err: err}
	}
	if unpackedPath != "" {
		log.Printf("unpacked archive %s -> %s", filePath, unpackedPath)
		filePath = unpackedPath
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		rows, err = loadExcelRows(filePath)
	case ".csv", ".txt", "":
		rows, err = loadCSVRows(filePath)
	default:
		err = fmt.Errorf("unsupported file extension %q", filepath.Ext(filePath))
	}
	if err != nil {
		return nil, &LoadError{Path: filePath, Err: err}
	}
	if len(rows) < 2 {
		return nil, &LoadError{Path: filePath, Err: errors.New("no data rows found")}
	}

	headers := rows[0]
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// Excel readers drop trailing empty cells, pad back to header width.
		for len(row) < len(headers) {
			row = append(row, "")
		}
		data = append(data, row[:len(headers)])
	}
	log.Printf("loaded %d rows, %d columns from %s", len(data), len(headers), filePath)
	return &models.RawTable{Headers: headers, Rows: data}, nil
}

func loadExcelRows(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// First sheet that actually contains a header plus data wins.
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(rows) > 1 {
			return rows, nil
		}
	}
	return nil, errors.New("no sheet with tabular data")
}

func loadCSVRows(filePath string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
