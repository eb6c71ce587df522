// Package sheet reads the list of articles to score and writes the score
// table, as Excel workbooks or CSV files.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/textscore"
)

const (
	idColumn  = "URL_ID"
	urlColumn = "URL"

	defaultSheet = "Sheet1"
)

// ErrUnknownFormat is returned for paths that are neither .xlsx nor .csv.
var ErrUnknownFormat = errors.New("unknown sheet format")

// ReadSources reads the URL_ID and URL columns of the table at path. Rows
// without a URL are ignored.
func ReadSources(path string) ([]textscore.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readSourcesXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadSourcesCSV(f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// ReadSourcesCSV reads sources from CSV data with a header row.
func ReadSourcesCSV(r io.Reader) ([]textscore.Source, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return sourcesFromRows(rows)
}

func readSourcesXLSX(path string) ([]textscore.Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return sourcesFromRows(rows)
}

func sourcesFromRows(rows [][]string) ([]textscore.Source, error) {
	if len(rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	idCol, urlCol := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case idColumn:
			idCol = i
		case urlColumn:
			urlCol = i
		}
	}
	if idCol < 0 || urlCol < 0 {
		return nil, fmt.Errorf("header must name %s and %s columns", idColumn, urlColumn)
	}

	var sources []textscore.Source
	for _, row := range rows[1:] {
		url := cell(row, urlCol)
		if url == "" {
			continue
		}
		sources = append(sources, textscore.Source{ID: cell(row, idCol), URL: url})
	}
	return sources, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// WriteReports writes reports to path under the textscore.Columns header.
func WriteReports(path string, reports []textscore.ScoreReport) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeReportsXLSX(path, reports)
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteReportsCSV(f, reports); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// WriteReportsCSV writes reports as CSV under the textscore.Columns header.
func WriteReportsCSV(w io.Writer, reports []textscore.ScoreReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(textscore.Columns); err != nil {
		return err
	}
	for _, r := range reports {
		values := r.Row()
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeReportsXLSX(path string, reports []textscore.ScoreReport) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(textscore.Columns))
	for i, c := range textscore.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(defaultSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range reports {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := r.Row()
		if err := f.SetSheetRow(defaultSheet, axis, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
