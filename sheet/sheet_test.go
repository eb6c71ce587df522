package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/textscore"
)

func TestReadSourcesCSV(t *testing.T) {
	data := "URL,URL_ID\nhttps://example.com/a,37\n,38\n https://example.com/b , 39 \n"

	got, err := ReadSourcesCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadSourcesCSV: %v", err)
	}

	expected := []textscore.Source{
		{ID: "37", URL: "https://example.com/a"},
		{ID: "39", URL: "https://example.com/b"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestReadSourcesCSVBadHeader(t *testing.T) {
	for _, data := range []string{"", "ID,Link\n1,http://x\n"} {
		if _, err := ReadSourcesCSV(strings.NewReader(data)); err == nil {
			t.Errorf("ReadSourcesCSV(%q): expected an error", data)
		}
	}
}

func TestWriteReportsCSV(t *testing.T) {
	reports := []textscore.ScoreReport{{
		URLID:       "37",
		Title:       "Rising IT cities",
		Sentiment:   textscore.Sentiment{Positive: 2, Negative: 1, Polarity: 0.5},
		Readability: textscore.Readability{WordCount: 11, FogIndex: 12},
	}}

	var buf bytes.Buffer
	if err := WriteReportsCSV(&buf, reports); err != nil {
		t.Fatalf("WriteReportsCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}
	if !reflect.DeepEqual(records[0], textscore.Columns) {
		t.Errorf("header: got %v", records[0])
	}
	row := records[1]
	if row[0] != "37" || row[1] != "Rising IT cities" || row[2] != "2" || row[4] != "0.5" || row[8] != "12" || row[11] != "11" {
		t.Errorf("row: got %v", row)
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "Input.xlsx")
	f := excelize.NewFile()
	for i, row := range [][]any{{"URL_ID", "URL"}, {"blackassign0001", "https://example.com/1"}, {"blackassign0002", "https://example.com/2"}} {
		axis, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", axis, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(input); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	sources, err := ReadSources(input)
	if err != nil {
		t.Fatalf("ReadSources: %v", err)
	}
	if len(sources) != 2 || sources[1].ID != "blackassign0002" || sources[1].URL != "https://example.com/2" {
		t.Fatalf("unexpected sources: %+v", sources)
	}

	output := filepath.Join(dir, "Output.xlsx")
	reports := []textscore.ScoreReport{{URLID: sources[0].ID, Title: "One"}, {URLID: sources[1].ID, Title: "Two"}}
	if err := WriteReports(output, reports); err != nil {
		t.Fatalf("WriteReports: %v", err)
	}

	out, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer out.Close()
	rows, err := out.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], textscore.Columns) {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[2][0] != "blackassign0002" || rows[2][1] != "Two" {
		t.Errorf("row order: got %v", rows[2])
	}
}

func TestCSVFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteReports(path, []textscore.ScoreReport{{URLID: "1", Title: "T"}}); err != nil {
		t.Fatalf("WriteReports: %v", err)
	}
	if _, err := ReadSources(path); err == nil {
		t.Error("expected an error reading a score table as input")
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := ReadSources("input.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ReadSources: expected ErrUnknownFormat, got %v", err)
	}
	if err := WriteReports("output.txt", nil); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("WriteReports: expected ErrUnknownFormat, got %v", err)
	}
}
