package textscore

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	reports := []ScoreReport{
		{Sentiment: Sentiment{Polarity: 0, Subjectivity: 0.2}, Readability: Readability{FogIndex: 10, WordCount: 100}},
		{Sentiment: Sentiment{Polarity: 1, Subjectivity: 0.4}, Readability: Readability{FogIndex: 14, WordCount: 300}},
	}

	s := Summarize(reports)

	if s.Documents != 2 {
		t.Errorf("Documents: expected 2, got %d", s.Documents)
	}
	tests := []struct {
		name     string
		got      Stat
		expected Stat
	}{
		{"Polarity", s.Polarity, Stat{Mean: 0.5, StdDev: math.Sqrt(0.5)}},
		{"Subjectivity", s.Subjectivity, Stat{Mean: 0.3, StdDev: math.Sqrt(0.02)}},
		{"FogIndex", s.FogIndex, Stat{Mean: 12, StdDev: math.Sqrt(8)}},
		{"WordCount", s.WordCount, Stat{Mean: 200, StdDev: math.Sqrt(20000)}},
	}
	for _, tt := range tests {
		if math.Abs(tt.got.Mean-tt.expected.Mean) > 1e-9 || math.Abs(tt.got.StdDev-tt.expected.StdDev) > 1e-9 {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.expected, tt.got)
		}
	}
}

func TestSummarizeSmallBatches(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("empty batch: expected zero summary, got %+v", s)
	}

	s := Summarize([]ScoreReport{{Readability: Readability{FogIndex: 7}}})
	if s.FogIndex.Mean != 7 || s.FogIndex.StdDev != 0 {
		t.Errorf("single report: got %+v", s.FogIndex)
	}
}

func TestScoreReportRow(t *testing.T) {
	r := ScoreReport{
		URLID:       "42",
		Title:       "Title",
		Sentiment:   Sentiment{Positive: 3, Negative: 1, Polarity: 0.5, Subjectivity: 0.1},
		Readability: Readability{WordCount: 40, PersonalPronounCount: 2, AvgWordLength: 4.5},
	}

	row := r.Row()
	if len(row) != len(Columns) {
		t.Fatalf("row has %d values for %d columns", len(row), len(Columns))
	}
	if row[0] != "42" || row[1] != "Title" || row[2] != 3 || row[11] != 40 || row[13] != 2 || row[14] != 4.5 {
		t.Errorf("unexpected row: %v", row)
	}
}
