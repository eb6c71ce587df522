package textscore

import "gonum.org/v1/gonum/stat"

// A Stat is the mean and sample standard deviation of one score.
type Stat struct {
	Mean   float64
	StdDev float64
}

// Summary describes a batch of reports.
type Summary struct {
	Documents    int
	Polarity     Stat
	Subjectivity Stat
	FogIndex     Stat
	WordCount    Stat
}

// Summarize computes per-score statistics over reports. The standard
// deviation is zero for fewer than two reports.
func Summarize(reports []ScoreReport) Summary {
	s := Summary{Documents: len(reports)}
	if len(reports) == 0 {
		return s
	}

	polarity := make([]float64, len(reports))
	subjectivity := make([]float64, len(reports))
	fog := make([]float64, len(reports))
	words := make([]float64, len(reports))
	for i, r := range reports {
		polarity[i] = r.Polarity
		subjectivity[i] = r.Subjectivity
		fog[i] = r.FogIndex
		words[i] = float64(r.WordCount)
	}

	s.Polarity = describe(polarity)
	s.Subjectivity = describe(subjectivity)
	s.FogIndex = describe(fog)
	s.WordCount = describe(words)
	return s
}

func describe(x []float64) Stat {
	if len(x) < 2 {
		return Stat{Mean: stat.Mean(x, nil)}
	}
	mean, std := stat.MeanStdDev(x, nil)
	return Stat{Mean: mean, StdDev: std}
}
