package textscore

import (
	"math"
	"testing"
)

func TestScoreSentiment(t *testing.T) {
	tokens := TokenSet{
		Sentences: []string{"The good day was great.", "A bad thing happened."},
		Words:     []string{"The", "good", "day", "was", "great", ".", "A", "bad", "thing", "happened", "."},
	}

	got := ScoreSentiment(tokens, testLexicon())

	if got.Positive != 2 || got.Negative != 1 {
		t.Fatalf("Expected positive=2 negative=1, got positive=%d negative=%d", got.Positive, got.Negative)
	}

	// (2 - 1) / (3 + 0.000001) is about 0.3333332.
	polarity := 1 / (3 + 0.000001)
	if math.Abs(got.Polarity-polarity) > 1e-12 {
		t.Errorf("Polarity: expected %.7f, got %.7f", polarity, got.Polarity)
	}
	if math.Abs(got.Polarity-0.3333332) > 1e-7 {
		t.Errorf("Polarity: expected about 0.3333332, got %.7f", got.Polarity)
	}

	// Nine tokens remain once "The" and "A" are removed.
	subjectivity := 3 / (9 + 0.000001)
	if math.Abs(got.Subjectivity-subjectivity) > 1e-12 {
		t.Errorf("Subjectivity: expected %.7f, got %.7f", subjectivity, got.Subjectivity)
	}
}

func TestScoreSentimentNeutral(t *testing.T) {
	tests := []struct {
		words []string
		desc  string
	}{
		{nil, "No words"},
		{[]string{"the", "a", "The"}, "Only stop words"},
		{[]string{"plain", "words", "here"}, "No lexicon matches"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := ScoreSentiment(TokenSet{Words: tt.words}, testLexicon())
			if got != (Sentiment{}) {
				t.Errorf("Expected all-zero sentiment, got %+v", got)
			}
		})
	}
}

func TestScoreSentimentCaseInsensitive(t *testing.T) {
	got := ScoreSentiment(TokenSet{Words: []string{"GOOD", "Bad", "THE"}}, testLexicon())
	if got.Positive != 1 || got.Negative != 1 {
		t.Errorf("Expected one positive and one negative, got %+v", got)
	}
}

func TestScoreSentimentOverlappingLists(t *testing.T) {
	lex, err := NewLexicon([]string{"sick"}, []string{"sick"}, []string{"the"})
	if err != nil {
		t.Fatalf("NewLexicon: %v", err)
	}

	got := ScoreSentiment(TokenSet{Words: []string{"sick", "beat"}}, lex)
	if got.Positive != 1 || got.Negative != 1 {
		t.Errorf("Expected the word to count toward both scores, got %+v", got)
	}
	if got.Polarity != 0 {
		t.Errorf("Expected polarity 0, got %v", got.Polarity)
	}
}

func TestPolarityBounds(t *testing.T) {
	for pos := 0; pos <= 25; pos++ {
		for neg := 0; neg <= 25; neg++ {
			p := polarity(pos, neg)
			if p < -1 || p > 1 || math.IsNaN(p) {
				t.Fatalf("polarity(%d, %d) = %v, outside [-1, 1]", pos, neg, p)
			}
		}
	}
	if p := polarity(0, 0); p != 0 {
		t.Errorf("polarity(0, 0): expected 0, got %v", p)
	}
}

func TestScoreSentimentLibraryStopWords(t *testing.T) {
	lex, err := NewLexicon([]string{"excellent"}, []string{"terrible"}, nil, WithLibraryStopWords())
	if err != nil {
		t.Fatalf("NewLexicon: %v", err)
	}

	got := ScoreSentiment(TokenSet{Words: []string{"the", "excellent", "programming", "."}}, lex)

	// "the" is dropped; "excellent", "programming" and "." remain.
	subjectivity := 1 / (3 + 0.000001)
	if math.Abs(got.Subjectivity-subjectivity) > 1e-12 {
		t.Errorf("Subjectivity: expected %.7f, got %.7f", subjectivity, got.Subjectivity)
	}
}
