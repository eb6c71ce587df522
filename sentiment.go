package textscore

import "strings"

// epsilon keeps the polarity and subjectivity ratios defined when their
// denominators are zero.
const epsilon = 0.000001

// ScoreSentiment counts lexicon-positive and lexicon-negative words after
// stop-word removal and derives polarity and subjectivity from the counts.
//
// A word listed as both positive and negative counts toward both scores.
func ScoreSentiment(tokens TokenSet, lex *Lexicon) Sentiment {
	var (
		score    Sentiment
		filtered int
	)

	for _, word := range tokens.Words {
		lower := strings.ToLower(word)
		if lex.IsStopWord(lower) {
			continue
		}
		filtered++

		if lex.IsPositive(lower) {
			score.Positive++
		}
		if lex.IsNegative(lower) {
			score.Negative++
		}
	}

	if filtered == 0 {
		return Sentiment{}
	}

	score.Polarity = polarity(score.Positive, score.Negative)
	score.Subjectivity = float64(score.Positive+score.Negative) / (float64(filtered) + epsilon)

	return score
}

// polarity returns (pos - neg) / (pos + neg + epsilon), 0 when both are 0.
func polarity(pos, neg int) float64 {
	if pos == 0 && neg == 0 {
		return 0
	}
	return float64(pos-neg) / (float64(pos+neg) + epsilon)
}
