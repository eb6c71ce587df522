package textscore

import (
	"regexp"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats"
)

// complexSyllables is the syllable estimate above which a word is complex.
const complexSyllables = 2

var pronounRE = regexp.MustCompile(`(?i)\b(I|we|my|ours|us)\b`)

// ScoreReadability computes the Fog Index family of scores over every word
// in tokens, stop words included. Personal pronouns are counted in raw, the
// text the tokens came from.
//
// When tokens has no words or no sentences, every field is zero.
func ScoreReadability(tokens TokenSet, raw string) Readability {
	wordCount := len(tokens.Words)
	sentenceCount := len(tokens.Sentences)
	if wordCount == 0 || sentenceCount == 0 {
		return Readability{}
	}

	syllables := make([]float64, wordCount)
	lengths := make([]float64, wordCount)
	complexWords := 0
	for i, word := range tokens.Words {
		n := EstimateSyllables(word)
		if n > complexSyllables {
			complexWords++
		}
		syllables[i] = float64(n)
		lengths[i] = float64(utf8.RuneCountInString(word))
	}

	words := float64(wordCount)
	avgSentence := words / float64(sentenceCount)
	pctComplex := float64(complexWords) / words * 100

	return Readability{
		AvgSentenceLength:    avgSentence,
		PctComplexWords:      pctComplex,
		FogIndex:             FogIndex(avgSentence, pctComplex),
		AvgWordsPerSentence:  avgSentence,
		ComplexWordCount:     complexWords,
		WordCount:            wordCount,
		SyllablesPerWord:     floats.Sum(syllables) / words,
		PersonalPronounCount: CountPersonalPronouns(raw),
		AvgWordLength:        floats.Sum(lengths) / words,
	}
}

// FogIndex returns 0.4 * (avgSentenceLength + pctComplexWords). The
// percentage is not rescaled to a fraction.
func FogIndex(avgSentenceLength, pctComplexWords float64) float64 {
	return 0.4 * (avgSentenceLength + pctComplexWords)
}

// EstimateSyllables approximates the syllables in word as the number of
// maximal runs of the letters a, e, i, o, u and y, ignoring case.
func EstimateSyllables(word string) int {
	runs := 0
	inRun := false
	for _, r := range word {
		if isVowel(r) {
			if !inRun {
				runs++
			}
			inRun = true
		} else {
			inRun = false
		}
	}
	return runs
}

// IsComplex reports whether word has more than two estimated syllables.
func IsComplex(word string) bool {
	return EstimateSyllables(word) > complexSyllables
}

// CountPersonalPronouns counts whole-word, case-insensitive occurrences of
// I, we, my, ours and us in text. "US" the abbreviation is counted too.
// Word boundaries are ASCII-only, so a non-ASCII letter does not join a
// pronoun to a word: "éI" counts one.
func CountPersonalPronouns(text string) int {
	return len(pronounRE.FindAllStringIndex(text, -1))
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}
