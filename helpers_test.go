package textscore

import "strings"

// lineSegmenter treats each line as a sentence, keeping tests independent of
// the Punkt model.
type lineSegmenter struct{}

func (lineSegmenter) Segment(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func testLexicon() *Lexicon {
	lex, err := NewLexicon(
		[]string{"good", "great"},
		[]string{"bad"},
		[]string{"the", "a"},
	)
	if err != nil {
		panic(err)
	}
	return lex
}
