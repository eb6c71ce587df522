package textscore

// A Source identifies a document to be fetched and scored.
type Source struct {
	ID  string // The caller's identifier, echoed as URL_ID.
	URL string // Where the document lives.
}

// A Document represents a fetched article handed to the engine.
type Document struct {
	ID      string // Identifier the report row is keyed on.
	Title   string // The article's title.
	RawText string // The article's body text.
}

// A TokenSet holds the sentences and words of a single document.
type TokenSet struct {
	Sentences []string
	Words     []string
}

// Sentiment represents the lexicon-based sentiment scores of a document.
type Sentiment struct {
	Positive     int     // Lexicon-positive words after stop-word removal.
	Negative     int     // Lexicon-negative words after stop-word removal.
	Polarity     float64 // -1.0 (negative) to 1.0 (positive)
	Subjectivity float64 // 0.0 (objective) to 1.0 (subjective)
}

// Readability represents the Fog Index family of scores.
type Readability struct {
	AvgSentenceLength    float64
	PctComplexWords      float64
	FogIndex             float64
	AvgWordsPerSentence  float64
	ComplexWordCount     int
	WordCount            int
	SyllablesPerWord     float64
	PersonalPronounCount int
	AvgWordLength        float64
}

// A ScoreReport is one output row: the merged scores of a document.
type ScoreReport struct {
	URLID string
	Title string

	Sentiment
	Readability
}

// Columns is the header of the output table, in order.
var Columns = []string{
	"URL_ID",
	"Article_Title",
	"POSITIVE_SCORE",
	"NEGATIVE_SCORE",
	"POLARITY_SCORE",
	"SUBJECTIVITY_SCORE",
	"AVG_SENTENCE_LENGTH",
	"PERCENTAGE_OF_COMPLEX_WORDS",
	"FOG_INDEX",
	"AVG_NUMBER_OF_WORDS_PER_SENTENCE",
	"COMPLEX_WORD_COUNT",
	"WORD_COUNT",
	"SYLLABLE_PER_WORD",
	"PERSONAL_PRONOUNS",
	"AVG_WORD_LENGTH",
}

// Row returns the report's values in the order of Columns.
func (r ScoreReport) Row() []any {
	return []any{
		r.URLID,
		r.Title,
		r.Positive,
		r.Negative,
		r.Polarity,
		r.Subjectivity,
		r.AvgSentenceLength,
		r.PctComplexWords,
		r.FogIndex,
		r.AvgWordsPerSentence,
		r.ComplexWordCount,
		r.WordCount,
		r.SyllablesPerWord,
		r.PersonalPronounCount,
		r.AvgWordLength,
	}
}

// A Skip records a source that produced no report and why.
type Skip struct {
	Source Source
	Err    error
}

// A Batch is the outcome of scoring a list of sources.
type Batch struct {
	Reports []ScoreReport // In input order.
	Skipped []Skip        // In input order.
}
