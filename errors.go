package textscore

import (
	"errors"
	"fmt"
)

// ErrEmptySource is reported when a word list contains no words.
var ErrEmptySource = errors.New("word list is empty")

// A LexiconLoadError means a word list could not be read. No document can be
// scored without a lexicon, so callers should treat it as fatal.
type LexiconLoadError struct {
	Source string // Which list failed: "positive", "negative", "stop" or a path.
	Err    error
}

func (e *LexiconLoadError) Error() string {
	return fmt.Sprintf("load %s words: %v", e.Source, e.Err)
}

func (e *LexiconLoadError) Unwrap() error { return e.Err }

// A FetchError means a document could not be retrieved or had no text. The
// document is skipped; the rest of the batch carries on.
type FetchError struct {
	ID  string
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.ID, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
