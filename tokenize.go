package textscore

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

type TokenTester func(string) bool

// A Tokenizer splits a sentence into words.
type Tokenizer interface {
	Tokenize(string) []string
}

// A Segmenter splits a body of text into sentences.
type Segmenter interface {
	Segment(string) []string
}

// iterTokenizer splits a sentence into words. Punctuation and clitics become
// tokens of their own: "don't stop." -> [do, n't, stop, .].
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	emoticons      map[string]int
	isUnsplittable TokenTester
}

type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// Use the provided special regex for unsplittable tokens.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.specialRE = x
	}
}

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.prefixes = x
	}
}

// Use the provided map of emoticons.
func UsingEmoticons(x map[string]int) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.emoticons = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// Constructor for default iterTokenizer
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	tok.contractions = contractions
	tok.emoticons = emoticons
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *iterTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || token == ellipsis || t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

func (t *iterTokenizer) doSplit(token string) []string {
	tokens := []string{}
	suffs := []string{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// We've found a special case (e.g., an emoticon) -- so, we add it as a token without
			// any further processing.
			tokens = addToken(token, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// Remove prefixes -- e.g., $100 -> [$, 100].
			tokens = addToken(string(token[0]), tokens)
			token = token[1:]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > -1 {
			// Handle "they'll", "I'll", "Don't", "won't".
			//
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			tokens = addToken(token[:idx], tokens)
			token = token[idx:]
		} else if len(token) > len(ellipsis) && strings.HasSuffix(token, ellipsis) {
			// An ellipsis stays whole -- e.g., 5th... -> [5th, ...].
			suffs = append([]string{ellipsis}, suffs...)
			token = token[:len(token)-len(ellipsis)]
		} else if hasAnySuffix(token, t.suffixes) {
			// Remove suffixes -- e.g., Well) -> [Well, )].
			suffs = append([]string{string(token[len(token)-1])}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, tokens)
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words.
func (t *iterTokenizer) Tokenize(text string) []string {
	var tokens []string

	clean := t.sanitizer.Replace(norm.NFC.String(text))
	cache := map[string][]string{}
	for _, span := range strings.Fields(clean) {
		toks, found := cache[span]
		if !found {
			toks = t.doSplit(span)
			cache[span] = toks
		}
		tokens = append(tokens, toks...)
	}

	return tokens
}

// punktSegmenter splits text into sentences with the English Punkt model.
type punktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the English Punkt sentence model.
func NewPunktSegmenter() (*punktSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &punktSegmenter{tokenizer: tokenizer}, nil
}

// Segment splits text into trimmed, non-empty sentences.
func (s *punktSegmenter) Segment(text string) []string {
	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

var (
	defaultSegmenterOnce sync.Once
	defaultSegmenter     Segmenter
	defaultSegmenterErr  error
)

// loadDefaultSegmenter builds the Punkt model once per process.
func loadDefaultSegmenter() (Segmenter, error) {
	defaultSegmenterOnce.Do(func() {
		defaultSegmenter, defaultSegmenterErr = NewPunktSegmenter()
	})
	return defaultSegmenter, defaultSegmenterErr
}

// Tokenize splits text into sentences with seg and each sentence into words
// with tok. Whitespace-only text yields an empty TokenSet.
func Tokenize(text string, seg Segmenter, tok Tokenizer) TokenSet {
	var ts TokenSet
	if strings.TrimSpace(text) == "" {
		return ts
	}
	for _, sent := range seg.Segment(text) {
		words := tok.Tokenize(sent)
		if len(words) == 0 {
			continue
		}
		ts.Sentences = append(ts.Sentences, sent)
		ts.Words = append(ts.Words, words...)
	}
	return ts
}

func hasAnyPrefix(s string, prefixes []string) bool {
	n := len(s)
	for _, prefix := range prefixes {
		if n > len(prefix) && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	n := len(s)
	for _, suffix := range suffixes {
		if n > len(suffix) && strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func hasAnyIndex(s string, cases []string) int {
	n := len(s)
	for _, c := range cases {
		if idx := strings.Index(s, c); idx > 0 && n > len(c) {
			return idx
		}
	}
	return -1
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)
var sanitizer = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
	"&rsquo;", "'")
const ellipsis = "..."

var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'", "%"}
var prefixes = []string{"$", "(", `"`, "["}
var emoticons = map[string]int{
	"(-8": 1,
	"(-;": 1,
	"(:":  1,
	"(=":  1,
	":(":  1,
	":((": 1,
	":)":  1,
	":))": 1,
	":-(": 1,
	":-)": 1,
	":-/": 1,
	":-D": 1,
	":-P": 1,
	":-p": 1,
	":-|": 1,
	":/":  1,
	":D":  1,
	":P":  1,
	":]":  1,
	":o":  1,
	";)":  1,
	";-)": 1,
	"=(":  1,
	"=)":  1,
	"=D":  1,
	"<3":  1,
	"^_^": 1,
	"o_O": 1,
	"xD":  1,
	"-_-": 1,
	"T_T": 1,
}
