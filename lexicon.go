package textscore

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/encoding/charmap"
)

// Lexicon holds the positive, negative and stop word sets used for sentiment
// scoring. All words are stored lower-cased. A Lexicon is never modified after
// it is built, so one value may be shared by any number of goroutines.
type Lexicon struct {
	positive    map[string]struct{}
	negative    map[string]struct{}
	stop        map[string]struct{}
	libraryStop bool
}

// A LexiconOpt represents a setting that changes how a Lexicon is built.
type LexiconOpt func(opts *lexiconOpts)

type lexiconOpts struct {
	libraryStop bool
}

// WithLibraryStopWords adds the bundled English stop-word list to the
// lexicon. With it, the stop-word source may be omitted.
func WithLibraryStopWords() LexiconOpt {
	return func(opts *lexiconOpts) {
		opts.libraryStop = true
	}
}

// LexiconPaths names the word lists to read from a file system. Each Stop
// entry may be a file or a directory, in which case every file in it is read.
type LexiconPaths struct {
	Positive string
	Negative string
	Stop     []string
}

// NewLexicon builds a Lexicon from in-memory word lists.
func NewLexicon(positive, negative, stop []string, opts ...LexiconOpt) (*Lexicon, error) {
	base := lexiconOpts{}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	lex := &Lexicon{libraryStop: base.libraryStop}

	var err error
	if lex.positive, err = wordSet("positive", positive); err != nil {
		return nil, err
	}
	if lex.negative, err = wordSet("negative", negative); err != nil {
		return nil, err
	}
	if len(stop) == 0 && base.libraryStop {
		lex.stop = map[string]struct{}{}
	} else if lex.stop, err = wordSet("stop", stop); err != nil {
		return nil, err
	}

	return lex, nil
}

// LoadLexicon reads three line-delimited word lists. stop may be nil when
// WithLibraryStopWords is given.
func LoadLexicon(positive, negative, stop io.Reader, opts ...LexiconOpt) (*Lexicon, error) {
	pos, err := readWords("positive", positive)
	if err != nil {
		return nil, err
	}
	neg, err := readWords("negative", negative)
	if err != nil {
		return nil, err
	}

	var sw []string
	if stop != nil {
		if sw, err = readWords("stop", stop); err != nil {
			return nil, err
		}
	}

	return NewLexicon(pos, neg, sw, opts...)
}

// LoadLexiconFS reads the word lists named by paths from filesys.
//
// For example,
//
//	lex, err := textscore.LoadLexiconFS(os.DirFS("."), textscore.LexiconPaths{
//		Positive: "MasterDictionary/positive-words.txt",
//		Negative: "MasterDictionary/negative-words.txt",
//		Stop:     []string{"StopWords"},
//	})
func LoadLexiconFS(filesys fs.FS, paths LexiconPaths, opts ...LexiconOpt) (*Lexicon, error) {
	pos, err := readWordFile(filesys, paths.Positive)
	if err != nil {
		return nil, err
	}
	neg, err := readWordFile(filesys, paths.Negative)
	if err != nil {
		return nil, err
	}

	var sw []string
	for _, p := range paths.Stop {
		words, err := readWordTree(filesys, p)
		if err != nil {
			return nil, err
		}
		sw = append(sw, words...)
	}

	return NewLexicon(pos, neg, sw, opts...)
}

// LoadLexiconFiles reads the word lists named by paths from the operating
// system. Paths may be relative or absolute, including volume-qualified
// Windows paths.
func LoadLexiconFiles(paths LexiconPaths, opts ...LexiconOpt) (*Lexicon, error) {
	pos, err := readOSWordTree(paths.Positive)
	if err != nil {
		return nil, err
	}
	neg, err := readOSWordTree(paths.Negative)
	if err != nil {
		return nil, err
	}

	var sw []string
	for _, p := range paths.Stop {
		words, err := readOSWordTree(p)
		if err != nil {
			return nil, err
		}
		sw = append(sw, words...)
	}

	return NewLexicon(pos, neg, sw, opts...)
}

// readOSWordTree roots an fs.FS at the parent of p, since fs.FS names cannot
// carry a volume or a leading separator.
func readOSWordTree(p string) ([]string, error) {
	if p == "" {
		return nil, &LexiconLoadError{Source: p, Err: fs.ErrNotExist}
	}
	p = filepath.Clean(p)
	return readWordTree(os.DirFS(filepath.Dir(p)), filepath.Base(p))
}

// IsPositive reports whether the lower-cased word is in the positive list.
func (lex *Lexicon) IsPositive(word string) bool {
	_, found := lex.positive[word]
	return found
}

// IsNegative reports whether the lower-cased word is in the negative list.
func (lex *Lexicon) IsNegative(word string) bool {
	_, found := lex.negative[word]
	return found
}

// IsStopWord reports whether the lower-cased word is a stop word.
func (lex *Lexicon) IsStopWord(word string) bool {
	if _, found := lex.stop[word]; found {
		return true
	}
	if !lex.libraryStop || !hasLetter(word) {
		return false
	}
	// The stopwords library removes stop words from running text rather
	// than exporting its lists, so a word that cleans to nothing is one.
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}

// Len returns the sizes of the positive, negative and stop lists.
func (lex *Lexicon) Len() (positive, negative, stop int) {
	return len(lex.positive), len(lex.negative), len(lex.stop)
}

func wordSet(source string, words []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = normalizeEntry(w); w != "" {
			set[w] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil, &LexiconLoadError{Source: source, Err: ErrEmptySource}
	}
	return set, nil
}

// normalizeEntry lower-cases a list line and drops comments. Word lists use
// ";" for comment lines and "|" to annotate an entry.
func normalizeEntry(line string) string {
	if idx := strings.IndexByte(line, '|'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ";") {
		return ""
	}
	return strings.ToLower(line)
}

func readWords(source string, r io.Reader) ([]string, error) {
	if r == nil {
		return nil, &LexiconLoadError{Source: source, Err: ErrEmptySource}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LexiconLoadError{Source: source, Err: err}
	}
	words, err := splitLines(data)
	if err != nil {
		return nil, &LexiconLoadError{Source: source, Err: err}
	}
	if len(words) == 0 {
		return nil, &LexiconLoadError{Source: source, Err: ErrEmptySource}
	}
	return words, nil
}

func readWordFile(filesys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return nil, &LexiconLoadError{Source: name, Err: err}
	}
	return readWords(name, bytes.NewReader(data))
}

// readWordTree reads name, or every regular file below it when it is a
// directory, in lexical order.
func readWordTree(filesys fs.FS, name string) ([]string, error) {
	info, err := fs.Stat(filesys, name)
	if err != nil {
		return nil, &LexiconLoadError{Source: name, Err: err}
	}
	if !info.IsDir() {
		return readWordFile(filesys, name)
	}

	var files []string
	err = fs.WalkDir(filesys, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && !strings.HasPrefix(path.Base(p), ".") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, &LexiconLoadError{Source: name, Err: err}
	}
	if len(files) == 0 {
		return nil, &LexiconLoadError{Source: name, Err: ErrEmptySource}
	}
	sort.Strings(files)

	var words []string
	for _, f := range files {
		w, err := readWordFile(filesys, f)
		if err != nil {
			return nil, err
		}
		words = append(words, w...)
	}
	return words, nil
}

// splitLines returns the non-blank lines of data. Lists that are not valid
// UTF-8 are decoded as Latin-1.
func splitLines(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode latin-1: %w", err)
		}
		data = decoded
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
