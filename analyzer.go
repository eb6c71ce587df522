package textscore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"sync"
)

// A Fetcher retrieves the title and body text of the document at url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (title, body string, err error)
}

// An AnalyzerOpt represents a setting that changes how an Analyzer works.
//
// For example, it might swap the word tokenizer:
//
//	a, err := textscore.NewAnalyzer(lex, textscore.UsingTokenizer(tok))
type AnalyzerOpt func(opts *AnalyzerOpts)

// AnalyzerOpts controls the Analyzer creation process:
type AnalyzerOpts struct {
	Tokenizer Tokenizer    // Splits sentences into words
	Segmenter Segmenter    // Splits text into sentences; nil loads Punkt
	Logger    *slog.Logger // Receives per-document outcomes
	Workers   int          // Documents fetched and scored at once by Run
}

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(tok Tokenizer) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Tokenizer = tok
	}
}

// UsingSegmenter specifies the Segmenter to use.
func UsingSegmenter(seg Segmenter) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Segmenter = seg
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Logger = logger
	}
}

// WithWorkers sets how many documents Run processes concurrently.
func WithWorkers(n int) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Workers = n
	}
}

// An Analyzer scores documents against a Lexicon. It holds no mutable state,
// so Analyze may be called from many goroutines at once.
type Analyzer struct {
	lexicon   *Lexicon
	tokenizer Tokenizer
	segmenter Segmenter
	logger    *slog.Logger
	workers   int
}

// ErrNoLexicon is returned by NewAnalyzer when given a nil Lexicon.
var ErrNoLexicon = errors.New("textscore: nil lexicon")

// NewAnalyzer creates an Analyzer according to the user-specified options.
func NewAnalyzer(lex *Lexicon, opts ...AnalyzerOpt) (*Analyzer, error) {
	if lex == nil {
		return nil, ErrNoLexicon
	}

	base := AnalyzerOpts{
		Workers: min(runtime.NumCPU(), 8),
	}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	if base.Tokenizer == nil {
		base.Tokenizer = NewIterTokenizer()
	}
	if base.Segmenter == nil {
		seg, err := loadDefaultSegmenter()
		if err != nil {
			return nil, err
		}
		base.Segmenter = seg
	}
	if base.Logger == nil {
		base.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if base.Workers < 1 {
		base.Workers = 1
	}

	return &Analyzer{
		lexicon:   lex,
		tokenizer: base.Tokenizer,
		segmenter: base.Segmenter,
		logger:    base.Logger,
		workers:   base.Workers,
	}, nil
}

// Tokenize splits text with the analyzer's segmenter and tokenizer.
func (a *Analyzer) Tokenize(text string) TokenSet {
	return Tokenize(text, a.segmenter, a.tokenizer)
}

// Analyze scores doc. The same document always yields the same report.
func (a *Analyzer) Analyze(doc Document) ScoreReport {
	tokens := a.Tokenize(doc.RawText)

	return ScoreReport{
		URLID:       doc.ID,
		Title:       doc.Title,
		Sentiment:   ScoreSentiment(tokens, a.lexicon),
		Readability: ScoreReadability(tokens, doc.RawText),
	}
}

// AnalyzeSource fetches src with f and scores it. Any fetch failure is
// returned as a *FetchError and no report is produced.
func (a *Analyzer) AnalyzeSource(ctx context.Context, src Source, f Fetcher) (ScoreReport, error) {
	title, body, err := f.Fetch(ctx, src.URL)
	if err != nil {
		return ScoreReport{}, &FetchError{ID: src.ID, URL: src.URL, Err: err}
	}
	return a.Analyze(Document{ID: src.ID, Title: title, RawText: body}), nil
}

type outcome struct {
	report ScoreReport
	err    error
	done   bool
}

// Run fetches and scores every source, a.workers at a time. A failed source
// is skipped and logged; it never stops the batch. Reports and skips come
// back in input order. Once ctx is done, sources not yet started are skipped
// with the context's error.
func (a *Analyzer) Run(ctx context.Context, sources []Source, f Fetcher) Batch {
	outcomes := make([]outcome, len(sources))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(a.workers, max(len(sources), 1)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report, err := a.AnalyzeSource(ctx, sources[i], f)
				outcomes[i] = outcome{report: report, err: err, done: true}
			}
		}()
	}

dispatch:
	for i := range sources {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	var batch Batch
	for i, o := range outcomes {
		src := sources[i]
		if !o.done {
			o.err = &FetchError{ID: src.ID, URL: src.URL, Err: ctx.Err()}
		}
		if o.err != nil {
			a.logger.Warn("skipped", "url_id", src.ID, "url", src.URL, "error", o.err)
			batch.Skipped = append(batch.Skipped, Skip{Source: src, Err: o.err})
			continue
		}
		a.logger.Info("processed", "url_id", src.ID)
		batch.Reports = append(batch.Reports, o.report)
	}

	return batch
}
