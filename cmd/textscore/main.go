package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"strings"

	"github.com/tsawler/textscore"
	"github.com/tsawler/textscore/fetch"
	"github.com/tsawler/textscore/internal/config"
	"github.com/tsawler/textscore/sheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(slog.Default(), "failed to load configuration", err)
	}

	flag.StringVar(&cfg.InputPath, "in", cfg.InputPath, "table of URL_ID and URL columns (.xlsx or .csv)")
	flag.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "where to write scores (.xlsx or .csv)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "articles fetched and scored at once")
	flag.Parse()

	logger := newLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		fatal(logger, "invalid configuration", err)
	}

	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		fatal(logger, "failed to load lexicon", err)
	}
	pos, neg, stopWords := lex.Len()
	logger.Info("lexicon loaded", "positive", pos, "negative", neg, "stop", stopWords,
		"bundled_stop_words", len(cfg.Lexicon.StopPaths) == 0)

	analyzer, err := textscore.NewAnalyzer(lex,
		textscore.UsingTokenizer(textscore.NewIterTokenizer(tokenizerOpts(cfg.Tokenizer)...)),
		textscore.WithLogger(logger),
		textscore.WithWorkers(cfg.Workers))
	if err != nil {
		fatal(logger, "failed to create analyzer", err)
	}

	sources, err := sheet.ReadSources(cfg.InputPath)
	if err != nil {
		fatal(logger, "failed to read input", err)
	}
	logger.Info("scoring articles", "count", len(sources), "workers", cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetcher := fetch.New(fetch.Config{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
	})
	batch := analyzer.Run(ctx, sources, fetcher)

	if err := sheet.WriteReports(cfg.OutputPath, batch.Reports); err != nil {
		fatal(logger, "failed to write output", err)
	}

	summary := textscore.Summarize(batch.Reports)
	logger.Info("done",
		"output", cfg.OutputPath,
		"written", len(batch.Reports),
		"skipped", len(batch.Skipped),
		"mean_polarity", summary.Polarity.Mean,
		"mean_subjectivity", summary.Subjectivity.Mean,
		"mean_fog_index", summary.FogIndex.Mean,
		"mean_word_count", summary.WordCount.Mean)
}

func loadLexicon(cfg config.LexiconConfig) (*textscore.Lexicon, error) {
	var opts []textscore.LexiconOpt
	if len(cfg.StopPaths) == 0 {
		opts = append(opts, textscore.WithLibraryStopWords())
	}
	return textscore.LoadLexiconFiles(textscore.LexiconPaths{
		Positive: cfg.PositivePath,
		Negative: cfg.NegativePath,
		Stop:     cfg.StopPaths,
	}, opts...)
}

// tokenizerOpts turns the configured overrides into tokenizer options. The
// pattern has already been checked by Validate.
func tokenizerOpts(cfg config.TokenizerConfig) []textscore.TokenizerOptFunc {
	var opts []textscore.TokenizerOptFunc
	if len(cfg.Keep) > 0 {
		keep := make(map[string]struct{}, len(cfg.Keep))
		for _, k := range cfg.Keep {
			keep[k] = struct{}{}
		}
		opts = append(opts, textscore.UsingIsUnsplittable(func(tok string) bool {
			_, found := keep[tok]
			return found
		}))
	}
	if cfg.Special != "" {
		opts = append(opts, textscore.UsingSpecialRE(regexp.MustCompile(cfg.Special)))
	}
	if len(cfg.Prefixes) > 0 {
		opts = append(opts, textscore.UsingPrefixes(cfg.Prefixes))
	}
	if len(cfg.Suffixes) > 0 {
		opts = append(opts, textscore.UsingSuffixes(cfg.Suffixes))
	}
	if len(cfg.Contractions) > 0 {
		opts = append(opts, textscore.UsingContractions(cfg.Contractions))
	}
	return opts
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
