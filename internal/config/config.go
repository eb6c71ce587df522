package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type FetchConfig struct {
	Timeout   time.Duration
	UserAgent string
}

type LexiconConfig struct {
	PositivePath string
	NegativePath string
	// StopPaths are files or directories of stop-word lists. When empty the
	// bundled English list is used.
	StopPaths []string
}

// TokenizerConfig overrides the word tokenizer's rules. Empty fields keep
// the defaults.
type TokenizerConfig struct {
	Keep         []string // Tokens never split, e.g. "e.g." or "C++".
	Special      string   // Pattern of tokens never split. Replaces the abbreviation pattern.
	Prefixes     []string
	Suffixes     []string
	Contractions []string
}

type Config struct {
	InputPath  string
	OutputPath string
	LogLevel   string
	Workers    int
	Fetch      FetchConfig
	Lexicon    LexiconConfig
	Tokenizer  TokenizerConfig
}

// Load reads configuration from the environment, after merging in a .env
// file from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		InputPath:  getEnv("TEXTSCORE_INPUT", "Input.xlsx"),
		OutputPath: getEnv("TEXTSCORE_OUTPUT", "Output.xlsx"),
		LogLevel:   getEnv("TEXTSCORE_LOG_LEVEL", "info"),
		Workers:    getEnvInt("TEXTSCORE_WORKERS", min(runtime.NumCPU(), 8)),
		Fetch: FetchConfig{
			Timeout:   time.Duration(getEnvInt("TEXTSCORE_HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
			UserAgent: getEnv("TEXTSCORE_USER_AGENT", "textscore/1.0"),
		},
		Lexicon: LexiconConfig{
			PositivePath: getEnv("TEXTSCORE_POSITIVE", "MasterDictionary/positive-words.txt"),
			NegativePath: getEnv("TEXTSCORE_NEGATIVE", "MasterDictionary/negative-words.txt"),
			StopPaths:    getEnvList("TEXTSCORE_STOPWORDS"),
		},
		Tokenizer: TokenizerConfig{
			Keep:         getEnvFields("TEXTSCORE_TOKEN_KEEP"),
			Special:      os.Getenv("TEXTSCORE_TOKEN_SPECIAL"),
			Prefixes:     getEnvFields("TEXTSCORE_TOKEN_PREFIXES"),
			Suffixes:     getEnvFields("TEXTSCORE_TOKEN_SUFFIXES"),
			Contractions: getEnvFields("TEXTSCORE_TOKEN_CONTRACTIONS"),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.InputPath == "" || c.OutputPath == "" {
		return errors.New("TEXTSCORE_INPUT and TEXTSCORE_OUTPUT are required")
	}
	if c.Lexicon.PositivePath == "" || c.Lexicon.NegativePath == "" {
		return errors.New("TEXTSCORE_POSITIVE and TEXTSCORE_NEGATIVE are required")
	}
	if c.Workers < 1 {
		return errors.New("TEXTSCORE_WORKERS must be at least 1")
	}
	if c.Tokenizer.Special != "" {
		if _, err := regexp.Compile(c.Tokenizer.Special); err != nil {
			return fmt.Errorf("TEXTSCORE_TOKEN_SPECIAL: %w", err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated value, dropping empty items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvFields splits a space-separated value. Token lists use spaces so that
// "," can be one of the items.
func getEnvFields(key string) []string {
	fields := strings.Fields(os.Getenv(key))
	if len(fields) == 0 {
		return nil
	}
	return fields
}
