package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/streambinder/lyricsfinder/dedup"
	"github.com/streambinder/lyricsfinder/enricher"
	"github.com/streambinder/lyricsfinder/parser"
	"github.com/streambinder/lyricsfinder/provider"
	"github.com/streambinder/lyricsfinder/spell"
	"gopkg.in/yaml.v3"
)

const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
)

var (
	configRelPath = filepath.Join("lyricsfinder", "config.yaml")
	dotenvPath    = ".env"
)

type Config struct {
	Search  Search  `yaml:"search"`
	Spotify Spotify `yaml:"spotify"`
	Finder  Finder  `yaml:"finder"`
}

type Search struct {
	Providers        []string      `yaml:"providers"`
	InitialResults   int           `yaml:"initial_results"`
	CorrectedResults int           `yaml:"corrected_results"`
	Timeout          time.Duration `yaml:"timeout"`
	UserAgent        string        `yaml:"user_agent"`
}

type Spotify struct {
	ClientID     string  `yaml:"client_id"`
	ClientSecret string  `yaml:"client_secret"`
	Market       string  `yaml:"market"`
	RateLimit    float64 `yaml:"rate_limit"`
	TokenCache   bool    `yaml:"token_cache"`
}

type Finder struct {
	Threshold       int           `yaml:"threshold"`
	MaxMatches      int           `yaml:"max_matches"`
	Fanout          int           `yaml:"fanout"`
	LookupTimeout   time.Duration `yaml:"lookup_timeout"`
	SeparatorPolicy string        `yaml:"separator_policy"`
}

func Default() *Config {
	return &Config{
		Search: Search{
			Providers:        []string{"duckduckgo", "bing"},
			InitialResults:   40,
			CorrectedResults: 60,
			Timeout:          provider.DefaultTimeout,
			UserAgent:        provider.DefaultUserAgent,
		},
		Spotify: Spotify{
			RateLimit:  10,
			TokenCache: true,
		},
		Finder: Finder{
			Threshold:       spell.DefaultThreshold,
			MaxMatches:      dedup.MaxMatches,
			Fanout:          enricher.DefaultFanout,
			LookupTimeout:   enricher.DefaultTimeout,
			SeparatorPolicy: parser.FewerWordsTitle.String(),
		},
	}
}

// Load reads the configuration file at path or, if empty, the one
// in the user config directory (if any), then applies environment
// overrides: variables can be set in a .env file too
func Load(path string) (*Config, error) {
	config := Default()

	if len(path) == 0 {
		if found, err := xdg.SearchConfigFile(configRelPath); err == nil {
			path = found
		}
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
		}
	}

	// already set variables win over .env ones
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("invalid %s: %w", dotenvPath, err)
	}
	if value, ok := os.LookupEnv(EnvClientID); ok {
		config.Spotify.ClientID = value
	}
	if value, ok := os.LookupEnv(EnvClientSecret); ok {
		config.Spotify.ClientSecret = value
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) Validate() error {
	if len(config.Search.Providers) == 0 {
		return errors.New("at least one search provider is needed")
	}
	if config.Finder.Threshold < 0 || config.Finder.Threshold > 100 {
		return fmt.Errorf("threshold must be within 0 and 100, got %d", config.Finder.Threshold)
	}
	if config.Finder.MaxMatches <= 0 {
		return fmt.Errorf("max matches must be positive, got %d", config.Finder.MaxMatches)
	}
	if config.Finder.Fanout <= 0 {
		return fmt.Errorf("fanout must be positive, got %d", config.Finder.Fanout)
	}
	if _, err := parser.ParseSidePolicy(config.Finder.SeparatorPolicy); err != nil {
		return err
	}
	return nil
}
