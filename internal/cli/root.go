// Package cli wires the mediafmt commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mediafmt/mediafmt/internal/anthology"
	"github.com/mediafmt/mediafmt/internal/assist"
	"github.com/mediafmt/mediafmt/internal/config"
	"github.com/mediafmt/mediafmt/internal/episodedir"
	"github.com/mediafmt/mediafmt/internal/episodedir/tmdb"
	"github.com/mediafmt/mediafmt/internal/episodedir/tvdb"
	"github.com/mediafmt/mediafmt/internal/render"
)

var rootCmd = &cobra.Command{
	Use:   "mediafmt",
	Short: "Parse and standardize media file names",
	Long: `mediafmt parses TV, movie, and anime release names into structured
form and renders them back under configurable naming templates.

Anthology episodes can be split into their component segments, optionally
with a local text assistant, and confirmed against TVDB or TMDB episode
lists.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	configPath string
	styleName  string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&styleName, "style", "", "Separator style: dots, spaces, or mixed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging() {
	log.SetReportTimestamp(false)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if styleName != "" {
		cfg.Style = styleName
	}
	return cfg, nil
}

func buildRenderer(cfg *config.Config) (*render.Renderer, render.Style, error) {
	style, err := render.ParseStyle(cfg.Style)
	if err != nil {
		return nil, style, err
	}
	return render.NewRenderer(cfg.BuildRegistry()), style, nil
}

func buildSegmenter(cfg *config.Config) *anthology.Segmenter {
	s := &anthology.Segmenter{
		MaxSegments: cfg.Anthology.MaxSegments,
		Timeout:     time.Duration(cfg.Anthology.TimeoutSeconds) * time.Second,
		Logger:      log.Default(),
	}
	if cfg.Anthology.Ollama.Enabled {
		s.Assistant = assist.NewOllamaClient(cfg.Anthology.Ollama.URL, cfg.Anthology.Ollama.Model, s.Timeout)
	}
	return s
}

// buildDirectory constructs the episode list backend named by provider,
// wrapped in a TTL cache.
func buildDirectory(cfg *config.Config, provider string) (episodedir.Directory, error) {
	var dir episodedir.Directory
	switch provider {
	case "tvdb":
		d, err := tvdb.New(cfg.Providers.TVDBAPIKey)
		if err != nil {
			return nil, err
		}
		dir = d
	case "tmdb":
		if cfg.Providers.TMDBAPIKey == "" {
			return nil, fmt.Errorf("tmdb provider requires providers.tmdb_api_key in the config")
		}
		dir = tmdb.New(cfg.Providers.TMDBAPIKey, cfg.Providers.Language)
	default:
		return nil, fmt.Errorf("unknown provider %q (want tvdb or tmdb)", provider)
	}

	ttl := time.Duration(cfg.Providers.CacheHours) * time.Hour
	if ttl <= 0 {
		ttl = time.Hour
	}
	return episodedir.NewCached(dir, ttl), nil
}
