package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mediafmt/mediafmt/internal/anthology"
	"github.com/mediafmt/mediafmt/internal/config"
	"github.com/mediafmt/mediafmt/internal/render"
)

var (
	anthologySeries   string
	anthologyProvider string
)

var anthologyCmd = &cobra.Command{
	Use:   "anthology <filename>...",
	Short: "Split anthology episodes into numbered segments",
	Long: `Splits each file's episode title into its component segments and
assigns sequential episode numbers across the whole batch.

With --series and --provider, segment numbers are confirmed against the
season's authoritative episode list; segments without a confident match
keep their provisional number.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		renderer, style, err := buildRenderer(cfg)
		if err != nil {
			return err
		}
		segmenter := buildSegmenter(cfg)

		batch, err := segmenter.PreprocessBatch(cmd.Context(), args)
		if err != nil {
			return err
		}

		if anthologySeries != "" {
			if err := confirmBatch(cmd.Context(), cfg, batch); err != nil {
				// Collaborator failures degrade to provisional numbering.
				log.Warn("episode list unavailable, keeping provisional numbers", "error", err)
			}
		}

		for _, file := range batch {
			fmt.Printf("%s\n", file.Name)
			for _, seg := range file.Segments.Segments {
				p := file.Parsed
				p.Episodes = []int{seg.Number}
				p.EpisodeTitle = seg.Title
				rendered, err := render.Sanitize(renderer.Render(p, render.DefaultTemplateName, style))
				if err != nil {
					log.Error("could not render segment", "name", file.Name, "error", err)
					continue
				}
				fmt.Printf("  E%02d %-30s -> %s\n", seg.Number, seg.Title, rendered)
			}
		}
		return nil
	},
}

// confirmBatch replaces provisional segment numbers with ones matched
// against the authoritative episode list of each file's season.
func confirmBatch(ctx context.Context, cfg *config.Config, batch []anthology.BatchFile) error {
	dir, err := buildDirectory(cfg, anthologyProvider)
	if err != nil {
		return err
	}

	for i := range batch {
		segments := &batch[i].Segments
		episodes, err := dir.ListEpisodes(ctx, anthologySeries, segments.Season)
		if err != nil {
			return err
		}
		matches := anthology.MatchTitles(segments.Titles(), episodes)
		if len(matches) > 0 {
			log.Debug("confirmed segments", "file", batch[i].Name, "matched", len(matches))
		}
		segments.ApplyMatches(matches)
	}
	return nil
}

func init() {
	anthologyCmd.Flags().StringVar(&anthologySeries, "series", "", "Series identifier for episode list lookup (TVDB id or TMDB show name)")
	anthologyCmd.Flags().StringVar(&anthologyProvider, "provider", "tvdb", "Episode list provider: tvdb or tmdb")
	rootCmd.AddCommand(anthologyCmd)
}
