package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mediafmt/mediafmt/internal/media"
	"github.com/mediafmt/mediafmt/internal/render"
)

var withPath bool

var previewCmd = &cobra.Command{
	Use:   "preview <filename>...",
	Short: "Show how filenames would be renamed",
	Args:  cobra.MinimumNArgs(1),
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

		for _, name := range args {
			parsed, err := media.Parse(name)
			if err != nil {
				log.Error("could not parse", "name", name, "error", err)
				continue
			}
			log.Debug("parsed",
				"name", name,
				"type", parsed.MediaType,
				"confidence", parsed.Confidence,
			)

			rendered := ""
			if withPath {
				rendered = renderer.RenderPath(parsed, render.DefaultTemplateName, style)
				rendered, err = render.SanitizePath(rendered)
			} else {
				rendered = renderer.Render(parsed, render.DefaultTemplateName, style)
				rendered, err = render.Sanitize(rendered)
			}
			if err != nil {
				log.Error("could not render", "name", name, "error", err)
				continue
			}

			if parsed.MediaType == media.MediaTypeUnknown {
				// Unparseable names stay as they are.
				fmt.Printf("%s (unchanged)\n", name)
				continue
			}
			fmt.Printf("%s -> %s\n", name, rendered)
		}
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <filename>...",
	Short: "Show the structured parse of filenames",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		for _, name := range args {
			parsed, err := media.Parse(name)
			if err != nil {
				log.Error("could not parse", "name", name, "error", err)
				continue
			}
			printParsed(name, parsed)
		}
		return nil
	},
}

func printParsed(name string, p media.ParsedMediaName) {
	fmt.Printf("%s\n", name)
	fmt.Printf("  type:       %s (confidence %.2f)\n", p.MediaType, p.Confidence)
	fmt.Printf("  title:      %s\n", p.Title)
	if p.MediaType == media.MediaTypeTVShow || p.MediaType == media.MediaTypeTVSpecial {
		fmt.Printf("  season:     %d\n", p.Season)
	}
	if p.HasEpisodes() {
		fmt.Printf("  episodes:   %v\n", p.Episodes)
	}
	if p.EpisodeTitle != "" {
		fmt.Printf("  ep. title:  %s\n", p.EpisodeTitle)
	}
	if p.Year != 0 {
		fmt.Printf("  year:       %d\n", p.Year)
	}
	if p.Group != "" {
		fmt.Printf("  group:      %s\n", p.Group)
	}
	if p.Version != 0 {
		fmt.Printf("  version:    v%d\n", p.Version)
	}
	if p.Quality != "" {
		fmt.Printf("  quality:    %s\n", p.Quality)
	}
	if p.IsSpecial() {
		fmt.Printf("  special:    %s %d\n", p.SpecialType, p.SpecialNumber)
	}
}

func init() {
	previewCmd.Flags().BoolVar(&withPath, "path", false, "Render full show/season paths instead of bare filenames")
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(parseCmd)
}
