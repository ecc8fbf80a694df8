// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/willow/trellis/internal/config"
	"github.com/willow/trellis/internal/craft"
	"github.com/willow/trellis/internal/rewrite"
	"github.com/willow/trellis/internal/ui"
	"github.com/willow/trellis/internal/zola"
)

var (
	// Global flags
	inputFlag  string
	outputFlag string
	configPath string
	dryRun     bool

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command; running it performs the conversion.
var rootCmd = &cobra.Command{
	Use:   "trellis",
	Short: "Convert a Craft markdown export into a Zola content tree",
	Long: `Trellis converts a Craft-exported markdown folder into a Zola-compatible
content tree: wiki links become Zola internal links, classification glyphs
become front matter weights, and each note's media is co-located with it.

The output directory should be the section directory inside Zola's content/
tree where the converted garden will live, e.g. content/garden.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureAccent(cfg.UI.Accent)
		return nil
	},
	RunE: runConvert,
}

// Execute runs the CLI, printing any failure in the standard error style.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFlag, "input", "i", "", "path to the exported Craft markdown directory")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "path to the Zola content section directory to write")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/trellis/config.toml)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "resolve and rewrite everything but write nothing")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveInput applies flag-over-config precedence for the input directory.
func resolveInput() (string, error) {
	if inputFlag != "" {
		return inputFlag, nil
	}
	if cfg.Input != "" {
		return cfg.Input, nil
	}
	return "", fmt.Errorf("no input directory specified\n\nUse --input or set input in the config file")
}

func resolveOutput() (string, error) {
	if outputFlag != "" {
		return outputFlag, nil
	}
	if cfg.Output != "" {
		return cfg.Output, nil
	}
	return "", fmt.Errorf("no output directory specified\n\nUse --output or set output in the config file")
}

// convert runs discovery, binding, and rewriting, returning the finished
// export ready for the writer.
func convert(input string) (*craft.Export, error) {
	ex, err := craft.New(input)
	if err != nil {
		return nil, err
	}
	if err := ex.Discover(craft.OSStamper); err != nil {
		return nil, err
	}
	if err := rewrite.Documents(ex); err != nil {
		return nil, err
	}
	return ex, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, err := resolveInput()
	if err != nil {
		return err
	}
	output, err := resolveOutput()
	if err != nil {
		return err
	}

	ex, err := convert(input)
	if err != nil {
		return err
	}

	if dryRun {
		printPlan(ex)
		return nil
	}

	if err := zola.NewWriter(output).WriteAll(ex); err != nil {
		return err
	}

	assets := 0
	for _, note := range ex.Notes {
		assets += len(note.Assets)
	}
	fmt.Println(ui.Successf("converted %d notes (%d assets) into %s", len(ex.Notes), assets, ui.FilePath(output)))
	return nil
}

// printPlan lists every destination path the writer would produce.
func printPlan(ex *craft.Export) {
	keys := make([]string, 0, len(ex.Notes))
	for key := range ex.Notes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Println(ui.Hint("dry run, nothing written"))
	for _, key := range keys {
		note := ex.Notes[key]
		fmt.Printf("%s -> %s\n", key, ui.FilePath(note.SlugPath))
		for _, asset := range note.Assets {
			fmt.Printf("  + %s\n", ui.Hint(asset))
		}
	}
	fmt.Println(ui.Successf("%d notes resolved", len(keys)))
}
