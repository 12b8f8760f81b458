package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/pipeline"
)

// analyzeCommand creates the analyze command for running the full layout
// pipeline on a deck.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [deck.json]",
		Short: "Run the layout pipeline on a deck and emit the result as JSON",
		Long: `Run the layout pipeline on a deck and emit the result as JSON.

The analyze command takes a deck.json file (slides plus theme), picks a
layout for each slide, bakes absolute canvas positions, and writes the
analyzed deck with per-slide layouts and canvas elements. The output can
be rendered to presentation artifacts using the 'render' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.analyzed.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runAnalyze loads the deck, runs the pipeline, and writes output.
func (c *CLI) runAnalyze(ctx context.Context, input, output string, noCache bool) error {
	deck, err := readDeckFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Theme:   deck.Theme,
		Formats: []string{pipeline.FormatJSON},
		Logger:  c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, "Analyzing deck...")
	spinner.Start()
	prog := newProgress(loggerFromContext(ctx))

	result, err := runner.Execute(ctx, deck.Slides, opts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Analyzed %d slides", len(result.Slides)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultOutputPath(input, ".analyzed.json")
	}
	if err := os.WriteFile(outputPath, result.Deck[pipeline.FormatJSON], 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Analysis complete")
	printFile(outputPath)
	printDeckStats(result.Stats.SlideCount, result.Stats.ElementCount, result.CacheInfo.LayoutHits == len(result.Slides))
	printNewline()
	printNextStep("Render", appName+" render "+input)

	return nil
}

// layoutCommand creates the layout command for inspecting layout decisions.
func (c *CLI) layoutCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "layout [deck.json]",
		Short: "Show the layout decision for each slide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout analyzes the deck and prints one line per slide.
func (c *CLI) runLayout(ctx context.Context, input string, noCache bool) error {
	deck, err := readDeckFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	slides := deck.Slides
	opts := pipeline.Options{Theme: deck.Theme, Logger: c.Logger}
	layouts, err := runner.Analyze(ctx, slides, opts)
	if err != nil {
		return err
	}

	for i, l := range layouts {
		num := StyleDim.Render(fmt.Sprintf("%2d", i+1))
		title := slides[i].Title
		if title == "" {
			title = StyleDim.Render("(untitled)")
		}
		fmt.Printf("%s  %-24s %s\n", num, StyleHighlight.Render(string(l.Name)), title)
	}

	return nil
}

// bakeCommand creates the bake command for emitting canvas elements.
func (c *CLI) bakeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "bake [deck.json]",
		Short: "Emit absolute-positioned canvas elements for a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBake(cmd.Context(), args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.elements.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runBake analyzes and bakes the deck, then writes one element list per slide.
func (c *CLI) runBake(ctx context.Context, input, output string, noCache bool) error {
	deck, err := readDeckFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	slides := deck.Slides
	opts := pipeline.Options{Theme: deck.Theme, Logger: c.Logger}
	layouts, err := runner.Analyze(ctx, slides, opts)
	if err != nil {
		return err
	}
	elements := runner.Bake(ctx, slides, layouts, opts)

	data, err := json.MarshalIndent(elements, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal elements: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultOutputPath(input, ".elements.json")
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	count := 0
	for _, els := range elements {
		count += len(els)
	}

	printSuccess("Bake complete")
	printFile(outputPath)
	printDeckStats(len(slides), count, false)

	return nil
}

// readDeckFile opens and parses a deck file.
func readDeckFile(path string) (*pipeline.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck %s: %w", path, err)
	}
	defer f.Close()

	deck, err := pipeline.ReadDeck(f)
	if err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", path, err)
	}
	return deck, nil
}

// defaultOutputPath derives an output path from the input file name.
func defaultOutputPath(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + suffix
}
