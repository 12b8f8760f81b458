package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output directory (or file for single deck-level formats)
	formats  []string // output formats: svg, html, png, pdf, json, outline
	scale    float64  // raster scale factor for png
	detailed bool     // include slide titles in the outline graph
	refresh  bool     // recompute even when cached artifacts exist
	noCache  bool     // disable caching entirely
}

// renderCommand creates the render command for generating presentation
// artifacts.
//
// Per-slide formats (svg, html, png, pdf) produce one file per slide in
// the output directory. Deck-level formats (json, outline) produce one
// file for the whole deck.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [deck.json]",
		Short: "Render a deck to presentation artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			for _, f := range opts.formats {
				if err := pipeline.ValidateFormat(f); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: <input> directory)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), html, png, pdf, json, outline, pptx (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for png output")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include slide titles in the outline graph")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute artifacts even when cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender executes the pipeline and writes every requested artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	deck, err := readDeckFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Theme:    deck.Theme,
		Formats:  opts.formats,
		Scale:    opts.scale,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	}

	spinner := newSpinnerWithContext(ctx,
		fmt.Sprintf("Rendering %s...", strings.Join(opts.formats, ", ")))
	spinner.Start()
	prog := newProgress(loggerFromContext(ctx))

	result, err := runner.Execute(ctx, deck.Slides, pipeOpts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d slides as %s", len(result.Slides), strings.Join(opts.formats, ", ")))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outDir := opts.output
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	written, err := writeArtifacts(result, pipeOpts, outDir, base)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printDeckStats(result.Stats.SlideCount, result.Stats.ElementCount, result.CacheInfo.RenderHit)

	return nil
}

// writeArtifacts writes per-slide and deck-level artifacts to dir and
// returns the written paths.
func writeArtifacts(result *pipeline.Result, opts pipeline.Options, dir, base string) ([]string, error) {
	var written []string

	for _, format := range opts.SlideFormats() {
		for i, sr := range result.Slides {
			data, ok := sr.Artifacts[format]
			if !ok {
				continue
			}
			name := fmt.Sprintf("%s-%02d.%s", base, i+1, format)
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return nil, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}

	for _, format := range opts.DeckFormats() {
		data, ok := result.Deck[format]
		if !ok {
			continue
		}
		ext := format
		switch format {
		case pipeline.FormatOutline:
			ext = "outline.svg"
		case pipeline.FormatPPTX:
			ext = "pptx.json"
		}
		path := filepath.Join(dir, base+"."+ext)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}
