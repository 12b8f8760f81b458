package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/config"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/gen"
	"github.com/deckforge/deckforge/pkg/images"
	"github.com/deckforge/deckforge/pkg/pipeline"
	"github.com/deckforge/deckforge/pkg/theme"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string   // output deck file
	mode       string   // "ai" or "outline"
	prompt     string   // topic prompt (ai mode)
	outline    []string // slide titles (outline mode)
	slideCount int      // number of slides to generate
	themeSlug  string   // theme slug; empty triggers the interactive picker
	noImages   bool     // skip image resolution
	configPath string   // config file override
}

// generateCommand creates the generate command for LLM deck generation.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{slideCount: 8}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new deck from a prompt or outline via Gemini",
		Long: `Generate a new deck from a prompt or outline via Gemini.

In ai mode (--prompt) the model invents the deck structure from a topic.
In outline mode (--outline, repeatable) the model expands your slide
titles into full slides. Image suggestions are resolved to real image
URLs through the provider chain unless --no-images is set.

The API key is read from the environment variable named in the config
file (GEMINI_API_KEY by default).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "deck.json", "output deck file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "ai", "generation mode: ai (default), outline")
	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "topic prompt (ai mode)")
	cmd.Flags().StringArrayVar(&opts.outline, "outline", nil, "slide title (outline mode, repeatable)")
	cmd.Flags().IntVarP(&opts.slideCount, "slides", "n", opts.slideCount, "number of slides to generate")
	cmd.Flags().StringVarP(&opts.themeSlug, "theme", "t", "", "theme slug (interactive picker when omitted)")
	cmd.Flags().BoolVar(&opts.noImages, "no-images", false, "skip image resolution")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path")

	return cmd
}

// runGenerate drives prompt building, model calls, image resolution,
// and deck output.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	th, err := resolveTheme(opts.themeSlug)
	if err != nil {
		return err
	}
	if th == nil {
		printInfo("No theme selected")
		return nil
	}

	apiKey := cfg.APIKey()
	if apiKey == "" {
		return errors.New(errors.ErrCodeUnsupported,
			"no API key found; set %s or configure gemini.api_key_env", cfg.Gemini.APIKeyEnv)
	}
	model, err := gen.NewGeminiModel(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return err
	}

	params := gen.Params{
		Mode:       gen.Mode(opts.mode),
		Prompt:     opts.prompt,
		Outline:    opts.outline,
		SlideCount: opts.slideCount,
		Theme:      *th,
	}

	generator := gen.NewGenerator(model, c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %d slides...", opts.slideCount))
	spinner.Start()

	slides, err := generator.Generate(ctx, params)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if !opts.noImages {
		chain, err := images.NewChain(cfg.Images, c.Logger)
		if err != nil {
			printWarning("Image chain unavailable: %v", err)
		} else {
			runner, rerr := c.newRunner(false)
			if rerr == nil {
				runner.Images = chain
				imgSpinner := newSpinnerWithContext(ctx, "Resolving images...")
				imgSpinner.Start()
				runner.ResolveImages(ctx, slides)
				imgSpinner.Stop()
				runner.Close()
			}
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	deck := pipeline.Deck{Slides: slides, Theme: *th}
	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal deck: %w", err)
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write deck %s: %w", opts.output, err)
	}

	printSuccess("Generated %d slides", len(slides))
	printFile(opts.output)
	printDetail("Theme: %s", th.Name)
	printNewline()
	printNextStep("Render", appName+" render "+opts.output)

	return nil
}

// resolveTheme finds the requested theme, or runs the interactive picker
// on a terminal. A nil result with nil error means the user quit the
// picker.
func resolveTheme(slug string) (*theme.Theme, error) {
	if slug != "" {
		t, ok := theme.BuiltinBySlug(slug)
		if !ok {
			return nil, errors.New(errors.ErrCodeThemeNotFound, "unknown theme %q", slug)
		}
		return &t, nil
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		t := theme.Builtin()[0]
		return &t, nil
	}
	return pickTheme(theme.Builtin())
}
