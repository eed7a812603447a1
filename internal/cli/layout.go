package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circos/pkg/figure"
	"github.com/matzehuels/circos/pkg/pipeline"
	"github.com/matzehuels/circos/pkg/scene"
)

// layoutCommand creates the layout command for solving a figure into a scene.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		lf      layoutFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [figure.toml]",
		Short: "Solve a figure and write its scene",
		Long: `Solve a figure and write its scene.

The layout command reads a figure description (TOML or JSON), places its
sectors around the circle and draws spines, tracks and chords. The result is
a layout.json scene that 'visualize' renders without solving again.

Results are cached locally for faster subsequent runs.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("toml", "json"),
		RunE: func(cmd *cobra.Command, args []string) error {
			lf.apply(cmd, &opts)
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	lf.register(cmd, &opts)

	return cmd
}

// runLayout loads the figure, computes the scene, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	fig, err := figure.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load figure %s: %w", input, err)
	}
	if opts.Width == 0 {
		opts.Width = c.Config.Render.Size
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = logger

	prog := newProgress(logger)
	spinner := startStage(ctx, stageLayout, figureSubject(fig.Title, input))

	s, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, fig, opts)
	if err != nil {
		spinner.Fail()
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Solved %d sectors", len(s.Sectors)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", input) + ".layout.json"
	}
	if err := scene.WriteSceneFile(s, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(s.Sectors), len(s.Links), cacheHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}
