package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circos/pkg/figure"
	"github.com/matzehuels/circos/pkg/pipeline"
)

// renderCommand creates the render command: figure to output files in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		noCache bool
		lf      layoutFlags
		rf      renderFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [figure.toml]",
		Short: "Render a figure to SVG, PNG, PDF and more",
		Long: `Render a figure to SVG, PNG, PDF and more.

Runs layout and visualize in one step. Formats:

  svg    vector figure
  png    raster figure (built-in rasterizer, or rsvg-convert with --rsvg)
  pdf    vector figure through rsvg-convert
  json   the solved scene
  dot    Graphviz source of the sector connectivity graph
  links  the connectivity graph drawn by Graphviz (SVG)`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("toml", "json"),
		RunE: func(cmd *cobra.Command, args []string) error {
			lf.apply(cmd, &opts)
			if err := rf.apply(c, &opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, rf.output, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	lf.register(cmd, &opts)
	rf.register(cmd, &opts)

	return cmd
}

// runRender executes the full pipeline and writes each artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
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

	spinner := startStage(ctx, stageRender, figureSubject(fig.Title, input))

	result, err := runner.Execute(ctx, fig, opts)
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
		sectors:   result.Stats.SectorCount,
		links:     result.Stats.LinkCount,
	})
}
