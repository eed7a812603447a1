package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circos/pkg/pipeline"
	"github.com/matzehuels/circos/pkg/scene"
)

// visualizeCommand creates the visualize command for rendering from a scene.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		noCache bool
		rf      renderFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a solved scene",
		Long: `Render a solved scene.

The visualize command takes a layout.json scene (produced by 'layout' or
'render -f json') and renders it. The scene already holds every primitive,
so this step only draws.

Use 'render' as a shortcut to go directly from a figure to output files.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("json"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rf.apply(c, &opts); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, rf.output, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	rf.register(cmd, &opts)

	return cmd
}

// runVisualize loads the scene and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	s, err := scene.ReadSceneFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = loggerFromContext(ctx)

	spinner := startStage(ctx, stageVisualize, fmt.Sprintf("%d sectors", len(s.Sectors)))

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, s, opts)
	if err != nil {
		spinner.Fail()
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  cacheHit,
		sectors:   len(s.Sectors),
		links:     len(s.Links),
	})
}
