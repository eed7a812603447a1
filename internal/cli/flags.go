package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circos/pkg/pipeline"
)

// layoutFlags binds the canvas and angular budget flags to opts.
type layoutFlags struct {
	start, end float64
}

func (f *layoutFlags) register(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas size in pixels (default: figure canvas, then 576)")
	cmd.Flags().Float64Var(&opts.Margin, "margin", 0, "canvas margin in pixels")
	cmd.Flags().Float64Var(&opts.RMax, "rmax", 0, "radius mapped to the canvas edge (default 1000)")
	cmd.Flags().Float64Var(&f.start, "start", 0, "start angle of the first sector, degrees clockwise from north")
	cmd.Flags().Float64Var(&f.end, "end", 0, "end of the angular budget in degrees")
}

// apply sets the angle bounds that were given on the command line.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("start") {
		opts.StartDeg = &f.start
	}
	if cmd.Flags().Changed("end") {
		opts.EndDeg = &f.end
	}
}

// renderFlags holds the output flags shared by render and visualize.
type renderFlags struct {
	formats string
	output  string
	rsvg    bool
}

func (f *renderFlags) register(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg, png, pdf, json, dot, links (comma-separated)")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color (overrides the figure)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG scale factor")
	cmd.Flags().BoolVar(&f.rsvg, "rsvg", false, "rasterize PNG with rsvg-convert instead of the built-in rasterizer")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// apply fills opts from flags and config, then validates them.
func (f *renderFlags) apply(c *CLI, opts *pipeline.Options) error {
	opts.Formats = parseFormats(f.formats, c.Config.Render.Formats)
	if opts.Scale == 0 {
		opts.Scale = c.Config.Render.Scale
	}
	opts.Native = c.Config.Render.Native && !f.rsvg
	return opts.ValidateForRender()
}

// completeFormats completes the comma-separated --format list, offering
// only formats not already named.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	used := make(map[string]bool)
	for _, f := range strings.Split(prefix, ",") {
		used[strings.TrimSpace(f)] = true
	}
	var out []string
	for f := range pipeline.ValidFormats {
		if !used[f] {
			out = append(out, prefix+f)
		}
	}
	sort.Strings(out)
	return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}

// completeFiles completes the single input file argument with the given
// extensions.
func completeFiles(exts ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return exts, cobra.ShellCompDirectiveFilterFileExt
	}
}
