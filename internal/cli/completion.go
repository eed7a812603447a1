package cli

import (
	"github.com/spf13/cobra"
)

// completionShells are the shells cobra can generate scripts for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand creates the completion command. Scripts complete the
// circos subcommands (layout, render, visualize, inspect, serve, cache),
// their flags, and figure files for the commands that take one.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for circos.

Completion covers the subcommands (layout, render, visualize, inspect,
serve, cache), their flags, output formats for -f, and figure files
(.toml, .json) or scene files (.layout.json) as arguments.

Bash:
  $ source <(circos completion bash)
  $ circos completion bash > /etc/bash_completion.d/circos

Zsh:
  $ circos completion zsh > "${fpath[1]}/_circos"

Fish:
  $ circos completion fish > ~/.config/fish/completions/circos.fish

PowerShell:
  PS> circos completion powershell | Out-String | Invoke-Expression

Start a new shell afterwards, then try:
  $ circos render genome.toml -f <TAB>
  $ circos cache <TAB>`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
