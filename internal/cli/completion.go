package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for qcdraw.

To load completions:

Bash:
  $ source <(qcdraw completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ qcdraw completion bash > /etc/bash_completion.d/qcdraw
  # macOS:
  $ qcdraw completion bash > $(brew --prefix)/etc/bash_completion.d/qcdraw

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ qcdraw completion zsh > "${fpath[1]}/_qcdraw"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ qcdraw completion fish | source

  # To load completions for each session, execute once:
  $ qcdraw completion fish > ~/.config/fish/completions/qcdraw.fish

PowerShell:
  PS> qcdraw completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> qcdraw completion powershell > qcdraw.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
