package root

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mabrarov/greeter/internal/greeter"
)

// NewRootCmd creates the root command. Every argument is passed to the
// greeter verbatim, flag-looking ones included.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "app [NAME]",
		Short:              "Print a greeting, optionally addressed to NAME",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return greeter.Run(cmd.OutOrStdout(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// Execute runs the root command with provided args, writing the greeting to out.
func Execute(out io.Writer, args []string) error {
	// Cobra serves shell completion when it sees these tokens first.
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return greeter.Run(out, args)
	}

	// Cobra falls back to os.Args on nil args.
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs(args)
	return cmd.Execute()
}
