package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/spf13/cobra"
)

// persistentFlags are the two global flags every subcommand shares,
// grounded on components/mdz/cmd/root.go's --config/--debug pair.
type persistentFlags struct {
	configPath string
	debug      bool
}

// NewRootCommand builds the launcher root command and wires its
// subcommands, following the same shape as components/mdz/cmd/root.go.
func NewRootCommand() *cobra.Command {
	pf := &persistentFlags{}

	root := &cobra.Command{
		Use:           "launcher",
		Short:         "launcher drives a token launch plan: fund wallets, mint, attach metadata, init an LP, and schedule buys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&pf.configPath, "config", "c", "", "config file (program ids, fees)")
	root.PersistentFlags().BoolVarP(&pf.debug, "debug", "d", false, "enable debug logging")

	root.AddCommand(newRunCommand(pf))
	root.AddCommand(newPreflightCommand(pf))
	root.AddCommand(newVerifyCommand(pf))

	return root
}

// Execute runs the root command and exits the process with the exit code
// spec.md §6 maps each error taxonomy category to.
func Execute() {
	cobra.EnableCommandSorting = false

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errs.ExitCode(err))
	}
}
