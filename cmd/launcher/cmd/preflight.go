package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPreflightCommand(pf *persistentFlags) *cobra.Command {
	var (
		planPath    string
		rpcEndpoint string
		outDir      string
	)

	c := &cobra.Command{
		Use:   "preflight",
		Short: "simulate every step without sending any transaction, writing preflight.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(pf, planPath, rpcEndpoint, outDir, "", 0, 0, false)
			if err != nil {
				return err
			}

			report, runErr := app.Preflight(cmd.Context())
			if writeErr := app.Store.WriteJSON("preflight.json", report); writeErr != nil {
				return writeErr
			}
			if runErr != nil {
				return runErr
			}

			for _, s := range report.Steps {
				switch {
				case s.Skipped:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: skipped (%s)\n", s.Step, s.Reason)
				case s.Error != "":
					fmt.Fprintf(cmd.OutOrStdout(), "%s: simulation failed: %s\n", s.Step, s.Error)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: would send\n", s.Step)
				}
			}
			return nil
		},
	}

	c.Flags().StringVar(&planPath, "plan", "", "path to the launch plan JSON file (required)")
	c.Flags().StringVar(&rpcEndpoint, "rpc", "", "RPC endpoint URL (required)")
	c.Flags().StringVar(&outDir, "out", "state", "state directory")

	_ = c.MarkFlagRequired("plan")
	_ = c.MarkFlagRequired("rpc")

	return c
}
