package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCommand(pf *persistentFlags) *cobra.Command {
	var (
		rpcEndpoint string
		outDir      string
	)

	c := &cobra.Command{
		Use:   "verify",
		Short: "probe the chain against each step's precondition without sending or simulating anything, writing verify.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildVerifyApp(pf, rpcEndpoint, outDir)
			if err != nil {
				return err
			}

			report, runErr := app.Verify(cmd.Context())
			if writeErr := app.Store.WriteJSON("verify.json", report); writeErr != nil {
				return writeErr
			}
			if runErr != nil {
				return runErr
			}

			for _, s := range report.Steps {
				switch {
				case s.Error != "":
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %s\n", s.Step, s.Error)
				case s.Exists:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: present\n", s.Step)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: absent\n", s.Step)
				}
			}
			return nil
		},
	}

	c.Flags().StringVar(&rpcEndpoint, "rpc", "", "RPC endpoint URL (required)")
	c.Flags().StringVar(&outDir, "out", "state", "state directory")

	_ = c.MarkFlagRequired("rpc")

	return c
}
