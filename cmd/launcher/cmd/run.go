package cmd

import (
	"fmt"

	"github.com/LerianStudio/launchplan/internal/orchestrator"
	"github.com/LerianStudio/launchplan/internal/steps"
	"github.com/spf13/cobra"
)

func newRunCommand(pf *persistentFlags) *cobra.Command {
	var (
		planPath         string
		rpcEndpoint      string
		seedKeypairPath  string
		priorityFeeMicro int64
		cuLimit          int64
		simulate         bool
		resume           bool
		only             string
		outDir           string
	)

	c := &cobra.Command{
		Use:   "run",
		Short: "execute the launch plan's steps in fixed order",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(pf, planPath, rpcEndpoint, outDir, seedKeypairPath, cuLimit, priorityFeeMicro, true)
			if err != nil {
				return err
			}

			opts := orchestrator.Options{Only: only, Resume: resume, Simulate: simulate}
			if err := app.Run(cmd.Context(), opts); err != nil {
				return err
			}

			for _, step := range steps.Order {
				if r, _ := app.Store.LoadReceipt(step); r != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", step)
				}
			}
			return nil
		},
	}

	c.Flags().StringVar(&planPath, "plan", "", "path to the launch plan JSON file (required)")
	c.Flags().StringVar(&rpcEndpoint, "rpc", "", "RPC endpoint URL (required)")
	c.Flags().StringVar(&seedKeypairPath, "seed-keypair", "", "path to the SEED wallet's raw keypair file")
	c.Flags().Int64Var(&priorityFeeMicro, "priority-fee", 0, "compute unit price override, in micro-lamports")
	c.Flags().Int64Var(&cuLimit, "cu-limit", 1_000_000, "compute unit limit override")
	c.Flags().BoolVar(&simulate, "simulate", false, "simulate every transaction instead of sending it")
	c.Flags().BoolVar(&resume, "resume", false, "skip steps already marked done in the state directory")
	c.Flags().StringVar(&only, "only", "all", "run a single step: fund, mint, metadata, lp (or lp_init), buys, all")
	c.Flags().StringVar(&outDir, "out", "state", "state directory")

	_ = c.MarkFlagRequired("plan")
	_ = c.MarkFlagRequired("rpc")

	return c
}
