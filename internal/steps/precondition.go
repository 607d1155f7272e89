package steps

import (
	"context"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// Precondition implements the address-observable skip-if-present gate of
// spec.md §4.7 step 3: mint → account_exists(mint); metadata →
// account_exists(metadata_pda(mint)); lp_init → account_exists(pool_pda).
// funding and buys have no such probe; their idempotency is guarded
// internally by balance and buys_done checks instead (spec.md §4.8).
//
// A true skip return carries the exact {skipped, reason} outputs the
// orchestrator merges into the step's artifact and receipt.
func Precondition(ctx context.Context, c *Ctx, step string) (skip bool, outputs map[string]any, err error) {
	switch step {
	case "mint":
		mintKp, err := c.EnsureMintKeypair()
		if err != nil {
			return false, nil, err
		}
		exists, err := c.RPC.AccountExists(ctx, mintKp.PublicKey())
		if err != nil {
			return false, nil, errs.RpcFailed{Op: "account_exists", Step: step, Err: err}
		}
		if exists {
			return true, map[string]any{"skipped": true, "reason": "mint_exists", "mint": mintKp.PublicKey().String()}, nil
		}
		return false, nil, nil

	case "metadata":
		mintKp, err := c.EnsureMintKeypair()
		if err != nil {
			return false, nil, err
		}
		metaplexProgram, err := c.metaplexProgram()
		if err != nil {
			return false, nil, err
		}
		pda, _, err := solana.MetadataPDA(metaplexProgram, mintKp.PublicKey())
		if err != nil {
			return false, nil, err
		}
		exists, err := c.RPC.AccountExists(ctx, pda)
		if err != nil {
			return false, nil, errs.RpcFailed{Op: "account_exists", Step: step, Err: err}
		}
		if exists {
			return true, map[string]any{"skipped": true, "reason": "metadata_exists"}, nil
		}
		return false, nil, nil

	case "lp_init":
		mintKp, err := c.EnsureMintKeypair()
		if err != nil {
			return false, nil, err
		}
		ammProgram, err := c.ammProgram()
		if err != nil {
			return false, nil, err
		}
		quoteMint, err := c.quoteMint()
		if err != nil {
			return false, nil, err
		}
		pdas := solana.DeriveAmmPoolPDAs(ammProgram, mintKp.PublicKey(), quoteMint)
		exists, err := c.RPC.AccountExists(ctx, pdas.Pool)
		if err != nil {
			return false, nil, errs.RpcFailed{Op: "account_exists", Step: step, Err: err}
		}
		if exists {
			return true, map[string]any{"skipped": true, "reason": "pool_exists", "pool": pdas.Pool.String()}, nil
		}
		return false, nil, nil

	default:
		return false, nil, nil
	}
}
