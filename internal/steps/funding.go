package steps

import (
	"context"
	"fmt"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/ixbuild"
	"github.com/LerianStudio/launchplan/internal/plan"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
)

// FundedEntry is one wallet's funding outcome (spec.md §4.6 "funding").
type FundedEntry struct {
	WalletID string `json:"wallet_id"`
	Lamports int64  `json:"lamports,omitempty"`
	Sig      string `json:"sig,omitempty"`
	Skipped  bool   `json:"skipped,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Funding tops every non-SEED wallet up to its declared funding total,
// transferring the shortfall from the SEED wallet. Idempotent: a wallet
// already holding at least its funding target is left untouched.
func Funding(ctx context.Context, c *Ctx) (map[string]any, error) {
	seedWallet, ok := c.Plan.SeedWallet()
	if !ok {
		return nil, errs.ConfigError{Key: "wallets", Err: fmt.Errorf("no SEED wallet in plan")}
	}
	seed, err := c.signer(seedWallet.WalletID)
	if err != nil {
		return nil, err
	}

	var entries []FundedEntry
	for _, w := range c.Plan.Wallets {
		if w.Role == plan.RoleSeed {
			continue
		}

		dest, err := c.signer(w.WalletID)
		if err != nil {
			return nil, err
		}
		destPub := dest.PublicKey()

		balance, err := c.RPC.GetBalance(ctx, destPub)
		if err != nil {
			return nil, errs.RpcFailed{Op: "get_balance", Step: "funding", Err: err}
		}

		if balance >= w.Funding.TotalLamports {
			entries = append(entries, FundedEntry{WalletID: w.WalletID, Skipped: true, Reason: "already_funded"})
			continue
		}

		shortfall := w.Funding.TotalLamports - balance
		ix := ixbuild.TransferInstruction(seed.PublicKey(), destPub, shortfall)
		tx := c.buildTx([]rpcfacade.Instruction{ix}, seed.PublicKey())

		sig, err := c.send(ctx, "funding", tx, []rpcfacade.Signer{seed})
		if err != nil {
			return nil, err
		}

		entries = append(entries, FundedEntry{WalletID: w.WalletID, Lamports: shortfall, Sig: sig})
	}

	return map[string]any{"funded": entries}, nil
}
