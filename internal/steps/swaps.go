package steps

import (
	"context"

	"github.com/LerianStudio/launchplan/internal/ixbuild"
	"github.com/LerianStudio/launchplan/internal/lamports"
	"github.com/LerianStudio/launchplan/internal/plan"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// SwapEntry is one schedule entry's outcome (spec.md §4.6 "swaps").
type SwapEntry struct {
	Order    int    `json:"order"`
	WalletID string `json:"wallet_id"`
	Sig      string `json:"sig,omitempty"`
	Skipped  bool   `json:"skipped,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// buysArtifact mirrors the shape Swaps persists, used to reconstruct
// buys_done across resumed runs (spec.md §4.8: "swaps are guarded by ...
// buys_done checks").
type buysArtifact struct {
	Swaps []SwapEntry `json:"swaps"`
}

func qualifies(a *plan.Action) bool {
	return a != nil && (a.Type == plan.ActionSwapBuy || a.Type == plan.ActionSwapBuySol)
}

// Swaps iterates plan.schedule in order, building one swap transaction per
// qualifying wallet not yet bought and not past max_buys, monotonically
// numbering every qualifying entry (spec.md §4.6 "swaps", §4.8 P5).
func Swaps(ctx context.Context, c *Ctx) (map[string]any, error) {
	buysDone := map[string]bool{}
	var prev buysArtifact
	if ok, err := c.Store.GetArtifact("buys", &prev); err != nil {
		return nil, err
	} else if ok {
		for _, e := range prev.Swaps {
			if !e.Skipped || e.Reason == "already_swapped" {
				buysDone[e.WalletID] = true
			}
		}
	}

	ammProgram, err := c.ammProgram()
	if err != nil {
		return nil, err
	}
	mintKp, err := c.EnsureMintKeypair()
	if err != nil {
		return nil, err
	}
	baseMint := mintKp.PublicKey()
	quoteMint, err := c.quoteMint()
	if err != nil {
		return nil, err
	}
	pdas := solana.DeriveAmmPoolPDAs(ammProgram, baseMint, quoteMint)

	maxBuys := c.Plan.Inputs.NBuys
	order := 0
	built := 0
	var entries []SwapEntry

	// persist appends entry and merges the full entries-so-far slice into
	// artifacts.json immediately, so a wallet's already-landed (and
	// irreversible) swap survives even if a later wallet's send fails and
	// this function returns an error (spec.md §4.8, §8 P5): the orchestrator
	// only merges steps.Execute's return value into artifacts.json on
	// success (run.go's runStep/complete), so anything not written here
	// would otherwise be silently discarded and replayed on the next
	// --resume --only buys, double-spending that wallet's buy. In simulate
	// mode nothing has landed, so nothing is written.
	persist := func(e SwapEntry) error {
		entries = append(entries, e)
		if c.Simulate {
			return nil
		}
		return c.Store.MergeArtifacts(map[string]any{"buys": buysArtifact{Swaps: entries}})
	}

	for _, wid := range c.Plan.Schedule {
		w, ok := c.Plan.WalletByID(wid)
		if !ok || !qualifies(w.Action) {
			continue
		}
		order++

		if buysDone[wid] {
			if err := persist(SwapEntry{Order: order, WalletID: wid, Skipped: true, Reason: "already_swapped"}); err != nil {
				return nil, err
			}
			continue
		}

		if built >= maxBuys {
			if err := persist(SwapEntry{Order: order, WalletID: wid, Skipped: true, Reason: "max_buys_reached"}); err != nil {
				return nil, err
			}
			continue
		}

		signer, err := c.signer(wid)
		if err != nil {
			return nil, err
		}
		userPub := signer.PublicKey()

		inLamports := lamports.FromSol(w.Action.EffectiveBaseSol)

		ix := rpcfacade.Instruction{
			ProgramID: ammProgram,
			Accounts: ixbuild.SwapAccounts(
				pdas.Pool, pdas.Authority, pdas.OpenOrders, pdas.TargetOrders,
				pdas.VaultBase, pdas.VaultQuote, userPub,
			),
			Data: ixbuild.BuildSwap(inLamports, w.Action.MinOutTokens, uint16(w.Action.SlippageBps)),
		}

		tx := c.buildTx([]rpcfacade.Instruction{ix}, userPub)
		sig, err := c.send(ctx, "swaps", tx, []rpcfacade.Signer{signer})
		if err != nil {
			return nil, err
		}

		built++
		if err := persist(SwapEntry{Order: order, WalletID: wid, Sig: sig}); err != nil {
			return nil, err
		}
	}

	return map[string]any{"swaps": entries}, nil
}
