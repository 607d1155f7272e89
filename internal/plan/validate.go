package plan

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/lamports"
)

// maxSnapSlackLamports is the allowed absolute difference between
// sum_non_seed_lamports and seed_lamports when snap_lamports rounding is in
// effect (spec.md §3 rule 3).
const maxSnapSlackLamports = 1

// Load parses and validates raw plan JSON bytes, returning a fully checked
// Plan with Hash populated, or a errs.PlanInvalid naming the first rule that
// failed. Per spec.md §4.1 there is no partial acceptance: any invariant
// failure discards the whole parse.
func Load(raw []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errs.PlanInvalid{Rule: "json", Err: err}
	}

	coerceFundingAliases(&p)

	if err := validate(&p); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(raw)
	p.Hash = hex.EncodeToString(sum[:])

	return &p, nil
}

// coerceFundingAliases applies the optional total_sol/base_sol/buffer_sol →
// lamports conversion (spec.md §4.1: round(x × 10^9)) to every wallet's
// funding block before the invariant checks in validate run, since those
// checks read *_lamports directly. A wallet may supply either form; the
// lamport field wins whenever both are present. If total_lamports is left
// unset but base/buffer are (directly or via alias), it defaults to their
// sum, matching base+buffer funding plans that never state a total.
func coerceFundingAliases(p *Plan) {
	for i := range p.Wallets {
		f := &p.Wallets[i].Funding

		if f.TotalLamports == 0 && f.TotalSol != nil {
			f.TotalLamports = lamports.FromSol(*f.TotalSol)
		}
		if f.BaseLamports == 0 && f.BaseSol != nil {
			f.BaseLamports = lamports.FromSol(*f.BaseSol)
		}
		if f.BufferLamports == 0 && f.BufferSol != nil {
			f.BufferLamports = lamports.FromSol(*f.BufferSol)
		}
		if f.TotalLamports == 0 {
			f.TotalLamports = f.BaseLamports + f.BufferLamports
		}
	}
}

func validate(p *Plan) error {
	if err := validateLpTokensMatchT0(p); err != nil {
		return err
	}
	if err := validateSumNonSeed(p); err != nil {
		return err
	}
	if err := validateSeedBalance(p); err != nil {
		return err
	}
	if err := validateUniqueWalletIDs(p); err != nil {
		return err
	}
	if err := validateScheduleIDsExist(p); err != nil {
		return err
	}
	if err := validateSingleLPCreator(p); err != nil {
		return err
	}
	if err := validateActions(p); err != nil {
		return err
	}
	return nil
}

// Rule 1: token.lp_tokens == inputs.T0.
func validateLpTokensMatchT0(p *Plan) error {
	if p.Token.LPTokens != p.Inputs.T0 {
		return errs.PlanInvalid{Rule: "lp_tokens_eq_t0", Err: fmt.Errorf(
			"token.lp_tokens=%d != inputs.T0=%d", p.Token.LPTokens, p.Inputs.T0)}
	}
	return nil
}

// Rule 2: sum(w.funding.total_lamports for w with role != SEED) ==
// invariants.sum_non_seed_lamports.
func validateSumNonSeed(p *Plan) error {
	var sum int64
	for _, w := range p.Wallets {
		if w.Role != RoleSeed {
			sum += w.Funding.TotalLamports
		}
	}
	if sum != p.Invariants.SumNonSeedLamports {
		return errs.PlanInvalid{Rule: "sum_non_seed_lamports", Err: fmt.Errorf(
			"computed sum=%d != declared=%d", sum, p.Invariants.SumNonSeedLamports)}
	}
	return nil
}

// Rule 3: |sum_non_seed - invariants.seed_lamports| <= (1 if
// inputs.snap_lamports else 0).
func validateSeedBalance(p *Plan) error {
	diff := p.Invariants.SumNonSeedLamports - p.Invariants.SeedLamports
	if diff < 0 {
		diff = -diff
	}

	allowed := int64(0)
	if p.Inputs.SnapLamports {
		allowed = maxSnapSlackLamports
	}

	if diff > allowed {
		return errs.PlanInvalid{Rule: "seed_lamports_balance", Err: fmt.Errorf(
			"|sum_non_seed(%d) - seed_lamports(%d)| = %d > allowed %d",
			p.Invariants.SumNonSeedLamports, p.Invariants.SeedLamports, diff, allowed)}
	}
	return nil
}

// Rule 4: all wallet_id values unique.
func validateUniqueWalletIDs(p *Plan) error {
	seen := make(map[string]bool, len(p.Wallets))
	for _, w := range p.Wallets {
		if seen[w.WalletID] {
			return errs.PlanInvalid{Rule: "unique_wallet_ids", Err: fmt.Errorf(
				"duplicate wallet_id %q", w.WalletID)}
		}
		seen[w.WalletID] = true
	}
	return nil
}

// Rule 5: every id in schedule appears in wallets.
func validateScheduleIDsExist(p *Plan) error {
	for _, id := range p.Schedule {
		if _, ok := p.WalletByID(id); !ok {
			return errs.PlanInvalid{Rule: "schedule_ids_exist", Err: fmt.Errorf(
				"schedule references unknown wallet_id %q", id)}
		}
	}
	return nil
}

// Rule 6: exactly one wallet has role LP_CREATOR and carries a CREATE_LP
// action.
func validateSingleLPCreator(p *Plan) error {
	count := 0
	for _, w := range p.Wallets {
		if w.Role != RoleLPCreator {
			continue
		}
		count++
		if w.Action == nil || w.Action.Type != ActionCreateLP {
			return errs.PlanInvalid{Rule: "lp_creator_action", Err: fmt.Errorf(
				"wallet %q has role LP_CREATOR but no CREATE_LP action", w.WalletID)}
		}
	}
	if count != 1 {
		return errs.PlanInvalid{Rule: "single_lp_creator", Err: fmt.Errorf(
			"expected exactly one LP_CREATOR wallet, found %d", count)}
	}
	return nil
}

// Rule 7: for every action, 0 <= slippage_bps <= 5000 and
// effective_base_sol >= 0. Also enforces decimals in [0, 9] here, since
// spec.md §8 scenario 6 treats it as a validator-time rejection.
func validateActions(p *Plan) error {
	if p.Token.Decimals < 0 || p.Token.Decimals > 9 {
		return errs.PlanInvalid{Rule: "decimals", Err: fmt.Errorf(
			"token.decimals=%d out of range [0,9]", p.Token.Decimals)}
	}

	for _, w := range p.Wallets {
		if w.Action == nil {
			continue
		}
		if w.Action.SlippageBps < 0 || w.Action.SlippageBps > 5000 {
			return errs.PlanInvalid{Rule: "slippage", Err: fmt.Errorf(
				"wallet %q slippage_bps=%d out of range [0,5000]", w.WalletID, w.Action.SlippageBps)}
		}
		if w.Action.EffectiveBaseSol < 0 {
			return errs.PlanInvalid{Rule: "effective_base_sol", Err: fmt.Errorf(
				"wallet %q effective_base_sol=%f < 0", w.WalletID, w.Action.EffectiveBaseSol)}
		}
	}
	return nil
}
