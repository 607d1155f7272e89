package plan

import (
	"encoding/json"
	"testing"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePlanJSON mirrors spec.md §8 scenario 1: token.lp_tokens =
// inputs.T0 = 1,000,000, 3 wallets (1 SEED, 1 LP_CREATOR, 1 BUYER),
// schedule [w1, w2].
func samplePlanJSON(t *testing.T) []byte {
	t.Helper()

	raw := `{
		"version": "1", "model": "m1", "network": "devnet",
		"plan_id": "plan-1", "created_at": "2026-01-01T00:00:00Z",
		"token": {"name": "Test", "symbol": "TST", "decimals": 6,
			"total_mint": 1000000000, "lp_tokens": 1000000, "uri": "https://example.com/t.json"},
		"inputs": {"T0": 1000000, "B_total": 10, "n_buys": 1, "fee": 0.01,
			"mm_pct": 0.1, "buffer_pct": 0.05, "snap_lamports": true},
		"dex": {"variant": "raydium_v4", "program_id": "RaydiumProgram11111111111111111111111111",
			"pool_type": "standard", "quote_mint": "So11111111111111111111111111111111111111112", "quote_decimals": 9},
		"schedule": ["w1", "w2"],
		"wallets": [
			{"wallet_id": "seed", "role": "SEED", "funding": {"total_lamports": 0, "base_lamports": 0, "buffer_lamports": 0}},
			{"wallet_id": "w1", "role": "LP_CREATOR", "funding": {"total_lamports": 5000000000, "base_lamports": 5000000000, "buffer_lamports": 0},
				"action": {"type": "CREATE_LP", "effective_base_sol": 0, "min_out_tokens": 0, "slippage_bps": 100, "atomic": true}},
			{"wallet_id": "w2", "role": "BUYER", "funding": {"total_lamports": 2000000000, "base_lamports": 2000000000, "buffer_lamports": 0},
				"action": {"type": "SWAP_BUY_SOL", "effective_base_sol": 1.5, "min_out_tokens": 100, "slippage_bps": 500, "atomic": false}}
		],
		"invariants": {"sum_non_seed_lamports": 7000000000, "seed_lamports": 7000000000},
		"tx_defaults": {"compute_unit_limit": 1000000, "compute_unit_price_micro_lamports": 1000, "jito_tip_lamports": 0}
	}`
	return []byte(raw)
}

func TestLoad_AcceptsSamplePlan(t *testing.T) {
	p, err := Load(samplePlanJSON(t))
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), p.Token.LPTokens)
	assert.NotEmpty(t, p.Hash)
}

// TestLoad_RoundTrips is P1: re-serializing and re-loading an accepted plan
// yields an equal Plan (ignoring Hash, which depends on raw encoding).
func TestLoad_RoundTrips(t *testing.T) {
	p1, err := Load(samplePlanJSON(t))
	require.NoError(t, err)

	reencoded, err := json.Marshal(p1)
	require.NoError(t, err)

	p2, err := Load(reencoded)
	require.NoError(t, err)

	p1.Hash = ""
	p2.Hash = ""
	assert.Equal(t, p1, p2)
}

func mutate(t *testing.T, fn func(map[string]any)) []byte {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(samplePlanJSON(t), &m))
	fn(m)
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return out
}

// TestLoad_RejectsEachRule is P2: every one of the seven invariants, when
// violated, fails with a PlanInvalid naming that rule.
func TestLoad_RejectsEachRule(t *testing.T) {
	cases := []struct {
		name string
		rule string
		raw  []byte
	}{
		{
			name: "lp_tokens_mismatch",
			rule: "lp_tokens_eq_t0",
			raw: mutate(t, func(m map[string]any) {
				m["token"].(map[string]any)["lp_tokens"] = float64(999)
			}),
		},
		{
			name: "sum_non_seed_mismatch",
			rule: "sum_non_seed_lamports",
			raw: mutate(t, func(m map[string]any) {
				m["invariants"].(map[string]any)["sum_non_seed_lamports"] = float64(1)
			}),
		},
		{
			name: "seed_balance_mismatch",
			rule: "seed_lamports_balance",
			raw: mutate(t, func(m map[string]any) {
				m["invariants"].(map[string]any)["seed_lamports"] = float64(1)
			}),
		},
		{
			name: "duplicate_wallet_id",
			rule: "unique_wallet_ids",
			raw: mutate(t, func(m map[string]any) {
				wallets := m["wallets"].([]any)
				wallets[1].(map[string]any)["wallet_id"] = "w2"
				wallets[2].(map[string]any)["wallet_id"] = "w2"
			}),
		},
		{
			name: "schedule_unknown_id",
			rule: "schedule_ids_exist",
			raw: mutate(t, func(m map[string]any) {
				m["schedule"] = []any{"w1", "ghost"}
			}),
		},
		{
			name: "no_lp_creator",
			rule: "single_lp_creator",
			raw: mutate(t, func(m map[string]any) {
				m["wallets"].([]any)[1].(map[string]any)["role"] = "BUYER"
			}),
		},
		{
			name: "slippage_out_of_range",
			rule: "slippage",
			raw: mutate(t, func(m map[string]any) {
				m["wallets"].([]any)[2].(map[string]any)["action"].(map[string]any)["slippage_bps"] = float64(6000)
			}),
		},
		{
			name: "decimals_out_of_range",
			rule: "decimals",
			raw: mutate(t, func(m map[string]any) {
				m["token"].(map[string]any)["decimals"] = float64(10)
			}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.raw)
			require.Error(t, err)

			var pi errs.PlanInvalid
			require.ErrorAs(t, err, &pi)
			assert.Equal(t, tc.rule, pi.Rule)
		})
	}
}

// TestLoad_RuntimeBounds_Decimals is spec.md §8 scenario 6, decimals branch.
func TestLoad_RuntimeBounds_Decimals(t *testing.T) {
	raw := mutate(t, func(m map[string]any) {
		m["token"].(map[string]any)["decimals"] = float64(10)
	})
	_, err := Load(raw)
	require.Error(t, err)
	var pi errs.PlanInvalid
	require.ErrorAs(t, err, &pi)
	assert.Equal(t, "decimals", pi.Rule)
}

// TestLoad_CoercesTotalSolAlias covers spec.md §4.1's round(x × 10^9)
// conversion, grounded on original_source/src/models/plan.py's
// Funding.from_dict: total_sol is a wallet-level funding alias, not a
// plan-level input.
func TestLoad_CoercesTotalSolAlias(t *testing.T) {
	raw := mutate(t, func(m map[string]any) {
		w2 := m["wallets"].([]any)[2].(map[string]any)
		w2["funding"] = map[string]any{"total_sol": 2.0, "base_sol": 2.0, "buffer_lamports": 0}
	})

	p, err := Load(raw)
	require.NoError(t, err)

	w2, ok := p.WalletByID("w2")
	require.True(t, ok)
	assert.Equal(t, int64(2_000_000_000), w2.Funding.TotalLamports)
	assert.Equal(t, int64(2_000_000_000), w2.Funding.BaseLamports)
}

// TestLoad_RuntimeBounds_Slippage is spec.md §8 scenario 6, slippage branch.
func TestLoad_RuntimeBounds_Slippage(t *testing.T) {
	raw := mutate(t, func(m map[string]any) {
		m["wallets"].([]any)[2].(map[string]any)["action"].(map[string]any)["slippage_bps"] = float64(6000)
	})
	_, err := Load(raw)
	require.Error(t, err)
	var pi errs.PlanInvalid
	require.ErrorAs(t, err, &pi)
	assert.Equal(t, "slippage", pi.Rule)
}
