package steps

import (
	"testing"
	"time"

	"github.com/LerianStudio/launchplan/internal/config"
	"github.com/LerianStudio/launchplan/internal/mlog"
	"github.com/LerianStudio/launchplan/internal/plan"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
	"github.com/LerianStudio/launchplan/internal/store"
	"github.com/LerianStudio/launchplan/internal/vault"
	"github.com/stretchr/testify/require"
)

// pubkeyFromString decodes s, failing the test on error.
func pubkeyFromString(t *testing.T, s string) solana.Pubkey {
	t.Helper()
	pk, err := solana.PubkeyFromString(s)
	require.NoError(t, err)
	return pk
}

// testProgramID returns a syntactically valid but arbitrary 32-byte program
// id string, distinct per seed byte.
func testProgramID(seed byte) string {
	var pk solana.Pubkey
	pk[0] = seed
	pk[31] = 0xAA
	return pk.String()
}

func samplePlan() *plan.Plan {
	return &plan.Plan{
		Version:   "1",
		Model:     "test",
		Network:   "devnet",
		PlanID:    "plan-1",
		CreatedAt: time.Unix(0, 0).UTC(),
		Token: plan.Token{
			Name: "Test Token", Symbol: "TT", Decimals: 6,
			TotalMint: 2_000_000, LPTokens: 1_000_000, URI: "https://example.com/meta.json",
		},
		Inputs: plan.Inputs{T0: 1_000_000, NBuys: 2},
		Dex:    plan.Dex{Variant: "raydium_v4", ProgramID: testProgramID(9), QuoteMint: testProgramID(8)},
		Schedule: []string{"w1", "w2"},
		Wallets: []plan.Wallet{
			{WalletID: "seed", Role: plan.RoleSeed, Funding: plan.Funding{}},
			{WalletID: "lpc", Role: plan.RoleLPCreator, Funding: plan.Funding{TotalLamports: 1_000_000},
				Action: &plan.Action{Type: plan.ActionCreateLP}},
			{WalletID: "w1", Role: plan.RoleBuyer, Funding: plan.Funding{TotalLamports: 500_000},
				Action: &plan.Action{Type: plan.ActionSwapBuy, EffectiveBaseSol: 0.1, MinOutTokens: 1, SlippageBps: 100}},
			{WalletID: "w2", Role: plan.RoleBuyer, Funding: plan.Funding{TotalLamports: 500_000},
				Action: &plan.Action{Type: plan.ActionSwapBuy, EffectiveBaseSol: 0.1, MinOutTokens: 1, SlippageBps: 100}},
		},
	}
}

// testCtx builds a fully wired steps.Ctx over a fresh Fake RPC and temp
// store, with a live keypair for every declared wallet.
func testCtx(t *testing.T) (*Ctx, *rpcfacade.Fake, *store.Store) {
	t.Helper()

	p := samplePlan()

	dir := t.TempDir()
	st, err := store.Open(dir)
	require.NoError(t, err)

	ids := make([]string, 0, len(p.Wallets))
	for _, w := range p.Wallets {
		ids = append(ids, w.WalletID)
	}
	kps, err := vault.Generate(ids)
	require.NoError(t, err)

	fake := rpcfacade.NewFake()

	cfg := &config.Config{
		MetaplexTokenMetadataProgram: testProgramID(1),
		RaydiumV4AmmProgram:          p.Dex.ProgramID,
		WrappedSolMint:               p.Dex.QuoteMint,
		ComputeUnitLimit:             config.DefaultComputeUnitLimit,
	}

	c := &Ctx{
		RPC:        fake,
		Store:      st,
		Plan:       p,
		Wallets:    kps,
		Cfg:        cfg,
		Log:        mlog.Noop{},
		Passphrase: "test-pass",
	}
	return c, fake, st
}
