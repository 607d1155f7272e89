// Package steps implements the five step executors spec.md §4.6 names:
// funding, mint, metadata, lp_init, and swaps. Each is idempotent when
// composed with the orchestrator's skip-if-present gate (spec.md §4.7) and
// returns a JSON-serializable map merged straight into artifacts.json.
package steps

import (
	"context"
	"fmt"
	"os"

	"github.com/LerianStudio/launchplan/internal/config"
	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/ixbuild"
	"github.com/LerianStudio/launchplan/internal/mlog"
	"github.com/LerianStudio/launchplan/internal/plan"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
	"github.com/LerianStudio/launchplan/internal/vault"
)

// mintWalletID is the pseudo wallet id the mint's own keypair is stored
// under, alongside the plan's declared wallets (spec.md §4.6 "mint": create
// a new SPL mint — the mint account needs a keypair same as any wallet).
const mintWalletID = "mint"

// Ctx is the dependency bundle every step executor closes over: the RPC
// facade, the durable store (for cross-step artifact lookups and wallet
// persistence), the validated plan, the live wallet keypairs, resolved
// config, and a logger. Constructed once per run by the orchestrator
// (Design Note: no package-level globals).
type Ctx struct {
	RPC        rpcfacade.Client
	Store      ArtifactStore
	Plan       *plan.Plan
	Wallets    map[string]vault.Keypair
	Cfg        *config.Config
	Log        mlog.Logger
	Passphrase string

	// Simulate is set by the preflight entry point (SPEC_FULL §12) and by
	// run --simulate: transactions are built exactly as normal and routed
	// through RPC.Simulate, never through RPC.SendAndConfirm. A failed
	// simulation is still returned as errs.SimulationFailed (see send).
	Simulate bool
}

// ArtifactStore is the subset of *store.Store the step executors need:
// cross-step artifact lookups, artifact merges (Swaps persists each entry as
// soon as it is known), and a wallet file path, so this package doesn't need
// to import internal/store's full surface (avoids a cyclical temptation to
// let steps reach into checkpoint/receipt bookkeeping, which is the
// orchestrator's job alone per spec.md §4.7).
type ArtifactStore interface {
	GetArtifact(key string, v any) (bool, error)
	MergeArtifacts(patch map[string]any) error
	WalletPath(id string) string
}

func (c *Ctx) signer(id string) (vault.Keypair, error) {
	kp, ok := c.Wallets[id]
	if !ok {
		return vault.Keypair{}, errs.WalletVaultError{WalletID: id, Message: "keypair not loaded"}
	}
	return kp, nil
}

// EnsureMintKeypair returns the mint's own keypair, generating and
// persisting a fresh one on first use (so its address stays stable across
// resumed runs — the precondition probe in spec.md §4.7 depends on this).
func (c *Ctx) EnsureMintKeypair() (vault.Keypair, error) {
	if kp, ok := c.Wallets[mintWalletID]; ok {
		return kp, nil
	}

	path := c.Store.WalletPath(mintWalletID)
	if _, err := os.Stat(path); err == nil {
		kp, err := vault.Load(path, mintWalletID, c.Passphrase)
		if err != nil {
			return vault.Keypair{}, err
		}
		c.Wallets[mintWalletID] = kp
		return kp, nil
	}

	kps, err := vault.Generate([]string{mintWalletID})
	if err != nil {
		return vault.Keypair{}, err
	}
	kp := kps[mintWalletID]

	if _, err := vault.Save(path, mintWalletID, kp, c.Passphrase); err != nil {
		return vault.Keypair{}, err
	}
	c.Wallets[mintWalletID] = kp
	return kp, nil
}

// metaplexProgram resolves the configured metadata program id.
func (c *Ctx) metaplexProgram() (solana.Pubkey, error) {
	return c.requirePubkey("program_ids.metaplex_token_metadata", c.Cfg.MetaplexTokenMetadataProgram)
}

// ammProgram resolves the configured Raydium-style AMM program id.
func (c *Ctx) ammProgram() (solana.Pubkey, error) {
	return c.requirePubkey("program_ids.raydium_v4_amm", c.Cfg.RaydiumV4AmmProgram)
}

// quoteMint resolves the configured quote mint, falling back to the plan's
// dex.quote_mint when the config omits it.
func (c *Ctx) quoteMint() (solana.Pubkey, error) {
	v := c.Cfg.WrappedSolMint
	if v == "" {
		v = c.Plan.Dex.QuoteMint
	}
	return c.requirePubkey("mints.wrapped_sol", v)
}

func (c *Ctx) requirePubkey(key, v string) (solana.Pubkey, error) {
	if v == "" {
		return solana.Pubkey{}, errs.ConfigError{Key: key, Err: fmt.Errorf("not configured")}
	}
	pk, err := solana.PubkeyFromString(v)
	if err != nil {
		return solana.Pubkey{}, errs.ConfigError{Key: key, Err: err}
	}
	return pk, nil
}

// computeBudget resolves CU limit/price: the plan's tx_defaults take
// precedence over the config-level fallback defaults (spec.md §6).
func (c *Ctx) computeBudget() (limit, priceMicro int64) {
	limit = c.Plan.TxDefaults.ComputeUnitLimit
	if limit == 0 {
		limit = c.Cfg.ComputeUnitLimit
	}
	priceMicro = c.Plan.TxDefaults.ComputeUnitPriceMicroLamports
	if priceMicro == 0 {
		priceMicro = c.Cfg.ComputeUnitPriceMicroLamp
	}
	return limit, priceMicro
}

// buildTx wraps ixs with the resolved compute-budget instructions and a fee
// payer, ready for Simulate/SendAndConfirm.
func (c *Ctx) buildTx(ixs []rpcfacade.Instruction, feePayer solana.Pubkey) rpcfacade.Transaction {
	limit, price := c.computeBudget()
	return rpcfacade.Transaction{
		Instructions: ixbuild.PrependComputeBudget(ixs, limit, price),
		FeePayer:     feePayer,
	}
}

// send always simulates tx first. A simulation that reports an error comes
// back as errs.SimulationFailed whether or not c.Simulate is set: App.Preflight
// records that error as the step's result and goes on, App.Run stops on it.
// With c.Simulate set, a clean simulation is the entire result and nothing
// is ever sent; otherwise tx goes on to SendAndConfirm.
func (c *Ctx) send(ctx context.Context, step string, tx rpcfacade.Transaction, signers []rpcfacade.Signer) (string, error) {
	res, err := c.RPC.Simulate(ctx, tx, signers)
	if err != nil {
		return "", errs.RpcFailed{Op: "simulate", Step: step, Err: err}
	}
	if res.Err != "" {
		return "", errs.SimulationFailed{Step: step, Logs: res.Logs}
	}
	if c.Simulate {
		return "", nil
	}

	sig, err := c.RPC.SendAndConfirm(ctx, tx, signers)
	if err != nil {
		return "", errs.RpcFailed{Op: "send_and_confirm", Step: step, Err: err}
	}
	return sig, nil
}
