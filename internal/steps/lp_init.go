package steps

import (
	"context"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/ixbuild"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// LPInit derives the AMM pool's PDA-based accounts and sends initialize2
// with tokens_to_lp = plan.token.lp_tokens (spec.md §4.6 "lp_init"). Returns
// {pool, vault_base, vault_quote, lp_mint, tx_sig}.
func LPInit(ctx context.Context, c *Ctx) (map[string]any, error) {
	lpCreatorWallet, ok := c.Plan.LPCreator()
	if !ok {
		return nil, errs.ConfigError{Key: "wallets", Err: errNoLPCreator}
	}
	lpCreator, err := c.signer(lpCreatorWallet.WalletID)
	if err != nil {
		return nil, err
	}

	mintKp, err := c.EnsureMintKeypair()
	if err != nil {
		return nil, err
	}
	baseMint := mintKp.PublicKey()
	authorityPub := lpCreator.PublicKey()

	ammProgram, err := c.ammProgram()
	if err != nil {
		return nil, err
	}
	quoteMint, err := c.quoteMint()
	if err != nil {
		return nil, err
	}

	pdas := solana.DeriveAmmPoolPDAs(ammProgram, baseMint, quoteMint)

	ix := rpcfacade.Instruction{
		ProgramID: ammProgram,
		Accounts: ixbuild.Initialize2Accounts(
			pdas.Pool, pdas.Authority, pdas.LpMint, pdas.VaultBase, pdas.VaultQuote,
			baseMint, quoteMint, pdas.OpenOrders, pdas.TargetOrders, pdas.AmmConfig, authorityPub,
		),
		Data: ixbuild.BuildInitialize2(c.Plan.Token.LPTokens),
	}

	tx := c.buildTx([]rpcfacade.Instruction{ix}, authorityPub)
	sig, err := c.send(ctx, "lp_init", tx, []rpcfacade.Signer{lpCreator})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"pool":        pdas.Pool.String(),
		"vault_base":  pdas.VaultBase.String(),
		"vault_quote": pdas.VaultQuote.String(),
		"lp_mint":     pdas.LpMint.String(),
		"tx_sig":      sig,
	}, nil
}
