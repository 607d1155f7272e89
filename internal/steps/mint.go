package steps

import (
	"context"
	"fmt"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/ixbuild"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// errNoLPCreator is returned when a step needs the plan's LP_CREATOR wallet
// but the validator somehow let a plan through without one (shouldn't
// happen: plan.validateSingleLPCreator enforces exactly one at load time).
var errNoLPCreator = fmt.Errorf("plan has no LP_CREATOR wallet")

// MintRentExemptLamports is the rent-exempt minimum balance for an SPL
// Token mint account (82 bytes), the same constant real clusters quote for
// this account size.
const MintRentExemptLamports = 1_461_600

// ataAddress derives the associated token account address for owner/mint
// under the well-known token and associated-token programs.
func ataAddress(owner, mint solana.Pubkey) (solana.Pubkey, uint8, error) {
	return solana.AssociatedTokenAddress(solana.AssociatedTokenProgram, solana.TokenProgram, owner, mint)
}

// Mint creates a new SPL mint sized by plan.token.decimals with the
// LP_CREATOR as mint authority and no freeze authority, then creates the
// LP_CREATOR's associated token account and mints plan.token.total_mint
// tokens into it (spec.md §4.6 "mint").
func Mint(ctx context.Context, c *Ctx) (map[string]any, error) {
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
	mintPub := mintKp.PublicKey()
	authorityPub := lpCreator.PublicKey()

	ata, _, err := ataAddress(authorityPub, mintPub)
	if err != nil {
		return nil, err
	}

	ixs := []rpcfacade.Instruction{
		{
			ProgramID: solana.SystemProgram,
			Accounts:  ixbuild.CreateAccountAccounts(authorityPub, mintPub),
			Data:      ixbuild.BuildCreateAccount(MintRentExemptLamports, ixbuild.MintAccountSpace, solana.TokenProgram),
		},
		{
			ProgramID: solana.TokenProgram,
			Accounts:  ixbuild.InitializeMint2Accounts(mintPub),
			Data:      ixbuild.BuildInitializeMint2(uint8(c.Plan.Token.Decimals), authorityPub),
		},
		{
			ProgramID: solana.AssociatedTokenProgram,
			Accounts:  ixbuild.CreateAssociatedTokenAccountAccounts(authorityPub, ata, authorityPub, mintPub),
			Data:      ixbuild.BuildCreateAssociatedTokenAccount(),
		},
		{
			ProgramID: solana.TokenProgram,
			Accounts:  ixbuild.MintToAccounts(mintPub, ata, authorityPub),
			Data:      ixbuild.BuildMintTo(c.Plan.Token.TotalMint),
		},
	}

	tx := c.buildTx(ixs, authorityPub)
	sig, err := c.send(ctx, "mint", tx, []rpcfacade.Signer{lpCreator, mintKp})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"mint":           mintPub.String(),
		"lp_creator_ata": ata.String(),
		"minted_tokens":  c.Plan.Token.TotalMint,
		"tx_sig":         sig,
	}, nil
}
