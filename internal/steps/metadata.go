package steps

import (
	"context"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/ixbuild"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// Metadata builds and sends CreateMetadataAccountV3 for the mint created by
// the mint step (spec.md §4.6 "metadata"). Returns {tx_sig}.
func Metadata(ctx context.Context, c *Ctx) (map[string]any, error) {
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

	metaplexProgram, err := c.metaplexProgram()
	if err != nil {
		return nil, err
	}

	metadataPDA, _, err := solana.MetadataPDA(metaplexProgram, mintPub)
	if err != nil {
		return nil, err
	}

	payload := ixbuild.BuildCreateMetadataAccountV3(ixbuild.MetadataFields{
		Name:      c.Plan.Token.Name,
		Symbol:    c.Plan.Token.Symbol,
		URI:       c.Plan.Token.URI,
		IsMutable: true,
	})

	ix := rpcfacade.Instruction{
		ProgramID: metaplexProgram,
		Accounts: ixbuild.MetadataAccounts(
			metadataPDA, mintPub, authorityPub, authorityPub, authorityPub,
			solana.SystemProgram, solana.RentSysvar, solana.TokenProgram,
		),
		Data: payload,
	}

	tx := c.buildTx([]rpcfacade.Instruction{ix}, authorityPub)
	sig, err := c.send(ctx, "metadata", tx, []rpcfacade.Signer{lpCreator})
	if err != nil {
		return nil, err
	}

	return map[string]any{"tx_sig": sig}, nil
}
