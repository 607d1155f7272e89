package solana

// Named PDA seed builders, spec.md §4.5.

// MetadataPDA derives the Metaplex-style metadata account address:
// ["metadata", metadataProgram.bytes, mint.bytes] under metadataProgram.
func MetadataPDA(metadataProgram, mint Pubkey) (Pubkey, uint8, error) {
	return FindProgramAddress([][]byte{
		[]byte("metadata"),
		metadataProgram.Bytes(),
		mint.Bytes(),
	}, metadataProgram)
}

// AmmPoolPDAs derives the set of AMM pool accounts keyed by the base/quote
// mints, all under ammProgram, per spec.md §4.5's seed list
// ("amm"|"authority"|"lp_mint"|"vault_base"|"vault_quote"|"open_orders"|
// "target_orders"|"amm_config").
type AmmPoolPDAs struct {
	Pool         Pubkey
	Authority    Pubkey
	LpMint       Pubkey
	VaultBase    Pubkey
	VaultQuote   Pubkey
	OpenOrders   Pubkey
	TargetOrders Pubkey
	AmmConfig    Pubkey
}

func derive(ammProgram Pubkey, seed string, keys ...[]byte) Pubkey {
	s := [][]byte{[]byte(seed)}
	s = append(s, keys...)
	pk, _, _ := FindProgramAddress(s, ammProgram)
	return pk
}

// DeriveAmmPoolPDAs derives every pool-scoped account for a given base/quote
// mint pair. The pool address is derived first and then used as an
// additional seed component for the remaining accounts, since the pool
// itself is the natural keying point for its satellite accounts.
func DeriveAmmPoolPDAs(ammProgram, baseMint, quoteMint Pubkey) AmmPoolPDAs {
	pool := derive(ammProgram, "amm", baseMint.Bytes(), quoteMint.Bytes())

	return AmmPoolPDAs{
		Pool:         pool,
		Authority:    derive(ammProgram, "authority", pool.Bytes()),
		LpMint:       derive(ammProgram, "lp_mint", pool.Bytes()),
		VaultBase:    derive(ammProgram, "vault_base", pool.Bytes()),
		VaultQuote:   derive(ammProgram, "vault_quote", pool.Bytes()),
		OpenOrders:   derive(ammProgram, "open_orders", pool.Bytes()),
		TargetOrders: derive(ammProgram, "target_orders", pool.Bytes()),
		AmmConfig:    derive(ammProgram, "amm_config", baseMint.Bytes(), quoteMint.Bytes()),
	}
}

// AssociatedTokenAddress derives the canonical per-owner, per-mint token
// account (ATA), grounded on original_source/src/core/ata.py: seeded by
// owner, the SPL token program, and the mint, under the ATA program.
func AssociatedTokenAddress(ataProgram, tokenProgram, owner, mint Pubkey) (Pubkey, uint8, error) {
	return FindProgramAddress([][]byte{
		owner.Bytes(),
		tokenProgram.Bytes(),
		mint.Bytes(),
	}, ataProgram)
}
