package ixbuild

import (
	"bytes"
	"encoding/binary"

	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// SPL Token program instruction indices (standard native-program ABI),
// grounded on original_source/src/core/spl_token.py's initialize_mint,
// mint_to, and create_associated_token_account calls.
const (
	tokenInitializeMint2Index = 20
	tokenMintToIndex          = 7
)

// MintAccountSpace is the fixed on-wire size of an SPL Token mint account.
const MintAccountSpace = 82

// BuildInitializeMint2 encodes InitializeMint2: u8(20) ++ u8(decimals) ++
// mint_authority(32) ++ option<freeze_authority>. freezeAuthority is always
// omitted (spec.md §4.6: "freeze authority = none").
func BuildInitializeMint2(decimals uint8, mintAuthority solana.Pubkey) []byte {
	var buf bytes.Buffer
	buf.WriteByte(tokenInitializeMint2Index)
	buf.WriteByte(decimals)
	buf.Write(mintAuthority.Bytes())
	buf.WriteByte(0x00) // Option::None for freeze_authority
	return buf.Bytes()
}

// InitializeMint2Accounts builds the 1-account list InitializeMint2 expects:
// the mint account itself (writable, already allocated via CreateAccount).
func InitializeMint2Accounts(mint solana.Pubkey) []rpcfacade.AccountMeta {
	return []rpcfacade.AccountMeta{{Pubkey: mint, IsWritable: true}}
}

// BuildMintTo encodes MintTo: u8(7) ++ u64_le(amount).
func BuildMintTo(amount int64) []byte {
	var buf bytes.Buffer
	buf.WriteByte(tokenMintToIndex)

	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], uint64(amount))
	buf.Write(amt[:])

	return buf.Bytes()
}

// MintToAccounts builds the 3-account list MintTo expects: the mint, the
// destination token account, and the mint authority as signer.
func MintToAccounts(mint, destAta, mintAuthority solana.Pubkey) []rpcfacade.AccountMeta {
	return []rpcfacade.AccountMeta{
		{Pubkey: mint, IsWritable: true},
		{Pubkey: destAta, IsWritable: true},
		{Pubkey: mintAuthority, IsSigner: true},
	}
}

// BuildCreateAssociatedTokenAccount encodes the Associated Token Program's
// (idempotent) create instruction, which carries no instruction data.
func BuildCreateAssociatedTokenAccount() []byte {
	return nil
}

// CreateAssociatedTokenAccountAccounts builds the 6-account list the
// Associated Token Program's create instruction expects, in its canonical
// order: payer, ata, owner, mint, system program, token program.
func CreateAssociatedTokenAccountAccounts(payer, ata, owner, mint solana.Pubkey) []rpcfacade.AccountMeta {
	return []rpcfacade.AccountMeta{
		{Pubkey: payer, IsSigner: true, IsWritable: true},
		{Pubkey: ata, IsWritable: true},
		{Pubkey: owner},
		{Pubkey: mint},
		{Pubkey: solana.SystemProgram},
		{Pubkey: solana.TokenProgram},
	}
}
