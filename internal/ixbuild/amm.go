package ixbuild

import (
	"bytes"
	"encoding/binary"

	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

const (
	ammInitialize2Discriminator = 0x00
	ammSwapDiscriminator        = 0x01
)

// BuildInitialize2 encodes the AMM initialize2 payload (spec.md §4.5):
// [0x00] ++ u64_le(tokens_to_lp).
func BuildInitialize2(tokensToLP int64) []byte {
	var buf bytes.Buffer
	buf.WriteByte(ammInitialize2Discriminator)

	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], uint64(tokensToLP))
	buf.Write(amt[:])

	return buf.Bytes()
}

// Initialize2Accounts builds the ordered account list for initialize2
// (spec.md §4.5).
func Initialize2Accounts(pool, authority, lpMint, vaultBase, vaultQuote, baseMint, quoteMint, openOrders, targetOrders, ammConfig, lpCreator solana.Pubkey) []rpcfacade.AccountMeta {
	return []rpcfacade.AccountMeta{
		{Pubkey: pool, IsWritable: true},
		{Pubkey: authority},
		{Pubkey: lpMint, IsWritable: true},
		{Pubkey: vaultBase, IsWritable: true},
		{Pubkey: vaultQuote, IsWritable: true},
		{Pubkey: baseMint},
		{Pubkey: quoteMint},
		{Pubkey: openOrders, IsWritable: true},
		{Pubkey: targetOrders, IsWritable: true},
		{Pubkey: ammConfig},
		{Pubkey: lpCreator, IsSigner: true, IsWritable: true},
	}
}

// BuildSwap encodes the AMM SOL→base exact-in swap payload (spec.md §4.5):
// [0x01] ++ u64_le(in_lamports) ++ u64_le(min_out) ++ u16_le(slippage_bps).
func BuildSwap(inLamports, minOut int64, slippageBps uint16) []byte {
	var buf bytes.Buffer
	buf.WriteByte(ammSwapDiscriminator)

	var in, out [8]byte
	binary.LittleEndian.PutUint64(in[:], uint64(inLamports))
	binary.LittleEndian.PutUint64(out[:], uint64(minOut))
	buf.Write(in[:])
	buf.Write(out[:])

	var slip [2]byte
	binary.LittleEndian.PutUint16(slip[:], slippageBps)
	buf.Write(slip[:])

	return buf.Bytes()
}

// SwapAccounts builds the ordered account list for the swap instruction
// (spec.md §4.5).
func SwapAccounts(pool, authority, openOrders, targetOrders, vaultBase, vaultQuote, user solana.Pubkey) []rpcfacade.AccountMeta {
	return []rpcfacade.AccountMeta{
		{Pubkey: pool, IsWritable: true},
		{Pubkey: authority},
		{Pubkey: openOrders, IsWritable: true},
		{Pubkey: targetOrders, IsWritable: true},
		{Pubkey: vaultBase, IsWritable: true},
		{Pubkey: vaultQuote, IsWritable: true},
		{Pubkey: user, IsSigner: true, IsWritable: true},
	}
}
