package ixbuild

import (
	"bytes"
	"encoding/binary"

	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// System Program instruction indices (the standard native-program ABI, not
// a spec-local convention, unlike the metadata/AMM builders above).
const (
	systemCreateAccountIndex = 0
	systemTransferIndex      = 2
)

// BuildCreateAccount encodes a System Program CreateAccount instruction:
// u32_le(0) ++ u64_le(lamports) ++ u64_le(space) ++ owner_pubkey(32).
func BuildCreateAccount(lamports, space int64, owner solana.Pubkey) []byte {
	var buf bytes.Buffer

	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], systemCreateAccountIndex)
	buf.Write(idx[:])

	var lam, sp [8]byte
	binary.LittleEndian.PutUint64(lam[:], uint64(lamports))
	binary.LittleEndian.PutUint64(sp[:], uint64(space))
	buf.Write(lam[:])
	buf.Write(sp[:])
	buf.Write(owner.Bytes())

	return buf.Bytes()
}

// CreateAccountAccounts builds the 2-account list CreateAccount expects:
// the funding payer and the brand-new account being allocated, both signers
// (the new account signs to prove the caller holds its private key).
func CreateAccountAccounts(payer, newAccount solana.Pubkey) []rpcfacade.AccountMeta {
	return []rpcfacade.AccountMeta{
		{Pubkey: payer, IsSigner: true, IsWritable: true},
		{Pubkey: newAccount, IsSigner: true, IsWritable: true},
	}
}

// BuildTransfer encodes a System Program Transfer instruction moving
// lamports from the funding step's signing wallet to a recipient.
func BuildTransfer(lamports int64) []byte {
	var buf bytes.Buffer

	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], systemTransferIndex)
	buf.Write(idx[:])

	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], uint64(lamports))
	buf.Write(amt[:])

	return buf.Bytes()
}

// TransferAccounts builds the 2-account list System Program Transfer
// expects: the funding signer (writable, signer) and the recipient
// (writable).
func TransferAccounts(from, to solana.Pubkey) []rpcfacade.AccountMeta {
	return []rpcfacade.AccountMeta{
		{Pubkey: from, IsSigner: true, IsWritable: true},
		{Pubkey: to, IsWritable: true},
	}
}

// TransferInstruction is a convenience wrapper combining BuildTransfer and
// TransferAccounts into one ready-to-send instruction under the System
// Program.
func TransferInstruction(from, to solana.Pubkey, lamports int64) rpcfacade.Instruction {
	return rpcfacade.Instruction{
		ProgramID: solana.SystemProgram,
		Accounts:  TransferAccounts(from, to),
		Data:      BuildTransfer(lamports),
	}
}
