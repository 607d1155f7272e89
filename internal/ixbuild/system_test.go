package ixbuild

import (
	"encoding/binary"
	"testing"

	"github.com/LerianStudio/launchplan/internal/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateAccount_Layout(t *testing.T) {
	var owner solana.Pubkey
	owner[0] = 7

	payload := BuildCreateAccount(890_880, MintAccountSpace, owner)
	require.Len(t, payload, 4+8+8+32)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(payload[0:4]))
	assert.Equal(t, uint64(890_880), binary.LittleEndian.Uint64(payload[4:12]))
	assert.Equal(t, uint64(MintAccountSpace), binary.LittleEndian.Uint64(payload[12:20]))
	assert.Equal(t, owner.Bytes(), payload[20:52])
}

func TestBuildTransfer_Layout(t *testing.T) {
	payload := BuildTransfer(1_500_000)
	require.Len(t, payload, 12)
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(payload[0:4]))
	assert.Equal(t, uint64(1_500_000), binary.LittleEndian.Uint64(payload[4:12]))
}

func TestTransferInstruction_UsesSystemProgram(t *testing.T) {
	var from, to solana.Pubkey
	from[0], to[0] = 1, 2

	ix := TransferInstruction(from, to, 100)
	assert.Equal(t, solana.SystemProgram, ix.ProgramID)
	require.Len(t, ix.Accounts, 2)
	assert.True(t, ix.Accounts[0].IsSigner)
	assert.Equal(t, from, ix.Accounts[0].Pubkey)
	assert.Equal(t, to, ix.Accounts[1].Pubkey)
}
