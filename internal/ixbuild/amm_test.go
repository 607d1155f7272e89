package ixbuild

import (
	"encoding/binary"
	"testing"

	"github.com/LerianStudio/launchplan/internal/solana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInitialize2_Layout(t *testing.T) {
	payload := BuildInitialize2(1_000_000)
	require.Len(t, payload, 9)
	assert.Equal(t, byte(ammInitialize2Discriminator), payload[0])
	assert.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(payload[1:]))
}

func TestInitialize2Accounts_Order(t *testing.T) {
	var pool, authority, lpMint, vb, vq, bm, qm, oo, to, cfg, creator solana.Pubkey
	pool[0] = 1
	creator[0] = 2

	accs := Initialize2Accounts(pool, authority, lpMint, vb, vq, bm, qm, oo, to, cfg, creator)
	require.Len(t, accs, 11)
	assert.Equal(t, pool, accs[0].Pubkey)
	assert.True(t, accs[0].IsWritable)
	assert.Equal(t, creator, accs[10].Pubkey)
	assert.True(t, accs[10].IsSigner)
	assert.True(t, accs[10].IsWritable)
}

func TestBuildSwap_Layout(t *testing.T) {
	payload := BuildSwap(5_000_000, 4_900_000, 250)
	require.Len(t, payload, 19)
	assert.Equal(t, byte(ammSwapDiscriminator), payload[0])
	assert.Equal(t, uint64(5_000_000), binary.LittleEndian.Uint64(payload[1:9]))
	assert.Equal(t, uint64(4_900_000), binary.LittleEndian.Uint64(payload[9:17]))
	assert.Equal(t, uint16(250), binary.LittleEndian.Uint16(payload[17:19]))
}

func TestSwapAccounts_Order(t *testing.T) {
	var pool, authority, oo, to, vb, vq, user solana.Pubkey
	user[0] = 9

	accs := SwapAccounts(pool, authority, oo, to, vb, vq, user)
	require.Len(t, accs, 7)
	assert.Equal(t, user, accs[6].Pubkey)
	assert.True(t, accs[6].IsSigner)
}
