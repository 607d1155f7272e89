package solana

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgramID(t *testing.T) Pubkey {
	t.Helper()
	var pk Pubkey
	sum := sha256.Sum256([]byte("test-program"))
	copy(pk[:], sum[:])
	return pk
}

// TestFindProgramAddress_RoundTrips is P7: the returned bump, reseeded,
// reproduces the same pubkey.
func TestFindProgramAddress_RoundTrips(t *testing.T) {
	programID := testProgramID(t)
	seeds := [][]byte{[]byte("metadata"), []byte("some-mint")}

	pk, bump, err := FindProgramAddress(seeds, programID)
	assert.NoError(t, err)

	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write([]byte("ProgramDerivedAddress"))
	want := h.Sum(nil)

	assert.Equal(t, want, pk.Bytes())
}

func TestFindProgramAddress_Deterministic(t *testing.T) {
	programID := testProgramID(t)
	seeds := [][]byte{[]byte("amm"), []byte("base"), []byte("quote")}

	pk1, bump1, err := FindProgramAddress(seeds, programID)
	assert.NoError(t, err)

	pk2, bump2, err := FindProgramAddress(seeds, programID)
	assert.NoError(t, err)

	assert.Equal(t, pk1, pk2)
	assert.Equal(t, bump1, bump2)
}

func TestPubkeyStringRoundTrip(t *testing.T) {
	programID := testProgramID(t)
	s := programID.String()

	pk2, err := PubkeyFromString(s)
	assert.NoError(t, err)
	assert.Equal(t, programID, pk2)
}

func TestPubkeyFromString_WrongLength(t *testing.T) {
	_, err := PubkeyFromString("1")
	assert.Error(t, err)
}

func TestDeriveAmmPoolPDAs_Distinct(t *testing.T) {
	ammProgram := testProgramID(t)
	var base, quote Pubkey
	copy(base[:], []byte("base-mint-000000000000000000000"))
	copy(quote[:], []byte("quote-mint-00000000000000000000"))

	pdas := DeriveAmmPoolPDAs(ammProgram, base, quote)

	seen := map[Pubkey]bool{}
	for _, pk := range []Pubkey{pdas.Pool, pdas.Authority, pdas.LpMint, pdas.VaultBase, pdas.VaultQuote, pdas.OpenOrders, pdas.TargetOrders, pdas.AmmConfig} {
		assert.False(t, seen[pk], "expected distinct PDAs per seed")
		seen[pk] = true
	}
}

func TestAssociatedTokenAddress(t *testing.T) {
	ataProgram := testProgramID(t)
	tokenProgram := testProgramID(t)
	var owner, mint Pubkey
	copy(owner[:], []byte("owner-00000000000000000000000000"))
	copy(mint[:], []byte("mint-000000000000000000000000000"))

	pk, _, err := AssociatedTokenAddress(ataProgram, tokenProgram, owner, mint)
	assert.NoError(t, err)
	assert.NotEqual(t, Pubkey{}, pk)
}
