package steps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunding_FundsShortfallAndSkipsAlreadyFunded(t *testing.T) {
	c, fake, _ := testCtx(t)

	w2Pub := c.Wallets["w2"].PublicKey()
	fake.SetBalance(w2Pub, 500_000) // w2 already fully funded

	out, err := Funding(context.Background(), c)
	require.NoError(t, err)

	funded := out["funded"].([]FundedEntry)
	require.Len(t, funded, 3) // lpc, w1, w2

	byID := map[string]FundedEntry{}
	for _, f := range funded {
		byID[f.WalletID] = f
	}

	assert.False(t, byID["w1"].Skipped)
	assert.Equal(t, int64(500_000), byID["w1"].Lamports)
	assert.NotEmpty(t, byID["w1"].Sig)

	assert.True(t, byID["w2"].Skipped)
	assert.Equal(t, "already_funded", byID["w2"].Reason)

	require.Len(t, fake.Sent, 2) // lpc + w1, not w2
}

func TestFunding_RpcErrorPropagates(t *testing.T) {
	c, fake, _ := testCtx(t)
	fake.SendErr = assertErr{}

	_, err := Funding(context.Background(), c)
	require.Error(t, err)
}

type assertErr struct{}

func (assertErr) Error() string { return "transport down" }
