package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LerianStudio/launchplan/internal/mlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("", mlog.Noop{})
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultComputeUnitLimit), cfg.ComputeUnitLimit)
	assert.Equal(t, int64(DefaultComputeUnitPriceMicroLamp), cfg.ComputeUnitPriceMicroLamp)
	assert.Empty(t, cfg.RaydiumV4AmmProgram)
}

func TestLoad_NonexistentFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), mlog.Noop{})
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultComputeUnitLimit), cfg.ComputeUnitLimit)
}

func TestLoad_ParsesRecognizedKeys(t *testing.T) {
	path := writeConfig(t, `
program_ids:
  metaplex_token_metadata: "Meta1111111111111111111111111111111111111"
  raydium_v4_amm: "Amm11111111111111111111111111111111111111"
mints:
  wrapped_sol: "So11111111111111111111111111111111111111112"
fees:
  compute_unit_limit: 500000
  compute_unit_price_micro_lamports: 10000
`)

	cfg, err := Load(path, mlog.Noop{})
	require.NoError(t, err)
	assert.Equal(t, "Meta1111111111111111111111111111111111111", cfg.MetaplexTokenMetadataProgram)
	assert.Equal(t, "Amm11111111111111111111111111111111111111", cfg.RaydiumV4AmmProgram)
	assert.Equal(t, "So11111111111111111111111111111111111111112", cfg.WrappedSolMint)
	assert.Equal(t, int64(500000), cfg.ComputeUnitLimit)
	assert.Equal(t, int64(10000), cfg.ComputeUnitPriceMicroLamp)
}

func TestLoad_UnrecognizedKeysIgnored(t *testing.T) {
	path := writeConfig(t, "some_future_key: 1\nanother: true\n")
	cfg, err := Load(path, mlog.Noop{})
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultComputeUnitLimit), cfg.ComputeUnitLimit)
}

func TestLoad_MalformedYAMLIsConfigError(t *testing.T) {
	path := writeConfig(t, "fees: [unterminated, flow, sequence\n")
	_, err := Load(path, mlog.Noop{})
	require.Error(t, err)
}

func TestWalletPassphrase_MissingIsConfigError(t *testing.T) {
	t.Setenv(EnvWalletPass, "")
	_, err := WalletPassphrase()
	require.Error(t, err)
}

func TestWalletPassphrase_Present(t *testing.T) {
	t.Setenv(EnvWalletPass, "hunter2")
	pass, err := WalletPassphrase()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", pass)
}
