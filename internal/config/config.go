// Package config loads the orchestrator's closed, typed configuration
// (spec.md §6) from a YAML-subset document via gopkg.in/yaml.v3 — the same
// decoder the teacher stack carries for its own settings. Unknown keys are
// ignored but logged (spec.md §9, "Dynamic configuration objects"), which is
// why this is a typed struct rather than a generic map walked by reflection.
package config

import (
	"os"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/mlog"
	"gopkg.in/yaml.v3"
)

// EnvWalletPass is the environment variable carrying the wallet vault
// passphrase (spec.md §6).
const EnvWalletPass = "LAUNCHER_WALLET_PASS"

// Defaults per spec.md §6 / §4.5, applied when a key is absent from the
// config file.
const (
	DefaultComputeUnitLimit          = 1_000_000
	DefaultComputeUnitPriceMicroLamp = 0
)

// programIDs is the nested program_ids.* section.
type programIDs struct {
	MetaplexTokenMetadata string `yaml:"metaplex_token_metadata"`
	RaydiumV4Amm          string `yaml:"raydium_v4_amm"`
}

// mints is the nested mints.* section.
type mints struct {
	WrappedSol string `yaml:"wrapped_sol"`
}

// fees is the nested fees.* section.
type fees struct {
	ComputeUnitLimit              int64 `yaml:"compute_unit_limit"`
	ComputeUnitPriceMicroLamports int64 `yaml:"compute_unit_price_micro_lamports"`
}

// raw mirrors the YAML document shape before defaults are applied and
// unknown-key logging happens.
type raw struct {
	ProgramIDs programIDs     `yaml:"program_ids"`
	Mints      mints          `yaml:"mints"`
	Fees       fees           `yaml:"fees"`
	Extra      map[string]any `yaml:",inline"`
}

// Config is the closed set of keys spec.md §6 recognizes.
type Config struct {
	MetaplexTokenMetadataProgram string
	RaydiumV4AmmProgram          string
	WrappedSolMint               string
	ComputeUnitLimit             int64
	ComputeUnitPriceMicroLamp    int64
}

// Load reads and decodes the YAML-subset config file at path. A missing
// path yields an all-defaults Config, matching a CLI invocation with no
// --config flag. log receives one warning per key the decoder collected
// under Extra (spec.md §9: "unknown keys are ignored but logged"); empty
// program ids are not reported here.
func Load(path string, log mlog.Logger) (*Config, error) {
	cfg := &Config{
		ComputeUnitLimit:          DefaultComputeUnitLimit,
		ComputeUnitPriceMicroLamp: DefaultComputeUnitPriceMicroLamp,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errs.ConfigError{Key: path, Err: err}
	}

	var r raw
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errs.ConfigError{Key: path, Err: err}
	}

	cfg.MetaplexTokenMetadataProgram = r.ProgramIDs.MetaplexTokenMetadata
	cfg.RaydiumV4AmmProgram = r.ProgramIDs.RaydiumV4Amm
	cfg.WrappedSolMint = r.Mints.WrappedSol

	if r.Fees.ComputeUnitLimit != 0 {
		cfg.ComputeUnitLimit = r.Fees.ComputeUnitLimit
	}
	if r.Fees.ComputeUnitPriceMicroLamports != 0 {
		cfg.ComputeUnitPriceMicroLamp = r.Fees.ComputeUnitPriceMicroLamports
	}

	if log != nil {
		for k := range r.Extra {
			log.Warnf("config: ignoring unrecognized key %q", k)
		}
	}

	return cfg, nil
}

// WalletPassphrase reads the passphrase from the environment (spec.md §6).
// A missing value is a ConfigError, since every vault operation needs it.
func WalletPassphrase() (string, error) {
	v := os.Getenv(EnvWalletPass)
	if v == "" {
		return "", errs.ConfigError{Key: EnvWalletPass, Err: errs.ErrMissingEnv}
	}
	return v, nil
}
