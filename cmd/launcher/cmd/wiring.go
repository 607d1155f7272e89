package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/LerianStudio/launchplan/internal/config"
	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/mlog"
	"github.com/LerianStudio/launchplan/internal/orchestrator"
	"github.com/LerianStudio/launchplan/internal/plan"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/store"
	"github.com/LerianStudio/launchplan/internal/telemetry"
	"github.com/LerianStudio/launchplan/internal/vault"
)

// readPlanFile reads and validates the plan file at path (spec.md §4.1),
// returning the raw bytes too so the caller can stash an audit copy without
// re-reading the file.
func readPlanFile(path string) ([]byte, *plan.Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errs.ConfigError{Key: "plan", Err: err}
	}
	p, err := plan.Load(raw)
	if err != nil {
		return nil, nil, err
	}
	return raw, p, nil
}

// loadWallets builds the live keypair map an App needs: the SEED wallet
// from seedKeypairPath via vault.LoadSeed (spec.md §4.3), every other
// declared wallet rehydrated from its encrypted file under the state
// directory if present, or freshly generated and persisted otherwise
// (covers both a first run and spec.md §8 scenario 5's vault rehydrate).
//
// requireRealSeed is false for preflight, which has no --seed-keypair flag
// per spec.md §6: that entry point never actually moves funds, so an ephemeral, unpersisted SEED keypair is enough to
// exercise the same builders real runs use.
func loadWallets(p *plan.Plan, st *store.Store, seedKeypairPath, passphrase string, requireRealSeed bool) (map[string]vault.Keypair, error) {
	wallets := make(map[string]vault.Keypair, len(p.Wallets))

	for _, w := range p.Wallets {
		if w.Role == plan.RoleSeed {
			if seedKeypairPath != "" {
				kp, err := vault.LoadSeed(seedKeypairPath)
				if err != nil {
					return nil, err
				}
				wallets[w.WalletID] = kp
				continue
			}
			if requireRealSeed {
				return nil, errs.ConfigError{Key: "seed-keypair", Err: fmt.Errorf("required for SEED wallet %s", w.WalletID)}
			}
			kps, err := vault.Generate([]string{w.WalletID})
			if err != nil {
				return nil, err
			}
			wallets[w.WalletID] = kps[w.WalletID]
			continue
		}

		path := st.WalletPath(w.WalletID)
		if _, err := os.Stat(path); err == nil {
			kp, err := vault.Load(path, w.WalletID, passphrase)
			if err != nil {
				return nil, err
			}
			wallets[w.WalletID] = kp
			continue
		}

		kps, err := vault.Generate([]string{w.WalletID})
		if err != nil {
			return nil, err
		}
		kp := kps[w.WalletID]
		if _, err := vault.Save(path, w.WalletID, kp, passphrase); err != nil {
			return nil, err
		}
		wallets[w.WalletID] = kp
	}

	return wallets, nil
}

// buildApp wires a fully constructed orchestrator.App from the shared
// run/preflight flags.
func buildApp(pf *persistentFlags, planPath, rpcEndpoint, outDir, seedKeypairPath string, cuLimit, priorityFeeMicroLamports int64, requireRealSeed bool) (*orchestrator.App, error) {
	log := mlog.New(pf.debug)

	raw, p, err := readPlanFile(planPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(pf.configPath, log)
	if err != nil {
		return nil, err
	}
	if cuLimit > 0 {
		cfg.ComputeUnitLimit = cuLimit
	}
	if priorityFeeMicroLamports > 0 {
		cfg.ComputeUnitPriceMicroLamp = priorityFeeMicroLamports
	}

	passphrase, err := config.WalletPassphrase()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(outDir)
	if err != nil {
		return nil, errs.ConfigError{Key: "out", Err: err}
	}

	wallets, err := loadWallets(p, st, seedKeypairPath, passphrase, requireRealSeed)
	if err != nil {
		return nil, err
	}

	var rpc rpcfacade.Client = rpcfacade.NewHTTPClient(rpcEndpoint, log)

	tel, err := telemetry.Open(outDir)
	if err != nil {
		return nil, errs.ConfigError{Key: "out", Err: err}
	}

	if err := st.WriteRaw("plan.json", raw); err != nil {
		return nil, errs.ConfigError{Key: "out", Err: err}
	}

	return orchestrator.New(st, rpc, tel, log, p, cfg, wallets, passphrase), nil
}

// buildVerifyApp wires an App for the verify entry point (spec.md §6: no
// --plan flag). It reads the plan back from the audited plan.json copy
// run/preflight wrote into the state directory, and never loads or
// generates the full wallet set — verify only ever calls
// steps.Precondition, which needs nothing beyond the mint's own keypair
// (loaded lazily by EnsureMintKeypair, which generates and saves a new one
// when the state directory holds no mint wallet file yet).
func buildVerifyApp(pf *persistentFlags, rpcEndpoint, outDir string) (*orchestrator.App, error) {
	log := mlog.New(pf.debug)

	st, err := store.Open(outDir)
	if err != nil {
		return nil, errs.ConfigError{Key: "out", Err: err}
	}

	raw, err := os.ReadFile(filepath.Join(st.Dir(), "plan.json"))
	if err != nil {
		return nil, errs.ConfigError{Key: "plan.json", Err: fmt.Errorf("no plan.json in %s; run `launcher run` or `launcher preflight` at least once first: %w", outDir, err)}
	}
	p, err := plan.Load(raw)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(pf.configPath, log)
	if err != nil {
		return nil, err
	}

	passphrase, err := config.WalletPassphrase()
	if err != nil {
		return nil, err
	}

	var rpc rpcfacade.Client = rpcfacade.NewHTTPClient(rpcEndpoint, log)

	tel, err := telemetry.Open(outDir)
	if err != nil {
		return nil, errs.ConfigError{Key: "out", Err: err}
	}

	return orchestrator.New(st, rpc, tel, log, p, cfg, map[string]vault.Keypair{}, passphrase), nil
}
