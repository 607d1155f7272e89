// Package orchestrator implements the step gating and execution loop of
// spec.md §4.7–§4.8: selection, resume, and precondition gates around each
// step executor in internal/steps, with receipts, merged artifacts, and
// telemetry events as the durable trail of a run.
package orchestrator

import (
	"github.com/LerianStudio/launchplan/internal/config"
	"github.com/LerianStudio/launchplan/internal/mlog"
	"github.com/LerianStudio/launchplan/internal/plan"
	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/steps"
	"github.com/LerianStudio/launchplan/internal/store"
	"github.com/LerianStudio/launchplan/internal/telemetry"
	"github.com/LerianStudio/launchplan/internal/vault"
)

// App owns every shared resource a run touches — the RPC facade, the
// durable store, the wallet keypairs, config, logger, and telemetry writer
// — constructed once and threaded explicitly through the step executors
// (Design Note: no module-level globals).
type App struct {
	Store     *store.Store
	RPC       rpcfacade.Client
	Telemetry *telemetry.Writer
	Log       mlog.Logger
	Plan      *plan.Plan
	Cfg       *config.Config

	stepCtx *steps.Ctx
}

// New builds an App and the steps.Ctx every executor shares.
func New(st *store.Store, rpc rpcfacade.Client, tel *telemetry.Writer, log mlog.Logger, p *plan.Plan, cfg *config.Config, wallets map[string]vault.Keypair, passphrase string) *App {
	a := &App{Store: st, RPC: rpc, Telemetry: tel, Log: log, Plan: p, Cfg: cfg}
	a.stepCtx = &steps.Ctx{
		RPC:        rpc,
		Store:      st,
		Plan:       p,
		Wallets:    wallets,
		Cfg:        cfg,
		Log:        log,
		Passphrase: passphrase,
	}
	return a
}
