package orchestrator

import (
	"context"
	"time"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/steps"
	"github.com/LerianStudio/launchplan/internal/store"
)

// Options are the run-shaping CLI flags spec.md §6 names.
type Options struct {
	Only     string // raw --only value, alias-resolved internally
	Resume   bool
	Simulate bool
}

// artifactKey is the top-level artifacts.json key each step writes under.
// "funding" and "buys" match their step names; the others do too — kept as
// an explicit map rather than identity so a future step/artifact-name split
// doesn't require touching every call site.
var artifactKey = map[string]string{
	"funding":  "funding",
	"mint":     "mint",
	"metadata": "metadata",
	"lp_init":  "lp_init",
	"buys":     "buys",
}

// Run executes every step in fixed order, applying the selection, resume,
// and precondition gates of spec.md §4.7 around each one.
func (a *App) Run(ctx context.Context, opts Options) error {
	only := steps.ResolveOnlyAlias(opts.Only)
	if only == "" {
		only = "all"
	}
	a.stepCtx.Simulate = opts.Simulate

	if only == "buys" {
		if err := a.checkPrerequisiteArtifact("mint"); err != nil {
			return err
		}
	}

	for _, step := range steps.Order {
		if only != "all" && only != step {
			continue
		}

		if opts.Resume {
			skipped, err := a.tryResume(step)
			if err != nil {
				return err
			}
			if skipped {
				continue
			}
		}

		if err := a.runStep(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) checkPrerequisiteArtifact(key string) error {
	var art map[string]any
	ok, err := a.Store.GetArtifact(key, &art)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ConfigError{Key: "missing_prerequisite_artifact", Err: errs.ErrMissingPrerequisiteArtifact}
	}
	return nil
}

// tryResume implements the resume gate: if the step already reached done
// and its artifact is present, reuse it and report skipped=true.
func (a *App) tryResume(step string) (bool, error) {
	done, err := a.Store.Done(step)
	if err != nil {
		return false, err
	}
	if !done {
		return false, nil
	}

	var art map[string]any
	ok, err := a.Store.GetArtifact(artifactKey[step], &art)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	a.Log.Infof("step %s already done, resuming (skip)", step)
	return true, nil
}

// runStep applies the precondition gate, then executes the step if it
// didn't fire, writing the receipt, merging artifacts, and emitting
// telemetry exactly as spec.md §4.7 step 4 and §4.8 describe.
func (a *App) runStep(ctx context.Context, step string) error {
	skip, outputs, err := steps.Precondition(ctx, a.stepCtx, step)
	if err != nil {
		return err
	}

	if skip {
		return a.complete(step, outputs, true)
	}

	outputs, err = steps.Execute(ctx, a.stepCtx, step)
	if err != nil {
		a.emitTelemetry(step+"_error", map[string]any{"step": step, "err": err.Error()})
		return err
	}

	return a.complete(step, outputs, false)
}

func (a *App) complete(step string, outputs map[string]any, skippedByPrecondition bool) error {
	r := store.Receipt{
		OK:        true,
		Outputs:   outputs,
		PlanHash:  a.Plan.Hash,
		CreatedMs: time.Now().UnixMilli(),
	}
	if err := a.Store.Mark(step, r); err != nil {
		return err
	}
	if err := a.Store.MergeArtifacts(map[string]any{artifactKey[step]: outputs}); err != nil {
		return err
	}

	fields := map[string]any{"step": step}
	if skippedByPrecondition {
		fields["skipped"] = true
	}
	a.emitTelemetry(step+"_complete", fields)
	return nil
}

func (a *App) emitTelemetry(event string, fields map[string]any) {
	if a.Telemetry == nil {
		return
	}
	if err := a.Telemetry.Emit(event, time.Now().UnixMilli(), fields); err != nil {
		a.Log.Warnf("telemetry emit failed: %s", err)
	}
}
