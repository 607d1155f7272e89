package orchestrator

import (
	"context"
	"errors"

	"github.com/LerianStudio/launchplan/internal/errs"
	"github.com/LerianStudio/launchplan/internal/steps"
)

// VerifyStepResult reports whether a step's on-chain precondition is
// observed to hold, without ever sending or simulating a transaction.
type VerifyStepResult struct {
	Step    string         `json:"step"`
	Exists  bool           `json:"exists"`
	Details map[string]any `json:"details,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// VerifyReport is the verify.json shape (SPEC_FULL §12).
type VerifyReport struct {
	PlanID string             `json:"plan_id"`
	Steps  []VerifyStepResult `json:"steps"`
}

// Verify re-runs only the precondition probes of spec.md §4.7 step 3 against
// every step, in order, and reports which on-chain effects already exist.
// funding and buys have no address-observable precondition (spec.md §4.8
// guards those with balance/buys_done checks instead), so they always
// report exists=false here; that isn't a verification failure, just an
// absence of a cheap probe for those two steps.
func (a *App) Verify(ctx context.Context) (*VerifyReport, error) {
	report := &VerifyReport{PlanID: a.Plan.PlanID}

	for _, step := range steps.Order {
		exists, outputs, err := steps.Precondition(ctx, a.stepCtx, step)
		if err != nil {
			report.Steps = append(report.Steps, VerifyStepResult{Step: step, Error: err.Error()})
			continue
		}
		report.Steps = append(report.Steps, VerifyStepResult{Step: step, Exists: exists, Details: outputs})
	}

	return report, nil
}

// asSimulationFailed reports whether err is (or wraps) an
// errs.SimulationFailed, returning its message for a PreflightStepResult.
func asSimulationFailed(err error) (string, bool) {
	var sf errs.SimulationFailed
	if errors.As(err, &sf) {
		return sf.Error(), true
	}
	return "", false
}
