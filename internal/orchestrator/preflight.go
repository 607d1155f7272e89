package orchestrator

import (
	"context"

	"github.com/LerianStudio/launchplan/internal/steps"
)

// PreflightStepResult is one step's outcome under --simulate: either the
// precondition gate fired (Skipped), the step's transaction(s) simulated
// cleanly (Outputs populated, Error empty), or simulation reported a
// failure (Error populated, per errs.SimulationFailed).
type PreflightStepResult struct {
	Step    string         `json:"step"`
	Skipped bool           `json:"skipped"`
	Reason  string         `json:"reason,omitempty"`
	Outputs map[string]any `json:"outputs,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// PreflightReport is the preflight.json shape (SPEC_FULL §12): every step in
// fixed order run through the same executors and gates as Run, but with
// every RPC call routed through Simulate instead of SendAndConfirm, and
// with no receipts, checkpoints, or artifacts.json ever written.
type PreflightReport struct {
	PlanID string                 `json:"plan_id"`
	Steps  []PreflightStepResult  `json:"steps"`
}

// Preflight runs every step in simulate mode and returns a report without
// touching the durable store's checkpoints, receipts, or artifacts. It
// reuses the same precondition gate Run does (spec.md §4.7 step 3), since a
// precondition hit means the real run would skip the step too. It stops at
// the first step whose simulation errors for a reason other than a reported
// SimulationFailed, matching Run's fail-stop semantics; a SimulationFailed
// result is recorded and preflight continues so the operator sees every
// step's outcome in one report.
func (a *App) Preflight(ctx context.Context) (*PreflightReport, error) {
	prevSimulate := a.stepCtx.Simulate
	a.stepCtx.Simulate = true
	defer func() { a.stepCtx.Simulate = prevSimulate }()

	report := &PreflightReport{PlanID: a.Plan.PlanID}

	for _, step := range steps.Order {
		skip, outputs, err := steps.Precondition(ctx, a.stepCtx, step)
		if err != nil {
			return report, err
		}
		if skip {
			report.Steps = append(report.Steps, PreflightStepResult{
				Step: step, Skipped: true, Reason: outputs["reason"].(string), Outputs: outputs,
			})
			continue
		}

		outputs, err = steps.Execute(ctx, a.stepCtx, step)
		if err != nil {
			if sf, ok := asSimulationFailed(err); ok {
				report.Steps = append(report.Steps, PreflightStepResult{Step: step, Error: sf})
				continue
			}
			return report, err
		}

		report.Steps = append(report.Steps, PreflightStepResult{Step: step, Outputs: outputs})
	}

	return report, nil
}
