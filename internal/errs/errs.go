// Package errs defines the launcher's error taxonomy. Each category maps to
// exactly one process exit code (spec.md §6/§7); callers should type-switch
// or errors.As against these rather than matching on message text.
package errs

import (
	"errors"
	"fmt"
)

// ErrMissingEnv is wrapped by a ConfigError when a required environment
// variable is unset.
var ErrMissingEnv = errors.New("required environment variable not set")

// ErrMissingPrerequisiteArtifact is wrapped by a ConfigError when --only
// selects a step whose prerequisite artifact (from an earlier step) is
// absent from artifacts.json (spec.md §9, Open Question 3).
var ErrMissingPrerequisiteArtifact = errors.New("missing_prerequisite_artifact")

// PlanInvalid means a plan file failed one of the loader's invariant checks.
// Fatal pre-execution; the state directory must not be touched.
type PlanInvalid struct {
	Rule string
	Err  error
}

func (e PlanInvalid) Error() string {
	if e.Rule == "" {
		return "plan invalid"
	}
	if e.Err != nil {
		return fmt.Sprintf("plan invalid: %s: %s", e.Rule, e.Err)
	}
	return fmt.Sprintf("plan invalid: %s", e.Rule)
}

func (e PlanInvalid) Unwrap() error { return e.Err }

// ConfigError means required configuration (a config key, an environment
// variable, or a prerequisite artifact) is missing or malformed.
type ConfigError struct {
	Key string
	Err error
}

func (e ConfigError) Error() string {
	if e.Key == "" {
		return "config error"
	}
	if e.Err != nil {
		return fmt.Sprintf("config error: %s: %s", e.Key, e.Err)
	}
	return fmt.Sprintf("config error: %s", e.Key)
}

func (e ConfigError) Unwrap() error { return e.Err }

// WalletVaultError means a wallet keypair failed to decrypt or a seed file
// was malformed.
type WalletVaultError struct {
	WalletID string
	Message  string
	Err      error
}

func (e WalletVaultError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil && e.WalletID != "":
		return fmt.Sprintf("wallet vault error for %s: %s", e.WalletID, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("wallet vault error: %s", e.Err)
	case e.WalletID != "":
		return fmt.Sprintf("wallet vault error for %s", e.WalletID)
	default:
		return "wallet vault error"
	}
}

func (e WalletVaultError) Unwrap() error { return e.Err }

// RpcFailed means send_and_confirm (or another RPC op) exhausted its retry
// budget for a given step. The step must not be marked done.
type RpcFailed struct {
	Op   string
	Step string
	Err  error
}

func (e RpcFailed) Error() string {
	return fmt.Sprintf("rpc failed: op=%s step=%s: %s", e.Op, e.Step, e.Err)
}

func (e RpcFailed) Unwrap() error { return e.Err }

// SimulationFailed means simulate() returned a non-null err. Step executors
// return it in every mode; the preflight entry point records it as that
// step's reported result and continues, while a run (with or without
// --simulate) stops on it.
type SimulationFailed struct {
	Step string
	Logs []string
}

func (e SimulationFailed) Error() string {
	return fmt.Sprintf("simulation failed for step %s (%d log lines)", e.Step, len(e.Logs))
}

// InstructionEncodeError means a field overflowed an on-chain program limit
// and no truncation policy was configured for it.
type InstructionEncodeError struct {
	Field string
	Err   error
}

func (e InstructionEncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("instruction encode error: %s: %s", e.Field, e.Err)
	}
	return fmt.Sprintf("instruction encode error: %s", e.Field)
}

func (e InstructionEncodeError) Unwrap() error { return e.Err }

// Exit codes per spec.md §6.
const (
	ExitOK          = 0
	ExitPlanInvalid = 2
	ExitRpcFailed   = 3
	ExitConfigError = 4
	ExitWalletVault = 5
)

// ExitCode maps a taxonomy error to the process exit code it mandates.
// Unrecognized errors exit 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch err.(type) {
	case PlanInvalid:
		return ExitPlanInvalid
	case RpcFailed:
		return ExitRpcFailed
	case ConfigError:
		return ExitConfigError
	case WalletVaultError:
		return ExitWalletVault
	default:
		return 1
	}
}
