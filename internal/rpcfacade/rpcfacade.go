// Package rpcfacade is the narrow set of RPC operations the core consumes
// (spec.md §4.4): recent_blockhash, account_exists, get_balance, simulate,
// send_and_confirm, close. Per Design Note ("Try/except import fallbacks" →
// a trait/interface with one production implementation and one in-memory
// test double), the core depends only on the Client interface; tests inject
// the Fake.
package rpcfacade

import (
	"context"

	"github.com/LerianStudio/launchplan/internal/solana"
)

// SimResult is the outcome of simulate().
type SimResult struct {
	Err  string // non-empty means the simulated transaction would fail
	Logs []string
}

// Transaction is an opaque, already-built transaction: a list of
// instructions plus the fee payer, ready to be signed and sent. The core
// never inspects its bytes; it's an internal/ixbuild product.
type Transaction struct {
	Instructions []Instruction
	FeePayer     solana.Pubkey
}

// Instruction is one on-chain instruction: a program id, an ordered account
// list, and an opaque data payload (internal/ixbuild is responsible for its
// exact byte layout).
type Instruction struct {
	ProgramID solana.Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// AccountMeta names one account reference in an instruction's account list,
// with its signer/writable flags (spec.md §4.5 account lists).
type AccountMeta struct {
	Pubkey     solana.Pubkey
	IsSigner   bool
	IsWritable bool
}

// Signer can sign a transaction; vault.Keypair satisfies this.
type Signer interface {
	Sign(message []byte) []byte
	PublicKey() solana.Pubkey
}

// Client is the RPC facade the orchestrator and step executors depend on.
// spec.md §1 scopes the transport implementation itself out of the core;
// only this interface is core.
type Client interface {
	RecentBlockhash(ctx context.Context) (string, error)
	AccountExists(ctx context.Context, pubkey solana.Pubkey) (bool, error)
	GetBalance(ctx context.Context, pubkey solana.Pubkey) (int64, error)
	Simulate(ctx context.Context, tx Transaction, signers []Signer) (SimResult, error)
	SendAndConfirm(ctx context.Context, tx Transaction, signers []Signer) (string, error)
	Close() error
}
