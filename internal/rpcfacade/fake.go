package rpcfacade

import (
	"context"
	"sync"

	"github.com/LerianStudio/launchplan/internal/solana"
)

// Fake is the in-memory Client test double (Design Note: tests inject the
// double instead of a conditional import). Every returned value is driven
// by explicit configuration so tests can script exactly the scenarios in
// spec.md §8 (account_exists=false, send_and_confirm="SIG", etc.).
type Fake struct {
	mu sync.Mutex

	Blockhash string

	// ExistingAccounts marks which pubkeys AccountExists should report true
	// for.
	ExistingAccounts map[solana.Pubkey]bool

	// Balances holds lamport balances by pubkey; absent entries read as 0.
	Balances map[solana.Pubkey]int64

	// SendSignature is returned by every successful SendAndConfirm call.
	SendSignature string

	// SendErr, if set, is returned by every SendAndConfirm call. The fake
	// does no retrying of its own.
	SendErr error

	// SimResult is returned verbatim by Simulate.
	SimResult SimResult
	SimErr    error

	// Sent records every transaction actually sent, in order, for
	// assertions about how many / which transactions a step issued.
	Sent []Transaction

	CloseCalled bool
}

// NewFake builds a Fake with empty maps ready to use.
func NewFake() *Fake {
	return &Fake{
		Blockhash:        "11111111111111111111111111111111111111111",
		ExistingAccounts: map[solana.Pubkey]bool{},
		Balances:         map[solana.Pubkey]int64{},
		SendSignature:    "SIG",
	}
}

func (f *Fake) RecentBlockhash(ctx context.Context) (string, error) {
	return f.Blockhash, nil
}

func (f *Fake) AccountExists(ctx context.Context, pubkey solana.Pubkey) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ExistingAccounts[pubkey], nil
}

func (f *Fake) GetBalance(ctx context.Context, pubkey solana.Pubkey) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Balances[pubkey], nil
}

func (f *Fake) Simulate(ctx context.Context, tx Transaction, signers []Signer) (SimResult, error) {
	if f.SimErr != nil {
		return SimResult{}, f.SimErr
	}
	return f.SimResult, nil
}

func (f *Fake) SendAndConfirm(ctx context.Context, tx Transaction, signers []Signer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.SendErr != nil {
		return "", f.SendErr
	}

	f.Sent = append(f.Sent, tx)

	// Recorded balances are left unchanged by a send; tests that need a
	// transfer to show up call SetBalance or CreditBalance themselves.
	return f.SendSignature, nil
}

func (f *Fake) Close() error {
	f.CloseCalled = true
	return nil
}

// SetExists is a small builder helper for tests.
func (f *Fake) SetExists(pubkey solana.Pubkey, exists bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ExistingAccounts[pubkey] = exists
}

// SetBalance is a small builder helper for tests.
func (f *Fake) SetBalance(pubkey solana.Pubkey, lamports int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Balances[pubkey] = lamports
}

// CreditBalance adds lamports to pubkey's recorded balance, for tests that
// simulate a funding transfer landing.
func (f *Fake) CreditBalance(pubkey solana.Pubkey, lamports int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Balances[pubkey] += lamports
}
