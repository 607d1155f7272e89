// Package plan holds the immutable launch-plan data model and its invariant
// validator (spec.md §3, §4.1). A Plan is parsed once from the external,
// read-only plan file and never mutated afterward.
package plan

import "time"

// Role is a wallet's part in the launch.
type Role string

const (
	RoleSeed      Role = "SEED"
	RoleLPCreator Role = "LP_CREATOR"
	RoleBuyer     Role = "BUYER"
	RoleOther     Role = "OTHER"
)

// ActionType is the kind of on-chain action a wallet's schedule entry
// performs.
type ActionType string

const (
	ActionCreateLP      ActionType = "CREATE_LP"
	ActionSwapBuy       ActionType = "SWAP_BUY"
	ActionSwapBuySol    ActionType = "SWAP_BUY_SOL"
)

// Token describes the asset being launched.
type Token struct {
	Name          string            `json:"name"`
	Symbol        string            `json:"symbol"`
	Decimals      int               `json:"decimals"`
	TotalMint     int64             `json:"total_mint"`
	LPTokens      int64             `json:"lp_tokens"`
	URI           string            `json:"uri"`
	AuthorityMap  map[string]string `json:"authority_map,omitempty"`
}

// Inputs are the economic parameters driving the schedule.
type Inputs struct {
	T0           int64   `json:"T0"`
	BTotal       float64 `json:"B_total"`
	NBuys        int     `json:"n_buys"`
	Fee          float64 `json:"fee"`
	MMPct        float64 `json:"mm_pct"`
	BufferPct    float64 `json:"buffer_pct"`
	SnapLamports bool    `json:"snap_lamports"`
}

// Dex describes the AMM the pool is initialized on.
type Dex struct {
	Variant      string `json:"variant"`
	ProgramID    string `json:"program_id"`
	PoolType     string `json:"pool_type"`
	QuoteMint    string `json:"quote_mint"`
	QuoteDecimals int   `json:"quote_decimals"`
}

// Funding describes how much a wallet should hold. Each *_lamports field
// has a *_sol alias (total_sol, base_sol, buffer_sol): an author may supply
// either form, converted via round(x × 10^9) (spec.md §4.1); the lamport
// field always wins when both are present.
type Funding struct {
	TotalLamports  int64 `json:"total_lamports"`
	BaseLamports   int64 `json:"base_lamports"`
	BufferLamports int64 `json:"buffer_lamports"`

	TotalSol  *float64 `json:"total_sol,omitempty"`
	BaseSol   *float64 `json:"base_sol,omitempty"`
	BufferSol *float64 `json:"buffer_sol,omitempty"`
}

// Action is the on-chain operation, if any, a wallet carries.
type Action struct {
	Type              ActionType `json:"type"`
	EffectiveBaseSol  float64    `json:"effective_base_sol"`
	MinOutTokens      int64      `json:"min_out_tokens"`
	SlippageBps       int        `json:"slippage_bps"`
	Atomic            bool       `json:"atomic"`
}

// Wallet is one entry in the plan's wallet set.
type Wallet struct {
	WalletID string   `json:"wallet_id"`
	Role     Role     `json:"role"`
	Funding  Funding  `json:"funding"`
	Action   *Action  `json:"action,omitempty"`
	Pubkey   string   `json:"pubkey,omitempty"`
}

// Invariants carries the plan author's declared totals, checked against the
// wallet set at load time.
type Invariants struct {
	SumNonSeedLamports  int64             `json:"sum_non_seed_lamports"`
	SeedLamports        int64             `json:"seed_lamports"`
	ExpectedEqualities  map[string]string `json:"expected_equalities,omitempty"`
}

// TxDefaults are the default compute-budget and tip parameters applied to
// built transactions.
type TxDefaults struct {
	ComputeUnitLimit                int64 `json:"compute_unit_limit"`
	ComputeUnitPriceMicroLamports   int64 `json:"compute_unit_price_micro_lamports"`
	JitoTipLamports                 int64 `json:"jito_tip_lamports"`
}

// Plan is the fully typed, validated launch plan (spec.md §3).
type Plan struct {
	Version     string     `json:"version"`
	Model       string     `json:"model"`
	Network     string     `json:"network"`
	PlanID      string     `json:"plan_id"`
	CreatedAt   time.Time  `json:"created_at"`
	Token       Token      `json:"token"`
	Inputs      Inputs     `json:"inputs"`
	Dex         Dex        `json:"dex"`
	Schedule    []string   `json:"schedule"`
	Wallets     []Wallet   `json:"wallets"`
	Invariants  Invariants `json:"invariants"`
	TxDefaults  TxDefaults `json:"tx_defaults"`

	// Hash is the SHA-256 of the raw plan bytes, stamped into every
	// receipt (spec.md §4.1). Populated by Load, not part of the JSON.
	Hash string `json:"-"`
}

// WalletByID returns the wallet with the given id, or false if absent.
func (p *Plan) WalletByID(id string) (Wallet, bool) {
	for _, w := range p.Wallets {
		if w.WalletID == id {
			return w, true
		}
	}
	return Wallet{}, false
}

// LPCreator returns the plan's single LP_CREATOR wallet.
func (p *Plan) LPCreator() (Wallet, bool) {
	for _, w := range p.Wallets {
		if w.Role == RoleLPCreator {
			return w, true
		}
	}
	return Wallet{}, false
}

// SeedWallet returns the plan's funding-source SEED wallet.
func (p *Plan) SeedWallet() (Wallet, bool) {
	for _, w := range p.Wallets {
		if w.Role == RoleSeed {
			return w, true
		}
	}
	return Wallet{}, false
}
