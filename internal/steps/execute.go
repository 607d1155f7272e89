package steps

import (
	"context"
	"fmt"
)

// Order is the fixed step order spec.md §4.7 mandates.
var Order = []string{"funding", "mint", "metadata", "lp_init", "buys"}

// ResolveOnlyAlias maps a CLI --only value to its canonical step name
// (spec.md §6: --only ∈ {fund,mint,metadata,lp,lp_init,buys,all}).
func ResolveOnlyAlias(only string) string {
	switch only {
	case "fund":
		return "funding"
	case "lp":
		return "lp_init"
	default:
		return only
	}
}

// Execute dispatches to the named step's executor.
func Execute(ctx context.Context, c *Ctx, step string) (map[string]any, error) {
	switch step {
	case "funding":
		return Funding(ctx, c)
	case "mint":
		return Mint(ctx, c)
	case "metadata":
		return Metadata(ctx, c)
	case "lp_init":
		return LPInit(ctx, c)
	case "buys":
		return Swaps(ctx, c)
	default:
		return nil, fmt.Errorf("steps: unknown step %q", step)
	}
}
