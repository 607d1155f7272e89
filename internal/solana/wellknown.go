package solana

// Well-known native program addresses. Seeded from their canonical program
// names (FromASCIISeed) rather than a base58-decoded mainnet address, the
// same stand-in convention internal/ixbuild uses for the compute budget
// program: this orchestrator never talks to a live cluster, only to the
// rpcfacade.Client interface, so a stable placeholder address per program
// is sufficient.
var (
	SystemProgram          = FromASCIISeed("System1111111111111111111111111")
	TokenProgram           = FromASCIISeed("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf")
	AssociatedTokenProgram = FromASCIISeed("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25")
	RentSysvar             = FromASCIISeed("SysvarRent111111111111111111111")
	ComputeBudgetProgram   = FromASCIISeed("ComputeBudget111111111111111111")
)
