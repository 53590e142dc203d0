// Package keeper implements the DEX (Decentralized Exchange) module keeper.
//
// The DEX module is a pool factory plus the constant-product market maker
// behind every pool it creates. Each pool trades one unordered pair of ledger
// denoms and settles through its own derived ledger account.
//
// # Core Functionality
//
// Pair Factory: CreatePair registers at most one pool per unordered pair and
// charges a flat creation fee into the module account. The factory owner
// withdraws the accumulated fees with WithdrawFees.
//
// Liquidity: AddLiquidity mints proportional shares. The first deposit
// bootstraps the pool; later deposits must match the reserve ratio within the
// configured tolerance or fail with ErrPriceManipulation. RemoveLiquidity
// burns shares and pays out reserves rounded down.
//
// Token Swaps: Swap prices trades with the constant-product formula
// (x * y = k). The swap fee stays in the pool, so k grows on every swap.
//
// # Usage Patterns
//
// Creating a pool:
//
//	pool, err := keeper.CreatePair(ctx, creator, "tokena", "tokenb", creationFee)
//
// Providing liquidity (after approving the pool account on the ledger):
//
//	shares, err := keeper.AddLiquidity(ctx, provider, pool.Id, amountA, amountB)
//
// Executing a swap:
//
//	amountOut, err := keeper.Swap(ctx, trader, pool.Id, "tokena", amountIn, minAmountOut)
//
// Every mutating call runs inside a cache context and is committed only when
// it succeeds.
//
// # Metrics
//
// The keeper exposes Prometheus metrics for swaps, pools, liquidity changes
// and creation fees via DEXMetrics.
package keeper
