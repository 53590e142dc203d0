// Package keeper implements the bonding curve module keeper.
//
// A curve issues a single token priced on a linear curve: one whole token
// costs Slope * TotalSupply native base units. Buy pays native value into the
// curve's reserve account and mints the tokens that value covers; Sell burns
// tokens and pays back the area under the curve, never more than the reserve
// holds.
package keeper
