// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package oracle

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var ErrStalePrice = errors.New("oracle price is stale")

// PriceOracle converts USD-denominated values into underlying-asset units
// of a hub vault. Implementations are expected to enforce their own
// staleness bounds and surface ErrStalePrice when exceeded. Conversions
// must floor, never rounding in the protocol's favor.
type PriceOracle interface {
	UnderlyingFromUSD(ctx context.Context, hub common.Address, usdValue *big.Int) (*big.Int, error)
}

// SpokeValueSource reports the USD value of a single spoke vault. Sources
// are configured per (hub, endpoint id) pair.
type SpokeValueSource interface {
	SpokeValueUSD(ctx context.Context, hub common.Address, eid uint32) (*big.Int, error)
}
