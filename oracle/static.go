// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package oracle

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// StaticOracle serves fixed prices and spoke values. Used for local
// development setups and tests.
type StaticOracle struct {
	// PriceUSD is the USD price of one whole underlying unit, scaled by
	// 1e18, keyed by hub vault.
	PriceUSD map[common.Address]*big.Int
	// SpokeValues holds USD values keyed by hub vault and endpoint id.
	SpokeValues map[common.Address]map[uint32]*big.Int
}

func (o *StaticOracle) UnderlyingFromUSD(_ context.Context, hub common.Address, usdValue *big.Int) (*big.Int, error) {
	price, ok := o.PriceUSD[hub]
	if !ok || price.Sign() == 0 {
		return nil, fmt.Errorf("no price configured for vault %s", hub)
	}

	scaled := new(big.Int).Mul(usdValue, big.NewInt(1e18))
	return scaled.Div(scaled, price), nil
}

func (o *StaticOracle) SpokeValueUSD(_ context.Context, hub common.Address, eid uint32) (*big.Int, error) {
	values, ok := o.SpokeValues[hub]
	if !ok {
		return nil, fmt.Errorf("no spoke values configured for vault %s", hub)
	}
	value, ok := values[eid]
	if !ok {
		return nil, fmt.Errorf("no value configured for spoke eid %d of vault %s", eid, hub)
	}
	return new(big.Int).Set(value), nil
}
