// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package bridge

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

var ErrInsufficientFeeBudget = errors.New("fee budget does not cover transport fees")

// FanOut relays payload to every destination from a single logical
// operation. The caller supplies one native budget covering all sends;
// the budget is drawn down per destination by the quoted fee and the last
// send flushes whatever remains so the transport refunds leftover value
// to refundAddress. This avoids requiring callers to pre-compute exact
// per-destination fees.
func FanOut(
	ctx context.Context,
	adapter BridgeAdapter,
	dests []Destination,
	payload []byte,
	opts TransportOptions,
	refundAddress common.Address,
	budget *big.Int,
) ([]Guid, error) {
	guids := make([]Guid, 0, len(dests))
	remaining := new(big.Int).Set(budget)
	for i, dest := range dests {
		fee, err := adapter.QuoteFee(ctx, []Destination{dest}, payload, opts)
		if err != nil {
			return nil, err
		}
		if remaining.Cmp(fee) < 0 {
			return nil, ErrInsufficientFeeBudget
		}

		value := fee
		if i == len(dests)-1 {
			value = remaining
		}
		guid, err := adapter.Send(ctx, dest, payload, opts, refundAddress, new(big.Int).Set(value))
		if err != nil {
			return nil, err
		}
		log.Debug().Str("guid", guid.String()).Uint32("eid", dest.Eid).Msgf("Relayed message with fee %s", value.String())

		guids = append(guids, guid)
		remaining.Sub(remaining, value)
	}
	return guids, nil
}
