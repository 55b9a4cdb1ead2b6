// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package bridge

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Guid is the unique identifier the transport assigns to every outbound
// message or read request. It is never reused and keys the request ledger.
type Guid [32]byte

func (g Guid) String() string {
	return hexutil.Encode(g[:])
}

func GuidFromHex(s string) (Guid, error) {
	var g Guid
	b, err := hexutil.Decode(s)
	if err != nil {
		return g, err
	}
	copy(g[:], b)
	return g, nil
}

// Destination identifies a remote chain endpoint and the receiving
// contract on it. Eid is the transport's logical endpoint id, not the
// chain's native chain id.
type Destination struct {
	Eid      uint32         `json:"eid"`
	Receiver common.Address `json:"receiver"`
}

// TransportOptions is the opaque options blob forwarded to the transport
// with every send or read.
type TransportOptions struct {
	GasLimit uint64 `json:"gasLimit"`
	Extra    []byte `json:"extra,omitempty"`
}

// BridgeAdapter is the boundary to the underlying cross-chain transport.
// Implementations must guarantee that a Guid is never reused and that a
// delivered reply triggers the ledger's accounting-update call before its
// execute call. The ledger re-validates this ordering regardless.
type BridgeAdapter interface {
	// QuoteFee returns the native fee required to relay payload to the
	// provided destinations.
	QuoteFee(ctx context.Context, dests []Destination, payload []byte, opts TransportOptions) (*big.Int, error)
	// Send relays payload to a single destination, paying value as the
	// transport fee. Leftover value is returned by the transport to
	// refundAddress.
	Send(ctx context.Context, dest Destination, payload []byte, opts TransportOptions, refundAddress common.Address, value *big.Int) (Guid, error)
	// InitiateRead triggers a remote read of aggregated spoke values
	// across the provided destinations.
	InitiateRead(ctx context.Context, dests []Destination, payload []byte, opts TransportOptions, refundAddress common.Address, value *big.Int) (Guid, error)
}
