// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package evm

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/MORE-Vaults/vaults-relayer/bridge"
	"github.com/MORE-Vaults/vaults-relayer/chains/evm/consts"
)

// TransportContract binds the on-chain cross-chain transport endpoint.
type TransportContract struct {
	Contract
}

func NewTransportContract(client *EVMClient, address common.Address) *TransportContract {
	a, _ := abi.JSON(strings.NewReader(consts.TransportABI))
	return &TransportContract{
		Contract: NewContract(client, address, a),
	}
}

func (t *TransportContract) QuoteFee(ctx context.Context, dests []bridge.Destination, payload []byte, opts bridge.TransportOptions) (*big.Int, error) {
	eids, receivers := splitDestinations(dests)
	out, err := t.CallMethod(ctx, "quoteFee", eids, receivers, payload, new(big.Int).SetUint64(opts.GasLimit))
	if err != nil {
		return nil, err
	}
	fee, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected fee result type")
	}
	return fee, nil
}

func (t *TransportContract) Send(ctx context.Context, dest bridge.Destination, payload []byte, opts bridge.TransportOptions, refundAddress common.Address, value *big.Int) (bridge.Guid, error) {
	out, err := t.ExecuteMethod(ctx, "send", value, opts.GasLimit, dest.Eid, dest.Receiver, payload, new(big.Int).SetUint64(opts.GasLimit), refundAddress)
	if err != nil {
		return bridge.Guid{}, err
	}
	return guidResult(out)
}

func (t *TransportContract) InitiateRead(ctx context.Context, dests []bridge.Destination, payload []byte, opts bridge.TransportOptions, refundAddress common.Address, value *big.Int) (bridge.Guid, error) {
	eids, receivers := splitDestinations(dests)
	out, err := t.ExecuteMethod(ctx, "initiateRead", value, opts.GasLimit, eids, receivers, payload, new(big.Int).SetUint64(opts.GasLimit), refundAddress)
	if err != nil {
		return bridge.Guid{}, err
	}
	return guidResult(out)
}

func splitDestinations(dests []bridge.Destination) ([]uint32, []common.Address) {
	eids := make([]uint32, len(dests))
	receivers := make([]common.Address, len(dests))
	for i, d := range dests {
		eids[i] = d.Eid
		receivers[i] = d.Receiver
	}
	return eids, receivers
}

func guidResult(out []interface{}) (bridge.Guid, error) {
	if len(out) != 1 {
		return bridge.Guid{}, errors.Errorf("expected 1 guid result, got %d", len(out))
	}
	guid, ok := out[0].([32]byte)
	if !ok {
		return bridge.Guid{}, errors.New("unexpected guid result type")
	}
	return bridge.Guid(guid), nil
}
