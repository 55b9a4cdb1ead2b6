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

	"github.com/MORE-Vaults/vaults-relayer/chains/evm/consts"
)

// OracleContract binds the on-chain oracle adapter and serves both as
// price converter and per-spoke value source.
type OracleContract struct {
	Contract
}

func NewOracleContract(client *EVMClient, address common.Address) *OracleContract {
	a, _ := abi.JSON(strings.NewReader(consts.OracleABI))
	return &OracleContract{
		Contract: NewContract(client, address, a),
	}
}

func (o *OracleContract) UnderlyingFromUSD(ctx context.Context, hub common.Address, usdValue *big.Int) (*big.Int, error) {
	out, err := o.CallMethod(ctx, "underlyingFromUSD", hub, usdValue)
	if err != nil {
		return nil, err
	}
	underlying, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected underlying result type")
	}
	return underlying, nil
}

func (o *OracleContract) SpokeValueUSD(ctx context.Context, hub common.Address, eid uint32) (*big.Int, error) {
	out, err := o.CallMethod(ctx, "spokeValueUSD", hub, eid)
	if err != nil {
		return nil, err
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected spoke value result type")
	}
	return value, nil
}
