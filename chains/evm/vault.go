// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package evm

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/MORE-Vaults/vaults-relayer/chains/evm/consts"
	"github.com/MORE-Vaults/vaults-relayer/vaults"
)

// VaultContract binds a deployed vault contract to the settlement
// interface the request ledger drives.
type VaultContract struct {
	Contract
	gasLimit uint64
}

func NewVaultContract(client *EVMClient, address common.Address, gasLimit uint64) *VaultContract {
	a, _ := abi.JSON(strings.NewReader(consts.VaultABI))
	return &VaultContract{
		Contract: NewContract(client, address, a),
		gasLimit: gasLimit,
	}
}

func (v *VaultContract) Owner(ctx context.Context) (common.Address, error) {
	out, err := v.CallMethod(ctx, "owner")
	if err != nil {
		return common.Address{}, err
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errors.New("unexpected owner result type")
	}
	return owner, nil
}

func (v *VaultContract) IsHub(ctx context.Context) (bool, error) {
	out, err := v.CallMethod(ctx, "isHub")
	if err != nil {
		return false, err
	}
	isHub, ok := out[0].(bool)
	if !ok {
		return false, errors.New("unexpected isHub result type")
	}
	return isHub, nil
}

func (v *VaultContract) DeployedAt(ctx context.Context) (time.Time, error) {
	out, err := v.CallMethod(ctx, "deployedAt")
	if err != nil {
		return time.Time{}, err
	}
	ts, ok := out[0].(*big.Int)
	if !ok {
		return time.Time{}, errors.New("unexpected deployedAt result type")
	}
	return time.Unix(ts.Int64(), 0), nil
}

func (v *VaultContract) TotalAssets(ctx context.Context) (*big.Int, error) {
	out, err := v.CallMethod(ctx, "totalAssets")
	if err != nil {
		return nil, err
	}
	total, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected totalAssets result type")
	}
	return total, nil
}

func (v *VaultContract) Deposit(ctx context.Context, assets *big.Int, receiver common.Address, totalAssets *big.Int) (*vaults.Settlement, error) {
	return v.simulateSettlement(ctx, "deposit", nil, assets, receiver, totalAssets)
}

func (v *VaultContract) Mint(ctx context.Context, shares *big.Int, receiver common.Address, totalAssets *big.Int) (*vaults.Settlement, error) {
	return v.simulateSettlement(ctx, "mint", nil, shares, receiver, totalAssets)
}

func (v *VaultContract) Withdraw(ctx context.Context, assets *big.Int, receiver, owner common.Address, totalAssets *big.Int) (*vaults.Settlement, error) {
	return v.simulateSettlement(ctx, "withdraw", nil, assets, receiver, owner, totalAssets)
}

func (v *VaultContract) Redeem(ctx context.Context, shares *big.Int, receiver, owner common.Address, totalAssets *big.Int) (*vaults.Settlement, error) {
	return v.simulateSettlement(ctx, "redeem", nil, shares, receiver, owner, totalAssets)
}

// DepositMultiAssets attaches nativeAmount as the transaction value so
// the committed settlement itself moves the escrowed native currency
// into the vault.
func (v *VaultContract) DepositMultiAssets(ctx context.Context, tokens []common.Address, amounts []*big.Int, nativeAmount *big.Int, receiver common.Address, totalAssets *big.Int) (*vaults.Settlement, error) {
	return v.simulateSettlement(ctx, "depositMultiAssets", nativeAmount, tokens, amounts, nativeAmount, receiver, totalAssets)
}

func (v *VaultContract) SetFee(ctx context.Context, fee *big.Int) (*vaults.Settlement, error) {
	_, data, err := v.SimulateMethod(ctx, "setFee", nil, fee)
	if err != nil {
		return nil, err
	}
	return vaults.NewSettlement(&vaults.SettlementResult{}, func(ctx context.Context) error {
		return v.TransactMethod(ctx, data, nil, v.gasLimit)
	}), nil
}

func (v *VaultContract) AccrueFees(ctx context.Context, totalAssets *big.Int) (*vaults.Settlement, error) {
	return v.simulateSettlement(ctx, "accrueFees", nil, totalAssets)
}

// simulateSettlement runs the settlement method as a read-only call and
// wraps its simulated outcome together with the deferred transaction.
func (v *VaultContract) simulateSettlement(ctx context.Context, method string, value *big.Int, args ...interface{}) (*vaults.Settlement, error) {
	out, data, err := v.SimulateMethod(ctx, method, value, args...)
	if err != nil {
		return nil, err
	}
	res, err := settlementResult(out)
	if err != nil {
		return nil, err
	}
	return vaults.NewSettlement(res, func(ctx context.Context) error {
		return v.TransactMethod(ctx, data, value, v.gasLimit)
	}), nil
}

func settlementResult(out []interface{}) (*vaults.SettlementResult, error) {
	if len(out) != 2 {
		return nil, errors.Errorf("expected 2 settlement results, got %d", len(out))
	}
	tokenIn, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected tokenIn result type")
	}
	output, ok := out[1].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected output result type")
	}
	return &vaults.SettlementResult{TokenIn: tokenIn, Output: output}, nil
}
