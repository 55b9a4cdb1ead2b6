// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Contract is the base for typed contract bindings. State-mutating
// methods are simulated first so callers get return values, then
// committed as a transaction.
type Contract struct {
	address common.Address
	abi     abi.ABI
	client  *EVMClient
}

func NewContract(client *EVMClient, address common.Address, abi abi.ABI) Contract {
	return Contract{
		address: address,
		abi:     abi,
		client:  client,
	}
}

func (c *Contract) Address() common.Address {
	return c.address
}

// CallMethod executes a read-only method and returns the unpacked
// results.
func (c *Contract) CallMethod(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to pack calldata for %s", method)
	}
	res, err := c.client.CallContract(ctx, ethereum.CallMsg{
		From: c.client.From(),
		To:   &c.address,
		Data: data,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "call to %s failed", method)
	}
	out, err := c.abi.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to unpack result of %s", method)
	}
	return out, nil
}

// SimulateMethod executes a state-mutating method as a read-only call
// and returns its unpacked results alongside the packed calldata, so
// the caller can inspect the outcome before committing it with
// TransactMethod.
func (c *Contract) SimulateMethod(ctx context.Context, method string, value *big.Int, args ...interface{}) ([]interface{}, []byte, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to pack calldata for %s", method)
	}
	res, err := c.client.CallContract(ctx, ethereum.CallMsg{
		From:  c.client.From(),
		To:    &c.address,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "simulation of %s failed", method)
	}
	out, err := c.abi.Unpack(method, res)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to unpack result of %s", method)
	}
	return out, data, nil
}

// TransactMethod commits previously simulated calldata as a transaction
// carrying value.
func (c *Contract) TransactMethod(ctx context.Context, data []byte, value *big.Int, gasLimit uint64) error {
	_, err := c.client.Transact(ctx, c.address, data, value, gasLimit)
	return err
}

// ExecuteMethod simulates a state-mutating method to obtain its return
// values and then commits it in one step.
func (c *Contract) ExecuteMethod(ctx context.Context, method string, value *big.Int, gasLimit uint64, args ...interface{}) ([]interface{}, error) {
	out, data, err := c.SimulateMethod(ctx, method, value, args...)
	if err != nil {
		return nil, err
	}
	if err := c.TransactMethod(ctx, data, value, gasLimit); err != nil {
		return nil, err
	}
	return out, nil
}
