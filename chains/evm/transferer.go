// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const nativeTransferGasLimit = 50000

// NativeTransferer releases escrowed native currency through plain value
// transfers from the relayer's account.
type NativeTransferer struct {
	client *EVMClient
}

func NewNativeTransferer(client *EVMClient) *NativeTransferer {
	return &NativeTransferer{client: client}
}

func (t *NativeTransferer) TransferNative(ctx context.Context, to common.Address, amount *big.Int) error {
	_, err := t.client.Transact(ctx, to, nil, amount, nativeTransferGasLimit)
	return err
}
