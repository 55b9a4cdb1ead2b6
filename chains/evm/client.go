// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package evm

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// EVMClient is the relayer's connection to one chain: read-only contract
// calls plus transactions signed with the relayer's key.
type EVMClient struct {
	client  *ethclient.Client
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	signer  types.Signer
}

func NewEVMClient(url string, keyHex string) (*EVMClient, error) {
	client, err := ethclient.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "unable to dial rpc url")
	}

	key, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid relayer key")
	}

	chainID, err := client.ChainID(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch chain id")
	}

	return &EVMClient{
		client:  client,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		signer:  types.LatestSignerForChainID(chainID),
	}, nil
}

// From is the relayer's transaction sender address.
func (c *EVMClient) From() common.Address {
	return c.from
}

// CallContract executes a read-only contract call.
func (c *EVMClient) CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	return c.client.CallContract(ctx, msg, nil)
}

// Transact signs and broadcasts a transaction carrying data and value to
// the given address. It returns the transaction hash without waiting for
// inclusion.
func (c *EVMClient) Transact(ctx context.Context, to common.Address, data []byte, value *big.Int, gasLimit uint64) (common.Hash, error) {
	nonce, err := c.client.PendingNonceAt(ctx, c.from)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "unable to fetch nonce")
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "unable to fetch gas price")
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, c.signer, c.key)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "unable to sign transaction")
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, errors.Wrap(err, "unable to send transaction")
	}
	log.Debug().
		Str("hash", signed.Hash().Hex()).
		Str("to", to.Hex()).
		Msg("Sent transaction")
	return signed.Hash(), nil
}
