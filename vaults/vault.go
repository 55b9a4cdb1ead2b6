// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package vaults

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// SettlementResult is the outcome of a vault-side settlement call.
type SettlementResult struct {
	// TokenIn is the amount of the input token (shares or assets)
	// debited by the settlement.
	TokenIn *big.Int
	// Output is the settlement output: shares minted, shares burned or
	// assets transferred, depending on the action.
	Output *big.Int
}

// Settlement is a simulated vault settlement that has not been
// committed yet. Result carries the simulated outcome so callers can
// enforce limits before anything reaches the chain.
type Settlement struct {
	Result *SettlementResult

	commit func(context.Context) error
}

func NewSettlement(result *SettlementResult, commit func(context.Context) error) *Settlement {
	return &Settlement{Result: result, commit: commit}
}

// Commit broadcasts the settlement transaction. Nothing before Commit
// mutates vault or token balances.
func (s *Settlement) Commit(ctx context.Context) error {
	return s.commit(ctx)
}

// Vault is the settlement side of a hub vault. Every pricing operation
// takes an explicit totalAssets basis because the vault's locally-known
// total is adjusted by cross-chain accounting data before settlement.
// Settlement methods simulate only and return an uncommitted Settlement.
type Vault interface {
	Address() common.Address
	Owner(ctx context.Context) (common.Address, error)
	// IsHub reports whether this vault aggregates spoke instances.
	IsHub(ctx context.Context) (bool, error)
	// DeployedAt is the vault's own deployment time, used to refuse
	// hub/spoke linkage before a minimum finalization delay has passed.
	DeployedAt(ctx context.Context) (time.Time, error)
	TotalAssets(ctx context.Context) (*big.Int, error)

	Deposit(ctx context.Context, assets *big.Int, receiver common.Address, totalAssets *big.Int) (*Settlement, error)
	Mint(ctx context.Context, shares *big.Int, receiver common.Address, totalAssets *big.Int) (*Settlement, error)
	Withdraw(ctx context.Context, assets *big.Int, receiver, owner common.Address, totalAssets *big.Int) (*Settlement, error)
	Redeem(ctx context.Context, shares *big.Int, receiver, owner common.Address, totalAssets *big.Int) (*Settlement, error)
	// DepositMultiAssets carries nativeAmount as the settlement
	// transaction's value; committing it is the single release path for
	// the escrowed native currency.
	DepositMultiAssets(ctx context.Context, tokens []common.Address, amounts []*big.Int, nativeAmount *big.Int, receiver common.Address, totalAssets *big.Int) (*Settlement, error)
	SetFee(ctx context.Context, fee *big.Int) (*Settlement, error)
	AccrueFees(ctx context.Context, totalAssets *big.Int) (*Settlement, error)
}

// NativeTransferer moves native currency out of the relayer's escrow.
// Implementations fail when the recipient cannot accept native currency.
type NativeTransferer interface {
	TransferNative(ctx context.Context, to common.Address, amount *big.Int) error
}
