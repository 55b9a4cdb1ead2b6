// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package vaults

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ActionType is the closed set of cross-chain vault actions. The type
// determines how the opaque action payload is decoded and which vault
// operation is invoked at finalization.
type ActionType string

const (
	DepositAction            ActionType = "deposit"
	MintAction               ActionType = "mint"
	WithdrawAction           ActionType = "withdraw"
	RedeemAction             ActionType = "redeem"
	MultiAssetsDepositAction ActionType = "multiAssetsDeposit"
	SetFeeAction             ActionType = "setFee"
	AccrueFeesAction         ActionType = "accrueFees"
)

var ErrUnknownActionType = errors.New("unknown action type")

// IsDepositLike reports whether the action's slippage limit is a minimum
// acceptable output. Withdraw-like actions treat the limit as a maximum
// acceptable input instead.
func (a ActionType) IsDepositLike() bool {
	switch a {
	case DepositAction, MintAction, MultiAssetsDepositAction:
		return true
	}
	return false
}

func (a ActionType) Valid() bool {
	switch a {
	case DepositAction, MintAction, WithdrawAction, RedeemAction,
		MultiAssetsDepositAction, SetFeeAction, AccrueFeesAction:
		return true
	}
	return false
}

var (
	uint256Type, _      = abi.NewType("uint256", "", nil)
	addressType, _      = abi.NewType("address", "", nil)
	uint256ArrayType, _ = abi.NewType("uint256[]", "", nil)
	addressArrayType, _ = abi.NewType("address[]", "", nil)

	amountReceiverArgs = abi.Arguments{
		{Name: "amount", Type: uint256Type},
		{Name: "receiver", Type: addressType},
	}
	amountReceiverOwnerArgs = abi.Arguments{
		{Name: "amount", Type: uint256Type},
		{Name: "receiver", Type: addressType},
		{Name: "owner", Type: addressType},
	}
	multiAssetsArgs = abi.Arguments{
		{Name: "tokens", Type: addressArrayType},
		{Name: "amounts", Type: uint256ArrayType},
		{Name: "nativeAmount", Type: uint256Type},
		{Name: "receiver", Type: addressType},
	}
	setFeeArgs = abi.Arguments{
		{Name: "fee", Type: uint256Type},
	}
)

// DepositPayload covers deposit and mint actions. Amount is assets for a
// deposit and shares for a mint.
type DepositPayload struct {
	Amount   *big.Int
	Receiver common.Address
}

func (p *DepositPayload) Encode() ([]byte, error) {
	return amountReceiverArgs.Pack(p.Amount, p.Receiver)
}

func DecodeDepositPayload(data []byte) (*DepositPayload, error) {
	vals, err := amountReceiverArgs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("malformed deposit payload: %w", err)
	}
	return &DepositPayload{
		Amount:   vals[0].(*big.Int),
		Receiver: vals[1].(common.Address),
	}, nil
}

// WithdrawPayload covers withdraw and redeem actions. Amount is assets
// for a withdraw and shares for a redeem; Owner is whose shares are
// consumed.
type WithdrawPayload struct {
	Amount   *big.Int
	Receiver common.Address
	Owner    common.Address
}

func (p *WithdrawPayload) Encode() ([]byte, error) {
	return amountReceiverOwnerArgs.Pack(p.Amount, p.Receiver, p.Owner)
}

func DecodeWithdrawPayload(data []byte) (*WithdrawPayload, error) {
	vals, err := amountReceiverOwnerArgs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("malformed withdraw payload: %w", err)
	}
	return &WithdrawPayload{
		Amount:   vals[0].(*big.Int),
		Receiver: vals[1].(common.Address),
		Owner:    vals[2].(common.Address),
	}, nil
}

// MultiAssetsDepositPayload deposits a basket of tokens, optionally
// carrying native currency escrowed with the request until finalization.
type MultiAssetsDepositPayload struct {
	Tokens       []common.Address
	Amounts      []*big.Int
	NativeAmount *big.Int
	Receiver     common.Address
}

func (p *MultiAssetsDepositPayload) Encode() ([]byte, error) {
	return multiAssetsArgs.Pack(p.Tokens, p.Amounts, p.NativeAmount, p.Receiver)
}

func DecodeMultiAssetsDepositPayload(data []byte) (*MultiAssetsDepositPayload, error) {
	vals, err := multiAssetsArgs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("malformed multi-assets deposit payload: %w", err)
	}
	p := &MultiAssetsDepositPayload{
		Tokens:       vals[0].([]common.Address),
		Amounts:      vals[1].([]*big.Int),
		NativeAmount: vals[2].(*big.Int),
		Receiver:     vals[3].(common.Address),
	}
	if len(p.Tokens) != len(p.Amounts) {
		return nil, fmt.Errorf("malformed multi-assets deposit payload: %d tokens but %d amounts", len(p.Tokens), len(p.Amounts))
	}
	return p, nil
}

type SetFeePayload struct {
	Fee *big.Int
}

func (p *SetFeePayload) Encode() ([]byte, error) {
	return setFeeArgs.Pack(p.Fee)
}

func DecodeSetFeePayload(data []byte) (*SetFeePayload, error) {
	vals, err := setFeeArgs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("malformed set-fee payload: %w", err)
	}
	return &SetFeePayload{Fee: vals[0].(*big.Int)}, nil
}

// NativeAmount returns the native currency carried by the action payload.
// Only multi-assets deposits may carry native value.
func NativeAmount(action ActionType, payload []byte) (*big.Int, error) {
	if action == MultiAssetsDepositAction {
		p, err := DecodeMultiAssetsDepositPayload(payload)
		if err != nil {
			return nil, err
		}
		return p.NativeAmount, nil
	}
	return big.NewInt(0), nil
}

// PayloadOwner extracts the share owner for withdraw-like actions. Other
// actions have no owner.
func PayloadOwner(action ActionType, payload []byte) (common.Address, error) {
	switch action {
	case WithdrawAction, RedeemAction:
		p, err := DecodeWithdrawPayload(payload)
		if err != nil {
			return common.Address{}, err
		}
		return p.Owner, nil
	}
	return common.Address{}, nil
}

// ValidatePayload decodes the payload for its action type and discards
// the result, surfacing malformed payloads at request-open time instead
// of at finalization.
func ValidatePayload(action ActionType, payload []byte) error {
	var err error
	switch action {
	case DepositAction, MintAction:
		_, err = DecodeDepositPayload(payload)
	case WithdrawAction, RedeemAction:
		_, err = DecodeWithdrawPayload(payload)
	case MultiAssetsDepositAction:
		_, err = DecodeMultiAssetsDepositPayload(payload)
	case SetFeeAction:
		_, err = DecodeSetFeePayload(payload)
	case AccrueFeesAction:
		// accrue-fees carries no payload
		if len(payload) != 0 {
			err = errors.New("accrue-fees payload must be empty")
		}
	default:
		err = ErrUnknownActionType
	}
	return err
}
