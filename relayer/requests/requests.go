// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package requests

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MORE-Vaults/vaults-relayer/bridge"
	"github.com/MORE-Vaults/vaults-relayer/vaults"
)

var (
	ErrRestrictedInMulticall   = errors.New("restricted inside multicall")
	ErrOracleAccountingEnabled = errors.New("oracle accounting enabled, use passive accounting instead")
	ErrNotEnoughValueProvided  = errors.New("not enough value provided")
	ErrNoLinkedSpokes          = errors.New("hub has no linked spokes")
	ErrRequestNotFound         = errors.New("request not found")
	ErrUnauthorizedManager     = errors.New("caller is not the accounting manager")
	ErrAlreadyFulfilled        = errors.New("request already fulfilled")
	ErrNotFulfilled            = errors.New("request not fulfilled")
	ErrNotFinalized            = errors.New("request not finalized")
	ErrAlreadyFinalized        = errors.New("request already finalized")
	ErrRequestRefunded         = errors.New("request refunded")
	ErrRequestNotStuck         = errors.New("request not stuck")
)

// SlippageError reports a settlement outside the initiator's limit. For
// deposit-like actions Actual is the output that fell short of the
// minimum; for withdraw-like actions it is the input that exceeded the
// maximum.
type SlippageError struct {
	Actual *big.Int
	Limit  *big.Int
}

func (e *SlippageError) Error() string {
	return fmt.Sprintf("slippage exceeded: actual %s, limit %s", e.Actual, e.Limit)
}

// FinalizationError wraps a settlement sub-call failure that is not a
// slippage violation, so operators can tell a broken integration apart
// from a bad market price.
type FinalizationError struct {
	Err error
}

func (e *FinalizationError) Error() string {
	return fmt.Sprintf("finalization call failed: %s", e.Err)
}

func (e *FinalizationError) Unwrap() error {
	return e.Err
}

// CrossChainRequestInfo is the ledger entry for one in-flight cross-chain
// action, keyed by the transport-assigned guid. Fulfilled, Finalized and
// Refunded are one-way latches; Finalized and Refunded are mutually
// exclusive.
type CrossChainRequestInfo struct {
	Guid       bridge.Guid       `json:"guid"`
	Vault      common.Address    `json:"vault"`
	ActionType vaults.ActionType `json:"actionType"`
	Payload    []byte            `json:"payload"`
	// Initiator is the identity that opened the request. It may be a
	// composing relay contract acting for an end user and is not
	// required to drive finalization.
	Initiator common.Address `json:"initiator"`
	// Owner is whose shares are consumed for withdraw-like actions.
	Owner common.Address `json:"owner"`
	// AmountOfTokenToSendIn is the input quantity debited at
	// finalization, known only once accounting data arrived.
	AmountOfTokenToSendIn *big.Int `json:"amountOfTokenToSendIn"`
	// AmountLimit bounds acceptable settlement divergence: minimum
	// output for deposit-like actions, maximum input for withdraw-like
	// ones. Zero disables the check. Ignored for accrue-fees.
	AmountLimit *big.Int `json:"amountLimit"`
	// TotalAssets is the vault's locally-known total at creation,
	// adjusted by the aggregated spoke value once delivered.
	TotalAssets        *big.Int  `json:"totalAssets"`
	Fulfilled          bool      `json:"fulfilled"`
	Finalized          bool      `json:"finalized"`
	Refunded           bool      `json:"refunded"`
	Timestamp          time.Time `json:"timestamp"`
	FinalizationResult *big.Int  `json:"finalizationResult"`
	// PendingNative is the native currency escrowed with this request,
	// released exactly once on finalization or refund.
	PendingNative *big.Int `json:"pendingNative"`
}

// CallContext carries the originating call's identity, attached native
// value and execution context. The multicall flag is explicit so that
// operations depending on fresh external reads can refuse being composed
// with other state-mutating batched calls.
type CallContext struct {
	Caller      common.Address
	Value       *big.Int
	InMulticall bool
}

// RequestStorer is the persistence consumed by the ledger: the request
// table, the per-vault open-request index and the per-vault escrow total.
type RequestStorer interface {
	StoreRequest(info *CrossChainRequestInfo) error
	Request(vault common.Address, guid bridge.Guid) (*CrossChainRequestInfo, error)
	AddOpenRequest(vault common.Address, guid bridge.Guid) error
	RemoveOpenRequest(vault common.Address, guid bridge.Guid) error
	OpenRequests(vault common.Address) ([]bridge.Guid, error)
	PendingNative(vault common.Address) (*big.Int, error)
	SetPendingNative(vault common.Address, total *big.Int) error
}

// AccountingMode reports whether a vault runs on passive oracle-based
// accounting, which disallows opening on-demand read requests.
type AccountingMode interface {
	OracleAccountingEnabled(vault common.Address) (bool, error)
}
