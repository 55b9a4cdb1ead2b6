// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package requests

import (
	"context"
	"math"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/MORE-Vaults/vaults-relayer/bridge"
	"github.com/MORE-Vaults/vaults-relayer/metrics"
	"github.com/MORE-Vaults/vaults-relayer/oracle"
	"github.com/MORE-Vaults/vaults-relayer/vaults"
)

// DestinationSource resolves the spoke destinations a hub vault's
// cross-chain reads and broadcasts target.
type DestinationSource interface {
	Destinations(hub common.Address) ([]bridge.Destination, error)
}

// Ledger drives the lifecycle of cross-chain action requests for a
// single vault: created -> accounting-updated -> finalized, with refund
// as the only escape hatch for stuck requests. All transitions are
// atomic units of work; nothing is logged-and-continued.
type Ledger struct {
	vault        vaults.Vault
	adapter      bridge.BridgeAdapter
	store        RequestStorer
	prices       oracle.PriceOracle
	native       vaults.NativeTransferer
	mode         AccountingMode
	destinations DestinationSource
	metrics      *metrics.RelayerMetrics

	// manager is the single trusted relayer identity permitted to
	// deliver accounting updates and trigger execution for this vault.
	manager   common.Address
	composers map[common.Address]struct{}

	maxRequestDelay time.Duration
}

func NewLedger(
	vault vaults.Vault,
	adapter bridge.BridgeAdapter,
	store RequestStorer,
	prices oracle.PriceOracle,
	native vaults.NativeTransferer,
	mode AccountingMode,
	destinations DestinationSource,
	manager common.Address,
	composers []common.Address,
	maxRequestDelay time.Duration,
	m *metrics.RelayerMetrics,
) *Ledger {
	composerSet := make(map[common.Address]struct{}, len(composers))
	for _, c := range composers {
		composerSet[c] = struct{}{}
	}
	return &Ledger{
		vault:           vault,
		adapter:         adapter,
		store:           store,
		prices:          prices,
		native:          native,
		mode:            mode,
		destinations:    destinations,
		manager:         manager,
		composers:       composerSet,
		maxRequestDelay: maxRequestDelay,
		metrics:         m,
	}
}

// OpenRequest opens a cross-chain action request and returns the guid
// assigned by the transport. The caller must attach exactly the quoted
// transport fee plus, for native-carrying deposits, the deposit amount
// itself. Native deposit value is escrowed until finalization or refund.
func (l *Ledger) OpenRequest(
	ctx context.Context,
	cc CallContext,
	actionType vaults.ActionType,
	payload []byte,
	amountLimit *big.Int,
	opts bridge.TransportOptions,
) (bridge.Guid, error) {
	if cc.InMulticall {
		return bridge.Guid{}, ErrRestrictedInMulticall
	}
	if err := vaults.ValidatePayload(actionType, payload); err != nil {
		return bridge.Guid{}, err
	}

	enabled, err := l.mode.OracleAccountingEnabled(l.vault.Address())
	if err != nil {
		return bridge.Guid{}, err
	}
	if enabled {
		return bridge.Guid{}, ErrOracleAccountingEnabled
	}

	dests, err := l.destinations.Destinations(l.vault.Address())
	if err != nil {
		return bridge.Guid{}, err
	}

	nativeAmount, err := vaults.NativeAmount(actionType, payload)
	if err != nil {
		return bridge.Guid{}, err
	}
	fee, err := l.adapter.QuoteFee(ctx, dests, payload, opts)
	if err != nil {
		return bridge.Guid{}, err
	}
	required := new(big.Int).Add(fee, nativeAmount)
	if cc.Value == nil || cc.Value.Cmp(required) != 0 {
		return bridge.Guid{}, ErrNotEnoughValueProvided
	}

	totalAssets, err := l.vault.TotalAssets(ctx)
	if err != nil {
		return bridge.Guid{}, err
	}

	guid, err := l.relay(ctx, cc, actionType, payload, opts, dests, fee)
	if err != nil {
		return bridge.Guid{}, err
	}

	owner, err := vaults.PayloadOwner(actionType, payload)
	if err != nil {
		return bridge.Guid{}, err
	}

	if nativeAmount.Sign() > 0 {
		if err := l.adjustPendingNative(nativeAmount); err != nil {
			return bridge.Guid{}, err
		}
	}

	info := &CrossChainRequestInfo{
		Guid:          guid,
		Vault:         l.vault.Address(),
		ActionType:    actionType,
		Payload:       payload,
		Initiator:     cc.Caller,
		Owner:         owner,
		AmountLimit:   amountLimit,
		TotalAssets:   totalAssets,
		Timestamp:     time.Now(),
		PendingNative: nativeAmount,
	}
	if err := l.store.StoreRequest(info); err != nil {
		return bridge.Guid{}, err
	}
	if err := l.store.AddOpenRequest(l.vault.Address(), guid); err != nil {
		return bridge.Guid{}, err
	}

	l.metrics.RequestsOpened.Add(ctx, 1, l.metrics.Opts)
	log.Info().
		Str("guid", guid.String()).
		Str("vault", l.vault.Address().Hex()).
		Str("action", string(actionType)).
		Msg("Opened cross-chain action request")
	return guid, nil
}

// relay issues the transport calls for the request. Value-settling
// actions trigger a single read of aggregated spoke values; fee
// configuration actions are broadcast to every spoke, drawing down the
// shared fee budget per destination.
func (l *Ledger) relay(
	ctx context.Context,
	cc CallContext,
	actionType vaults.ActionType,
	payload []byte,
	opts bridge.TransportOptions,
	dests []bridge.Destination,
	fee *big.Int,
) (bridge.Guid, error) {
	switch actionType {
	case vaults.SetFeeAction, vaults.AccrueFeesAction:
		if len(dests) == 0 {
			return bridge.Guid{}, ErrNoLinkedSpokes
		}
		guids, err := bridge.FanOut(ctx, l.adapter, dests, payload, opts, cc.Caller, fee)
		if err != nil {
			return bridge.Guid{}, err
		}
		return guids[0], nil
	default:
		return l.adapter.InitiateRead(ctx, dests, payload, opts, cc.Caller, fee)
	}
}

// UpdateAccountingInfoForRequest delivers the aggregated spoke value for
// a request. On success the converted value is applied to the request's
// totalAssets exactly once and the fulfilled latch is set. A failed read
// leaves the request untouched and retryable.
func (l *Ledger) UpdateAccountingInfoForRequest(
	ctx context.Context,
	caller common.Address,
	guid bridge.Guid,
	aggregatedUSD *big.Int,
	readSuccess bool,
) error {
	if caller != l.manager {
		return ErrUnauthorizedManager
	}
	info, err := l.store.Request(l.vault.Address(), guid)
	if err != nil {
		return err
	}
	if info.Finalized {
		return ErrAlreadyFinalized
	}
	if info.Refunded {
		return ErrRequestRefunded
	}
	if info.Fulfilled {
		return ErrAlreadyFulfilled
	}

	if !readSuccess {
		log.Warn().Str("guid", guid.String()).Msg("Accounting read failed, request stays retryable")
		return nil
	}

	underlying, err := l.prices.UnderlyingFromUSD(ctx, l.vault.Address(), aggregatedUSD)
	if err != nil {
		return err
	}
	info.TotalAssets = new(big.Int).Add(info.TotalAssets, underlying)
	info.Fulfilled = true
	if err := l.store.StoreRequest(info); err != nil {
		return err
	}

	l.metrics.RequestsFulfilled.Add(ctx, 1, l.metrics.Opts)
	log.Info().
		Str("guid", guid.String()).
		Str("totalAssets", info.TotalAssets.String()).
		Msg("Request accounting updated")
	return nil
}

// ExecuteRequest settles a fulfilled request against the vault and
// enforces the initiator's slippage limit in the same atomic step. The
// settlement is simulated first and committed only after the slippage
// check passes, so a violating settlement never reaches the chain. On
// success the finalized latch is set and the settlement outcome is
// recorded; escrowed native currency rides the committed settlement
// transaction as its value.
func (l *Ledger) ExecuteRequest(ctx context.Context, caller common.Address, guid bridge.Guid) (*vaults.SettlementResult, error) {
	if caller != l.manager {
		return nil, ErrUnauthorizedManager
	}
	info, err := l.store.Request(l.vault.Address(), guid)
	if err != nil {
		return nil, err
	}
	if info.Refunded {
		return nil, ErrRequestRefunded
	}
	if info.Finalized {
		return nil, ErrAlreadyFinalized
	}
	if !info.Fulfilled {
		return nil, ErrNotFulfilled
	}

	settlement, err := l.settle(ctx, info)
	if err != nil {
		return nil, err
	}
	res := settlement.Result
	if err := l.checkSlippage(ctx, info, res); err != nil {
		return nil, err
	}
	if err := settlement.Commit(ctx); err != nil {
		return nil, &FinalizationError{Err: err}
	}

	info.Finalized = true
	info.AmountOfTokenToSendIn = res.TokenIn
	info.FinalizationResult = res.Output
	if err := l.store.StoreRequest(info); err != nil {
		return nil, err
	}
	if err := l.store.RemoveOpenRequest(l.vault.Address(), guid); err != nil {
		return nil, err
	}
	if info.PendingNative != nil && info.PendingNative.Sign() > 0 {
		// the committed settlement carried the escrowed value
		if err := l.adjustPendingNative(new(big.Int).Neg(info.PendingNative)); err != nil {
			return nil, err
		}
	}

	l.metrics.RequestsFinalized.Add(ctx, 1, l.metrics.Opts)
	log.Info().
		Str("guid", guid.String()).
		Str("action", string(info.ActionType)).
		Msg("Request finalized")
	return res, nil
}

// settle simulates the vault-side settlement for the request and
// returns it uncommitted.
func (l *Ledger) settle(ctx context.Context, info *CrossChainRequestInfo) (*vaults.Settlement, error) {
	var settlement *vaults.Settlement
	var err error
	switch info.ActionType {
	case vaults.DepositAction:
		var p *vaults.DepositPayload
		if p, err = vaults.DecodeDepositPayload(info.Payload); err == nil {
			settlement, err = l.vault.Deposit(ctx, p.Amount, p.Receiver, info.TotalAssets)
		}
	case vaults.MintAction:
		var p *vaults.DepositPayload
		if p, err = vaults.DecodeDepositPayload(info.Payload); err == nil {
			settlement, err = l.vault.Mint(ctx, p.Amount, p.Receiver, info.TotalAssets)
		}
	case vaults.WithdrawAction:
		var p *vaults.WithdrawPayload
		if p, err = vaults.DecodeWithdrawPayload(info.Payload); err == nil {
			settlement, err = l.vault.Withdraw(ctx, p.Amount, p.Receiver, p.Owner, info.TotalAssets)
		}
	case vaults.RedeemAction:
		var p *vaults.WithdrawPayload
		if p, err = vaults.DecodeWithdrawPayload(info.Payload); err == nil {
			settlement, err = l.vault.Redeem(ctx, p.Amount, p.Receiver, p.Owner, info.TotalAssets)
		}
	case vaults.MultiAssetsDepositAction:
		var p *vaults.MultiAssetsDepositPayload
		if p, err = vaults.DecodeMultiAssetsDepositPayload(info.Payload); err == nil {
			settlement, err = l.vault.DepositMultiAssets(ctx, p.Tokens, p.Amounts, p.NativeAmount, p.Receiver, info.TotalAssets)
		}
	case vaults.SetFeeAction:
		var p *vaults.SetFeePayload
		if p, err = vaults.DecodeSetFeePayload(info.Payload); err == nil {
			settlement, err = l.vault.SetFee(ctx, p.Fee)
		}
	case vaults.AccrueFeesAction:
		settlement, err = l.vault.AccrueFees(ctx, info.TotalAssets)
	default:
		return nil, vaults.ErrUnknownActionType
	}
	if err != nil {
		return nil, &FinalizationError{Err: err}
	}
	return settlement, nil
}

func (l *Ledger) checkSlippage(ctx context.Context, info *CrossChainRequestInfo, res *vaults.SettlementResult) error {
	if info.ActionType == vaults.AccrueFeesAction {
		return nil
	}
	if info.AmountLimit == nil || info.AmountLimit.Sign() == 0 {
		return nil
	}

	if info.ActionType.IsDepositLike() {
		if res.Output == nil || res.Output.Cmp(info.AmountLimit) < 0 {
			l.metrics.SlippageFailures.Add(ctx, 1, l.metrics.Opts)
			return &SlippageError{Actual: res.Output, Limit: info.AmountLimit}
		}
		return nil
	}
	if res.TokenIn != nil && res.TokenIn.Cmp(info.AmountLimit) > 0 {
		l.metrics.SlippageFailures.Add(ctx, 1, l.metrics.Opts)
		return &SlippageError{Actual: res.TokenIn, Limit: info.AmountLimit}
	}
	return nil
}

// RefundIfNecessary refunds the escrow of a stuck request to its
// initiator. A request is stuck once it exceeded the maximum delay
// without being finalized or refunded, or when a known composing relay
// contract opened it and accounting data can no longer arrive. If the
// initiator cannot receive native currency the funds fall back to the
// accounting manager so nothing strands in escrow. The refunded latch
// is persisted before any payout so a failed transfer cannot be paid
// twice on a retry; a payout failure after the latch is surfaced for
// manual reconciliation.
func (l *Ledger) RefundIfNecessary(ctx context.Context, caller common.Address, guid bridge.Guid) error {
	info, err := l.store.Request(l.vault.Address(), guid)
	if err != nil {
		return err
	}
	if caller != l.manager && caller != info.Initiator {
		return ErrUnauthorizedManager
	}
	if info.Finalized || info.Refunded {
		return ErrRequestNotStuck
	}
	if !l.isStuck(info) {
		return ErrRequestNotStuck
	}

	info.Refunded = true
	if err := l.store.StoreRequest(info); err != nil {
		return err
	}
	if err := l.store.RemoveOpenRequest(l.vault.Address(), guid); err != nil {
		return err
	}

	if info.PendingNative != nil && info.PendingNative.Sign() > 0 {
		if err := l.native.TransferNative(ctx, info.Initiator, info.PendingNative); err != nil {
			log.Warn().
				Str("guid", guid.String()).
				Str("initiator", info.Initiator.Hex()).
				Err(err).
				Msg("Initiator cannot receive refund, falling back to accounting manager")
			if err := l.native.TransferNative(ctx, l.manager, info.PendingNative); err != nil {
				log.Error().
					Str("guid", guid.String()).
					Str("amount", info.PendingNative.String()).
					Err(err).
					Msg("Escrow payout failed after refund, requires manual reconciliation")
				return err
			}
		}
		if err := l.adjustPendingNative(new(big.Int).Neg(info.PendingNative)); err != nil {
			return err
		}
	}

	l.metrics.RequestsRefunded.Add(ctx, 1, l.metrics.Opts)
	log.Info().Str("guid", guid.String()).Msg("Request refunded")
	return nil
}

func (l *Ledger) isStuck(info *CrossChainRequestInfo) bool {
	if time.Since(info.Timestamp) > l.maxRequestDelay {
		return true
	}
	_, composer := l.composers[info.Initiator]
	return composer && !info.Fulfilled
}

// Request returns the ledger entry for a guid.
func (l *Ledger) Request(guid bridge.Guid) (*CrossChainRequestInfo, error) {
	return l.store.Request(l.vault.Address(), guid)
}

// FinalizationResult returns the recorded settlement output of a
// finalized request.
func (l *Ledger) FinalizationResult(guid bridge.Guid) (*big.Int, error) {
	info, err := l.store.Request(l.vault.Address(), guid)
	if err != nil {
		return nil, err
	}
	if !info.Finalized {
		return nil, ErrNotFinalized
	}
	return info.FinalizationResult, nil
}

// OpenGuids lists the guids of requests that are neither finalized nor
// refunded, for the stuck-request sweep.
func (l *Ledger) OpenGuids() ([]bridge.Guid, error) {
	return l.store.OpenRequests(l.vault.Address())
}

// Manager returns the vault's accounting manager identity.
func (l *Ledger) Manager() common.Address {
	return l.manager
}

// PendingNative returns the vault's total escrowed native currency. The
// amount is a liability backed by the relayer's native balance and is
// excluded from total-assets accounting.
func (l *Ledger) PendingNative() (*big.Int, error) {
	return l.store.PendingNative(l.vault.Address())
}

func (l *Ledger) adjustPendingNative(delta *big.Int) error {
	pending, err := l.store.PendingNative(l.vault.Address())
	if err != nil {
		return err
	}
	pending = new(big.Int).Add(pending, delta)
	if err := l.store.SetPendingNative(l.vault.Address(), pending); err != nil {
		return err
	}

	gauge := int64(math.MaxInt64)
	if pending.IsInt64() {
		gauge = pending.Int64()
	}
	l.metrics.TrackPendingNative(gauge)
	return nil
}
