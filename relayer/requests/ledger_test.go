// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package requests_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"

	"github.com/MORE-Vaults/vaults-relayer/bridge"
	mock_bridge "github.com/MORE-Vaults/vaults-relayer/bridge/mock"
	"github.com/MORE-Vaults/vaults-relayer/metrics"
	mock_oracle "github.com/MORE-Vaults/vaults-relayer/oracle/mock"
	"github.com/MORE-Vaults/vaults-relayer/relayer/requests"
	mock_requests "github.com/MORE-Vaults/vaults-relayer/relayer/requests/mock"
	"github.com/MORE-Vaults/vaults-relayer/vaults"
	mock_vaults "github.com/MORE-Vaults/vaults-relayer/vaults/mock"
)

type LedgerTestSuite struct {
	suite.Suite
	vault        *mock_vaults.MockVault
	adapter      *mock_bridge.MockBridgeAdapter
	storer       *mock_requests.MockRequestStorer
	prices       *mock_oracle.MockPriceOracle
	native       *mock_vaults.MockNativeTransferer
	mode         *mock_requests.MockAccountingMode
	destinations *mock_requests.MockDestinationSource
	ledger       *requests.Ledger

	vaultAddress common.Address
	manager      common.Address
	initiator    common.Address
	composer     common.Address
	receiver     common.Address
	guid         bridge.Guid
	dests        []bridge.Destination
	opts         bridge.TransportOptions
}

func TestRunLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.vault = mock_vaults.NewMockVault(gomockController)
	s.adapter = mock_bridge.NewMockBridgeAdapter(gomockController)
	s.storer = mock_requests.NewMockRequestStorer(gomockController)
	s.prices = mock_oracle.NewMockPriceOracle(gomockController)
	s.native = mock_vaults.NewMockNativeTransferer(gomockController)
	s.mode = mock_requests.NewMockAccountingMode(gomockController)
	s.destinations = mock_requests.NewMockDestinationSource(gomockController)

	s.vaultAddress = common.HexToAddress("0x9fDa7CEeC4c18008096C2fE2B85F05dc300F94d0")
	s.manager = common.HexToAddress("0x5c1F5961696BaD2e18f7F438d74f8D1e125d8028")
	s.initiator = common.HexToAddress("0xA83114A443dA1CecEFC50368531cACE9F37fCCcb")
	s.composer = common.HexToAddress("0x391E76908fD87d5d8654f51D700823ea64e18b5a")
	s.receiver = common.HexToAddress("0x8e5aFc2e6e22E0B4E71EB6aC1D4cCD8774Ab54a5")
	s.guid = bridge.Guid{0x1}
	s.dests = []bridge.Destination{
		{Eid: 30101, Receiver: common.HexToAddress("0x92E7D2A3b52b8c2E346D4FfC849dEdC2Ab4A36C2")},
		{Eid: 30202, Receiver: common.HexToAddress("0x18f74a4a5D23bF4F0eBfFD6720a9Ba27A1A0d4d1")},
	}
	s.opts = bridge.TransportOptions{GasLimit: 200000}

	s.vault.EXPECT().Address().Return(s.vaultAddress).AnyTimes()

	relayerMetrics, err := metrics.NewRelayerMetrics(noop.NewMeterProvider().Meter("test"), "test", "relayer1")
	s.Nil(err)

	s.ledger = requests.NewLedger(
		s.vault,
		s.adapter,
		s.storer,
		s.prices,
		s.native,
		s.mode,
		s.destinations,
		s.manager,
		[]common.Address{s.composer},
		time.Hour,
		relayerMetrics,
	)
}

func (s *LedgerTestSuite) depositPayload(amount int64) []byte {
	payload, err := (&vaults.DepositPayload{
		Amount:   big.NewInt(amount),
		Receiver: s.receiver,
	}).Encode()
	s.Nil(err)
	return payload
}

func (s *LedgerTestSuite) withdrawPayload(amount int64) []byte {
	payload, err := (&vaults.WithdrawPayload{
		Amount:   big.NewInt(amount),
		Receiver: s.receiver,
		Owner:    s.initiator,
	}).Encode()
	s.Nil(err)
	return payload
}

func (s *LedgerTestSuite) multiAssetsPayload(nativeAmount int64) []byte {
	payload, err := (&vaults.MultiAssetsDepositPayload{
		Tokens:       []common.Address{s.receiver},
		Amounts:      []*big.Int{big.NewInt(100)},
		NativeAmount: big.NewInt(nativeAmount),
		Receiver:     s.receiver,
	}).Encode()
	s.Nil(err)
	return payload
}

func (s *LedgerTestSuite) settlement(res *vaults.SettlementResult, committed *bool) *vaults.Settlement {
	return vaults.NewSettlement(res, func(context.Context) error {
		if committed != nil {
			*committed = true
		}
		return nil
	})
}

func (s *LedgerTestSuite) Test_OpenRequest_RejectedInMulticall() {
	cc := requests.CallContext{Caller: s.initiator, Value: big.NewInt(100), InMulticall: true}

	_, err := s.ledger.OpenRequest(context.Background(), cc, vaults.DepositAction, s.depositPayload(500), nil, s.opts)

	s.ErrorIs(err, requests.ErrRestrictedInMulticall)
}

func (s *LedgerTestSuite) Test_OpenRequest_MalformedPayload() {
	cc := requests.CallContext{Caller: s.initiator, Value: big.NewInt(100)}

	_, err := s.ledger.OpenRequest(context.Background(), cc, vaults.DepositAction, []byte("garbage"), nil, s.opts)

	s.NotNil(err)
}

func (s *LedgerTestSuite) Test_OpenRequest_OracleAccountingEnabled() {
	s.mode.EXPECT().OracleAccountingEnabled(s.vaultAddress).Return(true, nil)
	cc := requests.CallContext{Caller: s.initiator, Value: big.NewInt(100)}

	_, err := s.ledger.OpenRequest(context.Background(), cc, vaults.DepositAction, s.depositPayload(500), nil, s.opts)

	s.ErrorIs(err, requests.ErrOracleAccountingEnabled)
}

func (s *LedgerTestSuite) Test_OpenRequest_ValueMismatch() {
	payload := s.depositPayload(500)
	s.mode.EXPECT().OracleAccountingEnabled(s.vaultAddress).Return(false, nil)
	s.destinations.EXPECT().Destinations(s.vaultAddress).Return(s.dests, nil)
	s.adapter.EXPECT().QuoteFee(gomock.Any(), s.dests, payload, s.opts).Return(big.NewInt(100), nil)
	cc := requests.CallContext{Caller: s.initiator, Value: big.NewInt(99)}

	_, err := s.ledger.OpenRequest(context.Background(), cc, vaults.DepositAction, payload, nil, s.opts)

	s.ErrorIs(err, requests.ErrNotEnoughValueProvided)
}

func (s *LedgerTestSuite) Test_OpenRequest_SuccessfulDeposit() {
	payload := s.depositPayload(500)
	s.mode.EXPECT().OracleAccountingEnabled(s.vaultAddress).Return(false, nil)
	s.destinations.EXPECT().Destinations(s.vaultAddress).Return(s.dests, nil)
	s.adapter.EXPECT().QuoteFee(gomock.Any(), s.dests, payload, s.opts).Return(big.NewInt(100), nil)
	s.vault.EXPECT().TotalAssets(gomock.Any()).Return(big.NewInt(1000), nil)
	s.adapter.EXPECT().InitiateRead(gomock.Any(), s.dests, payload, s.opts, s.initiator, big.NewInt(100)).Return(s.guid, nil)

	var stored *requests.CrossChainRequestInfo
	s.storer.EXPECT().StoreRequest(gomock.Any()).DoAndReturn(func(info *requests.CrossChainRequestInfo) error {
		stored = info
		return nil
	})
	s.storer.EXPECT().AddOpenRequest(s.vaultAddress, s.guid).Return(nil)
	cc := requests.CallContext{Caller: s.initiator, Value: big.NewInt(100)}

	guid, err := s.ledger.OpenRequest(context.Background(), cc, vaults.DepositAction, payload, big.NewInt(450), s.opts)

	s.Nil(err)
	s.Equal(s.guid, guid)
	s.Equal(s.vaultAddress, stored.Vault)
	s.Equal(vaults.DepositAction, stored.ActionType)
	s.Equal(s.initiator, stored.Initiator)
	s.Equal(big.NewInt(450), stored.AmountLimit)
	s.Equal(big.NewInt(1000), stored.TotalAssets)
	s.False(stored.Fulfilled)
	s.False(stored.Finalized)
	s.False(stored.Refunded)
}

func (s *LedgerTestSuite) Test_OpenRequest_EscrowsNativeValue() {
	payload := s.multiAssetsPayload(50)
	s.mode.EXPECT().OracleAccountingEnabled(s.vaultAddress).Return(false, nil)
	s.destinations.EXPECT().Destinations(s.vaultAddress).Return(s.dests, nil)
	s.adapter.EXPECT().QuoteFee(gomock.Any(), s.dests, payload, s.opts).Return(big.NewInt(100), nil)
	s.vault.EXPECT().TotalAssets(gomock.Any()).Return(big.NewInt(1000), nil)
	s.adapter.EXPECT().InitiateRead(gomock.Any(), s.dests, payload, s.opts, s.initiator, big.NewInt(100)).Return(s.guid, nil)
	s.storer.EXPECT().PendingNative(s.vaultAddress).Return(big.NewInt(0), nil)
	s.storer.EXPECT().SetPendingNative(s.vaultAddress, big.NewInt(50)).Return(nil)
	s.storer.EXPECT().StoreRequest(gomock.Any()).Return(nil)
	s.storer.EXPECT().AddOpenRequest(s.vaultAddress, s.guid).Return(nil)
	cc := requests.CallContext{Caller: s.initiator, Value: big.NewInt(150)}

	guid, err := s.ledger.OpenRequest(context.Background(), cc, vaults.MultiAssetsDepositAction, payload, nil, s.opts)

	s.Nil(err)
	s.Equal(s.guid, guid)
}

func (s *LedgerTestSuite) Test_OpenRequest_SetFeeBroadcastsToAllSpokes() {
	payload, err := (&vaults.SetFeePayload{Fee: big.NewInt(25)}).Encode()
	s.Nil(err)

	firstGuid := bridge.Guid{0xa}
	secondGuid := bridge.Guid{0xb}
	s.mode.EXPECT().OracleAccountingEnabled(s.vaultAddress).Return(false, nil)
	s.destinations.EXPECT().Destinations(s.vaultAddress).Return(s.dests, nil)
	s.adapter.EXPECT().QuoteFee(gomock.Any(), s.dests, payload, s.opts).Return(big.NewInt(100), nil)
	s.vault.EXPECT().TotalAssets(gomock.Any()).Return(big.NewInt(1000), nil)

	s.adapter.EXPECT().QuoteFee(gomock.Any(), []bridge.Destination{s.dests[0]}, payload, s.opts).Return(big.NewInt(40), nil)
	s.adapter.EXPECT().Send(gomock.Any(), s.dests[0], payload, s.opts, s.initiator, big.NewInt(40)).Return(firstGuid, nil)
	s.adapter.EXPECT().QuoteFee(gomock.Any(), []bridge.Destination{s.dests[1]}, payload, s.opts).Return(big.NewInt(40), nil)
	s.adapter.EXPECT().Send(gomock.Any(), s.dests[1], payload, s.opts, s.initiator, big.NewInt(60)).Return(secondGuid, nil)

	s.storer.EXPECT().StoreRequest(gomock.Any()).Return(nil)
	s.storer.EXPECT().AddOpenRequest(s.vaultAddress, firstGuid).Return(nil)
	cc := requests.CallContext{Caller: s.initiator, Value: big.NewInt(100)}

	guid, err := s.ledger.OpenRequest(context.Background(), cc, vaults.SetFeeAction, payload, nil, s.opts)

	s.Nil(err)
	s.Equal(firstGuid, guid)
}

func (s *LedgerTestSuite) Test_OpenRequest_BroadcastWithoutLinkedSpokes() {
	payload := []byte{}
	s.mode.EXPECT().OracleAccountingEnabled(s.vaultAddress).Return(false, nil)
	s.destinations.EXPECT().Destinations(s.vaultAddress).Return([]bridge.Destination{}, nil)
	s.adapter.EXPECT().QuoteFee(gomock.Any(), []bridge.Destination{}, payload, s.opts).Return(big.NewInt(0), nil)
	s.vault.EXPECT().TotalAssets(gomock.Any()).Return(big.NewInt(1000), nil)
	cc := requests.CallContext{Caller: s.initiator, Value: big.NewInt(0)}

	_, err := s.ledger.OpenRequest(context.Background(), cc, vaults.AccrueFeesAction, payload, nil, s.opts)

	s.ErrorIs(err, requests.ErrNoLinkedSpokes)
}

func (s *LedgerTestSuite) Test_UpdateAccountingInfo_UnauthorizedCaller() {
	err := s.ledger.UpdateAccountingInfoForRequest(context.Background(), s.initiator, s.guid, big.NewInt(900), true)

	s.ErrorIs(err, requests.ErrUnauthorizedManager)
}

func (s *LedgerTestSuite) Test_UpdateAccountingInfo_RequestNotFound() {
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(nil, requests.ErrRequestNotFound)

	err := s.ledger.UpdateAccountingInfoForRequest(context.Background(), s.manager, s.guid, big.NewInt(900), true)

	s.ErrorIs(err, requests.ErrRequestNotFound)
}

func (s *LedgerTestSuite) Test_UpdateAccountingInfo_AlreadyFulfilled() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, Fulfilled: true}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	err := s.ledger.UpdateAccountingInfoForRequest(context.Background(), s.manager, s.guid, big.NewInt(900), true)

	s.ErrorIs(err, requests.ErrAlreadyFulfilled)
}

func (s *LedgerTestSuite) Test_UpdateAccountingInfo_RefundedRequest() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, Refunded: true}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	err := s.ledger.UpdateAccountingInfoForRequest(context.Background(), s.manager, s.guid, big.NewInt(900), true)

	s.ErrorIs(err, requests.ErrRequestRefunded)
}

func (s *LedgerTestSuite) Test_UpdateAccountingInfo_FailedReadStaysRetryable() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, TotalAssets: big.NewInt(1000)}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	err := s.ledger.UpdateAccountingInfoForRequest(context.Background(), s.manager, s.guid, nil, false)

	s.Nil(err)
	s.False(info.Fulfilled)
}

func (s *LedgerTestSuite) Test_UpdateAccountingInfo_AppliesValueOnce() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, TotalAssets: big.NewInt(1000)}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.prices.EXPECT().UnderlyingFromUSD(gomock.Any(), s.vaultAddress, big.NewInt(900)).Return(big.NewInt(300), nil)

	var stored *requests.CrossChainRequestInfo
	s.storer.EXPECT().StoreRequest(gomock.Any()).DoAndReturn(func(info *requests.CrossChainRequestInfo) error {
		stored = info
		return nil
	})

	err := s.ledger.UpdateAccountingInfoForRequest(context.Background(), s.manager, s.guid, big.NewInt(900), true)

	s.Nil(err)
	s.True(stored.Fulfilled)
	s.Equal(big.NewInt(1300), stored.TotalAssets)

	// a second delivery for the same request must be rejected
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(stored, nil)
	err = s.ledger.UpdateAccountingInfoForRequest(context.Background(), s.manager, s.guid, big.NewInt(900), true)
	s.ErrorIs(err, requests.ErrAlreadyFulfilled)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_UnauthorizedCaller() {
	_, err := s.ledger.ExecuteRequest(context.Background(), s.initiator, s.guid)

	s.ErrorIs(err, requests.ErrUnauthorizedManager)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_NotFulfilled() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	s.ErrorIs(err, requests.ErrNotFulfilled)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_AlreadyFinalized() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, Fulfilled: true, Finalized: true}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	s.ErrorIs(err, requests.ErrAlreadyFinalized)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_RefundedRequest() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, Fulfilled: true, Refunded: true}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	s.ErrorIs(err, requests.ErrRequestRefunded)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_SuccessfulDeposit() {
	info := &requests.CrossChainRequestInfo{
		Guid:        s.guid,
		Vault:       s.vaultAddress,
		ActionType:  vaults.DepositAction,
		Payload:     s.depositPayload(500),
		AmountLimit: big.NewInt(400),
		TotalAssets: big.NewInt(1300),
		Fulfilled:   true,
	}
	committed := false
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.vault.EXPECT().Deposit(gomock.Any(), big.NewInt(500), s.receiver, big.NewInt(1300)).
		Return(s.settlement(&vaults.SettlementResult{TokenIn: big.NewInt(500), Output: big.NewInt(450)}, &committed), nil)

	var stored *requests.CrossChainRequestInfo
	s.storer.EXPECT().StoreRequest(gomock.Any()).DoAndReturn(func(info *requests.CrossChainRequestInfo) error {
		stored = info
		return nil
	})
	s.storer.EXPECT().RemoveOpenRequest(s.vaultAddress, s.guid).Return(nil)

	res, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	s.Nil(err)
	s.True(committed)
	s.Equal(big.NewInt(450), res.Output)
	s.True(stored.Finalized)
	s.Equal(big.NewInt(500), stored.AmountOfTokenToSendIn)
	s.Equal(big.NewInt(450), stored.FinalizationResult)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_DepositSlippageExceeded() {
	info := &requests.CrossChainRequestInfo{
		Guid:        s.guid,
		Vault:       s.vaultAddress,
		ActionType:  vaults.DepositAction,
		Payload:     s.depositPayload(500),
		AmountLimit: big.NewInt(400),
		TotalAssets: big.NewInt(1300),
		Fulfilled:   true,
	}
	committed := false
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.vault.EXPECT().Deposit(gomock.Any(), big.NewInt(500), s.receiver, big.NewInt(1300)).
		Return(s.settlement(&vaults.SettlementResult{TokenIn: big.NewInt(500), Output: big.NewInt(390)}, &committed), nil)

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	var slippageErr *requests.SlippageError
	s.ErrorAs(err, &slippageErr)
	s.Equal(big.NewInt(390), slippageErr.Actual)
	s.False(committed)
	s.False(info.Finalized)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_WithdrawSlippageExceeded() {
	info := &requests.CrossChainRequestInfo{
		Guid:        s.guid,
		Vault:       s.vaultAddress,
		ActionType:  vaults.WithdrawAction,
		Payload:     s.withdrawPayload(500),
		AmountLimit: big.NewInt(500),
		TotalAssets: big.NewInt(1300),
		Fulfilled:   true,
	}
	committed := false
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.vault.EXPECT().Withdraw(gomock.Any(), big.NewInt(500), s.receiver, s.initiator, big.NewInt(1300)).
		Return(s.settlement(&vaults.SettlementResult{TokenIn: big.NewInt(510), Output: big.NewInt(500)}, &committed), nil)

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	var slippageErr *requests.SlippageError
	s.ErrorAs(err, &slippageErr)
	s.Equal(big.NewInt(510), slippageErr.Actual)
	s.False(committed)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_ZeroLimitDisablesSlippageCheck() {
	info := &requests.CrossChainRequestInfo{
		Guid:        s.guid,
		Vault:       s.vaultAddress,
		ActionType:  vaults.DepositAction,
		Payload:     s.depositPayload(500),
		AmountLimit: big.NewInt(0),
		TotalAssets: big.NewInt(1300),
		Fulfilled:   true,
	}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.vault.EXPECT().Deposit(gomock.Any(), big.NewInt(500), s.receiver, big.NewInt(1300)).
		Return(s.settlement(&vaults.SettlementResult{TokenIn: big.NewInt(500), Output: big.NewInt(1)}, nil), nil)
	s.storer.EXPECT().StoreRequest(gomock.Any()).Return(nil)
	s.storer.EXPECT().RemoveOpenRequest(s.vaultAddress, s.guid).Return(nil)

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	s.Nil(err)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_SettlementFailureWrapped() {
	info := &requests.CrossChainRequestInfo{
		Guid:        s.guid,
		Vault:       s.vaultAddress,
		ActionType:  vaults.DepositAction,
		Payload:     s.depositPayload(500),
		TotalAssets: big.NewInt(1300),
		Fulfilled:   true,
	}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.vault.EXPECT().Deposit(gomock.Any(), big.NewInt(500), s.receiver, big.NewInt(1300)).
		Return(nil, errors.New("vault reverted"))

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	var finalizationErr *requests.FinalizationError
	s.ErrorAs(err, &finalizationErr)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_ReleasesEscrowThroughSettlement() {
	info := &requests.CrossChainRequestInfo{
		Guid:          s.guid,
		Vault:         s.vaultAddress,
		ActionType:    vaults.MultiAssetsDepositAction,
		Payload:       s.multiAssetsPayload(50),
		TotalAssets:   big.NewInt(1300),
		Fulfilled:     true,
		PendingNative: big.NewInt(50),
	}
	committed := false
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.vault.EXPECT().DepositMultiAssets(
		gomock.Any(), []common.Address{s.receiver}, []*big.Int{big.NewInt(100)}, big.NewInt(50), s.receiver, big.NewInt(1300),
	).Return(s.settlement(&vaults.SettlementResult{TokenIn: big.NewInt(150), Output: big.NewInt(140)}, &committed), nil)
	s.storer.EXPECT().PendingNative(s.vaultAddress).Return(big.NewInt(50), nil)
	s.storer.EXPECT().SetPendingNative(s.vaultAddress, gomock.Cond(func(x any) bool {
		total, ok := x.(*big.Int)
		return ok && total.Sign() == 0
	})).Return(nil)
	s.storer.EXPECT().StoreRequest(gomock.Any()).Return(nil)
	s.storer.EXPECT().RemoveOpenRequest(s.vaultAddress, s.guid).Return(nil)

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	s.Nil(err)
	// the committed settlement carries the escrow as its value, so no
	// separate native transfer happens and the book is drawn down once
	s.True(committed)
}

func (s *LedgerTestSuite) Test_ExecuteRequest_CommitFailureWrapped() {
	info := &requests.CrossChainRequestInfo{
		Guid:        s.guid,
		Vault:       s.vaultAddress,
		ActionType:  vaults.DepositAction,
		Payload:     s.depositPayload(500),
		TotalAssets: big.NewInt(1300),
		Fulfilled:   true,
	}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.vault.EXPECT().Deposit(gomock.Any(), big.NewInt(500), s.receiver, big.NewInt(1300)).
		Return(vaults.NewSettlement(
			&vaults.SettlementResult{TokenIn: big.NewInt(500), Output: big.NewInt(450)},
			func(context.Context) error { return errors.New("broadcast failed") },
		), nil)

	_, err := s.ledger.ExecuteRequest(context.Background(), s.manager, s.guid)

	var finalizationErr *requests.FinalizationError
	s.ErrorAs(err, &finalizationErr)
	s.False(info.Finalized)
}

func (s *LedgerTestSuite) Test_RefundIfNecessary_UnauthorizedCaller() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, Initiator: s.initiator}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	err := s.ledger.RefundIfNecessary(context.Background(), s.receiver, s.guid)

	s.ErrorIs(err, requests.ErrUnauthorizedManager)
}

func (s *LedgerTestSuite) Test_RefundIfNecessary_FinalizedRequest() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, Initiator: s.initiator, Finalized: true}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	err := s.ledger.RefundIfNecessary(context.Background(), s.manager, s.guid)

	s.ErrorIs(err, requests.ErrRequestNotStuck)
}

func (s *LedgerTestSuite) Test_RefundIfNecessary_NotYetStuck() {
	info := &requests.CrossChainRequestInfo{
		Guid:      s.guid,
		Vault:     s.vaultAddress,
		Initiator: s.initiator,
		Timestamp: time.Now(),
	}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	err := s.ledger.RefundIfNecessary(context.Background(), s.initiator, s.guid)

	s.ErrorIs(err, requests.ErrRequestNotStuck)
}

func (s *LedgerTestSuite) Test_RefundIfNecessary_StuckByAge() {
	info := &requests.CrossChainRequestInfo{
		Guid:          s.guid,
		Vault:         s.vaultAddress,
		Initiator:     s.initiator,
		Timestamp:     time.Now().Add(-2 * time.Hour),
		PendingNative: big.NewInt(50),
	}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.native.EXPECT().TransferNative(gomock.Any(), s.initiator, big.NewInt(50)).Return(nil)
	s.storer.EXPECT().PendingNative(s.vaultAddress).Return(big.NewInt(50), nil)
	s.storer.EXPECT().SetPendingNative(s.vaultAddress, gomock.Cond(func(x any) bool {
		total, ok := x.(*big.Int)
		return ok && total.Sign() == 0
	})).Return(nil)

	var stored *requests.CrossChainRequestInfo
	s.storer.EXPECT().StoreRequest(gomock.Any()).DoAndReturn(func(info *requests.CrossChainRequestInfo) error {
		stored = info
		return nil
	})
	s.storer.EXPECT().RemoveOpenRequest(s.vaultAddress, s.guid).Return(nil)

	err := s.ledger.RefundIfNecessary(context.Background(), s.initiator, s.guid)

	s.Nil(err)
	s.True(stored.Refunded)
	s.False(stored.Finalized)
}

func (s *LedgerTestSuite) Test_RefundIfNecessary_ComposerRequestStuckImmediately() {
	info := &requests.CrossChainRequestInfo{
		Guid:      s.guid,
		Vault:     s.vaultAddress,
		Initiator: s.composer,
		Timestamp: time.Now(),
	}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.storer.EXPECT().StoreRequest(gomock.Any()).Return(nil)
	s.storer.EXPECT().RemoveOpenRequest(s.vaultAddress, s.guid).Return(nil)

	err := s.ledger.RefundIfNecessary(context.Background(), s.manager, s.guid)

	s.Nil(err)
}

func (s *LedgerTestSuite) Test_RefundIfNecessary_FallsBackToManager() {
	info := &requests.CrossChainRequestInfo{
		Guid:          s.guid,
		Vault:         s.vaultAddress,
		Initiator:     s.initiator,
		Timestamp:     time.Now().Add(-2 * time.Hour),
		PendingNative: big.NewInt(50),
	}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)
	s.native.EXPECT().TransferNative(gomock.Any(), s.initiator, big.NewInt(50)).Return(errors.New("cannot receive"))
	s.native.EXPECT().TransferNative(gomock.Any(), s.manager, big.NewInt(50)).Return(nil)
	s.storer.EXPECT().PendingNative(s.vaultAddress).Return(big.NewInt(50), nil)
	s.storer.EXPECT().SetPendingNative(s.vaultAddress, gomock.Cond(func(x any) bool {
		total, ok := x.(*big.Int)
		return ok && total.Sign() == 0
	})).Return(nil)
	s.storer.EXPECT().StoreRequest(gomock.Any()).Return(nil)
	s.storer.EXPECT().RemoveOpenRequest(s.vaultAddress, s.guid).Return(nil)

	err := s.ledger.RefundIfNecessary(context.Background(), s.manager, s.guid)

	s.Nil(err)
}

func (s *LedgerTestSuite) Test_RefundIfNecessary_LatchesBeforePayout() {
	info := &requests.CrossChainRequestInfo{
		Guid:          s.guid,
		Vault:         s.vaultAddress,
		Initiator:     s.initiator,
		Timestamp:     time.Now().Add(-2 * time.Hour),
		PendingNative: big.NewInt(50),
	}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	var stored *requests.CrossChainRequestInfo
	storeCall := s.storer.EXPECT().StoreRequest(gomock.Any()).DoAndReturn(func(info *requests.CrossChainRequestInfo) error {
		stored = info
		return nil
	})
	removeCall := s.storer.EXPECT().RemoveOpenRequest(s.vaultAddress, s.guid).Return(nil)
	transferCall := s.native.EXPECT().TransferNative(gomock.Any(), s.initiator, big.NewInt(50)).Return(errors.New("cannot receive"))
	fallbackCall := s.native.EXPECT().TransferNative(gomock.Any(), s.manager, big.NewInt(50)).Return(errors.New("cannot receive"))
	gomock.InOrder(storeCall, removeCall, transferCall, fallbackCall)

	err := s.ledger.RefundIfNecessary(context.Background(), s.manager, s.guid)

	// the latch survived the failed payout, so a sweep retry is rejected
	// instead of paying the escrow a second time
	s.NotNil(err)
	s.True(stored.Refunded)

	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(stored, nil)
	err = s.ledger.RefundIfNecessary(context.Background(), s.manager, s.guid)
	s.ErrorIs(err, requests.ErrRequestNotStuck)
}

func (s *LedgerTestSuite) Test_FinalizationResult_NotFinalized() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, Fulfilled: true}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	_, err := s.ledger.FinalizationResult(s.guid)

	s.ErrorIs(err, requests.ErrNotFinalized)
}

func (s *LedgerTestSuite) Test_FinalizationResult_SuccessfulFetch() {
	info := &requests.CrossChainRequestInfo{Guid: s.guid, Vault: s.vaultAddress, Finalized: true, FinalizationResult: big.NewInt(450)}
	s.storer.EXPECT().Request(s.vaultAddress, s.guid).Return(info, nil)

	result, err := s.ledger.FinalizationResult(s.guid)

	s.Nil(err)
	s.Equal(big.NewInt(450), result)
}
