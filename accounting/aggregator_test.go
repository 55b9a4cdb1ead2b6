// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package accounting_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/MORE-Vaults/vaults-relayer/accounting"
	mock_accounting "github.com/MORE-Vaults/vaults-relayer/accounting/mock"
	mock_oracle "github.com/MORE-Vaults/vaults-relayer/oracle/mock"
	"github.com/MORE-Vaults/vaults-relayer/topology"
	mock_topology "github.com/MORE-Vaults/vaults-relayer/topology/mock"
	mock_vaults "github.com/MORE-Vaults/vaults-relayer/vaults/mock"
)

type AggregatorTestSuite struct {
	suite.Suite
	registry    *mock_accounting.MockRegistryReader
	spokeValues *mock_oracle.MockSpokeValueSource
	prices      *mock_oracle.MockPriceOracle
	store       *mock_accounting.MockAccountingStore
	vaults      *mock_topology.MockVaultSource
	escrow      *mock_accounting.MockEscrowReader
	aggregator  *accounting.Aggregator

	hub    common.Address
	owner  common.Address
	spokes []topology.SpokeKey
}

func TestRunAggregatorTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}

func (s *AggregatorTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.registry = mock_accounting.NewMockRegistryReader(gomockController)
	s.spokeValues = mock_oracle.NewMockSpokeValueSource(gomockController)
	s.prices = mock_oracle.NewMockPriceOracle(gomockController)
	s.store = mock_accounting.NewMockAccountingStore(gomockController)
	s.vaults = mock_topology.NewMockVaultSource(gomockController)
	s.escrow = mock_accounting.NewMockEscrowReader(gomockController)

	s.hub = common.HexToAddress("0x9fDa7CEeC4c18008096C2fE2B85F05dc300F94d0")
	s.owner = common.HexToAddress("0x5c1F5961696BaD2e18f7F438d74f8D1e125d8028")
	s.spokes = []topology.SpokeKey{
		{Eid: 30101, Vault: common.HexToAddress("0x92E7D2A3b52b8c2E346D4FfC849dEdC2Ab4A36C2")},
		{Eid: 30202, Vault: common.HexToAddress("0x391E76908fD87d5d8654f51D700823ea64e18b5a")},
	}

	s.aggregator = accounting.NewAggregator(s.registry, s.spokeValues, s.prices, s.store, s.vaults, s.escrow, 16)
}

func (s *AggregatorTestSuite) Test_AggregateSpokeValue_BudgetExceeded() {
	aggregator := accounting.NewAggregator(s.registry, s.spokeValues, s.prices, s.store, s.vaults, s.escrow, 1)
	s.registry.EXPECT().HubSpokes(s.hub).Return(s.spokes, nil)

	_, err := aggregator.AggregateSpokeValue(context.Background(), s.hub)

	s.ErrorIs(err, accounting.ErrSpokeBudgetExceeded)
}

func (s *AggregatorTestSuite) Test_AggregateSpokeValue_FailedReadFailsWhole() {
	s.registry.EXPECT().HubSpokes(s.hub).Return(s.spokes, nil)
	s.spokeValues.EXPECT().SpokeValueUSD(gomock.Any(), s.hub, s.spokes[0].Eid).Return(big.NewInt(300), nil)
	s.spokeValues.EXPECT().SpokeValueUSD(gomock.Any(), s.hub, s.spokes[1].Eid).Return(nil, errors.New("oracle timeout"))

	_, err := s.aggregator.AggregateSpokeValue(context.Background(), s.hub)

	var readErr *accounting.SpokeReadError
	s.ErrorAs(err, &readErr)
	s.Equal(s.spokes[1], readErr.Spoke)
}

func (s *AggregatorTestSuite) Test_AggregateSpokeValue_NegativeValueRejected() {
	s.registry.EXPECT().HubSpokes(s.hub).Return(s.spokes, nil)
	s.spokeValues.EXPECT().SpokeValueUSD(gomock.Any(), s.hub, s.spokes[0].Eid).Return(big.NewInt(-1), nil)

	_, err := s.aggregator.AggregateSpokeValue(context.Background(), s.hub)

	var readErr *accounting.SpokeReadError
	s.ErrorAs(err, &readErr)
	s.Equal(s.spokes[0], readErr.Spoke)
}

func (s *AggregatorTestSuite) Test_AggregateSpokeValue_SumsAndConverts() {
	s.registry.EXPECT().HubSpokes(s.hub).Return(s.spokes, nil)
	s.spokeValues.EXPECT().SpokeValueUSD(gomock.Any(), s.hub, s.spokes[0].Eid).Return(big.NewInt(300), nil)
	s.spokeValues.EXPECT().SpokeValueUSD(gomock.Any(), s.hub, s.spokes[1].Eid).Return(big.NewInt(600), nil)
	s.prices.EXPECT().UnderlyingFromUSD(gomock.Any(), s.hub, big.NewInt(900)).Return(big.NewInt(450), nil)

	underlying, err := s.aggregator.AggregateSpokeValue(context.Background(), s.hub)

	s.Nil(err)
	s.Equal(big.NewInt(450), underlying)
}

func (s *AggregatorTestSuite) Test_AggregateSpokeValue_NoLinkedSpokes() {
	s.registry.EXPECT().HubSpokes(s.hub).Return([]topology.SpokeKey{}, nil)
	s.prices.EXPECT().UnderlyingFromUSD(gomock.Any(), s.hub, big.NewInt(0)).Return(big.NewInt(0), nil)

	underlying, err := s.aggregator.AggregateSpokeValue(context.Background(), s.hub)

	s.Nil(err)
	s.Equal(big.NewInt(0), underlying)
}

func (s *AggregatorTestSuite) Test_TotalAssets_SubtractsEscrow() {
	vault := mock_vaults.NewMockVault(gomock.NewController(s.T()))
	vault.EXPECT().Address().Return(s.hub).AnyTimes()
	vault.EXPECT().TotalAssets(gomock.Any()).Return(big.NewInt(1000), nil)
	s.registry.EXPECT().HubSpokes(s.hub).Return(s.spokes, nil)
	s.spokeValues.EXPECT().SpokeValueUSD(gomock.Any(), s.hub, s.spokes[0].Eid).Return(big.NewInt(300), nil)
	s.spokeValues.EXPECT().SpokeValueUSD(gomock.Any(), s.hub, s.spokes[1].Eid).Return(big.NewInt(600), nil)
	s.prices.EXPECT().UnderlyingFromUSD(gomock.Any(), s.hub, big.NewInt(900)).Return(big.NewInt(450), nil)
	s.escrow.EXPECT().PendingNative(s.hub).Return(big.NewInt(50), nil)

	total, err := s.aggregator.TotalAssets(context.Background(), vault)

	s.Nil(err)
	s.Equal(big.NewInt(1400), total)
}

func (s *AggregatorTestSuite) Test_TotalAssets_ClampedAtZero() {
	vault := mock_vaults.NewMockVault(gomock.NewController(s.T()))
	vault.EXPECT().Address().Return(s.hub).AnyTimes()
	vault.EXPECT().TotalAssets(gomock.Any()).Return(big.NewInt(10), nil)
	s.registry.EXPECT().HubSpokes(s.hub).Return([]topology.SpokeKey{}, nil)
	s.prices.EXPECT().UnderlyingFromUSD(gomock.Any(), s.hub, big.NewInt(0)).Return(big.NewInt(0), nil)
	s.escrow.EXPECT().PendingNative(s.hub).Return(big.NewInt(50), nil)

	total, err := s.aggregator.TotalAssets(context.Background(), vault)

	s.Nil(err)
	s.Zero(total.Sign())
}

func (s *AggregatorTestSuite) Test_ConfigureSpokeOracle_NotOwner() {
	s.vaults.EXPECT().Owner(gomock.Any(), s.hub).Return(s.owner, nil)

	err := s.aggregator.ConfigureSpokeOracle(
		context.Background(),
		common.HexToAddress("0xA83114A443dA1CecEFC50368531cACE9F37fCCcb"),
		s.hub,
		30101,
		true,
	)

	s.ErrorIs(err, accounting.ErrNotVaultOwner)
}

func (s *AggregatorTestSuite) Test_ConfigureSpokeOracle_StoresFlag() {
	s.vaults.EXPECT().Owner(gomock.Any(), s.hub).Return(s.owner, nil)
	s.store.EXPECT().SetSpokeOracle(s.hub, uint32(30101), true).Return(nil)

	err := s.aggregator.ConfigureSpokeOracle(context.Background(), s.owner, s.hub, 30101, true)

	s.Nil(err)
}

func (s *AggregatorTestSuite) Test_EnableOracleAccounting_UnconfiguredSpoke() {
	s.vaults.EXPECT().Owner(gomock.Any(), s.hub).Return(s.owner, nil)
	s.registry.EXPECT().HubSpokes(s.hub).Return(s.spokes, nil)
	s.store.EXPECT().SpokeOracleConfigured(s.hub, s.spokes[0].Eid).Return(true, nil)
	s.store.EXPECT().SpokeOracleConfigured(s.hub, s.spokes[1].Eid).Return(false, nil)

	err := s.aggregator.EnableOracleAccounting(context.Background(), s.owner, s.hub)

	s.ErrorIs(err, accounting.ErrSpokeOracleNotConfigured)
}

func (s *AggregatorTestSuite) Test_EnableOracleAccounting_AllSpokesConfigured() {
	s.vaults.EXPECT().Owner(gomock.Any(), s.hub).Return(s.owner, nil)
	s.registry.EXPECT().HubSpokes(s.hub).Return(s.spokes, nil)
	s.store.EXPECT().SpokeOracleConfigured(s.hub, s.spokes[0].Eid).Return(true, nil)
	s.store.EXPECT().SpokeOracleConfigured(s.hub, s.spokes[1].Eid).Return(true, nil)
	s.store.EXPECT().SetOracleAccounting(s.hub, true).Return(nil)

	err := s.aggregator.EnableOracleAccounting(context.Background(), s.owner, s.hub)

	s.Nil(err)
}

func (s *AggregatorTestSuite) Test_DisableOracleAccounting_AlwaysPossible() {
	s.vaults.EXPECT().Owner(gomock.Any(), s.hub).Return(s.owner, nil)
	s.store.EXPECT().SetOracleAccounting(s.hub, false).Return(nil)

	err := s.aggregator.DisableOracleAccounting(context.Background(), s.owner, s.hub)

	s.Nil(err)
}

func (s *AggregatorTestSuite) Test_DisableOracleAccounting_NotOwner() {
	s.vaults.EXPECT().Owner(gomock.Any(), s.hub).Return(s.owner, nil)

	err := s.aggregator.DisableOracleAccounting(
		context.Background(),
		common.HexToAddress("0xA83114A443dA1CecEFC50368531cACE9F37fCCcb"),
		s.hub,
	)

	s.ErrorIs(err, accounting.ErrNotVaultOwner)
}

func (s *AggregatorTestSuite) Test_OracleAccountingEnabled_Delegates() {
	s.store.EXPECT().OracleAccountingEnabled(s.hub).Return(true, nil)

	enabled, err := s.aggregator.OracleAccountingEnabled(s.hub)

	s.Nil(err)
	s.True(enabled)
}
