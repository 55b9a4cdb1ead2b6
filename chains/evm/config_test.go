// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package evm_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/MORE-Vaults/vaults-relayer/chains/evm"
	"github.com/MORE-Vaults/vaults-relayer/config/vault"
)

type NewEVMVaultConfigTestSuite struct {
	suite.Suite
	rawConfig map[string]interface{}
}

func TestRunNewEVMVaultConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewEVMVaultConfigTestSuite))
}

func (s *NewEVMVaultConfigTestSuite) SetupTest() {
	s.rawConfig = map[string]interface{}{
		"type":      "hub",
		"address":   "0x9fDa7CEeC4c18008096C2fE2B85F05dc300F94d0",
		"eid":       30100,
		"endpoint":  "ws://evm1-1:8546",
		"key":       "aba73e17d99707fd3a65a0a7ae2b26a1bdf41c8c1e09fac03d49d2a23d764191",
		"transport": "0x92E7D2A3b52b8c2E346D4FfC849dEdC2Ab4A36C2",
		"oracle":    "0x391E76908fD87d5d8654f51D700823ea64e18b5a",
	}
}

func (s *NewEVMVaultConfigTestSuite) Test_MissingEndpoint() {
	delete(s.rawConfig, "endpoint")

	_, err := evm.NewEVMVaultConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewEVMVaultConfigTestSuite) Test_InvalidTransportAddress() {
	s.rawConfig["transport"] = "invalid"

	_, err := evm.NewEVMVaultConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewEVMVaultConfigTestSuite) Test_InvalidOracleAddress() {
	s.rawConfig["oracle"] = "invalid"

	_, err := evm.NewEVMVaultConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewEVMVaultConfigTestSuite) Test_InvalidGeneralConfig() {
	s.rawConfig["type"] = "sidecar"

	_, err := evm.NewEVMVaultConfig(s.rawConfig)

	s.NotNil(err)
}

func (s *NewEVMVaultConfigTestSuite) Test_ValidConfig() {
	cnf, err := evm.NewEVMVaultConfig(s.rawConfig)

	s.Nil(err)
	s.Equal(&evm.EVMVaultConfig{
		VaultConfig: vault.VaultConfig{
			Type:      vault.HubVaultType,
			Address:   common.HexToAddress("0x9fDa7CEeC4c18008096C2fE2B85F05dc300F94d0"),
			Eid:       30100,
			Composers: []common.Address{},
			GasLimit:  200000,
		},
		Endpoint:  "ws://evm1-1:8546",
		Key:       "aba73e17d99707fd3a65a0a7ae2b26a1bdf41c8c1e09fac03d49d2a23d764191",
		Transport: common.HexToAddress("0x92E7D2A3b52b8c2E346D4FfC849dEdC2Ab4A36C2"),
		Oracle:    common.HexToAddress("0x391E76908fD87d5d8654f51D700823ea64e18b5a"),
	}, cnf)
}
