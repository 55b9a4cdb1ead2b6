// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package evm

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/MORE-Vaults/vaults-relayer/config/vault"
)

type EVMVaultConfig struct {
	VaultConfig vault.VaultConfig
	Endpoint    string
	Key         string
	Transport   common.Address
	Oracle      common.Address
}

type RawEVMVaultConfig struct {
	vault.RawVaultConfig `mapstructure:",squash"`
	Endpoint             string `mapstructure:"endpoint"`
	Key                  string `mapstructure:"key"`
	Transport            string `mapstructure:"transport"`
	Oracle               string `mapstructure:"oracle"`
}

func (c *RawEVMVaultConfig) Validate() error {
	if err := c.RawVaultConfig.Validate(); err != nil {
		return err
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field endpoint empty for vault %s", c.Address)
	}
	if !common.IsHexAddress(c.Transport) {
		return fmt.Errorf("invalid transport address: %s", c.Transport)
	}
	if !common.IsHexAddress(c.Oracle) {
		return fmt.Errorf("invalid oracle address: %s", c.Oracle)
	}
	return nil
}

// NewEVMVaultConfig decodes and validates an instance of an
// EVMVaultConfig from raw vault config
func NewEVMVaultConfig(vaultConfig map[string]interface{}) (*EVMVaultConfig, error) {
	var c RawEVMVaultConfig
	err := mapstructure.Decode(vaultConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	general, err := vault.NewVaultConfig(vaultConfig)
	if err != nil {
		return nil, err
	}

	return &EVMVaultConfig{
		VaultConfig: *general,
		Endpoint:    c.Endpoint,
		Key:         c.Key,
		Transport:   common.HexToAddress(c.Transport),
		Oracle:      common.HexToAddress(c.Oracle),
	}, nil
}
