// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package vault

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
)

// RawVaultConfig is the raw per-vault entry of the configuration file.
type RawVaultConfig struct {
	Type      string   `mapstructure:"type" json:"type"`
	Address   string   `mapstructure:"address" json:"address"`
	Eid       uint32   `mapstructure:"eid" json:"eid"`
	Composers []string `mapstructure:"composers" json:"composers"`
	GasLimit  uint64   `mapstructure:"gasLimit" json:"gasLimit" default:"200000"`
}

const (
	HubVaultType   = "hub"
	SpokeVaultType = "spoke"
)

type VaultConfig struct {
	Type    string
	Address common.Address
	// Eid is this vault chain's endpoint id within the transport.
	Eid uint32
	// Composers are relay contracts known to open requests on behalf of
	// end users; their stuck requests are refundable without waiting
	// for the maximum delay.
	Composers []common.Address
	GasLimit  uint64
}

func (c *RawVaultConfig) Validate() error {
	if c.Type != HubVaultType && c.Type != SpokeVaultType {
		return fmt.Errorf("vault type must be %q or %q, got %q", HubVaultType, SpokeVaultType, c.Type)
	}
	if !common.IsHexAddress(c.Address) {
		return fmt.Errorf("invalid vault address: %s", c.Address)
	}
	if c.Eid == 0 {
		return fmt.Errorf("required field eid empty for vault %s", c.Address)
	}
	for _, composer := range c.Composers {
		if !common.IsHexAddress(composer) {
			return fmt.Errorf("invalid composer address: %s", composer)
		}
	}
	return nil
}

// NewVaultConfig decodes and validates an instance of a VaultConfig from
// raw vault config
func NewVaultConfig(vaultConfig map[string]interface{}) (*VaultConfig, error) {
	var c RawVaultConfig
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

	composers := make([]common.Address, len(c.Composers))
	for i, composer := range c.Composers {
		composers[i] = common.HexToAddress(composer)
	}

	return &VaultConfig{
		Type:      c.Type,
		Address:   common.HexToAddress(c.Address),
		Eid:       c.Eid,
		Composers: composers,
		GasLimit:  c.GasLimit,
	}, nil
}
