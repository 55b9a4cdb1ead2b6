// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package evm

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var ErrVaultNotDeployed = errors.New("vault is not a locally deployed vault")

// VaultSet answers topology validation questions over the vaults this
// relayer is configured with.
type VaultSet struct {
	vaults map[common.Address]*VaultContract
}

func NewVaultSet() *VaultSet {
	return &VaultSet{
		vaults: make(map[common.Address]*VaultContract),
	}
}

func (s *VaultSet) Add(vault *VaultContract) {
	s.vaults[vault.Address()] = vault
}

func (s *VaultSet) IsDeployedVault(addr common.Address) bool {
	_, ok := s.vaults[addr]
	return ok
}

func (s *VaultSet) IsHub(ctx context.Context, addr common.Address) (bool, error) {
	vault, ok := s.vaults[addr]
	if !ok {
		return false, ErrVaultNotDeployed
	}
	return vault.IsHub(ctx)
}

func (s *VaultSet) Owner(ctx context.Context, addr common.Address) (common.Address, error) {
	vault, ok := s.vaults[addr]
	if !ok {
		return common.Address{}, ErrVaultNotDeployed
	}
	return vault.Owner(ctx)
}

func (s *VaultSet) DeployedAt(ctx context.Context, addr common.Address) (time.Time, error) {
	vault, ok := s.vaults[addr]
	if !ok {
		return time.Time{}, ErrVaultNotDeployed
	}
	return vault.DeployedAt(ctx)
}
