// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package accounting

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/MORE-Vaults/vaults-relayer/oracle"
	"github.com/MORE-Vaults/vaults-relayer/topology"
	"github.com/MORE-Vaults/vaults-relayer/vaults"
)

var (
	ErrSpokeOracleNotConfigured = errors.New("spoke has no configured oracle source")
	ErrSpokeBudgetExceeded      = errors.New("linked spoke count exceeds aggregation budget")
	ErrNotVaultOwner            = errors.New("caller is not the vault owner")
)

// SpokeReadError reports which spoke's oracle read failed. A failed read
// aborts the whole aggregation; a spoke's value is never silently
// zeroed.
type SpokeReadError struct {
	Spoke topology.SpokeKey
	Err   error
}

func (e *SpokeReadError) Error() string {
	return fmt.Sprintf("failed reading value of spoke %s: %s", e.Spoke, e.Err)
}

func (e *SpokeReadError) Unwrap() error {
	return e.Err
}

// RegistryReader is the registry view the aggregator consults to know
// which spokes a hub aggregates.
type RegistryReader interface {
	HubSpokes(hub common.Address) ([]topology.SpokeKey, error)
}

// AccountingStore persists the per-vault oracle-accounting switch and
// the per-(hub, eid) oracle configuration flags.
type AccountingStore interface {
	SetOracleAccounting(vault common.Address, enabled bool) error
	OracleAccountingEnabled(vault common.Address) (bool, error)
	SetSpokeOracle(hub common.Address, eid uint32, configured bool) error
	SpokeOracleConfigured(hub common.Address, eid uint32) (bool, error)
}

// EscrowReader exposes the ledger's escrow total, which total-assets
// reporting must treat as a liability, not vault equity.
type EscrowReader interface {
	PendingNative(vault common.Address) (*big.Int, error)
}

// Aggregator computes the value of all spoke vaults linked to a hub and
// manages the passive oracle-accounting mode.
type Aggregator struct {
	registry    RegistryReader
	spokeValues oracle.SpokeValueSource
	prices      oracle.PriceOracle
	store       AccountingStore
	vaults      topology.VaultSource
	escrow      EscrowReader

	// maxSpokesPerCall bounds the aggregation loop; a hub that outgrows
	// it fails loudly instead of iterating unbounded.
	maxSpokesPerCall int
}

func NewAggregator(
	registry RegistryReader,
	spokeValues oracle.SpokeValueSource,
	prices oracle.PriceOracle,
	store AccountingStore,
	vaultSource topology.VaultSource,
	escrow EscrowReader,
	maxSpokesPerCall int,
) *Aggregator {
	return &Aggregator{
		registry:         registry,
		spokeValues:      spokeValues,
		prices:           prices,
		store:            store,
		vaults:           vaultSource,
		escrow:           escrow,
		maxSpokesPerCall: maxSpokesPerCall,
	}
}

// AggregateSpokeValue sums the USD value of every spoke linked to the
// hub and converts the total into the hub's underlying-asset units. The
// conversion floors, so aggregation never manufactures value. Any single
// failed spoke read fails the whole aggregation.
func (a *Aggregator) AggregateSpokeValue(ctx context.Context, hub common.Address) (*big.Int, error) {
	spokes, err := a.registry.HubSpokes(hub)
	if err != nil {
		return nil, err
	}
	if len(spokes) > a.maxSpokesPerCall {
		return nil, fmt.Errorf("%w: %d linked, budget %d", ErrSpokeBudgetExceeded, len(spokes), a.maxSpokesPerCall)
	}

	totalUSD := big.NewInt(0)
	for _, spoke := range spokes {
		value, err := a.spokeValues.SpokeValueUSD(ctx, hub, spoke.Eid)
		if err != nil {
			return nil, &SpokeReadError{Spoke: spoke, Err: err}
		}
		if value.Sign() < 0 {
			return nil, &SpokeReadError{Spoke: spoke, Err: fmt.Errorf("negative spoke value %s", value)}
		}
		totalUSD.Add(totalUSD, value)
	}

	underlying, err := a.prices.UnderlyingFromUSD(ctx, hub, totalUSD)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("hub", hub.Hex()).
		Int("spokes", len(spokes)).
		Str("totalUSD", totalUSD.String()).
		Str("underlying", underlying.String()).
		Msg("Aggregated spoke value")
	return underlying, nil
}

// TotalAssets reports the hub's total value: local vault assets plus the
// aggregated spoke value, minus escrowed native currency. Escrow backs
// open requests and counting it would double fund uncommitted deposits.
func (a *Aggregator) TotalAssets(ctx context.Context, hub vaults.Vault) (*big.Int, error) {
	local, err := hub.TotalAssets(ctx)
	if err != nil {
		return nil, err
	}
	remote, err := a.AggregateSpokeValue(ctx, hub.Address())
	if err != nil {
		return nil, err
	}
	pending, err := a.escrow.PendingNative(hub.Address())
	if err != nil {
		return nil, err
	}

	total := new(big.Int).Add(local, remote)
	total.Sub(total, pending)
	if total.Sign() < 0 {
		total.SetInt64(0)
	}
	return total, nil
}

// ConfigureSpokeOracle marks a (hub, eid) pair as having a working
// oracle source. Owner-gated.
func (a *Aggregator) ConfigureSpokeOracle(ctx context.Context, caller, hub common.Address, eid uint32, configured bool) error {
	if err := a.requireOwner(ctx, caller, hub); err != nil {
		return err
	}
	return a.store.SetSpokeOracle(hub, eid, configured)
}

// EnableOracleAccounting switches the vault to passive oracle-based
// accounting. Every currently-linked spoke must have a configured oracle
// source; the switch is all-or-nothing.
func (a *Aggregator) EnableOracleAccounting(ctx context.Context, caller, hub common.Address) error {
	if err := a.requireOwner(ctx, caller, hub); err != nil {
		return err
	}

	spokes, err := a.registry.HubSpokes(hub)
	if err != nil {
		return err
	}
	for _, spoke := range spokes {
		configured, err := a.store.SpokeOracleConfigured(hub, spoke.Eid)
		if err != nil {
			return err
		}
		if !configured {
			return fmt.Errorf("%w: %s", ErrSpokeOracleNotConfigured, spoke)
		}
	}

	if err := a.store.SetOracleAccounting(hub, true); err != nil {
		return err
	}
	log.Info().Str("hub", hub.Hex()).Msg("Oracle accounting enabled")
	return nil
}

// DisableOracleAccounting switches the vault back to on-demand
// request-based accounting. Disabling must always be possible, even
// with a broken spoke oracle, so operators are never locked in.
func (a *Aggregator) DisableOracleAccounting(ctx context.Context, caller, hub common.Address) error {
	if err := a.requireOwner(ctx, caller, hub); err != nil {
		return err
	}
	if err := a.store.SetOracleAccounting(hub, false); err != nil {
		return err
	}
	log.Info().Str("hub", hub.Hex()).Msg("Oracle accounting disabled")
	return nil
}

// OracleAccountingEnabled reports the vault's accounting mode. Consumed
// by the ledger to refuse on-demand requests in passive mode.
func (a *Aggregator) OracleAccountingEnabled(vault common.Address) (bool, error) {
	return a.store.OracleAccountingEnabled(vault)
}

func (a *Aggregator) requireOwner(ctx context.Context, caller, vault common.Address) error {
	owner, err := a.vaults.Owner(ctx, vault)
	if err != nil {
		return err
	}
	if caller != owner {
		return ErrNotVaultOwner
	}
	return nil
}
