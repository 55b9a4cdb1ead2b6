// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package topology

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/MORE-Vaults/vaults-relayer/bridge"
)

// RequestRegisterSpoke asks a remote hub to link a local spoke vault.
// Only the spoke's owner may request linkage, and only after the
// finalization delay has elapsed since the spoke's deployment.
func (r *Registry) RequestRegisterSpoke(
	ctx context.Context,
	caller common.Address,
	spoke common.Address,
	hubDest bridge.Destination,
	hub common.Address,
	opts bridge.TransportOptions,
	value *big.Int,
) (bridge.Guid, error) {
	owner, err := r.vaults.Owner(ctx, spoke)
	if err != nil {
		return bridge.Guid{}, err
	}
	if caller != owner {
		return bridge.Guid{}, ErrNotVaultOwner
	}

	deployedAt, err := r.vaults.DeployedAt(ctx, spoke)
	if err != nil {
		return bridge.Guid{}, err
	}
	if time.Since(deployedAt) < r.finalizationDelay {
		return bridge.Guid{}, ErrSpokeNotFinalized
	}

	payload, err := json.Marshal(&Message{
		Type:  RegisterSpokeMessage,
		Hub:   hub,
		Owner: owner,
	})
	if err != nil {
		return bridge.Guid{}, err
	}

	guid, err := r.adapter.Send(ctx, hubDest, payload, opts, caller, value)
	if err != nil {
		return bridge.Guid{}, err
	}
	log.Info().
		Str("guid", guid.String()).
		Str("spoke", spoke.Hex()).
		Str("hub", hub.Hex()).
		Msg("Requested spoke registration")
	return guid, nil
}

// HubSendBootstrap pushes the hub's complete known spoke set to a single
// spoke. The receiving side merges, so re-sending is always safe.
func (r *Registry) HubSendBootstrap(
	ctx context.Context,
	caller common.Address,
	hub common.Address,
	target bridge.Destination,
	opts bridge.TransportOptions,
	value *big.Int,
) (bridge.Guid, error) {
	if err := r.requireOwner(ctx, caller, hub); err != nil {
		return bridge.Guid{}, err
	}

	spokes, err := r.store.HubSpokes(hub)
	if err != nil {
		return bridge.Guid{}, err
	}
	payload, err := json.Marshal(&Message{
		Type:   BootstrapMessage,
		Hub:    hub,
		Spokes: spokes,
	})
	if err != nil {
		return bridge.Guid{}, err
	}

	guid, err := r.adapter.Send(ctx, target, payload, opts, caller, value)
	if err != nil {
		return bridge.Guid{}, err
	}
	log.Info().
		Str("guid", guid.String()).
		Str("hub", hub.Hex()).
		Uint32("eid", target.Eid).
		Int("spokes", len(spokes)).
		Msg("Sent bootstrap snapshot")
	return guid, nil
}

// HubBroadcastSpokeAdded informs every destination spoke of a newly
// linked sibling. A single fee budget covers the whole fan-out; the last
// send flushes the remainder back through the transport's refund.
func (r *Registry) HubBroadcastSpokeAdded(
	ctx context.Context,
	caller common.Address,
	hub common.Address,
	added SpokeKey,
	dests []bridge.Destination,
	opts bridge.TransportOptions,
	budget *big.Int,
) ([]bridge.Guid, error) {
	if err := r.requireOwner(ctx, caller, hub); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(&Message{
		Type:   SpokeAddedMessage,
		Hub:    hub,
		Spokes: []SpokeKey{added},
	})
	if err != nil {
		return nil, err
	}

	guids, err := bridge.FanOut(ctx, r.adapter, dests, payload, opts, caller, budget)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("hub", hub.Hex()).
		Str("spoke", added.String()).
		Int("destinations", len(dests)).
		Msg("Broadcast spoke addition")
	return guids, nil
}

func (r *Registry) requireOwner(ctx context.Context, caller, vault common.Address) error {
	owner, err := r.vaults.Owner(ctx, vault)
	if err != nil {
		return err
	}
	if caller != owner {
		return ErrNotVaultOwner
	}
	return nil
}
