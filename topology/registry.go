// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package topology

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/MORE-Vaults/vaults-relayer/bridge"
)

var (
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrUntrustedSender    = errors.New("message sender is not a trusted peer")
	ErrNotHubVault        = errors.New("target vault is not a hub vault")
	ErrOwnerMismatch      = errors.New("spoke owner does not match hub owner")
	ErrSpokeNotFinalized  = errors.New("spoke vault deployment not finalized")
	ErrNotVaultOwner      = errors.New("caller is not the vault owner")
)

// SpokeKey identifies a spoke vault instance: the transport endpoint id
// of its chain and its address there.
type SpokeKey struct {
	Eid   uint32         `json:"eid"`
	Vault common.Address `json:"vault"`
}

func (k SpokeKey) String() string {
	return fmt.Sprintf("%d:%s", k.Eid, k.Vault.Hex())
}

type MessageType string

const (
	RegisterSpokeMessage MessageType = "registerSpoke"
	SpokeAddedMessage    MessageType = "spokeAdded"
	BootstrapMessage     MessageType = "bootstrap"
)

// Message is the wire format for hub/spoke topology messages. Spokes
// holds the registering spoke, the newly added sibling or the full
// bootstrap set depending on Type.
type Message struct {
	Type   MessageType    `json:"type"`
	Hub    common.Address `json:"hub"`
	Owner  common.Address `json:"owner,omitempty"`
	Spokes []SpokeKey     `json:"spokes"`
}

// RegistryStore persists the two topology indices: hub -> {spokes} and
// spoke -> hub. AddHubSpoke must be an idempotent set-add.
type RegistryStore interface {
	AddHubSpoke(hub common.Address, spoke SpokeKey) error
	HubSpokes(hub common.Address) ([]SpokeKey, error)
	SpokeHub(spoke SpokeKey) (common.Address, bool, error)
	SetSpokeHub(spoke SpokeKey, hub common.Address) error
}

// VaultSource answers questions about locally deployed vaults during
// message validation and outbound gating.
type VaultSource interface {
	IsDeployedVault(addr common.Address) bool
	IsHub(ctx context.Context, addr common.Address) (bool, error)
	Owner(ctx context.Context, addr common.Address) (common.Address, error)
	DeployedAt(ctx context.Context, addr common.Address) (time.Time, error)
}

// PeerTrust mirrors the transport's peer-trust mechanism: inbound
// topology messages are accepted only from senders it vouches for.
type PeerTrust interface {
	IsTrustedPeer(from SpokeKey) bool
}

// Registry maintains the local chain's hub/spoke links. Inbound messages
// arrive out of order and possibly duplicated, so every handler merges
// idempotently and never removes entries.
type Registry struct {
	store   RegistryStore
	vaults  VaultSource
	trust   PeerTrust
	adapter bridge.BridgeAdapter

	// finalizationDelay is the minimum time after a spoke vault's own
	// deployment before it may request linkage, so that vaults are not
	// linked mid-construction.
	finalizationDelay time.Duration
}

func NewRegistry(
	store RegistryStore,
	vaults VaultSource,
	trust PeerTrust,
	adapter bridge.BridgeAdapter,
	finalizationDelay time.Duration,
) *Registry {
	return &Registry{
		store:             store,
		vaults:            vaults,
		trust:             trust,
		adapter:           adapter,
		finalizationDelay: finalizationDelay,
	}
}

// HandleMessage processes one inbound topology message from the
// transport. Unknown message tags fail loudly; forward compatibility
// requires new tags, not silent ignoring.
func (r *Registry) HandleMessage(ctx context.Context, from SpokeKey, msg *Message) error {
	if !r.trust.IsTrustedPeer(from) {
		return ErrUntrustedSender
	}

	switch msg.Type {
	case RegisterSpokeMessage:
		return r.handleRegisterSpoke(ctx, from, msg)
	case SpokeAddedMessage, BootstrapMessage:
		return r.mergeSpokes(msg)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMessageType, msg.Type)
	}
}

// handleRegisterSpoke links a remote spoke to a local hub vault after
// validating that the hub is one of ours and that ownership matches
// across both vaults.
func (r *Registry) handleRegisterSpoke(ctx context.Context, from SpokeKey, msg *Message) error {
	if !r.vaults.IsDeployedVault(msg.Hub) {
		return ErrNotHubVault
	}
	isHub, err := r.vaults.IsHub(ctx, msg.Hub)
	if err != nil {
		return err
	}
	if !isHub {
		return ErrNotHubVault
	}

	hubOwner, err := r.vaults.Owner(ctx, msg.Hub)
	if err != nil {
		return err
	}
	if msg.Owner != hubOwner {
		return ErrOwnerMismatch
	}

	if _, exists, err := r.store.SpokeHub(from); err != nil {
		return err
	} else if !exists {
		if err := r.store.SetSpokeHub(from, msg.Hub); err != nil {
			return err
		}
	}
	if err := r.store.AddHubSpoke(msg.Hub, from); err != nil {
		return err
	}

	log.Info().
		Str("hub", msg.Hub.Hex()).
		Str("spoke", from.String()).
		Msg("Registered spoke")
	return nil
}

// mergeSpokes folds spoke-added and bootstrap payloads into the local
// hub -> {spokes} cache. Spokes trust their hub's broadcast; merge only,
// never replace, since delivery order is not guaranteed.
func (r *Registry) mergeSpokes(msg *Message) error {
	for _, spoke := range msg.Spokes {
		if err := r.store.AddHubSpoke(msg.Hub, spoke); err != nil {
			return err
		}
	}
	log.Debug().
		Str("hub", msg.Hub.Hex()).
		Int("spokes", len(msg.Spokes)).
		Str("type", string(msg.Type)).
		Msg("Merged spoke set")
	return nil
}

// HubSpokes lists the spokes linked to a hub.
func (r *Registry) HubSpokes(hub common.Address) ([]SpokeKey, error) {
	return r.store.HubSpokes(hub)
}

// SpokeHub resolves the hub a spoke reports to.
func (r *Registry) SpokeHub(spoke SpokeKey) (common.Address, bool, error) {
	return r.store.SpokeHub(spoke)
}

// Destinations maps a hub's linked spokes to transport destinations, for
// the ledger's reads and broadcasts.
func (r *Registry) Destinations(hub common.Address) ([]bridge.Destination, error) {
	spokes, err := r.store.HubSpokes(hub)
	if err != nil {
		return nil, err
	}
	dests := make([]bridge.Destination, len(spokes))
	for i, s := range spokes {
		dests[i] = bridge.Destination{Eid: s.Eid, Receiver: s.Vault}
	}
	return dests, nil
}

// SeedFromSnapshot merges a spoke-set snapshot into the registry,
// typically once at startup from the shared snapshot document.
func (r *Registry) SeedFromSnapshot(snapshot *SpokeSetSnapshot) error {
	return r.mergeSpokes(&Message{
		Type:   BootstrapMessage,
		Hub:    snapshot.Hub,
		Spokes: snapshot.Spokes,
	})
}
