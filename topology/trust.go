// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package topology

import "sync"

// StaticPeerTrust is a peer-trust source backed by an explicit set of
// spoke keys, seeded from configuration or a spoke-set snapshot.
type StaticPeerTrust struct {
	mu    sync.RWMutex
	peers map[SpokeKey]struct{}
}

func NewStaticPeerTrust(peers []SpokeKey) *StaticPeerTrust {
	set := make(map[SpokeKey]struct{}, len(peers))
	for _, p := range peers {
		set[p] = struct{}{}
	}
	return &StaticPeerTrust{peers: set}
}

func (t *StaticPeerTrust) IsTrustedPeer(from SpokeKey) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.peers[from]
	return ok
}

// AddPeer extends the trusted set, used when a snapshot adds spokes
// after startup.
func (t *StaticPeerTrust) AddPeer(peer SpokeKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.peers[peer] = struct{}{}
}
