// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"
	"golang.org/x/exp/slices"

	"github.com/MORE-Vaults/vaults-relayer/topology"
)

var (
	hubSpokesKey = "hub:%s:spokes"
	spokeHubKey  = "spoke:%d:%s:hub"
)

// RegistryStore persists the two hub/spoke topology indices. Both are
// merge-only: links are added idempotently and never removed.
type RegistryStore struct {
	db KeyValueReaderWriter
}

func NewRegistryStore(db KeyValueReaderWriter) *RegistryStore {
	return &RegistryStore{
		db: db,
	}
}

// AddHubSpoke merges a spoke into the hub's spoke set. Re-adding an
// existing link is a no-op, never a duplicate or an error.
func (rs *RegistryStore) AddHubSpoke(hub common.Address, spoke topology.SpokeKey) error {
	spokes, err := rs.HubSpokes(hub)
	if err != nil {
		return err
	}
	if slices.Contains(spokes, spoke) {
		return nil
	}

	spokes = append(spokes, spoke)
	slices.SortFunc(spokes, func(a, b topology.SpokeKey) int {
		if a.Eid != b.Eid {
			return int(a.Eid) - int(b.Eid)
		}
		return a.Vault.Cmp(b.Vault)
	})

	key := fmt.Sprintf(hubSpokesKey, hub.Hex())
	v, err := json.Marshal(spokes)
	if err != nil {
		return err
	}
	return rs.db.SetByKey([]byte(key), v)
}

func (rs *RegistryStore) HubSpokes(hub common.Address) ([]topology.SpokeKey, error) {
	key := fmt.Sprintf(hubSpokesKey, hub.Hex())
	v, err := rs.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return []topology.SpokeKey{}, nil
		}
		return nil, err
	}

	spokes := []topology.SpokeKey{}
	if err := json.Unmarshal(v, &spokes); err != nil {
		return nil, err
	}
	return spokes, nil
}

// SpokeHub resolves the single hub a spoke reports to.
func (rs *RegistryStore) SpokeHub(spoke topology.SpokeKey) (common.Address, bool, error) {
	key := fmt.Sprintf(spokeHubKey, spoke.Eid, spoke.Vault.Hex())
	v, err := rs.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return common.Address{}, false, nil
		}
		return common.Address{}, false, err
	}

	return common.BytesToAddress(v), true, nil
}

func (rs *RegistryStore) SetSpokeHub(spoke topology.SpokeKey, hub common.Address) error {
	key := fmt.Sprintf(spokeHubKey, spoke.Eid, spoke.Vault.Hex())
	return rs.db.SetByKey([]byte(key), hub.Bytes())
}
