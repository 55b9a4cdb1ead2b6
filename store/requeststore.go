// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"
	"golang.org/x/exp/slices"

	"github.com/MORE-Vaults/vaults-relayer/bridge"
	"github.com/MORE-Vaults/vaults-relayer/relayer/requests"
)

var (
	requestKey       = "vault:%s:request:%s"
	openRequestsKey  = "vault:%s:openRequests"
	pendingNativeKey = "vault:%s:pendingNative"
)

// RequestStore persists the request ledger: one entry per guid, the
// per-vault open-request index and the per-vault escrow total.
type RequestStore struct {
	db KeyValueReaderWriter
}

func NewRequestStore(db KeyValueReaderWriter) *RequestStore {
	return &RequestStore{
		db: db,
	}
}

// StoreRequest stores request info per guid
func (rs *RequestStore) StoreRequest(info *requests.CrossChainRequestInfo) error {
	key := fmt.Sprintf(requestKey, info.Vault.Hex(), info.Guid.String())
	v, err := json.Marshal(info)
	if err != nil {
		return err
	}

	return rs.db.SetByKey([]byte(key), v)
}

func (rs *RequestStore) Request(vault common.Address, guid bridge.Guid) (*requests.CrossChainRequestInfo, error) {
	key := fmt.Sprintf(requestKey, vault.Hex(), guid.String())
	v, err := rs.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, requests.ErrRequestNotFound
		}
		return nil, err
	}

	info := &requests.CrossChainRequestInfo{}
	if err := json.Unmarshal(v, info); err != nil {
		return nil, err
	}
	return info, nil
}

// AddOpenRequest adds the guid to the vault's open-request index.
// Re-adding an already indexed guid is a no-op.
func (rs *RequestStore) AddOpenRequest(vault common.Address, guid bridge.Guid) error {
	guids, err := rs.OpenRequests(vault)
	if err != nil {
		return err
	}
	if slices.Contains(guids, guid) {
		return nil
	}

	return rs.storeOpenRequests(vault, append(guids, guid))
}

func (rs *RequestStore) RemoveOpenRequest(vault common.Address, guid bridge.Guid) error {
	guids, err := rs.OpenRequests(vault)
	if err != nil {
		return err
	}
	i := slices.Index(guids, guid)
	if i == -1 {
		return nil
	}

	return rs.storeOpenRequests(vault, slices.Delete(guids, i, i+1))
}

func (rs *RequestStore) OpenRequests(vault common.Address) ([]bridge.Guid, error) {
	key := fmt.Sprintf(openRequestsKey, vault.Hex())
	v, err := rs.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return []bridge.Guid{}, nil
		}
		return nil, err
	}

	guids := []bridge.Guid{}
	if err := json.Unmarshal(v, &guids); err != nil {
		return nil, err
	}
	return guids, nil
}

func (rs *RequestStore) storeOpenRequests(vault common.Address, guids []bridge.Guid) error {
	key := fmt.Sprintf(openRequestsKey, vault.Hex())
	v, err := json.Marshal(guids)
	if err != nil {
		return err
	}
	return rs.db.SetByKey([]byte(key), v)
}

// PendingNative returns the vault's escrow total, zero when nothing has
// been escrowed yet.
func (rs *RequestStore) PendingNative(vault common.Address) (*big.Int, error) {
	key := fmt.Sprintf(pendingNativeKey, vault.Hex())
	v, err := rs.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return big.NewInt(0), nil
		}
		return nil, err
	}

	pending, ok := new(big.Int).SetString(string(v), 10)
	if !ok {
		return nil, fmt.Errorf("corrupted pending native value %q", v)
	}
	return pending, nil
}

func (rs *RequestStore) SetPendingNative(vault common.Address, total *big.Int) error {
	if total.Sign() < 0 {
		return fmt.Errorf("pending native total must not be negative, got %s", total)
	}
	key := fmt.Sprintf(pendingNativeKey, vault.Hex())
	return rs.db.SetByKey([]byte(key), []byte(total.String()))
}
