// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package topology

import (
	"encoding/json"
	"os"
	"sync"
)

// SnapshotStore caches the last fetched spoke-set snapshot in a file so
// the relayer can start without reaching the shared snapshot bucket.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

func NewSnapshotStore(filePath string) *SnapshotStore {
	return &SnapshotStore{
		path: filePath,
	}
}

// StoreSnapshot stores a snapshot into a file
func (ss *SnapshotStore) StoreSnapshot(snapshot *SpokeSetSnapshot) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	f, err := os.OpenFile(ss.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	defer f.Close()

	sb, err := json.Marshal(&snapshot)
	if err != nil {
		return err
	}

	_, err = f.Write(sb)
	return err
}

// Snapshot fetches the cached snapshot from file
func (ss *SnapshotStore) Snapshot() (*SpokeSetSnapshot, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	s := &SpokeSetSnapshot{}
	sb, err := os.ReadFile(ss.path)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(sb, &s)
	if err != nil {
		return nil, err
	}
	return s, err
}
