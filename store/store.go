// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package store

// KeyValueReaderWriter is the persistence boundary all stores write
// through, backed by leveldb in production.
type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}
