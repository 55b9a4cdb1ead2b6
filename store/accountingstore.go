// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package store

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"
)

var (
	oracleAccountingKey = "vault:%s:oracleAccounting"
	spokeOracleKey      = "hub:%s:eid:%d:oracle"

	flagSet   = []byte{1}
	flagUnset = []byte{0}
)

// AccountingStore persists the per-vault oracle-accounting switch and
// the per-(hub, eid) oracle configuration flags.
type AccountingStore struct {
	db KeyValueReaderWriter
}

func NewAccountingStore(db KeyValueReaderWriter) *AccountingStore {
	return &AccountingStore{
		db: db,
	}
}

func (as *AccountingStore) SetOracleAccounting(vault common.Address, enabled bool) error {
	key := fmt.Sprintf(oracleAccountingKey, vault.Hex())
	return as.db.SetByKey([]byte(key), flag(enabled))
}

func (as *AccountingStore) OracleAccountingEnabled(vault common.Address) (bool, error) {
	key := fmt.Sprintf(oracleAccountingKey, vault.Hex())
	return as.flagByKey([]byte(key))
}

func (as *AccountingStore) SetSpokeOracle(hub common.Address, eid uint32, configured bool) error {
	key := fmt.Sprintf(spokeOracleKey, hub.Hex(), eid)
	return as.db.SetByKey([]byte(key), flag(configured))
}

func (as *AccountingStore) SpokeOracleConfigured(hub common.Address, eid uint32) (bool, error) {
	key := fmt.Sprintf(spokeOracleKey, hub.Hex(), eid)
	return as.flagByKey([]byte(key))
}

func (as *AccountingStore) flagByKey(key []byte) (bool, error) {
	v, err := as.db.GetByKey(key)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return len(v) == 1 && v[0] == flagSet[0], nil
}

func flag(b bool) []byte {
	if b {
		return flagSet
	}
	return flagUnset
}
