package state

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/common"
)

// BadgerStore keeps JSON encoded accounts in an in-memory badger instance.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(common.GetLogger("badger")).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	return &BadgerStore{db: db}, nil
}

func (bs *BadgerStore) Get(addr common.Address) (*Account, bool) {
	acc := &Account{}
	err := bs.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(accountKey(addr))
		if err != nil {
			return err
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return acc.Deserialize(data)
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			log.Errorf("failed to get account %s, err:%s", addr.Hex(), err)
		}
		return nil, false
	}
	return acc, true
}

func (bs *BadgerStore) Put(addr common.Address, acc *Account) error {
	return bs.Commit([]Write{{Address: addr, Account: acc}})
}

// Commit writes every account in one badger transaction.
func (bs *BadgerStore) Commit(writes []Write) error {
	err := bs.db.Update(func(txn *badger.Txn) error {
		for _, w := range writes {
			data, err := w.Account.Serialize()
			if err != nil {
				return newStoreError("commit", w.Address, err)
			}
			if err := txn.Set(accountKey(w.Address), data); err != nil {
				return newStoreError("commit", w.Address, err)
			}
		}
		return nil
	})
	if err != nil {
		return newStoreError("commit", common.Address{}, err)
	}
	return nil
}

func (bs *BadgerStore) Delete(addr common.Address) error {
	err := bs.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(accountKey(addr))
	})
	if err != nil {
		return newStoreError("delete", addr, err)
	}
	return nil
}

func (bs *BadgerStore) Close() error {
	return bs.db.Close()
}
