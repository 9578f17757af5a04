package state

import (
	"sync"

	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/common"
	tdb "github.com/bajpai244/fastpay/db"
)

const (
	defaultCacheSize = 256
	KeyAccount       = "a"
)

// LevelStore keeps RLP encoded accounts in leveldb, with an lru cache of
// decoded records in front.
// "a" + address => account
type LevelStore struct {
	mu    sync.RWMutex
	db    tdb.Database
	cache *lru.Cache
}

// NewLevelStore opens a LevelStore over an in-memory leveldb.
func NewLevelStore(cacheSize int) (*LevelStore, error) {
	return NewLevelStoreWithDB(tdb.NewMemDatabase(), cacheSize)
}

func NewLevelStoreWithDB(db tdb.Database, cacheSize int) (*LevelStore, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	l, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &LevelStore{
		db:    db,
		cache: l,
	}, nil
}

func accountKey(addr common.Address) []byte {
	return append([]byte(KeyAccount), addr.Bytes()...)
}

func (ls *LevelStore) Get(addr common.Address) (*Account, bool) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	if acc, ok := ls.cache.Get(addr); ok {
		return acc.(*Account).Copy(), true
	}
	data, err := ls.db.Get(accountKey(addr))
	if err != nil {
		if err != tdb.ErrNotFound {
			log.Errorf("failed to get account %s, err:%s", addr.Hex(), err)
		}
		return nil, false
	}
	acc := &Account{}
	if err := acc.UnmarshalRLP(data); err != nil {
		log.Errorf("failed to decode account %s, err:%s", addr.Hex(), err)
		return nil, false
	}
	ls.cache.Add(addr, acc)
	return acc.Copy(), true
}

func (ls *LevelStore) Put(addr common.Address, acc *Account) error {
	data, err := acc.MarshalRLP()
	if err != nil {
		return newStoreError("put", addr, err)
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	if err := ls.db.Put(accountKey(addr), data); err != nil {
		return newStoreError("put", addr, err)
	}
	ls.cache.Add(addr, acc.Copy())
	return nil
}

// Commit writes every account in a single leveldb batch.
func (ls *LevelStore) Commit(writes []Write) error {
	batch := ls.db.NewBatch()
	for _, w := range writes {
		data, err := w.Account.MarshalRLP()
		if err != nil {
			return newStoreError("commit", w.Address, err)
		}
		if err := batch.Put(accountKey(w.Address), data); err != nil {
			return newStoreError("commit", w.Address, err)
		}
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	if err := batch.Write(); err != nil {
		return newStoreError("commit", common.Address{}, errors.Wrap(err, "write batch"))
	}
	for _, w := range writes {
		ls.cache.Add(w.Address, w.Account.Copy())
	}
	return nil
}

func (ls *LevelStore) Delete(addr common.Address) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.cache.Remove(addr)
	if err := ls.db.Delete(accountKey(addr)); err != nil {
		return newStoreError("delete", addr, err)
	}
	return nil
}

func (ls *LevelStore) Close() error {
	ls.db.Close()
	return nil
}
