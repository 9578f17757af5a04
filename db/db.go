package db

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LDBDatabase is a Database backed by goleveldb.
type LDBDatabase struct {
	db *leveldb.DB
}

// NewMemDatabase returns a leveldb database kept entirely in memory.
func NewMemDatabase() *LDBDatabase {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		// memory storage cannot fail to open
		panic(err)
	}
	return &LDBDatabase{db: db}
}

func (ldb *LDBDatabase) Put(key []byte, value []byte) error {
	return ldb.db.Put(key, value, nil)
}

func (ldb *LDBDatabase) Get(key []byte) ([]byte, error) {
	return ldb.db.Get(key, nil)
}

func (ldb *LDBDatabase) Has(key []byte) (bool, error) {
	return ldb.db.Has(key, nil)
}

func (ldb *LDBDatabase) Delete(key []byte) error {
	return ldb.db.Delete(key, nil)
}

func (ldb *LDBDatabase) Close() {
	if err := ldb.db.Close(); err != nil {
		log.Errorf("failed to close leveldb, err:%s", err)
	}
}

func (ldb *LDBDatabase) NewBatch() Batch {
	return &ldbBatch{db: ldb.db, b: new(leveldb.Batch)}
}

// NewIterator iterates over the keys sharing prefix.
func (ldb *LDBDatabase) NewIterator(prefix []byte) iterator.Iterator {
	return ldb.db.NewIterator(util.BytesPrefix(prefix), nil)
}

type ldbBatch struct {
	db *leveldb.DB
	b  *leveldb.Batch
}

func (b *ldbBatch) Put(key, value []byte) error {
	b.b.Put(key, value)
	return nil
}

func (b *ldbBatch) Delete(key []byte) error {
	b.b.Delete(key)
	return nil
}

// Write applies every staged operation atomically.
func (b *ldbBatch) Write() error {
	return b.db.Write(b.b, nil)
}

func (b *ldbBatch) Len() int {
	return b.b.Len()
}

func (b *ldbBatch) Reset() {
	b.b.Reset()
}
