package db

import (
	"sync"
)

var (
	batchMgr = newBatchMgr()
)

type batchKey struct {
	db     Database
	height uint64
}

// BatchMgr keeps one pending write batch per database and block height.
type BatchMgr struct {
	batches sync.Map
}

func newBatchMgr() *BatchMgr {
	return &BatchMgr{}
}

func (bm *BatchMgr) getBatch(db Database, height uint64) Batch {
	if batch, ok := bm.batches.Load(batchKey{db, height}); ok {
		return batch.(Batch)
	}
	return nil
}

func (bm *BatchMgr) addBatch(db Database, height uint64, batch Batch) Batch {
	actual, _ := bm.batches.LoadOrStore(batchKey{db, height}, batch)
	return actual.(Batch)
}

func (bm *BatchMgr) delBatch(db Database, height uint64) {
	bm.batches.Delete(batchKey{db, height})
}

// GetBatch returns the pending batch of height, creating it on first use.
func GetBatch(db Database, height uint64) Batch {
	if batch := batchMgr.getBatch(db, height); batch != nil {
		return batch
	}
	return batchMgr.addBatch(db, height, db.NewBatch())
}

// CommitBatch writes the pending batch of height and forgets it.
func CommitBatch(db Database, height uint64) error {
	batch := GetBatch(db, height)
	if err := batch.Write(); err != nil {
		return err
	}
	batchMgr.delBatch(db, height)
	return nil
}

// DiscardBatch drops the pending batch of height without writing it.
func DiscardBatch(db Database, height uint64) {
	batchMgr.delBatch(db, height)
}
