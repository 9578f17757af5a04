package db

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/types"
)

/*
	** Hash is the block hash

	"LastBlock" => hash of the latest indexed block

	"h" + block height + "n" => block hash
	"H" + block hash => block height
	"b" + block height + block hash => block
	"l" + txHash => transaction meta data {hash,number,txIndex}
*/

var log = common.GetLogger("tinydb")

const (
	KeyLastBlock = "LastBlock"
)

// TinyDB indexes sealed blocks and their transactions.
type TinyDB struct {
	db Database
}

func NewTinyDB(db Database) *TinyDB {
	return &TinyDB{db}
}

func (tdb *TinyDB) LDB() Database {
	return tdb.db
}

func hashKey(height uint64) []byte {
	return []byte("h" + strconv.FormatUint(height, 10) + "n")
}

func heightKey(hash common.Hash) []byte {
	return []byte("H" + hash.String())
}

func blockKey(height uint64, hash common.Hash) []byte {
	return []byte("b" + strconv.FormatUint(height, 10) + hash.String())
}

func txMetaKey(txHash common.Hash) []byte {
	return []byte("l" + txHash.String())
}

func (tdb *TinyDB) GetLastBlock() (common.Hash, error) {
	data, err := tdb.db.Get([]byte(KeyLastBlock))
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(data), nil
}

func (tdb *TinyDB) PutLastBlock(batch Batch, hash common.Hash) error {
	return batch.Put([]byte(KeyLastBlock), hash.Bytes())
}

func (tdb *TinyDB) GetHash(height uint64) (common.Hash, error) {
	data, err := tdb.db.Get(hashKey(height))
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(data), nil
}

func (tdb *TinyDB) PutHash(batch Batch, height uint64, hash common.Hash) error {
	return batch.Put(hashKey(height), hash.Bytes())
}

func (tdb *TinyDB) GetHeight(hash common.Hash) (uint64, error) {
	data, err := tdb.db.Get(heightKey(hash))
	if err != nil {
		return 0, err
	}
	return common.Bytes2Uint(data), nil
}

func (tdb *TinyDB) PutHeight(batch Batch, hash common.Hash, height uint64) error {
	return batch.Put(heightKey(hash), common.Uint2Bytes(height))
}

func (tdb *TinyDB) GetBlock(height uint64, hash common.Hash) (*types.Block, error) {
	data, err := tdb.db.Get(blockKey(height, hash))
	if err != nil {
		return nil, err
	}
	block := &types.Block{}
	if err := block.Deserialize(data); err != nil {
		return nil, errors.Wrap(err, "decode block")
	}
	return block, nil
}

func (tdb *TinyDB) PutBlock(batch Batch, block *types.Block) error {
	data, err := block.Serialize()
	if err != nil {
		return err
	}
	return batch.Put(blockKey(block.Height(), block.Hash), data)
}

// GetBlockByHash resolves the height of hash and loads the block.
func (tdb *TinyDB) GetBlockByHash(hash common.Hash) (*types.Block, error) {
	height, err := tdb.GetHeight(hash)
	if err != nil {
		return nil, err
	}
	return tdb.GetBlock(height, hash)
}

// GetBlockByHeight loads the canonical block at height.
func (tdb *TinyDB) GetBlockByHeight(height uint64) (*types.Block, error) {
	hash, err := tdb.GetHash(height)
	if err != nil {
		return nil, err
	}
	return tdb.GetBlock(height, hash)
}

func (tdb *TinyDB) GetTxMeta(txHash common.Hash) (*types.TxMeta, error) {
	data, err := tdb.db.Get(txMetaKey(txHash))
	if err != nil {
		return nil, err
	}
	txMeta := &types.TxMeta{}
	if err := txMeta.Deserialize(data); err != nil {
		return nil, errors.Wrap(err, "decode tx meta")
	}
	return txMeta, nil
}

// PutTxMetas put transactions' meta to db in batch
func (tdb *TinyDB) PutTxMetas(batch Batch, txs types.Transactions, hash common.Hash, height uint64) error {
	for i, tx := range txs {
		txMeta := &types.TxMeta{
			Hash:    hash,
			Number:  height,
			TxIndex: uint64(i),
		}
		data, err := txMeta.Serialize()
		if err != nil {
			return err
		}
		if err := batch.Put(txMetaKey(tx.Hash()), data); err != nil {
			return err
		}
	}
	return nil
}

// WriteBlock stages every index entry of block into the pending batch of its
// height and commits the batch.
func (tdb *TinyDB) WriteBlock(block *types.Block) error {
	height := block.Height()
	batch := GetBatch(tdb.db, height)

	stage := func() error {
		if err := tdb.PutBlock(batch, block); err != nil {
			return err
		}
		if err := tdb.PutHash(batch, height, block.Hash); err != nil {
			return err
		}
		if err := tdb.PutHeight(batch, block.Hash, height); err != nil {
			return err
		}
		if err := tdb.PutTxMetas(batch, block.Transactions, block.Hash, height); err != nil {
			return err
		}
		return tdb.PutLastBlock(batch, block.Hash)
	}
	if err := stage(); err != nil {
		DiscardBatch(tdb.db, height)
		log.Errorf("failed to stage block #%d, err:%s", height, err)
		return err
	}
	if err := CommitBatch(tdb.db, height); err != nil {
		DiscardBatch(tdb.db, height)
		log.Errorf("failed to commit block #%d, err:%s", height, err)
		return err
	}
	return nil
}
