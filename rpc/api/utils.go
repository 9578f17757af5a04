package api

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/types"
	"github.com/bajpai244/fastpay/rpc/utils"
)

func convertBlock(blk *types.Block, fullTx bool) *utils.Block {
	if blk == nil {
		return nil
	}
	txs := make([]interface{}, 0, len(blk.Transactions))
	for i, tx := range blk.Transactions {
		if fullTx {
			txs = append(txs, convertTransaction(tx, blk, uint64(i)))
		} else {
			txs = append(txs, tx.Hash())
		}
	}
	return &utils.Block{
		Number:        hexutil.Uint64(blk.Height()),
		Hash:          blk.Hash,
		ParentHash:    blk.ParentHash,
		Nonce:         common.Uint2Bytes(blk.Nonce),
		Timestamp:     hexutil.Uint64(blk.Timestamp),
		Miner:         blk.Miner,
		StateRoot:     blk.StateRoot,
		ReceiptsRoot:  blk.ReceiptsRoot,
		LogsBloom:     blk.LogsBloom,
		GasUsed:       (*hexutil.Big)(blk.GasUsed.ToBig()),
		GasLimit:      (*hexutil.Big)(blk.GasLimit.ToBig()),
		BaseFeePerGas: (*hexutil.Big)(blk.BaseFeePerGas.ToBig()),
		Transactions:  txs,
	}
}

func convertTransaction(tx *types.Transaction, blk *types.Block, index uint64) *utils.Transaction {
	if tx == nil {
		return nil
	}
	rtx := &utils.Transaction{
		Hash:      tx.Hash(),
		From:      tx.From(),
		To:        tx.To(),
		Value:     hexutil.Uint64(tx.Amount()),
		Signature: tx.Signature(),
	}
	if blk != nil {
		hash := blk.Hash
		number := hexutil.Uint64(blk.Height())
		idx := hexutil.Uint64(index)
		rtx.BlockHash = &hash
		rtx.BlockNumber = &number
		rtx.TransactionIndex = &idx
	}
	return rtx
}
