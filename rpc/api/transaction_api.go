package api

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/executor"
	"github.com/bajpai244/fastpay/core/txpool"
	"github.com/bajpai244/fastpay/core/types"
	"github.com/bajpai244/fastpay/rpc/utils"
)

var log = common.GetLogger("rpc")

type TransactionAPI struct {
	backend Backend
}

func NewTransactionAPI(backend Backend) *TransactionAPI {
	return &TransactionAPI{backend}
}

// GetTransactionByHash returns a sealed transaction with its position in the chain.
func (api *TransactionAPI) GetTransactionByHash(hash common.Hash) *utils.Transaction {
	txMeta, err := api.backend.DB().GetTxMeta(hash)
	if err != nil {
		return nil
	}
	block, err := api.backend.DB().GetBlock(txMeta.Number, txMeta.Hash)
	if err != nil || txMeta.TxIndex >= uint64(len(block.Transactions)) {
		log.Errorf("failed to load tx %s from block #%d, err:%v", hash.Hex(), txMeta.Number, err)
		return nil
	}
	return convertTransaction(block.Transactions[txMeta.TxIndex], block, txMeta.TxIndex)
}

// SendRawTransaction executes a signed transfer (canonical encoding followed
// by the 65 byte signature) and queues it for the next block.
func (api *TransactionAPI) SendRawTransaction(input hexutil.Bytes) (common.Hash, error) {
	tx, err := types.DecodeRawTransaction(input)
	if err != nil {
		return common.Hash{}, utils.ErrInvalidParams(err.Error())
	}
	if err := api.backend.SubmitTx(tx); err != nil {
		if executor.IsInvalidTx(err) {
			return common.Hash{}, utils.ErrInvalidTx(executor.Reason(err))
		}
		if err == txpool.ErrPoolFull {
			return common.Hash{}, utils.ErrInternal(err.Error())
		}
		return common.Hash{}, err
	}
	return tx.Hash(), nil
}
