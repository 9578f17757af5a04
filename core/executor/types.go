package executor

import (
	"github.com/bajpai244/fastpay/core/types"
)

type TxValidator interface {
	ValidateTxs(txs types.Transactions) (types.Transactions, types.Transactions)
	ValidateTx(tx *types.Transaction) error
}

type BlockValidator interface {
	ValidateBlock(block *types.Block) error
}
