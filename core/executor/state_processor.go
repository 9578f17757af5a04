package executor

import (
	"github.com/bajpai244/fastpay/core/types"
)

// ProcessTxs executes txs in order and splits them by outcome.
func (ex *Executor) ProcessTxs(txs types.Transactions) (valid types.Transactions, invalid types.Transactions) {
	for _, tx := range txs {
		if err := ex.Execute(tx); err != nil {
			log.Debugf("drop tx %s, err:%s", tx.Hash().Hex(), err)
			invalid = append(invalid, tx)
			continue
		}
		valid = append(valid, tx)
	}
	return valid, invalid
}
