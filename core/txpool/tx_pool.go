package txpool

import (
	"errors"
	"sync"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/types"
)

var (
	log = common.GetLogger("txpool")

	ErrPoolFull = errors.New("tx pool is full")
)

// TxPool queues executed transactions until they are sealed into a block.
// It does no validation of its own.
type TxPool struct {
	config *Config
	mu     sync.Mutex
	queue  types.Transactions
}

func NewTxPool(config *common.Config) *TxPool {
	return NewTxPoolWithConfig(newConfig(config))
}

func NewTxPoolWithConfig(config *Config) *TxPool {
	return &TxPool{
		config: config,
	}
}

// Add appends tx to the queue.
func (tp *TxPool) Add(tx *types.Transaction) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if tp.config.MaxTxSize > 0 && len(tp.queue) >= tp.config.MaxTxSize {
		log.Warningf("failed to queue tx %s, err:%s", tx.Hash().Hex(), ErrPoolFull)
		return ErrPoolFull
	}
	tp.queue = append(tp.queue, tx)
	return nil
}

// Pop removes and returns up to max txs in arrival order. max <= 0 drains the pool.
func (tp *TxPool) Pop(max int) types.Transactions {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	n := len(tp.queue)
	if max > 0 && max < n {
		n = max
	}
	if n == 0 {
		return nil
	}
	txs := make(types.Transactions, n)
	copy(txs, tp.queue[:n])
	tp.queue = append(tp.queue[:0:0], tp.queue[n:]...)
	return txs
}

func (tp *TxPool) Len() int {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return len(tp.queue)
}

// Full reports whether Add would reject a tx right now.
func (tp *TxPool) Full() bool {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return tp.config.MaxTxSize > 0 && len(tp.queue) >= tp.config.MaxTxSize
}
