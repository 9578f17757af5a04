package executor

import (
	"sync"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/state"
	"github.com/bajpai244/fastpay/core/types"
)

var (
	log = common.GetLogger("executor")
)

// Executor validates transactions and applies them to the account store.
// Calls are serialized, so each Execute sees the effects of the previous one.
type Executor struct {
	mu        sync.Mutex
	store     state.Store
	validator TxValidator
}

func New(store state.Store) *Executor {
	return &Executor{
		store:     store,
		validator: NewTxValidator(store),
	}
}

// Execute validates tx and, on success, moves its amount from sender to
// recipient. Every failure is an *InvalidTxError and leaves the store untouched.
func (ex *Executor) Execute(tx *types.Transaction) error {
	ex.mu.Lock()
	defer ex.mu.Unlock()

	if err := ex.validator.ValidateTx(tx); err != nil {
		return err
	}
	if err := ApplyTx(ex.store, tx); err != nil {
		log.Debugf("failed to apply tx %s, err:%s", tx.Hash().Hex(), err)
		return err
	}
	return nil
}

// Balance returns the balance of addr and whether its record exists.
func (ex *Executor) Balance(addr common.Address) (uint64, bool) {
	acc, exist := ex.store.Get(addr)
	if !exist {
		return 0, false
	}
	return acc.Balance, true
}

func (ex *Executor) Store() state.Store {
	return ex.store
}
