package executor

import (
	"math"

	"github.com/bajpai244/fastpay/core/state"
	"github.com/bajpai244/fastpay/core/types"
)

// stateTransition moves tx.Amount from sender to recipient. It assumes the
// transaction already passed the validator.
type stateTransition struct {
	tx    *types.Transaction
	store state.Store
}

func newStateTransition(store state.Store, tx *types.Transaction) *stateTransition {
	return &stateTransition{
		tx:    tx,
		store: store,
	}
}

// ApplyTx stages the debit and credit of tx and applies both atomically.
func ApplyTx(store state.Store, tx *types.Transaction) error {
	return newStateTransition(store, tx).process()
}

// writes computes the records to store. A self-transfer collapses onto one
// unchanged record.
func (st *stateTransition) writes() ([]state.Write, error) {
	var (
		from   = st.tx.From()
		to     = st.tx.To()
		amount = st.tx.Amount()
	)
	sender, exist := st.store.Get(from)
	if !exist {
		return nil, errSenderNotExist
	}
	if sender.Balance < amount {
		return nil, errBalanceNotEnough
	}
	if from == to {
		return []state.Write{{Address: from, Account: sender}}, nil
	}

	recipient, exist := st.store.Get(to)
	if !exist {
		recipient = state.NewAccount(to, 0)
	}
	if recipient.Balance > math.MaxUint64-amount {
		return nil, errBalanceOverflow
	}

	sender.Balance -= amount
	recipient.Balance += amount
	return []state.Write{
		{Address: from, Account: sender},
		{Address: to, Account: recipient},
	}, nil
}

func (st *stateTransition) process() error {
	writes, err := st.writes()
	if err != nil {
		return err
	}
	if err := state.ApplyWrites(st.store, writes); err != nil {
		return storeError(err)
	}
	return nil
}
