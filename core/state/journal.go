package state

import (
	"github.com/bajpai244/fastpay/common"
)

type journalEntry interface {
	undo(Store) error
}

// journal contains the list of store modifications applied by one ApplyWrites call.
type journal struct {
	entries []journalEntry
}

func newJournal() *journal {
	return &journal{}
}

func (j *journal) append(entry journalEntry) {
	j.entries = append(j.entries, entry)
}

// revert undoes entries down to snapshot, newest first. Undo keeps going past
// a failing entry and returns the first error.
func (j *journal) revert(store Store, snapshot int) error {
	var first error
	for i := len(j.entries) - 1; i >= snapshot; i-- {
		if err := j.entries[i].undo(store); err != nil && first == nil {
			first = err
		}
	}
	j.entries = j.entries[:snapshot]
	return first
}

type (
	// Account did not exist before the write
	createAccountChange struct {
		account common.Address
	}
	// Account existed with the given record
	balanceChange struct {
		account common.Address
		prev    *Account
	}
)

func (ch createAccountChange) undo(s Store) error {
	if d, ok := s.(Deleter); ok {
		return d.Delete(ch.account)
	}
	// without delete support the best restore is an empty record
	return s.Put(ch.account, NewAccount(ch.account, 0))
}

func (ch balanceChange) undo(s Store) error {
	return s.Put(ch.account, ch.prev)
}
