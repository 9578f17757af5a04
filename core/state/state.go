package state

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/common"
)

var (
	log = common.GetLogger("state")

	errUnknownBackend = errors.New("unknown state backend")
)

// Store maps addresses to account records. Get never fails: a record that
// cannot be read is reported as absent.
type Store interface {
	Get(addr common.Address) (*Account, bool)
	Put(addr common.Address, acc *Account) error
}

// Committer is implemented by stores able to apply a set of writes
// all-or-nothing.
type Committer interface {
	Commit(writes []Write) error
}

// Deleter is implemented by stores that can drop a record. It lets the
// journal undo the creation of an account.
type Deleter interface {
	Delete(addr common.Address) error
}

// Backend is a store owned by the node.
type Backend interface {
	Store
	Committer
	Deleter
	Close() error
}

// Write is one staged upsert.
type Write struct {
	Address common.Address
	Account *Account
}

// StoreError is returned when a backend rejects an operation.
type StoreError struct {
	Op      string
	Address common.Address
	Err     error
}

func (e *StoreError) Error() string {
	if e.Address == (common.Address{}) {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Address.Hex(), e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func newStoreError(op string, addr common.Address, err error) *StoreError {
	if se, ok := err.(*StoreError); ok {
		return se
	}
	return &StoreError{Op: op, Address: addr, Err: err}
}

// ApplyWrites applies writes to store all-or-nothing. Stores implementing
// Committer commit natively; for the others every applied write is journaled
// and undone if a later one fails. Failures are reported as *StoreError.
func ApplyWrites(store Store, writes []Write) error {
	if len(writes) == 0 {
		return nil
	}
	if c, ok := store.(Committer); ok {
		if err := c.Commit(writes); err != nil {
			return newStoreError("commit", common.Address{}, err)
		}
		return nil
	}

	j := newJournal()
	for _, w := range writes {
		var entry journalEntry
		if prev, exist := store.Get(w.Address); exist {
			entry = balanceChange{account: w.Address, prev: prev}
		} else {
			entry = createAccountChange{account: w.Address}
		}
		// a rejected Put changed nothing, so only applied writes are journaled
		if err := store.Put(w.Address, w.Account); err != nil {
			if rerr := j.revert(store, 0); rerr != nil {
				log.Errorf("failed to revert partial writes, err:%s", rerr)
			}
			return newStoreError("put", w.Address, err)
		}
		j.append(entry)
	}
	return nil
}

// NewStore opens the backend named by the state.backend config key.
func NewStore(config *common.Config) (Backend, error) {
	backend := config.GetString(common.StateBackend)
	switch backend {
	case common.MemoryBackend, "":
		return NewMemoryStore(), nil
	case common.LevelDBBackend:
		return NewLevelStore(config.GetInt(common.StateCacheSize))
	case common.BadgerBackend:
		return NewBadgerStore()
	default:
		return nil, errors.Wrap(errUnknownBackend, backend)
	}
}
