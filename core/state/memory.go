package state

import (
	"sync"

	"github.com/bajpai244/fastpay/common"
)

// MemoryStore keeps accounts in a map. It never fails.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[common.Address]Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[common.Address]Account),
	}
}

func (ms *MemoryStore) Get(addr common.Address) (*Account, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	acc, ok := ms.accounts[addr]
	if !ok {
		return nil, false
	}
	return &acc, true
}

func (ms *MemoryStore) Put(addr common.Address, acc *Account) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.accounts[addr] = *acc
	return nil
}

// Commit applies writes under one lock, so readers observe either none or all of them.
func (ms *MemoryStore) Commit(writes []Write) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, w := range writes {
		ms.accounts[w.Address] = *w.Account
	}
	return nil
}

func (ms *MemoryStore) Delete(addr common.Address) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.accounts, addr)
	return nil
}

func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.accounts)
}

func (ms *MemoryStore) Close() error { return nil }
