package executor

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/bajpai244/fastpay/account"
	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/state"
	"github.com/bajpai244/fastpay/core/types"
)

var (
	addrB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	addrC = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	addrD = common.HexToAddress("0x00000000000000000000000000000000000000dd")
)

func newKey(t *testing.T) *account.Key {
	key, err := account.NewKey()
	assert.Equal(t, err, nil)
	return key
}

func transfer(t *testing.T, key *account.Key, to common.Address, amount uint64) *types.Transaction {
	tx, err := key.Transfer(to, amount)
	assert.Equal(t, err, nil)
	return tx
}

func seeded(addr common.Address, balance uint64) *state.MemoryStore {
	store := state.NewMemoryStore()
	store.Put(addr, state.NewAccount(addr, balance))
	return store
}

func balanceOf(store state.Store, addr common.Address) uint64 {
	acc, ok := store.Get(addr)
	if !ok {
		return 0
	}
	return acc.Balance
}

func TestExecuteHappyPath(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 1000)
	ex := New(store)

	assert.Equal(t, ex.Execute(transfer(t, a, addrB, 100)), nil)
	assert.Equal(t, balanceOf(store, a.Address()), uint64(900))
	assert.Equal(t, balanceOf(store, addrB), uint64(100))
}

func TestExecuteChainedTransfers(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 1000)
	ex := New(store)

	assert.Equal(t, ex.Execute(transfer(t, a, addrB, 100)), nil)
	assert.Equal(t, ex.Execute(transfer(t, a, addrC, 200)), nil)
	assert.Equal(t, ex.Execute(transfer(t, a, addrD, 300)), nil)

	assert.Equal(t, balanceOf(store, a.Address()), uint64(400))
	assert.Equal(t, balanceOf(store, addrB), uint64(100))
	assert.Equal(t, balanceOf(store, addrC), uint64(200))
	assert.Equal(t, balanceOf(store, addrD), uint64(300))
}

func TestExecuteInsufficientFunds(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 100)
	ex := New(store)

	assert.Equal(t, ex.Execute(transfer(t, a, addrB, 50)), nil)
	err := ex.Execute(transfer(t, a, addrB, 60))
	assert.Equal(t, Reason(err), ReasonInsufficientBalance)
	assert.Equal(t, balanceOf(store, a.Address()), uint64(50))
	assert.Equal(t, balanceOf(store, addrB), uint64(50))
}

func TestExecuteWrongSigner(t *testing.T) {
	a, other := newKey(t), newKey(t)
	store := seeded(a.Address(), 100)
	ex := New(store)

	tx := types.NewTransaction(a.Address(), addrB, 50, nil)
	signed, err := other.SignTx(tx)
	assert.Equal(t, err, nil)

	err = ex.Execute(signed)
	assert.Equal(t, Reason(err), ReasonSignatureInvalid)
	assert.Equal(t, balanceOf(store, a.Address()), uint64(100))
	_, ok := store.Get(addrB)
	assert.Equal(t, ok, false)
}

func TestExecuteMissingSender(t *testing.T) {
	a := newKey(t)
	ex := New(state.NewMemoryStore())
	err := ex.Execute(transfer(t, a, addrB, 50))
	assert.Equal(t, Reason(err), ReasonSenderNotExist)
}

func TestExecuteNoSignature(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 100)
	err := New(store).Execute(types.NewTransaction(a.Address(), addrB, 1, nil))
	assert.Equal(t, Reason(err), ReasonNoSignature)
	assert.Equal(t, IsInvalidTx(err), true)
	assert.Equal(t, err.Error(), "invalid transaction: no signature")
}

func TestExecuteMalformedSignature(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 100)
	ex := New(store)

	good := transfer(t, a, addrB, 1)
	sig := good.Signature()
	sig[64] = 5 // bad recovery id
	bad, err := good.WithSignature(sig)
	assert.Equal(t, err, nil)
	assert.Equal(t, Reason(ex.Execute(bad)), ReasonSignatureInvalid)

	zero := make([]byte, types.SignatureLength)
	zero[64] = 27
	bad, _ = good.WithSignature(zero)
	assert.Equal(t, Reason(ex.Execute(bad)), ReasonSignatureInvalid)
	assert.Equal(t, balanceOf(store, a.Address()), uint64(100))
}

func TestExecuteTamperedTransaction(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 100)
	ex := New(store)

	signed := transfer(t, a, addrB, 10)
	tampered := types.NewTransaction(signed.From(), signed.To(), 90, signed.Signature())
	assert.Equal(t, Reason(ex.Execute(tampered)), ReasonSignatureInvalid)

	redirected := types.NewTransaction(signed.From(), addrC, 10, signed.Signature())
	assert.Equal(t, Reason(ex.Execute(redirected)), ReasonSignatureInvalid)
}

func TestExecuteErrorOrder(t *testing.T) {
	a := newKey(t)
	ex := New(state.NewMemoryStore())

	// no record for a and no signature: signature is checked first
	assert.Equal(t, Reason(ex.Execute(types.NewTransaction(a.Address(), addrB, 1, nil))), ReasonNoSignature)
	// no record for a and balance too low: existence is checked first
	assert.Equal(t, Reason(ex.Execute(transfer(t, a, addrB, 1))), ReasonSenderNotExist)
}

func TestExecuteZeroAmountCreatesRecipient(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 0)
	ex := New(store)

	assert.Equal(t, ex.Execute(transfer(t, a, addrB, 0)), nil)
	acc, ok := store.Get(addrB)
	assert.Equal(t, ok, true)
	assert.Equal(t, acc.Balance, uint64(0))
	assert.Equal(t, balanceOf(store, a.Address()), uint64(0))
}

func TestExecuteSelfTransfer(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 100)
	ex := New(store)

	assert.Equal(t, ex.Execute(transfer(t, a, a.Address(), 60)), nil)
	assert.Equal(t, balanceOf(store, a.Address()), uint64(100))
	assert.Equal(t, Reason(ex.Execute(transfer(t, a, a.Address(), 101))), ReasonInsufficientBalance)
}

func TestExecuteOverflow(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 10)
	store.Put(addrB, state.NewAccount(addrB, math.MaxUint64-5))
	ex := New(store)

	err := ex.Execute(transfer(t, a, addrB, 6))
	assert.Equal(t, Reason(err), ReasonBalanceOverflow)
	assert.Equal(t, balanceOf(store, a.Address()), uint64(10))
	assert.Equal(t, balanceOf(store, addrB), uint64(math.MaxUint64-5))

	assert.Equal(t, ex.Execute(transfer(t, a, addrB, 5)), nil)
	assert.Equal(t, balanceOf(store, addrB), uint64(math.MaxUint64))
}

func TestExecuteReplay(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 100)
	ex := New(store)

	tx := transfer(t, a, addrB, 40)
	assert.Equal(t, ex.Execute(tx), nil)
	assert.Equal(t, ex.Execute(tx), nil)
	assert.Equal(t, Reason(ex.Execute(tx)), ReasonInsufficientBalance)
	assert.Equal(t, balanceOf(store, addrB), uint64(80))
}

// flakyStore rejects the failAt-th Put and cannot commit natively, so the
// engine goes through the journal.
type flakyStore struct {
	accounts map[common.Address]state.Account
	puts     int
	failAt   int
}

var errBackend = errors.New("backend unavailable")

func (fs *flakyStore) Get(addr common.Address) (*state.Account, bool) {
	acc, ok := fs.accounts[addr]
	if !ok {
		return nil, false
	}
	return &acc, true
}

func (fs *flakyStore) Put(addr common.Address, acc *state.Account) error {
	fs.puts++
	if fs.puts == fs.failAt {
		return errBackend
	}
	fs.accounts[addr] = *acc
	return nil
}

func (fs *flakyStore) Delete(addr common.Address) error {
	delete(fs.accounts, addr)
	return nil
}

func TestExecuteStoreErrorIsolation(t *testing.T) {
	a := newKey(t)
	fs := &flakyStore{accounts: make(map[common.Address]state.Account), failAt: 2}
	fs.accounts[a.Address()] = state.Account{Address: a.Address(), Balance: 100}
	ex := New(fs)

	err := ex.Execute(transfer(t, a, addrB, 30))
	assert.Equal(t, IsInvalidTx(err), true)
	assert.Matches(t, Reason(err), "^store error: .*backend unavailable")
	assert.Equal(t, len(fs.accounts), 1)
	assert.Equal(t, fs.accounts[a.Address()].Balance, uint64(100))
}

// putOnlyStore has neither Commit nor Delete.
type putOnlyStore struct {
	accounts map[common.Address]state.Account
	puts     int
	failAt   int
}

func (ps *putOnlyStore) Get(addr common.Address) (*state.Account, bool) {
	acc, ok := ps.accounts[addr]
	if !ok {
		return nil, false
	}
	return &acc, true
}

func (ps *putOnlyStore) Put(addr common.Address, acc *state.Account) error {
	ps.puts++
	if ps.puts == ps.failAt {
		return errBackend
	}
	ps.accounts[addr] = *acc
	return nil
}

func TestExecuteStoreErrorWithoutDelete(t *testing.T) {
	a := newKey(t)
	ps := &putOnlyStore{accounts: make(map[common.Address]state.Account), failAt: 2}
	ps.accounts[a.Address()] = state.Account{Address: a.Address(), Balance: 100}
	ex := New(ps)

	err := ex.Execute(transfer(t, a, addrB, 30))
	assert.Matches(t, Reason(err), "^store error: .*backend unavailable")
	_, ok := ps.accounts[addrB]
	assert.Equal(t, ok, false)
	assert.Equal(t, len(ps.accounts), 1)
	assert.Equal(t, ps.accounts[a.Address()].Balance, uint64(100))
}

type failingCommitter struct {
	*state.MemoryStore
}

func (fc failingCommitter) Commit([]state.Write) error {
	return errBackend
}

func TestExecuteCommitFailure(t *testing.T) {
	a := newKey(t)
	store := failingCommitter{seeded(a.Address(), 100)}
	ex := New(store)

	err := ex.Execute(transfer(t, a, addrB, 30))
	assert.Matches(t, Reason(err), "^store error: ")
	assert.Equal(t, balanceOf(store, a.Address()), uint64(100))
	_, ok := store.Get(addrB)
	assert.Equal(t, ok, false)
}

func TestExecuteConcurrentConservation(t *testing.T) {
	keys := make([]*account.Key, 4)
	store := state.NewMemoryStore()
	for i := range keys {
		keys[i] = newKey(t)
		store.Put(keys[i].Address(), state.NewAccount(keys[i].Address(), 1000))
	}
	ex := New(store)

	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key *account.Key) {
			defer wg.Done()
			to := keys[(i+1)%len(keys)].Address()
			for j := 0; j < 50; j++ {
				tx, _ := key.Transfer(to, 7)
				ex.Execute(tx)
			}
		}(i, key)
	}
	wg.Wait()

	var total uint64
	for _, key := range keys {
		total += balanceOf(store, key.Address())
	}
	assert.Equal(t, total, uint64(4000))
}

func TestProcessTxs(t *testing.T) {
	a := newKey(t)
	store := seeded(a.Address(), 100)
	ex := New(store)

	txs := types.Transactions{
		transfer(t, a, addrB, 60),
		transfer(t, a, addrC, 60),
		transfer(t, a, addrD, 40),
	}
	valid, invalid := ex.ProcessTxs(txs)
	assert.Equal(t, len(valid), 2)
	assert.Equal(t, len(invalid), 1)
	assert.Equal(t, invalid[0].To(), addrC)
	assert.Equal(t, balanceOf(store, a.Address()), uint64(0))

	bal, ok := ex.Balance(addrD)
	assert.Equal(t, ok, true)
	assert.Equal(t, bal, uint64(40))
	_, ok = ex.Balance(addrC)
	assert.Equal(t, ok, false)
}

func TestValidateTxs(t *testing.T) {
	a := newKey(t)
	v := NewTxValidator(seeded(a.Address(), 10))
	valid, invalid := v.ValidateTxs(types.Transactions{
		transfer(t, a, addrB, 10),
		transfer(t, a, addrB, 11),
		types.NewTransaction(a.Address(), addrB, 1, nil),
	})
	assert.Equal(t, len(valid), 1)
	assert.Equal(t, len(invalid), 2)
}
