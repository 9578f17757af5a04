package chain

import (
	"sync"
	"time"

	"github.com/holiman/uint256"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/types"
)

var (
	log = common.GetLogger("blockchain")
)

// Clock returns the current unix time in seconds.
type Clock func() uint64

func systemClock() uint64 {
	return uint64(time.Now().Unix())
}

// Reader is the read side of the chain used by the RPC layer and validators.
type Reader interface {
	GetBlock(number *uint256.Int) (*types.Block, bool)
	LatestBlock() (*types.Block, bool)
	LatestBlockNumber() *uint256.Int
}

// Blockchain builds and holds an append-only chain of sealed blocks.
// One lock guards the block map and the next number together.
type Blockchain struct {
	mu     sync.RWMutex
	blocks map[uint256.Int]*types.Block
	next   uint256.Int
	clock  Clock
}

func NewBlockchain() *Blockchain {
	return NewBlockchainWithClock(systemClock)
}

func NewBlockchainWithClock(clock Clock) *Blockchain {
	return &Blockchain{
		blocks: make(map[uint256.Int]*types.Block),
		clock:  clock,
	}
}

// CreateBlock seals txs into the next block, stores it and returns a copy.
// Numbers are gap-free, each block links to its predecessor and timestamps
// never decrease.
func (bc *Blockchain) CreateBlock(txs types.Transactions, miner common.Address) *types.Block {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	var (
		number    = bc.next
		parent    common.Hash
		timestamp = bc.clock()
	)
	if !number.IsZero() {
		prevNum := new(uint256.Int).SubUint64(&number, 1)
		prev := bc.blocks[*prevNum]
		parent = prev.Hash
		if timestamp < prev.Timestamp {
			timestamp = prev.Timestamp
		}
	}

	block := types.NewBlock(&number, parent, timestamp, txs, miner)
	bc.blocks[number] = block
	bc.next.AddUint64(&bc.next, 1)

	log.Debugf("sealed block #%s hash=%s txs=%d", number.Dec(), block.Hash.Hex(), len(txs))
	return block.Copy()
}

// GetBlock returns a copy of the block with the given number.
func (bc *Blockchain) GetBlock(number *uint256.Int) (*types.Block, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	block, ok := bc.blocks[*number]
	if !ok {
		return nil, false
	}
	return block.Copy(), true
}

// LatestBlock returns the tip, absent iff the chain is empty.
func (bc *Blockchain) LatestBlock() (*types.Block, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	if bc.next.IsZero() {
		return nil, false
	}
	tip := new(uint256.Int).SubUint64(&bc.next, 1)
	block, ok := bc.blocks[*tip]
	if !ok {
		return nil, false
	}
	return block.Copy(), true
}

// LatestBlockNumber returns the number the next block will take, which is one
// past the tip (0 on an empty chain).
func (bc *Blockchain) LatestBlockNumber() *uint256.Int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.next.Clone()
}
