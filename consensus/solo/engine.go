package solo

import (
	"errors"
	"sync"
	"time"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/types"
)

var (
	log = common.GetLogger("consensus")

	errAlreadyStarted = errors.New("solo engine already started")
)

type Blockchain interface {
	CreateBlock(txs types.Transactions, miner common.Address) *types.Block
}

type TxPool interface {
	Pop(max int) types.Transactions
}

// CommitHook runs after a block is sealed, in sealing order.
type CommitHook func(block *types.Block) error

// SoloEngine is a single proposer that seals queued txs into a block on every tick.
type SoloEngine struct {
	config   *Config
	chain    Blockchain
	txPool   TxPool
	onCommit CommitHook

	processLock chan struct{} // channel lock to prevent concurrent sealing

	startOnce sync.Once
	stopOnce  sync.Once
	quitCh    chan struct{}
	wg        sync.WaitGroup
}

func NewSoloEngine(config *common.Config, chain Blockchain, txPool TxPool, onCommit CommitHook) (*SoloEngine, error) {
	conf, err := newConfig(config)
	if err != nil {
		return nil, err
	}
	return NewSoloEngineWithConfig(conf, chain, txPool, onCommit), nil
}

func NewSoloEngineWithConfig(conf *Config, chain Blockchain, txPool TxPool, onCommit CommitHook) *SoloEngine {
	solo := &SoloEngine{
		config:      conf,
		chain:       chain,
		txPool:      txPool,
		onCommit:    onCommit,
		processLock: make(chan struct{}, 1),
		quitCh:      make(chan struct{}),
	}
	solo.processLock <- struct{}{}
	return solo
}

func (solo *SoloEngine) Address() common.Address {
	return solo.config.Miner
}

// Start launches the sealing loop. It does nothing when the block interval is not positive.
func (solo *SoloEngine) Start() error {
	err := errAlreadyStarted
	solo.startOnce.Do(func() {
		err = nil
		if solo.config.BlockInterval <= 0 {
			log.Warningf("block interval is %s, automatic sealing disabled", solo.config.BlockInterval)
			return
		}
		solo.wg.Add(1)
		go solo.listen()
	})
	return err
}

func (solo *SoloEngine) listen() {
	defer solo.wg.Done()
	ticker := time.NewTicker(solo.config.BlockInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := solo.seal(solo.config.SealEmpty); err != nil {
				log.Errorf("failed to seal block, err:%s", err)
			}
		case <-solo.quitCh:
			return
		}
	}
}

// Stop ends the sealing loop and waits for an in-flight block.
func (solo *SoloEngine) Stop() error {
	solo.stopOnce.Do(func() {
		close(solo.quitCh)
	})
	solo.wg.Wait()
	return nil
}

// Seal packs the queued txs into a block now, even if there are none.
func (solo *SoloEngine) Seal() (*types.Block, error) {
	return solo.seal(true)
}

func (solo *SoloEngine) seal(allowEmpty bool) (*types.Block, error) {
	<-solo.processLock
	defer func() { solo.processLock <- struct{}{} }()

	txs := solo.txPool.Pop(solo.config.MaxBlockTxs)
	if len(txs) == 0 && !allowEmpty {
		return nil, nil
	}

	block := solo.chain.CreateBlock(txs, solo.Address())
	log.Infof("Block producer %s propose a new block, height = #%d, txs = %d", solo.Address().Hex(), block.Height(), len(txs))

	if solo.onCommit != nil {
		if err := solo.onCommit(block); err != nil {
			return block, err
		}
	}
	return block, nil
}
