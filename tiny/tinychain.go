package tiny

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/consensus"
	"github.com/bajpai244/fastpay/core/chain"
	"github.com/bajpai244/fastpay/core/executor"
	"github.com/bajpai244/fastpay/core/state"
	"github.com/bajpai244/fastpay/core/txpool"
	"github.com/bajpai244/fastpay/core/types"
	"github.com/bajpai244/fastpay/db"
	"github.com/bajpai244/fastpay/rpc/jsonrpc"
)

var (
	log = common.GetLogger("fastpay")
)

// Tiny implements the fastpay full node service
type Tiny struct {
	config *common.Config

	state state.Backend

	executor *executor.Executor

	chain *chain.Blockchain

	txPool *txpool.TxPool

	ldb db.Database
	db  *db.TinyDB

	blockValidator executor.BlockValidator

	engine consensus.Engine

	rpc *jsonrpc.Server

	submitMu sync.Mutex
}

func New(config *common.Config) (*Tiny, error) {
	store, err := state.NewStore(config)
	if err != nil {
		log.Errorf("cannot init state, err:%s", err)
		return nil, err
	}

	genesis, err := executor.GenesisFromConfig(config)
	if err != nil {
		store.Close()
		return nil, err
	}
	if err := genesis.ApplyGenesis(store); err != nil {
		log.Errorf("failed to apply genesis, err:%s", err)
		store.Close()
		return nil, err
	}

	// the chain index lives as long as the in-memory chain it indexes
	ldb := db.NewMemDatabase()

	bc := chain.NewBlockchain()
	tiny := &Tiny{
		config:         config,
		state:          store,
		executor:       executor.New(store),
		chain:          bc,
		txPool:         txpool.NewTxPool(config),
		ldb:            ldb,
		db:             db.NewTinyDB(ldb),
		blockValidator: executor.NewBlockValidator(bc),
	}

	tiny.engine, err = consensus.New(config, bc, tiny.txPool, tiny.commitBlock)
	if err != nil {
		tiny.closeStores()
		return nil, err
	}
	tiny.rpc, err = jsonrpc.NewServer(tiny)
	if err != nil {
		tiny.closeStores()
		return nil, err
	}
	return tiny, nil
}

// commitBlock checks a freshly sealed block and indexes it by height, hash
// and transaction.
func (tiny *Tiny) commitBlock(block *types.Block) error {
	if err := tiny.blockValidator.ValidateBlock(block); err != nil {
		log.Errorf("failed to validate block #%d, err:%s", block.Height(), err)
		return err
	}
	if err := tiny.db.WriteBlock(block); err != nil {
		log.Errorf("failed to write block #%d, err:%s", block.Height(), err)
		return err
	}
	return nil
}

// SubmitTx executes tx against the current state and queues it for the next
// block. Nothing is executed when the pool has no room.
func (tiny *Tiny) SubmitTx(tx *types.Transaction) error {
	tiny.submitMu.Lock()
	defer tiny.submitMu.Unlock()

	if tiny.txPool.Full() {
		return txpool.ErrPoolFull
	}
	if err := tiny.executor.Execute(tx); err != nil {
		return err
	}
	return tiny.txPool.Add(tx)
}

func (tiny *Tiny) Balance(addr common.Address) (uint64, bool) {
	return tiny.executor.Balance(addr)
}

func (tiny *Tiny) Chain() chain.Reader {
	return tiny.chain
}

func (tiny *Tiny) DB() *db.TinyDB {
	return tiny.db
}

func (tiny *Tiny) Executor() *executor.Executor {
	return tiny.executor
}

func (tiny *Tiny) Engine() consensus.Engine {
	return tiny.engine
}

func (tiny *Tiny) TxPool() *txpool.TxPool {
	return tiny.txPool
}

func (tiny *Tiny) RPC() *jsonrpc.Server {
	return tiny.rpc
}

// Start launches the sealing loop and the JSON-RPC endpoint.
func (tiny *Tiny) Start() error {
	if err := tiny.engine.Start(); err != nil {
		return err
	}
	if err := tiny.rpc.Start(tiny.config.GetString(common.RPCAddr)); err != nil {
		tiny.engine.Stop()
		return errors.Wrap(err, "start json-rpc")
	}
	return nil
}

func (tiny *Tiny) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tiny.rpc.Stop(ctx); err != nil {
		log.Errorf("failed to stop json-rpc, err:%s", err)
	}
	tiny.engine.Stop()
	tiny.closeStores()
}

func (tiny *Tiny) closeStores() {
	tiny.ldb.Close()
	if err := tiny.state.Close(); err != nil {
		log.Errorf("failed to close state, err:%s", err)
	}
}
