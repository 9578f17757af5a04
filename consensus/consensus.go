package consensus

import (
	"github.com/pkg/errors"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/consensus/solo"
	"github.com/bajpai244/fastpay/core/types"
)

var errUnknownEngine = errors.New("unknown consensus engine")

// Engine turns queued transactions into blocks.
type Engine interface {
	Start() error
	Stop() error
	// Seal produces a block now, outside the engine's own schedule
	Seal() (*types.Block, error)
	// Address of the block producer
	Address() common.Address
}

type Blockchain interface {
	CreateBlock(txs types.Transactions, miner common.Address) *types.Block
}

type TxPool interface {
	Pop(max int) types.Transactions
}

// New builds the engine named by the config. onCommit runs for every sealed block.
func New(config *common.Config, chain Blockchain, txPool TxPool, onCommit func(*types.Block) error) (Engine, error) {
	name := config.GetString(common.EngineName)
	switch name {
	case common.SoloEngine, "":
		engine, err := solo.NewSoloEngine(config, chain, txPool, onCommit)
		if err != nil {
			return nil, err
		}
		return engine, nil
	default:
		return nil, errors.Wrap(errUnknownEngine, name)
	}
}
