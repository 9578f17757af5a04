package api

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/holiman/uint256"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/types"
	"github.com/bajpai244/fastpay/rpc/utils"
)

type ChainAPI struct {
	backend Backend
}

func NewChainAPI(backend Backend) *ChainAPI {
	return &ChainAPI{backend}
}

// BlockNumber returns the number of the newest block, 0 on an empty chain.
func (api *ChainAPI) BlockNumber() hexutil.Uint64 {
	block, ok := api.backend.Chain().LatestBlock()
	if !ok {
		return 0
	}
	return hexutil.Uint64(block.Height())
}

// GetBalance returns the current balance of address. State is not versioned,
// so the block tag is accepted and ignored.
func (api *ChainAPI) GetBalance(address common.Address, blockNrOrHash *rpc.BlockNumberOrHash) *hexutil.Big {
	balance, _ := api.backend.Balance(address)
	return (*hexutil.Big)(new(big.Int).SetUint64(balance))
}

func (api *ChainAPI) GetBlockByNumber(number rpc.BlockNumber, fullTx bool) *utils.Block {
	var (
		block *types.Block
		ok    bool
		chain = api.backend.Chain()
	)
	switch number {
	case rpc.LatestBlockNumber, rpc.PendingBlockNumber, rpc.SafeBlockNumber, rpc.FinalizedBlockNumber:
		block, ok = chain.LatestBlock()
	case rpc.EarliestBlockNumber:
		block, ok = chain.GetBlock(new(uint256.Int))
	default:
		if number < 0 {
			return nil
		}
		block, ok = chain.GetBlock(uint256.NewInt(uint64(number)))
	}
	if !ok {
		return nil
	}
	return convertBlock(block, fullTx)
}

func (api *ChainAPI) GetBlockByHash(hash common.Hash, fullTx bool) *utils.Block {
	block, err := api.backend.DB().GetBlockByHash(hash)
	if err != nil {
		return nil
	}
	return convertBlock(block, fullTx)
}
