package solo

import (
	"errors"
	"time"

	"github.com/bajpai244/fastpay/common"
)

var errInvalidMiner = errors.New("invalid miner address")

type Config struct {
	Miner         common.Address // proposer recorded in every block
	BlockInterval time.Duration  // time between sealing attempts
	MaxBlockTxs   int            // max txs per block, 0 means unlimited
	SealEmpty     bool           // seal a block even when no tx is queued
}

func newConfig(config *common.Config) (*Config, error) {
	conf := &Config{
		BlockInterval: config.GetDuration(common.BlockInterval),
		MaxBlockTxs:   config.GetInt(common.MaxBlockTxs),
		SealEmpty:     config.GetBool(common.SealEmpty),
	}
	if miner := config.GetString(common.Miner); miner != "" {
		if !common.IsHexAddress(miner) {
			return nil, errInvalidMiner
		}
		conf.Miner = common.HexToAddress(miner)
	}
	return conf, nil
}
