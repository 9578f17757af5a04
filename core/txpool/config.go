package txpool

import (
	"github.com/bajpai244/fastpay/common"
)

type Config struct {
	MaxTxSize int // Max number of queued txs
}

func newConfig(config *common.Config) *Config {
	return &Config{
		MaxTxSize: config.GetInt(common.TxPoolMaxSize),
	}
}
