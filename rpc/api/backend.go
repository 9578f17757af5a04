package api

import (
	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/chain"
	"github.com/bajpai244/fastpay/core/types"
	"github.com/bajpai244/fastpay/db"
)

// Backend is the node surface the RPC layer reads from and submits to.
type Backend interface {
	Balance(addr common.Address) (uint64, bool)
	Chain() chain.Reader
	DB() *db.TinyDB
	SubmitTx(tx *types.Transaction) error
}
