package types

import (
	json "github.com/json-iterator/go"

	"github.com/bajpai244/fastpay/common"
)

// TxMeta locates a committed transaction inside the chain.
type TxMeta struct {
	Hash    common.Hash `json:"hash"`
	Number  uint64      `json:"number"`
	TxIndex uint64      `json:"tx_index"`
}

func (tm *TxMeta) Serialize() ([]byte, error) { return json.Marshal(tm) }

func (tm *TxMeta) Deserialize(d []byte) error { return json.Unmarshal(d, tm) }
