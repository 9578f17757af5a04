package state

import (
	"github.com/ethereum/go-ethereum/rlp"
	json "github.com/json-iterator/go"

	"github.com/bajpai244/fastpay/common"
)

// Account is the balance record of one address.
type Account struct {
	Address common.Address `json:"address"`
	Balance uint64         `json:"balance"`
}

func NewAccount(addr common.Address, balance uint64) *Account {
	return &Account{Address: addr, Balance: balance}
}

func (a *Account) Copy() *Account {
	cpy := *a
	return &cpy
}

func (a *Account) Serialize() ([]byte, error) {
	return json.Marshal(a)
}

func (a *Account) Deserialize(data []byte) error {
	return json.Unmarshal(data, a)
}

// MarshalRLP returns the compact binary form used by the leveldb backend.
func (a *Account) MarshalRLP() ([]byte, error) {
	return rlp.EncodeToBytes(a)
}

func (a *Account) UnmarshalRLP(data []byte) error {
	return rlp.DecodeBytes(data, a)
}
