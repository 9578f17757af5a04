package types

import (
	"github.com/holiman/uint256"
	json "github.com/json-iterator/go"

	"github.com/bajpai244/fastpay/common"
)

// Placeholder header values. They are not covered by the block hash.
const (
	DefaultGasLimit      = 30_000_000
	DefaultBaseFeePerGas = 1_000_000_000
)

type Block struct {
	Number        *uint256.Int   `json:"number"`
	Hash          common.Hash    `json:"hash"`
	ParentHash    common.Hash    `json:"parent_hash"`
	Nonce         uint64         `json:"nonce"`
	Timestamp     uint64         `json:"timestamp"`     // seconds since the Unix epoch
	Miner         common.Address `json:"miner"`         // proposer of the block
	Transactions  Transactions   `json:"transactions"`  // ordered batch
	StateRoot     common.Hash    `json:"state_root"`    // reserved
	ReceiptsRoot  common.Hash    `json:"receipts_root"` // reserved
	LogsBloom     []byte         `json:"logs_bloom"`    // reserved
	GasUsed       *uint256.Int   `json:"gas_used"`
	GasLimit      *uint256.Int   `json:"gas_limit"`
	BaseFeePerGas *uint256.Int   `json:"base_fee_per_gas"`
}

// NewBlock seals a block: the placeholder fields take their defaults and the
// hash is computed over number, parent, timestamp, miner and tx hashes.
// txs is copied, so the caller may reuse its slice.
func NewBlock(number *uint256.Int, parent common.Hash, timestamp uint64, txs Transactions, miner common.Address) *Block {
	block := &Block{
		Number:        new(uint256.Int).Set(number),
		ParentHash:    parent,
		Nonce:         0,
		Timestamp:     timestamp,
		Miner:         miner,
		Transactions:  append(make(Transactions, 0, len(txs)), txs...),
		LogsBloom:     []byte{},
		GasUsed:       new(uint256.Int),
		GasLimit:      uint256.NewInt(DefaultGasLimit),
		BaseFeePerGas: uint256.NewInt(DefaultBaseFeePerGas),
	}
	block.Hash = block.ComputeHash()
	return block
}

// ComputeHash returns keccak256(be32(number) || parent || be8(timestamp) || miner || tx hashes...).
func (bl *Block) ComputeHash() common.Hash {
	number := bl.Number.Bytes32()
	data := [][]byte{
		number[:],
		bl.ParentHash.Bytes(),
		common.Uint2Bytes(bl.Timestamp),
		bl.Miner.Bytes(),
	}
	for _, tx := range bl.Transactions {
		data = append(data, tx.Hash().Bytes())
	}
	return common.Keccak256(data...)
}

// Copy returns a block sharing no mutable state with bl. Transactions are
// immutable and shared.
func (bl *Block) Copy() *Block {
	cpy := *bl
	cpy.Number = cloneInt(bl.Number)
	cpy.GasUsed = cloneInt(bl.GasUsed)
	cpy.GasLimit = cloneInt(bl.GasLimit)
	cpy.BaseFeePerGas = cloneInt(bl.BaseFeePerGas)
	cpy.Transactions = append(make(Transactions, 0, len(bl.Transactions)), bl.Transactions...)
	cpy.LogsBloom = append([]byte{}, bl.LogsBloom...)
	return &cpy
}

func cloneInt(v *uint256.Int) *uint256.Int {
	if v == nil {
		return nil
	}
	return v.Clone()
}

// VerifyHash reports whether the stored hash matches the sealed fields.
func (bl *Block) VerifyHash() bool {
	return bl.Hash == bl.ComputeHash()
}

func (bl *Block) Height() uint64 { return bl.Number.Uint64() }

func (bl *Block) Serialize() ([]byte, error) { return json.Marshal(bl) }

func (bl *Block) Deserialize(d []byte) error { return json.Unmarshal(d, bl) }

type Blocks []*Block

func (blks Blocks) Len() int {
	return len(blks)
}

func (blks Blocks) Less(i, j int) bool {
	return blks[i].Number.Lt(blks[j].Number)
}

func (blks Blocks) Swap(i, j int) {
	blks[i], blks[j] = blks[j], blks[i]
}
