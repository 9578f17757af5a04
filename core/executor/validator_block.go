package executor

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/chain"
	"github.com/bajpai244/fastpay/core/types"
)

var (
	errBlockHashMismatch    = errors.New("block hash does not match its fields")
	errTimestampInvalid     = errors.New("timestamp of the block should not be less than that of parent block")
	errGasUsedOverflow      = errors.New("gas used is larger than gas limit")
	errParentNotExist       = errors.New("parent not exist")
	errParentHashNotMatch   = errors.New("parent hash mismatch")
	errGenesisParentNotZero = errors.New("genesis parent hash should be zero")
)

type blockValidator struct {
	chain chain.Reader
}

func NewBlockValidator(chain chain.Reader) BlockValidator {
	return &blockValidator{chain: chain}
}

// ValidateBlock checks a sealed block against the chain it was built on
// 1. the hash matches the sealed fields
// 2. gas used is within the gas limit
// 3. the parent is the previous block (zero hash for block 0)
// 4. the timestamp does not go backwards
func (v *blockValidator) ValidateBlock(block *types.Block) error {
	if !block.VerifyHash() {
		return errBlockHashMismatch
	}
	if block.GasUsed.Gt(block.GasLimit) {
		return errGasUsedOverflow
	}

	if block.Number.IsZero() {
		if block.ParentHash != (common.Hash{}) {
			return errGenesisParentNotZero
		}
		return nil
	}
	parent, ok := v.chain.GetBlock(new(uint256.Int).SubUint64(block.Number, 1))
	if !ok {
		return errParentNotExist
	}
	if block.ParentHash != parent.Hash {
		return errParentHashNotMatch
	}
	if block.Timestamp < parent.Timestamp {
		return errTimestampInvalid
	}
	return nil
}
