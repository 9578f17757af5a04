package executor

import (
	"github.com/bajpai244/fastpay/core/state"
	"github.com/bajpai244/fastpay/core/types"
	"github.com/bajpai244/fastpay/crypto"
)

type txValidator struct {
	store state.Store
}

func NewTxValidator(store state.Store) TxValidator {
	return &txValidator{store: store}
}

func (v *txValidator) ValidateTxs(txs types.Transactions) (valid types.Transactions, invalid types.Transactions) {
	for _, tx := range txs {
		if err := v.ValidateTx(tx); err != nil {
			invalid = append(invalid, tx)
		} else {
			valid = append(valid, tx)
		}
	}
	return valid, invalid
}

// Validate transaction
// 1. check signature is present
// 2. recover the signer over the tx hash
// 3. check signer is tx.From
// 4. check sender exists
// 5. check balance is enough for tx.Amount
func (v *txValidator) ValidateTx(tx *types.Transaction) error {
	if !tx.Signed() {
		return errNoSignature
	}

	hash := tx.Hash()
	signer, err := crypto.RecoverAddress(hash.Bytes(), tx.Signature())
	if err != nil {
		log.Debugf("failed to recover signer of tx %s, err:%s", hash.Hex(), err)
		return errSignatureInvalid
	}
	if signer != tx.From() {
		return errSignatureInvalid
	}

	sender, exist := v.store.Get(tx.From())
	if !exist {
		return errSenderNotExist
	}
	if sender.Balance < tx.Amount() {
		return errBalanceNotEnough
	}
	return nil
}
