package executor

import (
	"github.com/pkg/errors"
)

// Reasons carried by InvalidTxError.
const (
	ReasonNoSignature         = "no signature"
	ReasonSignatureInvalid    = "signature invalid"
	ReasonSenderNotExist      = "sender account does not exist"
	ReasonInsufficientBalance = "does not have enough balance"
	ReasonBalanceOverflow     = "balance overflow"
	reasonStoreError          = "store error: "
)

var (
	errNoSignature      = &InvalidTxError{ReasonNoSignature}
	errSignatureInvalid = &InvalidTxError{ReasonSignatureInvalid}
	errSenderNotExist   = &InvalidTxError{ReasonSenderNotExist}
	errBalanceNotEnough = &InvalidTxError{ReasonInsufficientBalance}
	errBalanceOverflow  = &InvalidTxError{ReasonBalanceOverflow}
)

// InvalidTxError is the single error kind returned by Execute.
type InvalidTxError struct {
	Reason string
}

func (e *InvalidTxError) Error() string {
	return "invalid transaction: " + e.Reason
}

func storeError(err error) *InvalidTxError {
	return &InvalidTxError{Reason: reasonStoreError + err.Error()}
}

// IsInvalidTx reports whether err is, or wraps, an InvalidTxError.
func IsInvalidTx(err error) bool {
	var e *InvalidTxError
	return errors.As(err, &e)
}

// Reason returns the reason of an InvalidTxError, or "" for other errors.
func Reason(err error) string {
	var e *InvalidTxError
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
