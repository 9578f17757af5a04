package types

import (
	"errors"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common/hexutil"
	json "github.com/json-iterator/go"

	"github.com/bajpai244/fastpay/common"
)

const (
	// TxEncodedLength is the size of the canonical encoding from || to || amount.
	TxEncodedLength = 2*common.AddressLength + 8
	// SignatureLength is the size of r || s || v.
	SignatureLength = 65
	// TxRawLength is the canonical encoding followed by the signature.
	TxRawLength = TxEncodedLength + SignatureLength
)

var (
	ErrTxLength        = errors.New("invalid transaction encoding length")
	ErrRawTxLength     = errors.New("invalid raw transaction length")
	ErrSignatureLength = errors.New("invalid signature length")
)

// Transaction is a signed value transfer. It is immutable once constructed.
type Transaction struct {
	from      common.Address
	to        common.Address
	amount    uint64
	signature []byte // nil when unsigned

	hash atomic.Value // content hash cache
}

// NewTransaction creates a transfer. sig may be nil; it is copied otherwise.
func NewTransaction(from, to common.Address, amount uint64, sig []byte) *Transaction {
	tx := &Transaction{
		from:   from,
		to:     to,
		amount: amount,
	}
	if sig != nil {
		tx.signature = make([]byte, len(sig))
		copy(tx.signature, sig)
	}
	return tx
}

func (tx *Transaction) From() common.Address { return tx.from }
func (tx *Transaction) To() common.Address   { return tx.to }
func (tx *Transaction) Amount() uint64       { return tx.amount }

// Signature returns a copy of the signature, or nil if the transaction is unsigned.
func (tx *Transaction) Signature() []byte {
	if tx.signature == nil {
		return nil
	}
	sig := make([]byte, len(tx.signature))
	copy(sig, tx.signature)
	return sig
}

// Signed reports whether a signature is attached.
func (tx *Transaction) Signed() bool {
	return tx.signature != nil
}

// WithSignature returns a copy of tx carrying sig.
func (tx *Transaction) WithSignature(sig []byte) (*Transaction, error) {
	if len(sig) != SignatureLength {
		return nil, ErrSignatureLength
	}
	return NewTransaction(tx.from, tx.to, tx.amount, sig), nil
}

// Encode returns the canonical encoding: from[20] || to[20] || amount_be[8].
func (tx *Transaction) Encode() []byte {
	enc := make([]byte, 0, TxEncodedLength)
	enc = append(enc, tx.from.Bytes()...)
	enc = append(enc, tx.to.Bytes()...)
	enc = append(enc, common.Uint2Bytes(tx.amount)...)
	return enc
}

// Hash returns keccak-256 of the canonical encoding. The signature is not
// covered, so the hash is the message the sender signs.
func (tx *Transaction) Hash() common.Hash {
	if hash := tx.hash.Load(); hash != nil {
		return hash.(common.Hash)
	}
	hash := common.Keccak256(tx.Encode())
	tx.hash.Store(hash)
	return hash
}

// EncodeRaw returns the canonical encoding followed by the signature.
func (tx *Transaction) EncodeRaw() ([]byte, error) {
	if len(tx.signature) != SignatureLength {
		return nil, ErrSignatureLength
	}
	return append(tx.Encode(), tx.signature...), nil
}

// DecodeTransaction parses the canonical 48-byte encoding. The result is unsigned.
func DecodeTransaction(b []byte) (*Transaction, error) {
	if len(b) != TxEncodedLength {
		return nil, ErrTxLength
	}
	from := common.BytesToAddress(b[:common.AddressLength])
	to := common.BytesToAddress(b[common.AddressLength : 2*common.AddressLength])
	amount := common.Bytes2Uint(b[2*common.AddressLength:])
	return NewTransaction(from, to, amount, nil), nil
}

// DecodeRawTransaction parses the canonical encoding followed by a signature.
func DecodeRawTransaction(b []byte) (*Transaction, error) {
	if len(b) != TxRawLength {
		return nil, ErrRawTxLength
	}
	tx, err := DecodeTransaction(b[:TxEncodedLength])
	if err != nil {
		return nil, err
	}
	return tx.WithSignature(b[TxEncodedLength:])
}

type txJSON struct {
	Hash      common.Hash    `json:"hash"`
	From      common.Address `json:"from"`
	To        common.Address `json:"to"`
	Amount    hexutil.Uint64 `json:"amount"`
	Signature hexutil.Bytes  `json:"signature,omitempty"`
}

func (tx *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(&txJSON{
		Hash:      tx.Hash(),
		From:      tx.from,
		To:        tx.to,
		Amount:    hexutil.Uint64(tx.amount),
		Signature: tx.signature,
	})
}

func (tx *Transaction) UnmarshalJSON(data []byte) error {
	var dec txJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	if dec.Signature != nil && len(dec.Signature) != SignatureLength {
		return ErrSignatureLength
	}
	*tx = Transaction{
		from:      dec.From,
		to:        dec.To,
		amount:    uint64(dec.Amount),
		signature: dec.Signature,
	}
	return nil
}

type Transactions []*Transaction

// Hashes returns the content hashes in order.
func (txs Transactions) Hashes() []common.Hash {
	hashes := make([]common.Hash, len(txs))
	for i, tx := range txs {
		hashes[i] = tx.Hash()
	}
	return hashes
}
