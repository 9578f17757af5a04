package types

import (
	"bytes"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/magiconair/properties/assert"

	"github.com/bajpai244/fastpay/common"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func testSig(fill byte) []byte {
	sig := bytes.Repeat([]byte{fill}, SignatureLength)
	sig[SignatureLength-1] = 27
	return sig
}

func TestTransactionEncode(t *testing.T) {
	tx := NewTransaction(alice, bob, 258, nil)
	enc := tx.Encode()
	assert.Equal(t, len(enc), TxEncodedLength)
	assert.Equal(t, enc[:20], alice.Bytes())
	assert.Equal(t, enc[20:40], bob.Bytes())
	assert.Equal(t, enc[40:], []byte{0, 0, 0, 0, 0, 0, 1, 2})

	dec, err := DecodeTransaction(enc)
	assert.Equal(t, err, nil)
	assert.Equal(t, dec.From(), alice)
	assert.Equal(t, dec.To(), bob)
	assert.Equal(t, dec.Amount(), uint64(258))
	assert.Equal(t, dec.Signed(), false)
}

func TestDecodeTransactionLength(t *testing.T) {
	_, err := DecodeTransaction(make([]byte, TxEncodedLength-1))
	assert.Equal(t, err, ErrTxLength)
	_, err = DecodeRawTransaction(make([]byte, TxEncodedLength))
	assert.Equal(t, err, ErrRawTxLength)
}

func TestTransactionHashIgnoresSignature(t *testing.T) {
	unsigned := NewTransaction(alice, bob, 10, nil)
	signed := NewTransaction(alice, bob, 10, testSig(1))
	other := NewTransaction(alice, bob, 10, testSig(2))

	assert.Equal(t, unsigned.Hash(), signed.Hash())
	assert.Equal(t, signed.Hash(), other.Hash())
	assert.Equal(t, unsigned.Hash(), common.Keccak256(unsigned.Encode()))

	// different amount, different hash
	assert.Equal(t, unsigned.Hash() == NewTransaction(alice, bob, 11, nil).Hash(), false)
}

func TestTransactionSignatureCopied(t *testing.T) {
	sig := testSig(3)
	tx := NewTransaction(alice, bob, 1, sig)
	sig[0] = 0xff
	assert.Equal(t, tx.Signature()[0], byte(3))

	out := tx.Signature()
	out[0] = 0xee
	assert.Equal(t, tx.Signature()[0], byte(3))
}

func TestTransactionWithSignature(t *testing.T) {
	tx := NewTransaction(alice, bob, 7, nil)
	_, err := tx.WithSignature([]byte{1, 2, 3})
	assert.Equal(t, err, ErrSignatureLength)

	signed, err := tx.WithSignature(testSig(4))
	assert.Equal(t, err, nil)
	assert.Equal(t, signed.Signed(), true)
	assert.Equal(t, tx.Signed(), false)
	assert.Equal(t, signed.Hash(), tx.Hash())
}

func TestRawTransactionRoundTrip(t *testing.T) {
	tx := NewTransaction(alice, bob, 1000, testSig(5))
	raw, err := tx.EncodeRaw()
	assert.Equal(t, err, nil)
	assert.Equal(t, len(raw), TxRawLength)

	dec, err := DecodeRawTransaction(raw)
	assert.Equal(t, err, nil)
	assert.Equal(t, dec.Hash(), tx.Hash())
	assert.Equal(t, dec.Signature(), tx.Signature())

	_, err = NewTransaction(alice, bob, 1, nil).EncodeRaw()
	assert.Equal(t, err, ErrSignatureLength)
}

func TestTransactionJSON(t *testing.T) {
	tx := NewTransaction(alice, bob, 16, testSig(6))
	data, err := json.Marshal(tx)
	assert.Equal(t, err, nil)
	assert.Matches(t, string(data), `"amount":"0x10"`)

	var dec Transaction
	assert.Equal(t, json.Unmarshal(data, &dec), nil)
	assert.Equal(t, dec.From(), alice)
	assert.Equal(t, dec.To(), bob)
	assert.Equal(t, dec.Amount(), uint64(16))
	assert.Equal(t, dec.Signature(), tx.Signature())
	assert.Equal(t, dec.Hash(), tx.Hash())
}

func TestTransactionsHashes(t *testing.T) {
	txs := Transactions{
		NewTransaction(alice, bob, 1, nil),
		NewTransaction(bob, alice, 2, nil),
	}
	hashes := txs.Hashes()
	assert.Equal(t, len(hashes), 2)
	assert.Equal(t, hashes[0], txs[0].Hash())
	assert.Equal(t, hashes[1], txs[1].Hash())
}
