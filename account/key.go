package account

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/core/types"
	"github.com/bajpai244/fastpay/crypto"
)

var errInvalidPrivKey = errors.New("invalid private key")

// Key is a secp256k1 key pair able to sign transfers.
type Key struct {
	privKey *secp256k1.PrivateKey
	pubKey  *secp256k1.PublicKey
	address common.Address
}

func newKey(priv *secp256k1.PrivateKey) *Key {
	pub := priv.PubKey()
	return &Key{
		privKey: priv,
		pubKey:  pub,
		address: common.GenAddrByPubkey(pub.SerializeUncompressed()),
	}
}

// NewKey generates a fresh key pair.
func NewKey() (*Key, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return newKey(priv), nil
}

// HexToKey loads a private key from its hex form, with or without 0x.
func HexToKey(s string) (*Key, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, err
	}
	if len(b) != 32 {
		return nil, errInvalidPrivKey
	}
	priv := secp256k1.PrivKeyFromBytes(b)
	if priv.Key.IsZero() {
		return nil, errInvalidPrivKey
	}
	return newKey(priv), nil
}

func (k *Key) Address() common.Address { return k.address }

// Hex returns the 0x-prefixed private key.
func (k *Key) Hex() string {
	return string(common.Hex(k.privKey.Serialize()))
}

// PubKey returns the uncompressed public key.
func (k *Key) PubKey() []byte {
	return k.pubKey.SerializeUncompressed()
}

// SignHash signs msg under the personal-message convention and returns r || s || v
// with v in {27, 28}.
func (k *Key) SignHash(msg []byte) []byte {
	hash := crypto.PersonalHash(msg)
	compact := ecdsa.SignCompact(k.privKey, hash.Bytes(), false)

	// compact is v || r || s
	sig := make([]byte, crypto.SignatureLength)
	copy(sig, compact[1:])
	sig[crypto.RecoveryIDOffset] = compact[0]
	return sig
}

// SignTx returns a signed copy of tx. The signed message is the tx content hash.
func (k *Key) SignTx(tx *types.Transaction) (*types.Transaction, error) {
	hash := tx.Hash()
	return tx.WithSignature(k.SignHash(hash.Bytes()))
}

// Transfer builds and signs a transfer from this key.
func (k *Key) Transfer(to common.Address, amount uint64) (*types.Transaction, error) {
	return k.SignTx(types.NewTransaction(k.address, to, amount, nil))
}
