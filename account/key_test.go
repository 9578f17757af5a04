package account

import (
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/magiconair/properties/assert"

	"github.com/bajpai244/fastpay/common"
	"github.com/bajpai244/fastpay/crypto"
)

// well-known hardhat account #0
const (
	testPrivHex = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddr    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestHexToKey(t *testing.T) {
	key, err := HexToKey(testPrivHex)
	assert.Equal(t, err, nil)
	assert.Equal(t, key.Address(), common.HexToAddress(testAddr))
	assert.Equal(t, key.Hex(), testPrivHex)

	noPrefix, err := HexToKey(testPrivHex[2:])
	assert.Equal(t, err, nil)
	assert.Equal(t, noPrefix.Address(), key.Address())
}

func TestHexToKeyInvalid(t *testing.T) {
	_, err := HexToKey("0x1234")
	assert.Equal(t, err, errInvalidPrivKey)

	_, err = HexToKey("0x0000000000000000000000000000000000000000000000000000000000000000")
	assert.Equal(t, err, errInvalidPrivKey)

	_, err = HexToKey("zz")
	assert.Equal(t, err == nil, false)
}

func TestKeyAddressMatchesGeth(t *testing.T) {
	key, err := NewKey()
	assert.Equal(t, err, nil)

	priv, err := ethcrypto.HexToECDSA(key.Hex()[2:])
	assert.Equal(t, err, nil)
	assert.Equal(t, key.Address(), ethcrypto.PubkeyToAddress(priv.PublicKey))
	assert.Equal(t, len(key.PubKey()), 65)
}

func TestSignHashRecovers(t *testing.T) {
	key, err := NewKey()
	assert.Equal(t, err, nil)

	msg := common.Keccak256([]byte("fastpay")).Bytes()
	sig := key.SignHash(msg)
	assert.Equal(t, len(sig), crypto.SignatureLength)
	v := sig[crypto.RecoveryIDOffset]
	assert.Equal(t, v == 27 || v == 28, true)

	addr, err := crypto.RecoverAddress(msg, sig)
	assert.Equal(t, err, nil)
	assert.Equal(t, addr, key.Address())
}

func TestTransfer(t *testing.T) {
	key, _ := NewKey()
	to := common.HexToAddress("0x00000000000000000000000000000000000000bb")

	tx, err := key.Transfer(to, 100)
	assert.Equal(t, err, nil)
	assert.Equal(t, tx.From(), key.Address())
	assert.Equal(t, tx.To(), to)
	assert.Equal(t, tx.Amount(), uint64(100))

	hash := tx.Hash()
	addr, err := crypto.RecoverAddress(hash.Bytes(), tx.Signature())
	assert.Equal(t, err, nil)
	assert.Equal(t, addr, key.Address())
}
