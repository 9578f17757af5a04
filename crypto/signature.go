package crypto

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/bajpai244/fastpay/common"
)

const (
	// SignatureLength is the size of a recoverable signature r || s || v.
	SignatureLength = 65
	// RecoveryIDOffset points to the v byte of a signature.
	RecoveryIDOffset = 64
)

var (
	ErrSignatureLength = errors.New("invalid signature length")
	ErrRecoveryID      = errors.New("invalid signature recovery id")
)

// PersonalHash returns the keccak-256 digest of msg prefixed with the
// "\x19Ethereum Signed Message:\n<len>" marker.
func PersonalHash(msg []byte) common.Hash {
	return common.BytesToHash(accounts.TextHash(msg))
}

// RecoverAddress recovers the address that produced sig over msg under the
// personal-message convention. The v byte must be 27 or 28.
func RecoverAddress(msg []byte, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, ErrSignatureLength
	}
	v := sig[RecoveryIDOffset]
	if v != 27 && v != 28 {
		return common.Address{}, ErrRecoveryID
	}

	// go-ethereum expects the recovery id in [0, 1]
	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)
	normalized[RecoveryIDOffset] = v - 27

	hash := PersonalHash(msg)
	pub, err := ethcrypto.SigToPub(hash.Bytes(), normalized)
	if err != nil {
		return common.Address{}, err
	}
	return ethcrypto.PubkeyToAddress(*pub), nil
}
