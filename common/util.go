package common

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

func Hex(b []byte) []byte {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return enc
}

// Keccak256 returns the legacy keccak-256 digest of the concatenated data.
func Keccak256(data ...[]byte) Hash {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	var hash Hash
	h.Sum(hash[:0])
	return hash
}

// GenAddrByPubkey derives the address of an uncompressed secp256k1 public key
// (65 bytes, 0x04 prefix): the last 20 bytes of keccak-256 over the X||Y part.
func GenAddrByPubkey(pubkey []byte) Address {
	if len(pubkey) == 65 {
		pubkey = pubkey[1:]
	}
	h := Keccak256(pubkey)
	return BytesToAddress(h[HashLength-AddressLength:])
}

func Uint2Bytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b[:]
}

func Bytes2Uint(d []byte) uint64 {
	return binary.BigEndian.Uint64(d)
}
