package common

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	AddressLength = ethcommon.AddressLength
	HashLength    = ethcommon.HashLength
)

type (
	// Address is the 20-byte account identifier.
	Address = ethcommon.Address
	// Hash is a 32-byte keccak-256 digest.
	Hash = ethcommon.Hash
)

func BytesToAddress(b []byte) Address { return ethcommon.BytesToAddress(b) }
func HexToAddress(s string) Address   { return ethcommon.HexToAddress(s) }
func IsHexAddress(s string) bool      { return ethcommon.IsHexAddress(s) }

func BytesToHash(b []byte) Hash { return ethcommon.BytesToHash(b) }
func HexToHash(s string) Hash   { return ethcommon.HexToHash(s) }
