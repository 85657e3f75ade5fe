package utils

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// ParseUint256 parses a 0x prefixed hex string. Leading zeros and odd digit
// counts are accepted. Negative values and values over 256 bits are not.
func ParseUint256(s string) (*uint256.Int, bool) {
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return nil, false
	}
	if s[2] == '-' || s[2] == '+' {
		return nil, false
	}
	var value, ok = math.ParseBig256(s)
	if !ok {
		return nil, false
	}
	return BigToUint256(value)
}

// BigToUint256 converts a non-negative integer of at most 256 bits.
func BigToUint256(v *big.Int) (*uint256.Int, bool) {
	if v == nil || v.Sign() < 0 {
		return nil, false
	}
	var value, overflow = uint256.FromBig(v)
	if overflow {
		return nil, false
	}
	return value, true
}
