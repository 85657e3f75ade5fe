package generators

import (
	"math/big"

	"github.com/holiman/uint256"
)

var defaultInputs = []RawValue{Uint(0)}

// DeriveSeed XORs all inputs together. No inputs is the same as a single 0.
func DeriveSeed(inputs ...RawValue) (*big.Int, error) {
	seed, err := deriveSeed(inputs)
	if err != nil {
		return nil, err
	}
	return seed.ToBig(), nil
}

func deriveSeed(inputs []RawValue) (*uint256.Int, error) {
	values, err := normalize(inputs)
	if err != nil {
		return nil, err
	}
	var seed = new(uint256.Int)
	for _, value := range values {
		seed.Xor(seed, value)
	}
	return seed, nil
}
