package generators

import (
	"math/big"

	"github.com/fernandosanchezjr/hashrand/utils"
)

// Replay recomputes, from the raw inputs alone, the state a chain seeded with
// them holds after index advances. A nil hash selects keccak256.
func Replay(hash utils.HashFunc, index uint64, inputs ...RawValue) (*big.Int, error) {
	if hash == nil {
		hash = utils.Keccak256
	}
	seed, err := deriveSeed(inputs)
	if err != nil {
		return nil, err
	}
	return walk(hash, seed, index).ToBig(), nil
}

// Verify reports whether value is the state at index of the chain seeded with
// inputs.
func Verify(hash utils.HashFunc, index uint64, value *big.Int, inputs ...RawValue) (bool, error) {
	expected, err := Replay(hash, index, inputs...)
	if err != nil {
		return false, err
	}
	return value != nil && expected.Cmp(value) == 0, nil
}
