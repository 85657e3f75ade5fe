package generators

import "math/big"

type Generator interface {
	Next() *big.Int
	NextBounded(bound *big.Int) (*big.Int, error)
	Update(inputs ...RawValue) error
	StateAt(index uint64) *big.Int
	Seed() *big.Int
	Current() *big.Int
	Index() uint64
}

var (
	_ Generator = (*HashChain)(nil)
	_ Generator = (*LockedHashChain)(nil)
)
