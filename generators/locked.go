package generators

import (
	"math/big"
	"sync"
)

// LockedHashChain serializes access to a HashChain so the state and the
// index always move together.
type LockedHashChain struct {
	mtx   sync.Mutex
	chain *HashChain
}

func NewLockedHashChain(chain *HashChain) *LockedHashChain {
	return &LockedHashChain{chain: chain}
}

func (l *LockedHashChain) Next() *big.Int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.chain.Next()
}

func (l *LockedHashChain) NextBounded(bound *big.Int) (*big.Int, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.chain.NextBounded(bound)
}

func (l *LockedHashChain) Update(inputs ...RawValue) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.chain.Update(inputs...)
}

func (l *LockedHashChain) StateAt(index uint64) *big.Int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.chain.StateAt(index)
}

func (l *LockedHashChain) Seed() *big.Int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.chain.Seed()
}

func (l *LockedHashChain) Current() *big.Int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.chain.Current()
}

func (l *LockedHashChain) Index() uint64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.chain.Index()
}
