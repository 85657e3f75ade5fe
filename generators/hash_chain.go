package generators

import (
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/fernandosanchezjr/hashrand/utils"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// HashChain is a deterministic generator. Every advance replaces the state
// with the hash of its 32 byte big-endian encoding.
//
// A HashChain is not safe for concurrent use. Wrap it in a LockedHashChain
// when it has to be shared.
type HashChain struct {
	hash    utils.HashFunc
	seed    uint256.Int
	current uint256.Int
	index   uint64
}

// NewHashChain seeds a keccak256 chain with the XOR of inputs.
func NewHashChain(inputs ...RawValue) (*HashChain, error) {
	return NewHashChainWithHash(utils.Keccak256, inputs...)
}

func NewHashChainWithHash(hash utils.HashFunc, inputs ...RawValue) (*HashChain, error) {
	if hash == nil {
		hash = utils.Keccak256
	}
	seed, err := deriveSeed(inputs)
	if err != nil {
		return nil, err
	}
	var hc = &HashChain{hash: hash}
	hc.reset(seed)
	log.WithField("inputs", len(inputs)).Debug("Hash chain created")
	return hc, nil
}

func (hc *HashChain) reset(seed *uint256.Int) {
	hc.seed.Set(seed)
	hc.current.Set(seed)
	hc.index = 0
}

func (hc *HashChain) advance() {
	step(hc.hash, &hc.current)
	hc.index += 1
}

// Next advances the chain and returns the new state.
func (hc *HashChain) Next() *big.Int {
	hc.advance()
	return hc.current.ToBig()
}

// NextBounded advances the chain and returns the new state mod bound. Only the
// returned sample is reduced; the stored state is not.
func (hc *HashChain) NextBounded(bound *big.Int) (*big.Int, error) {
	if err := checkBound(bound); err != nil {
		return nil, err
	}
	hc.advance()
	return reduce(&hc.current, bound), nil
}

// Update replaces the seed with the XOR of inputs and rewinds the chain. The
// previous seed is not mixed in. On error the chain is left untouched.
func (hc *HashChain) Update(inputs ...RawValue) error {
	seed, err := deriveSeed(inputs)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"inputs":    len(inputs),
		"discarded": humanize.Comma(int64(hc.index)),
	}).Debug("Hash chain reseeded")
	hc.reset(seed)
	return nil
}

// StateAt returns the state after index advances from the current seed
// without moving the chain.
func (hc *HashChain) StateAt(index uint64) *big.Int {
	return walk(hc.hash, &hc.seed, index).ToBig()
}

func (hc *HashChain) Seed() *big.Int {
	return hc.seed.ToBig()
}

func (hc *HashChain) Current() *big.Int {
	return hc.current.ToBig()
}

func (hc *HashChain) Index() uint64 {
	return hc.index
}

func checkBound(bound *big.Int) error {
	if bound == nil || bound.Sign() <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "bound must be positive, got %v", bound)
	}
	return nil
}

// reduce returns state mod bound. A bound over 256 bits is larger than any
// state, so the state is returned as is.
func reduce(state *uint256.Int, bound *big.Int) *big.Int {
	var modulus, overflow = uint256.FromBig(bound)
	if overflow {
		return state.ToBig()
	}
	return new(uint256.Int).Mod(state, modulus).ToBig()
}

func walk(hash utils.HashFunc, from *uint256.Int, steps uint64) *uint256.Int {
	var state = new(uint256.Int).Set(from)
	for i := uint64(0); i < steps; i++ {
		step(hash, state)
	}
	return state
}

func step(hash utils.HashFunc, state *uint256.Int) {
	var encoded = state.Bytes32()
	var digest = hash(encoded[:])
	state.SetBytes32(digest[:])
}
