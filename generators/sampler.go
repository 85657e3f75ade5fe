package generators

import (
	"math/big"

	"github.com/pkg/errors"
)

// Sampler draws small integers, permutations and samples from a Generator.
// Each draw is one bounded advance of the underlying chain, so a sampler over a
// seeded chain is as reproducible as the chain itself.
type Sampler struct {
	Generator
}

func NewSampler(g Generator) *Sampler {
	return &Sampler{Generator: g}
}

// UintN returns a number in [0, n).
func (s *Sampler) UintN(n uint64) (uint64, error) {
	if n == 0 {
		return 0, errors.Wrap(ErrInvalidArgument, "n must be positive")
	}
	value, err := s.NextBounded(new(big.Int).SetUint64(n))
	if err != nil {
		return 0, err
	}
	return value.Uint64(), nil
}

// Intn returns a number in [0, n).
func (s *Sampler) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "n must be positive, got %d", n)
	}
	value, err := s.UintN(uint64(n))
	return int(value), err
}

// Permutation returns a permutation of [0, n-1] using the inside-out
// Fisher-Yates shuffle.
func (s *Sampler) Permutation(n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "population size cannot be negative")
	}
	items := make([]int, n)
	for i := 0; i < n; i++ {
		j, err := s.Intn(i + 1)
		if err != nil {
			return nil, err
		}
		items[i] = items[j]
		items[j] = i
	}
	return items, nil
}

// SubPermutation returns the first m elements of a permutation of [0, n-1].
func (s *Sampler) SubPermutation(n int, m int) ([]int, error) {
	if m < 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "sample size cannot be negative")
	}
	if n < m {
		return nil, errors.Wrapf(ErrInvalidArgument, "sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	items, err := s.Permutation(n)
	if err != nil {
		return nil, err
	}
	return items[:m], nil
}

// Shuffle permutes a collection of size n in place through swap.
func (s *Sampler) Shuffle(n int, swap func(i, j int)) error {
	if n < 0 {
		return errors.Wrap(ErrInvalidArgument, "population size cannot be negative")
	}
	for i := n - 1; i > 0; i-- {
		j, err := s.Intn(i + 1)
		if err != nil {
			return err
		}
		swap(i, j)
	}
	return nil
}

// Samples moves m randomly picked elements of a collection of size n to
// indices [0, m-1] through swap. Only those m positions are uniformly random.
func (s *Sampler) Samples(n int, m int, swap func(i, j int)) error {
	if m < 0 {
		return errors.Wrap(ErrInvalidArgument, "sample size cannot be negative")
	}
	if n < m {
		return errors.Wrapf(ErrInvalidArgument, "sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	for i := 0; i < m; i++ {
		j, err := s.Intn(n - i)
		if err != nil {
			return err
		}
		swap(i, i+j)
	}
	return nil
}
