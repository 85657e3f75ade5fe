package generators

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedHashChain(t *testing.T) {
	const workers = 8
	const draws = 64

	hc, err := NewHashChain(Uint(42), Uint(1337), Uint(9001))
	require.NoError(t, err)
	locked := NewLockedHashChain(hc)

	var waiter sync.WaitGroup
	var results = make([][]*big.Int, workers)
	for w := 0; w < workers; w++ {
		waiter.Add(1)
		go func(w int) {
			defer waiter.Done()
			for i := 0; i < draws; i++ {
				results[w] = append(results[w], locked.Next())
			}
		}(w)
	}
	waiter.Wait()
	assert.Equal(t, uint64(workers*draws), locked.Index())

	// every state of the chain was handed out exactly once
	seen := make(map[string]bool)
	for _, values := range results {
		for _, v := range values {
			seen[v.Text(16)] = true
		}
	}
	require.Len(t, seen, workers*draws)
	for i := uint64(1); i <= workers*draws; i++ {
		assert.True(t, seen[locked.StateAt(i).Text(16)], "state %d", i)
	}
	assertBig(t, locked.StateAt(workers*draws), locked.Current())
}

func TestLockedHashChain_Update(t *testing.T) {
	hc, err := NewHashChain(Uint(42), Uint(1337))
	require.NoError(t, err)
	locked := NewLockedHashChain(hc)
	_, err = locked.NextBounded(big.NewInt(6))
	require.NoError(t, err)
	_, err = locked.NextBounded(big.NewInt(0))
	require.Error(t, err)
	assert.Equal(t, uint64(1), locked.Index())

	require.NoError(t, locked.Update(Uint(9001)))
	assert.Equal(t, int64(9001), locked.Seed().Int64())
	assert.Equal(t, int64(9001), locked.Current().Int64())
	assert.Equal(t, uint64(0), locked.Index())
}
