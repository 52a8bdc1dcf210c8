package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore_Claim(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer func() {
		_ = store.Close()
	}()
	ctx := context.Background()

	claimed, err := store.Claim(ctx, "key-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = store.Claim(ctx, "key-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, claimed, "second claim of the same key loses")

	claimed, err = store.Claim(ctx, "key-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed, "different keys are independent")
}

func TestInMemoryIdempotencyStore_ExpiredClaimIsReclaimable(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer func() {
		_ = store.Close()
	}()
	ctx := context.Background()

	_, err := store.Claim(ctx, "key-1", -time.Second)
	require.NoError(t, err)

	held, err := store.IsClaimed(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, held)

	claimed, err := store.Claim(ctx, "key-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestInMemoryIdempotencyStore_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer func() {
		_ = store.Close()
	}()
	ctx := context.Background()

	const racers = 16
	var wg sync.WaitGroup
	wins := make(chan bool, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := store.Claim(ctx, "contested", time.Minute)
			assert.NoError(t, err)
			wins <- claimed
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for won := range wins {
		if won {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestInMemoryIdempotencyStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
