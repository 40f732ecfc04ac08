package invocation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion_DeliversOutcomeToWaiter(t *testing.T) {
	comp := NewCompletion()
	failure := errors.New("worker failed")

	go comp.Done(nil, failure)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.ErrorIs(t, comp.Wait(ctx), failure)
	assert.True(t, comp.Fired())
	assert.ErrorIs(t, comp.Err(), failure)
}

func TestCompletion_FirstOutcomeWins(t *testing.T) {
	comp := NewCompletion()
	comp.Done(nil, nil)
	comp.Done(nil, errors.New("late failure"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, comp.Wait(ctx))
}

func TestCompletion_AtMostOnceUnderRace(t *testing.T) {
	comp := NewCompletion()
	failure := errors.New("failed")

	// Concurrent success and failure deliveries must not panic and must
	// leave exactly one recorded outcome.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				comp.Done(nil, nil)
			} else {
				comp.Done(nil, failure)
			}
		}(i)
	}
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := comp.Wait(ctx)
	if err != nil {
		assert.ErrorIs(t, err, failure)
	}
}

func TestCompletion_WaitHonorsCancellation(t *testing.T) {
	comp := NewCompletion()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, comp.Wait(ctx), context.Canceled)
	assert.False(t, comp.Fired())
	assert.NoError(t, comp.Err())
}
