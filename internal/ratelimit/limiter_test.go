package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAcquireAllowsBurstWithoutBlocking(t *testing.T) {
	l := New(5)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Acquire(ctx))
	}
}

func TestAcquireRespectsContextCancellation(t *testing.T) {
	l := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, l.Acquire(ctx)) // consume the single burst token

	cancel()
	err := l.Acquire(ctx)
	require.Error(t, err)
}

func TestNewClampsNonPositiveRateToOne(t *testing.T) {
	l := New(0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, l.Acquire(ctx))
}
