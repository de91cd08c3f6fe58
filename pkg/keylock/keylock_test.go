package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLockSameKeySerializes(t *testing.T) {
	k := New()

	var inCritical int
	var maxSeen int
	var mu sync.Mutex

	g := errgroup.Group{}
	for range 16 {
		g.Go(func() error {
			unlock := k.Lock("user-1")
			defer unlock()

			mu.Lock()
			inCritical++
			if inCritical > maxSeen {
				maxSeen = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 1, maxSeen, "two holders of the same key overlapped")
}

func TestLockDifferentKeysDoNotBlock(t *testing.T) {
	k := New()

	unlockA := k.Lock("user-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("user-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestLockEntriesAreReleased(t *testing.T) {
	k := New()

	g := errgroup.Group{}
	for i := range 8 {
		key := string(rune('a' + i))
		g.Go(func() error {
			for range 100 {
				unlock := k.Lock(key)
				unlock()
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks)
}
