package keylock_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"frontdesk/shared/keylock"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesSameKey(t *testing.T) {
	locks := keylock.New()

	var (
		wg      sync.WaitGroup
		inside  atomic.Int32
		maxSeen atomic.Int32
	)

	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			unlock := locks.Lock("booking:1")
			defer unlock()

			current := inside.Add(1)
			if current > maxSeen.Load() {
				maxSeen.Store(current)
			}

			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Equal(t, 0, locks.Len())
}

func TestLockDifferentKeysDoNotBlock(t *testing.T) {
	locks := keylock.New()

	unlockA := locks.Lock("booking:a")
	defer unlockA()

	done := make(chan struct{})

	go func() {
		unlock := locks.Lock("booking:b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	locks := keylock.New()

	unlock := locks.Lock("invoice-no")
	unlock()
	unlock()

	assert.Equal(t, 0, locks.Len())

	relock := locks.Lock("invoice-no")
	relock()
}
