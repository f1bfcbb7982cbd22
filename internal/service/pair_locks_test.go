package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPairLocksSerializeSameKey(t *testing.T) {
	locks := newPairLocks()

	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("a:b")
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, locks.size(), "released keys are forgotten")
}

func TestPairLocksIndependentKeys(t *testing.T) {
	locks := newPairLocks()

	unlockA := locks.Lock("a:b")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("c:d")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("a different pair must not wait")
	}
	assert.Equal(t, 1, locks.size())
}
