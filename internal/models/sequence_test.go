package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Next(t *testing.T) {
	seq := NewSequence(SequenceStart)

	assert.Equal(t, int64(1000), seq.Next())
	assert.Equal(t, int64(1001), seq.Next())
	assert.Equal(t, int64(1002), seq.Peek())
}

func TestSequence_Reset(t *testing.T) {
	seq := NewSequence(5)
	seq.Next()
	seq.Next()

	seq.Reset(5)

	assert.Equal(t, int64(5), seq.Next())
}

func TestSequence_ConcurrentNextIsUnique(t *testing.T) {
	seq := NewSequence(0)
	const workers, perWorker = 8, 250

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				n := seq.Next()
				mu.Lock()
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker), seq.Peek())
}

func TestDefaultSequence_Reset(t *testing.T) {
	ResetSequence()
	t.Cleanup(ResetSequence)

	first := NewSavingsAccount("Hugo", 0)
	second := NewCheckingAccount("Irene", 0, DefaultCheckingTerms())

	assert.Equal(t, "Savings-1000", first.ID())
	assert.Equal(t, "Checking-1001", second.ID())

	ResetSequence()
	assert.Equal(t, SequenceStart, DefaultSequence().Peek())
}
