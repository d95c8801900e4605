package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForVisitsEveryIndex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 8 // force the parallel path

	n := 10000
	seen := make([]int32, n)
	For(n, cfg, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times", i, c)
		}
	}
}

func TestForSequentialFallback(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(5, cfg, func(i int) {
		order = append(order, i)
	})

	for i, v := range order {
		if v != i {
			t.Fatalf("sequential order broken: %v", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("visited %d of 5 indices", len(order))
	}
}

func TestForSmallStaysSequential(t *testing.T) {
	cfg := DefaultConfig()

	// Below MinChunkSize the loop must not spawn goroutines, so an
	// unsynchronized append is safe.
	var count int
	For(100, cfg, func(int) { count++ })
	if count != 100 {
		t.Fatalf("visited %d of 100 indices", count)
	}
}
