// Package parallel provides data-parallel loop execution for CPU kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how loops are split across goroutines.
type Config struct {
	Enabled      bool // Run chunks concurrently when true.
	NumWorkers   int  // Upper bound on concurrent goroutines.
	MinChunkSize int  // Below this many items a loop stays sequential.
}

// DefaultConfig sizes workers to the machine. Small tensors stay on the
// calling goroutine: corruption masks are often only a few thousand
// elements, and goroutine overhead dominates below the chunk threshold.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// For executes f(i) for every i in [0, n), splitting the range into chunks
// when the config allows. All goroutines are joined before For returns, so
// callers observe a fully synchronous operation.
func For(n int, cfg Config, f func(i int)) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
