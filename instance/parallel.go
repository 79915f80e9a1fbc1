package instance

import (
	"runtime"
	"sync"
)

// parseAll parses instance directories concurrently. Results are slotted by
// index so the output preserves the caller's enumeration order regardless of
// which parse finishes first.
// Uses a semaphore to limit concurrency to the number of CPUs.
func parseAll(dirs []string) []Record {
	if len(dirs) == 0 {
		return nil
	}

	records := make([]Record, len(dirs))
	var wg sync.WaitGroup

	// Limit concurrency to number of CPUs
	sem := make(chan struct{}, runtime.NumCPU())

	for i, dir := range dirs {
		wg.Add(1)
		sem <- struct{}{} // Acquire semaphore

		go func(idx int, dir string) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore

			records[idx] = ParseDir(dir)
		}(i, dir)
	}

	wg.Wait()
	return records
}
