package mesh

import "sync"

const DEFAULT_WORKERS = 1

// task calls fn for every index in [0, n), split in contiguous chunks over
// workersCount goroutines. fn must only write state owned by its index.
func task(workersCount, n int, fn func(i int)) {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	if workersCount == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, n)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
