package force

import "sync"

// task calls fn for every index in [0, n), split in contiguous chunks over
// workersCount goroutines, and returns once all of them are done
func task(workersCount int, n int, fn func(i int)) {
	workersCount = max(1, min(workersCount, n))
	if workersCount == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, n))
	}
	wg.Wait()
}
