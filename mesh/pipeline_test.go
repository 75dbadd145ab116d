package mesh

import (
	"sync/atomic"
	"testing"
)

func TestTaskVisitsEveryIndexOnce(t *testing.T) {
	for workers := 0; workers <= 8; workers++ {
		for n := 0; n <= 17; n++ {
			counts := make([]int32, n)
			task(workers, n, func(i int) {
				atomic.AddInt32(&counts[i], 1)
			})

			for i, c := range counts {
				if c != 1 {
					t.Errorf("workers %d, n %d: index %d visited %d times", workers, n, i, c)
				}
			}
		}
	}
}
