// File: pkg/gather/worker.go
package gather

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// renderJob pairs a selected path with its position in the selection order.
type renderJob struct {
	index int
	path  string
}

// RenderAll runs the file renderer over every selected path using a fixed pool
// of workers. Each job writes its block into the result slot it owns, so the
// collected blocks are in selection order regardless of which worker finishes
// first.
func RenderAll(root string, paths []string, maxWorkers int, logger *zap.Logger) []string {
	if len(paths) == 0 {
		return nil
	}

	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}
	if maxWorkers > len(paths) {
		maxWorkers = len(paths)
	}

	jobs := make(chan renderJob, len(paths))
	results := make([]string, len(paths))
	var wg sync.WaitGroup

	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		workerLogger := logger.With(zap.Int("workerID", w))
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = RenderFile(root, job.path, workerLogger)
			}
		}()
	}

	for i, path := range paths {
		jobs <- renderJob{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	return results
}
