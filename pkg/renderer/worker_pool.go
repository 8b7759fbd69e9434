package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// ScanlineTask represents one canvas row for the worker pool
type ScanlineTask struct {
	Y      int
	Canvas *canvas.Canvas // Shared canvas the row is written into
}

// ScanlineResult contains the result from rendering a scanline
type ScanlineResult struct {
	Y    int
	Hits int // Pixels in the row whose ray struck a shape
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders scanline tasks
type Worker struct {
	ID          int
	renderer    *Renderer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool with the specified number of
// workers. Queues are buffered for a full canvas so submitting every
// row ahead of reading results cannot block.
func NewWorkerPool(r *Renderer, height, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, height),
		resultQueue: make(chan ScanlineResult, height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    r,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for workers to drain it, then
// closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a scanline for rendering
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop. Every task owns a distinct canvas row,
// so workers never write the same pixels.
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		hits := w.renderer.renderScanline(task.Canvas, task.Y)
		w.resultQueue <- ScanlineResult{Y: task.Y, Hits: hits}
	}
}
