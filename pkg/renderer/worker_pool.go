package renderer

import (
	"fmt"
	"runtime"
	"sync"
)

// RowTask represents one image row for the worker pool
type RowTask struct {
	Y int // Row to render, 0 is the bottom row
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Y     int
	Stats RenderStats
	Error error
}

// WorkerPool manages parallel row rendering into a shared framebuffer
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	composer    *Composer
	framebuffer *Framebuffer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Rows never overlap, so workers write into the framebuffer without locking.
func NewWorkerPool(composer *Composer, framebuffer *Framebuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer for every row so submitting never blocks
	rows := framebuffer.Height

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			composer:    composer,
			framebuffer: framebuffer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.renderRow(task)
	}
}

// renderRow renders one row, turning a panic in shading into an error
// so one bad row cannot take down the pool
func (w *Worker) renderRow(task RowTask) (result RowResult) {
	result.Y = task.Y

	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Errorf("worker %d: row %d: %v", w.ID, task.Y, r)
		}
	}()

	if task.Y < 0 || task.Y >= w.framebuffer.Height {
		result.Error = fmt.Errorf("row %d outside image height %d", task.Y, w.framebuffer.Height)
		return result
	}

	w.composer.RenderRow(task.Y, w.framebuffer.Row(task.Y))

	result.Stats = RenderStats{
		TotalPixels:  w.framebuffer.Width,
		TotalSamples: w.framebuffer.Width * w.composer.SamplesPerPixel(),
		Rows:         1,
	}
	return result
}
