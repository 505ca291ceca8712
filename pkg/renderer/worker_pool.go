package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelTask represents one pixel to be sampled by the worker pool
type PixelTask struct {
	X, Y int
	Seed int64 // Reseeds the worker's generator so the result is independent of scheduling
}

// PixelSampler estimates the color of one pixel
type PixelSampler func(x, y int, random *rand.Rand) (core.Vec3, error)

// WorkerPool manages parallel pixel sampling. Each task writes only its own slot of the
// output buffer; the first failing task stops the remaining ones.
type WorkerPool struct {
	taskQueue  chan PixelTask
	sample     PixelSampler
	output     []core.Vec3
	width      int
	numWorkers int
	wg         sync.WaitGroup

	failed   atomic.Bool
	errOnce  sync.Once
	firstErr error
}

// NewWorkerPool creates a worker pool writing into a width*height buffer
func NewWorkerPool(width, height, numWorkers int, sample PixelSampler) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:  make(chan PixelTask, 4*numWorkers),
		sample:     sample,
		output:     make([]core.Vec3, width*height),
		width:      width,
		numWorkers: numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// SubmitTask submits a pixel task to the worker pool
func (wp *WorkerPool) SubmitTask(task PixelTask) {
	wp.taskQueue <- task
}

// Wait closes the task queue, waits for the workers to drain it and returns the
// output buffer together with the first task error, if any
func (wp *WorkerPool) Wait() ([]core.Vec3, error) {
	close(wp.taskQueue)
	wp.wg.Wait()
	return wp.output, wp.firstErr
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	random := rand.New(rand.NewSource(1))
	for task := range wp.taskQueue {
		if wp.failed.Load() {
			continue
		}

		random.Seed(task.Seed)
		color, err := wp.sample(task.X, task.Y, random)
		if err != nil {
			wp.errOnce.Do(func() { wp.firstErr = err })
			wp.failed.Store(true)
			continue
		}
		wp.output[task.Y*wp.width+task.X] = color
	}
}
