package renderer

import (
	"runtime"
	"sync"

	"github.com/mcastro/go-simple-raytracer/pkg/core"
)

// rowTask identifies one raster row to trace
type rowTask struct {
	row int
}

// workerPool renders raster rows in parallel. Each row maps to a
// non-overlapping slice of the shared pixel buffer, so workers write
// without coordination and the raster order never depends on
// completion order.
type workerPool struct {
	raytracer  *Raytracer
	taskQueue  chan rowTask
	numWorkers int
	wg         sync.WaitGroup
}

// newWorkerPool creates a pool with the given number of workers;
// zero or negative means one worker per CPU
func newWorkerPool(rt *Raytracer, numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	height := rt.scene.GetCamera().Height()
	return &workerPool{
		raytracer:  rt,
		taskQueue:  make(chan rowTask, height),
		numWorkers: numWorkers,
	}
}

// renderRows traces every row of the raster into pixels and blocks
// until the full image is complete
func (wp *workerPool) renderRows(pixels []core.RGB) {
	camera := wp.raytracer.scene.GetCamera()
	width, height := camera.Width(), camera.Height()

	for w := 0; w < wp.numWorkers; w++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				row := pixels[task.row*width : (task.row+1)*width]
				wp.raytracer.renderRow(task.row, row)
			}
		}()
	}

	for j := 0; j < height; j++ {
		wp.taskQueue <- rowTask{row: j}
	}
	close(wp.taskQueue)
	wp.wg.Wait()
}
