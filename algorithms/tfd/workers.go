package tfd

import (
	"runtime"
	"sync"

	"github.com/RyanBlaney/sonido-tfd/algorithms/spectral"
)

// columnScratch is owned by exactly one goroutine at a time
type columnScratch struct {
	fft *spectral.FFT
	buf []complex128
}

func (o *options) newScratch() *columnScratch {
	return &columnScratch{
		fft: spectral.NewFFT(o.backend),
		buf: make([]complex128, o.fftLength),
	}
}

// forEachColumn calls fn once for every time index in [0, n). Each worker
// gets its own scratch, and fn must only write to column col of the output.
func (o *options) forEachColumn(n int, fn func(s *columnScratch, col int)) {
	numWorkers := o.workerCount(n)

	if numWorkers <= 1 {
		s := o.newScratch()
		for col := range n {
			fn(s, col)
		}
		return
	}

	jobs := make(chan int, n)
	var wg sync.WaitGroup

	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			s := o.newScratch()
			for col := range jobs {
				fn(s, col)
			}
		}()
	}

	for col := range n {
		jobs <- col
	}
	close(jobs)

	wg.Wait()
}

func (o *options) workerCount(n int) int {
	if o.workers <= 1 {
		return 1
	}
	return min(o.workers, runtime.NumCPU(), n)
}
