package viewer

import (
	"image"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Builder renders the frames of a picture for a seed. A still picture is a
// single frame.
type Builder func(seed int64) []image.Image

// Regenerator rebuilds pictures in the background, one at a time. Requests
// made while a rebuild is running are dropped.
type Regenerator struct {
	build Builder

	busy    atomic.Bool
	version atomic.Uint64
	wg      sync.WaitGroup

	mu     sync.Mutex
	frames []image.Image
	seed   int64
}

func NewRegenerator(build Builder) *Regenerator {
	return &Regenerator{build: build}
}

// Request starts rebuilding with seed and reports whether it did. It returns
// false without doing anything if a rebuild is already running.
func (r *Regenerator) Request(seed int64) bool {
	if !r.busy.CompareAndSwap(false, true) {
		return false
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.busy.Store(false)

		start := time.Now()
		frames := r.build(seed)
		log.Printf("built seed %d: %d frames in %v", seed, len(frames), time.Since(start))

		r.mu.Lock()
		r.frames = frames
		r.seed = seed
		r.version.Add(1)
		r.mu.Unlock()
	}()
	return true
}

// Busy reports whether a rebuild is running.
func (r *Regenerator) Busy() bool {
	return r.busy.Load()
}

// Wait blocks until any running rebuild finishes.
func (r *Regenerator) Wait() {
	r.wg.Wait()
}

// Latest returns the most recently finished frames with their seed, and a
// version that increases with every finished rebuild. Version 0 means
// nothing has finished yet.
func (r *Regenerator) Latest() (frames []image.Image, seed int64, version uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames, r.seed, r.version.Load()
}
