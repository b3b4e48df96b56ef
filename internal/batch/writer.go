// Package batch encodes rendered frames to disk on a pool of workers so the
// render loop never waits on image compression.
package batch

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"

	"softrender/internal/framebuf"
	"softrender/internal/logging"
	"softrender/internal/present"
)

// Config describes where and how frames are written.
type Config struct {
	// Path is the output file pattern; frames go to present.FramePath(Path, n).
	Path string
	// Scale resizes frames by an integer factor before encoding.
	Scale   int
	Kernel  draw.Scaler
	Workers int
	// Progress is the interval between progress log lines; zero disables them.
	Progress time.Duration
}

// Result holds the outcome of writing one frame.
type Result struct {
	Frame int
	Path  string
	Err   error
}

type job struct {
	frame int
	pix   []framebuf.Color
	w, h  int
}

// Writer is a present.Presenter that hands frames to background encoders.
// Present and Close must be called from the same goroutine.
type Writer struct {
	cfg       Config
	jobs      chan job
	wg        sync.WaitGroup
	done      chan struct{}
	next      int
	processed atomic.Int64

	mu      sync.Mutex
	results []Result
	closed  bool
}

// NewWriter starts cfg.Workers encoders (GOMAXPROCS when zero).
func NewWriter(cfg Config) (*Writer, error) {
	if _, err := present.FormatFromPath(cfg.Path); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	w := &Writer{
		cfg:  cfg,
		jobs: make(chan job, cfg.Workers*2),
		done: make(chan struct{}),
	}
	for i := 0; i < cfg.Workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for j := range w.jobs {
				w.record(w.write(j))
				w.processed.Add(1)
			}
		}()
	}
	if cfg.Progress > 0 {
		go w.report()
	}
	return w, nil
}

// Present copies the frame and queues it. It blocks while every worker is
// busy and the queue is full.
func (w *Writer) Present(pix []framebuf.Color, width, height int) error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return errors.New("batch: present after close")
	}
	w.jobs <- job{frame: w.next, pix: slices.Clone(pix[:width*height]), w: width, h: height}
	w.next++
	return nil
}

// Close waits for queued frames and returns the results ordered by frame.
// The error joins every failed write.
func (w *Writer) Close() ([]Result, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, errors.New("batch: already closed")
	}
	w.closed = true
	w.mu.Unlock()

	close(w.jobs)
	w.wg.Wait()
	close(w.done)

	slices.SortFunc(w.results, func(a, b Result) int { return a.Frame - b.Frame })
	var errs []error
	for _, r := range w.results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return w.results, errors.Join(errs...)
}

func (w *Writer) write(j job) Result {
	path := present.FramePath(w.cfg.Path, j.frame)
	iw := present.ImageWriter{Scale: w.cfg.Scale, Kernel: w.cfg.Kernel}
	if err := present.WriteFile(path, iw.Image(j.pix, j.w, j.h)); err != nil {
		return Result{Frame: j.frame, Path: path, Err: fmt.Errorf("batch: frame %d: %w", j.frame, err)}
	}
	return Result{Frame: j.frame, Path: path}
}

func (w *Writer) record(r Result) {
	w.mu.Lock()
	w.results = append(w.results, r)
	w.mu.Unlock()
}

func (w *Writer) report() {
	start := time.Now()
	ticker := time.NewTicker(w.cfg.Progress)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			if p := w.processed.Load(); p > 0 {
				rate := float64(p) / time.Since(start).Seconds()
				logging.Logger().Info("frames written", "count", p, "per_sec", rate)
			}
		}
	}
}
