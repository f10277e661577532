package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/rinkside/core"
)

const releaseTimeout = 3 * time.Second

// Loader reads record files concurrently and assembles one collection.
type Loader struct {
	pool     *ants.Pool
	required []string
	dedupe   bool
	progress io.Writer
	logger   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the number of files decoded concurrently.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		if l.pool != nil {
			l.pool.Release()
		}
		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithRequiredFields lists the fields every loaded record must carry.
// Records missing one are skipped.
func WithRequiredFields(fields ...string) Option {
	return func(l *Loader) error {
		l.required = append([]string(nil), fields...)
		return nil
	}
}

// WithDedupe drops records whose content ID was already loaded.
func WithDedupe(enabled bool) Option {
	return func(l *Loader) error {
		l.dedupe = enabled
		return nil
	}
}

// WithProgress reports per-file progress to w. A nil writer disables reporting.
func WithProgress(w io.Writer) Option {
	return func(l *Loader) error {
		l.progress = w
		return nil
	}
}

// NewLoader creates a new file loader.
func NewLoader(opts ...Option) (*Loader, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

type fileResult struct {
	records []core.Record
	err     error
}

// Load decodes every path and returns the combined records in argument order,
// then file order. Any unreadable or undecodable file fails the load.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]core.Record, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	formats := make([]Format, len(paths))
	for i, path := range paths {
		format, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		formats[i] = format
	}

	var tracker *ProgressTracker
	if l.progress != nil {
		tracker = NewProgressTracker(l.progress, len(paths))
		tracker.Start()
		defer tracker.Finish()
	}

	results := make([]fileResult, len(paths))
	var wg sync.WaitGroup
	for i := range paths {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				results[i].err = err
				return
			}
			results[i].records, results[i].err = l.loadFile(paths[i], formats[i])
			if tracker != nil {
				tracker.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	if tracker != nil {
		l.logger.Debug("decoded record files", "files", len(paths), "elapsed", tracker.Elapsed())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, res := range results {
		if res.err != nil {
			return nil, res.err
		}
	}

	return l.assemble(paths, results), nil
}

func (l *Loader) loadFile(path string, format Format) ([]core.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("decoded record file", "path", path, "format", format, "records", len(records))
	return records, nil
}

func (l *Loader) assemble(paths []string, results []fileResult) []core.Record {
	var seen map[core.ID]struct{}
	if l.dedupe {
		seen = make(map[core.ID]struct{})
	}

	var records []core.Record
	skipped, duplicates := 0, 0
	for i, res := range results {
		for j, record := range res.records {
			if err := core.ValidateRecord(record, l.required...); err != nil {
				l.logger.Warn("skipping invalid record", "path", paths[i], "index", j, "err", err)
				skipped++
				continue
			}
			if seen != nil {
				id := core.IDFromRecord(record)
				if _, dup := seen[id]; dup {
					duplicates++
					continue
				}
				seen[id] = struct{}{}
			}
			records = append(records, record)
		}
	}

	l.logger.Info("loaded records", "files", len(paths), "records", len(records),
		"skipped", skipped, "duplicates", duplicates)
	return records
}

// Release releases the worker pool and waits for its workers to exit.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool == nil {
		return
	}
	if err := l.pool.ReleaseTimeout(releaseTimeout); err != nil && !errors.Is(err, ants.ErrPoolClosed) {
		l.logger.Warn("worker pool did not stop in time", "err", err)
	}
}
