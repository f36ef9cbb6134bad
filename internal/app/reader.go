package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/adminde/household-data/internal/assembler"
	"github.com/adminde/household-data/internal/config"
	"github.com/adminde/household-data/internal/ctxlog"
	"github.com/adminde/household-data/internal/table"
)

// readJob is one dataset waiting for its header to be read.
type readJob struct {
	index   int
	dataset *config.Dataset
}

// readDatasets reads the column layout of every dataset using up to workers
// concurrent readers, and at least one. The result keeps declaration order; the first failure
// cancels the remaining reads.
func readDatasets(ctx context.Context, model *config.Model, workers int) ([]assembler.Dataset, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers = max(1, min(workers, len(model.Datasets)))

	out := make([]assembler.Dataset, len(model.Datasets))
	jobs := make(chan readJob)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	levels := len(model.HeaderLevels)
	for id := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			readWorker(ctx, jobs, out, levels, id, fail)
		}()
	}

feed:
	for i, ds := range model.Datasets {
		select {
		case jobs <- readJob{index: i, dataset: ds}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// Cancellation by the caller rather than by a failed read.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// readWorker is the processing loop of a single reader.
func readWorker(ctx context.Context, jobs <-chan readJob, out []assembler.Dataset, levels, workerID int, fail func(error)) {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Reader started.")

	for job := range jobs {
		if ctx.Err() != nil {
			continue
		}
		ds := job.dataset
		tbl, err := table.ReadMultiIndexCSVFile(ds.Path, levels)
		if err != nil {
			logger.Debug("Dataset header read failed.", "resolution", ds.Resolution, "error", err)
			fail(fmt.Errorf("dataset %s: %w", ds.Resolution, err))
			continue
		}
		logger.Debug("Dataset header read.", "resolution", ds.Resolution, "path", ds.Path, "columns", len(tbl.Columns))
		out[job.index] = assembler.Dataset{Resolution: ds.Resolution, Table: tbl}
	}
}
