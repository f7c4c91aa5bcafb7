package simulation

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/simul8/metrics"
	"github.com/katalvlaran/simul8/table"
	"gonum.org/v1/gonum/stat"
)

// Run executes every iteration and returns the frozen results.
//
// Implementation:
//   - Stage 1: Configured → Running; snapshot the registry into an assembler.
//   - Stage 2: min(workers, sims) goroutines pull iteration indices from a
//     shared counter. Each owns one table buffer, checks ctx before every
//     iteration and writes into the pre-sized result slots at index i.
//   - Stage 3: on the first failure the remaining workers are cancelled
//     and Run returns (nil, err); the engine becomes Failed.
//   - Stage 4: patch undefined IRR values, then Running → Completed.
//
// Errors: ErrInvalidState unless Configured; ctx.Err() wrapped on
// cancellation; formula, metrics and table errors from an iteration;
// metrics.ErrNoDefinedIRR when no iteration had a defined IRR.
//
// Complexity: O(sims · (vars·periods + formula cost)) work, spread over the
// worker pool; O(sims) result memory plus O(sims·columns·periods) when full
// data is retained.
func (e *Engine) Run(ctx context.Context) (*Results, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	e.mu.Lock()
	if e.state != Configured {
		st := e.state
		e.mu.Unlock()
		return nil, fmt.Errorf("Run: engine is %s: %w", st, ErrInvalidState)
	}
	e.state = Running
	e.mu.Unlock()

	res, err := e.run(ctx)

	e.mu.Lock()
	if err != nil {
		e.state = Failed
	} else {
		e.state = Completed
	}
	e.mu.Unlock()

	return res, err
}

func (e *Engine) run(ctx context.Context) (*Results, error) {
	start := time.Now()
	runID := uuid.New()
	logger := e.cfg.logger.With("run_id", runID.String())

	asm, err := table.NewAssembler(e.tpl, e.reg)
	if err != nil {
		logger.Error("run failed", "error", err)
		return nil, fmt.Errorf("Run: %w", err)
	}

	params := e.metricsParams()
	withNPVIRR := params.NPVIRREnabled()
	workers := e.cfg.workers
	if workers > e.sims {
		workers = e.sims
	}
	logger.Info("run started",
		"simulations", e.sims,
		"workers", workers,
		"random_variables", e.reg.Len(),
		"npv_irr", withNPVIRR,
	)

	res := &Results{
		RunID:          runID,
		Target:         e.target,
		Simulations:    e.sims,
		FeatureOnlySum: make([]float64, e.sims),
	}
	if withNPVIRR {
		res.NPV = make([]float64, e.sims)
		res.IRR = make([]float64, e.sims)
	}
	if e.cfg.fullData {
		res.FullData = make([]*table.Table, e.sims)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		next     atomic.Int64
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := asm.NewBuffer()
			for {
				i := int(next.Add(1) - 1)
				if i >= e.sims {
					return
				}
				if err := ctx.Err(); err != nil {
					fail(fmt.Errorf("Run: iteration %d: %w", i, err))
					return
				}
				if err := e.iterate(asm, buf, i, params, res); err != nil {
					fail(fmt.Errorf("Run: iteration %d: %w", i, err))
					return
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		logger.Error("run failed", "error", firstErr, "elapsed", time.Since(start))
		return nil, firstErr
	}

	if withNPVIRR {
		res.PatchedIRR, err = metrics.PatchIRR(res.IRR)
		if err != nil {
			logger.Error("run failed", "error", err, "elapsed", time.Since(start))
			return nil, fmt.Errorf("Run: %w", err)
		}
	}
	res.Elapsed = time.Since(start)

	logger.Info("run completed",
		"elapsed", res.Elapsed,
		"patched_irr", res.PatchedIRR,
		"mean_outcome", stat.Mean(res.FeatureOnlySum, nil),
	)

	return res, nil
}

// iterate runs one simulation into buf and stores its outputs at index i.
func (e *Engine) iterate(asm *table.Assembler, buf *table.Table, i int, p metrics.Params, res *Results) error {
	if err := asm.AssembleInto(buf, i); err != nil {
		return err
	}
	evaluated, err := e.query.Evaluate(buf)
	if err != nil {
		return err
	}
	out, err := metrics.Aggregate(evaluated, e.target, p)
	if err != nil {
		return err
	}

	res.FeatureOnlySum[i] = out.Sum
	if out.HasNPVIRR {
		res.NPV[i] = out.NPV
		res.IRR[i] = out.IRR
	}
	if res.FullData != nil {
		res.FullData[i] = evaluated
	}

	return nil
}
