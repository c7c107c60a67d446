package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/j-nivekk/miscdataworks/internal/record"
)

// WorkUnit is one (record, language) task. Units are independent: no unit's
// failure affects any other, including other languages of the same record.
type WorkUnit struct {
	Record   record.Record
	Language string
}

// Options configures one scheduler run.
type Options struct {
	// Languages in request order; lower-cased by the caller.
	Languages []string
	Kind      record.Kind
	// Threads is the worker count. 1 degrades to strictly sequential
	// execution in generation order.
	Threads int
	// Amount truncates the record list before units are generated. Zero or
	// negative means no limit. The limit counts records, not units.
	Amount int
	Strip  bool
	// Progress, when set, observes the monotonically increasing count of
	// completed units. Advisory only.
	Progress func(done, total int)
}

// Scheduler fans WorkUnits across a bounded worker pool and fans Results
// back in.
type Scheduler struct {
	fetcher *Fetcher
	logger  *slog.Logger
}

// NewScheduler builds a scheduler around the given fetcher.
func NewScheduler(fetcher *Fetcher, logger *slog.Logger) *Scheduler {
	return &Scheduler{fetcher: fetcher, logger: logger}
}

// Truncate applies the item limit to records. Shared with the aggregator so
// output modes walk exactly the records that generated units.
func Truncate(records []record.Record, amount int) []record.Record {
	if amount > 0 && amount < len(records) {
		return records[:amount]
	}
	return records
}

// Run executes one unit per (record, language) pair and returns every
// Result. The result count is always len(Truncate(records)) × len(languages);
// arrival order is unspecified when Threads > 1.
func (s *Scheduler) Run(ctx context.Context, records []record.Record, opts Options) []Result {
	records = Truncate(records, opts.Amount)
	total := len(records) * len(opts.Languages)
	results := make([]Result, 0, total)
	if total == 0 {
		return results
	}

	report := func(done int) {
		if opts.Progress != nil {
			opts.Progress(done, total)
		}
	}

	if opts.Threads <= 1 {
		done := 0
		for _, rec := range records {
			for _, language := range opts.Languages {
				results = append(results, s.runUnit(ctx, WorkUnit{Record: rec, Language: language}, opts))
				done++
				report(done)
			}
		}
		return results
	}

	units := make(chan WorkUnit)
	collected := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < opts.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for unit := range units {
				collected <- s.runUnit(ctx, unit, opts)
			}
		}()
	}

	go func() {
		// Generation order is deterministic: record order × language order.
		for _, rec := range records {
			for _, language := range opts.Languages {
				units <- WorkUnit{Record: rec, Language: language}
			}
		}
		close(units)
		wg.Wait()
		close(collected)
	}()

	for result := range collected {
		results = append(results, result)
		report(len(results))
	}
	return results
}

// runUnit produces exactly one Result. A panic anywhere inside matching or
// fetching is captured as an unexpected-error Result so one malformed record
// cannot take down the batch.
func (s *Scheduler) runUnit(ctx context.Context, unit WorkUnit, opts Options) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("work unit panicked", "id", unit.Record.Identity, "language", unit.Language, "panic", fmt.Sprint(r))
			result = failure(unit.Record.Identity, unit.Language, fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	desc, ok := Match(unit.Record, unit.Language, opts.Kind)
	if !ok {
		s.logger.Debug("no eligible track", "id", unit.Record.Identity, "language", unit.Language)
		return failure(unit.Record.Identity, unit.Language, ReasonLanguageUnavailable)
	}

	outcome := s.fetcher.Fetch(ctx, desc, opts.Strip)
	if !outcome.OK() {
		s.logger.Debug("fetch failed", "id", unit.Record.Identity, "language", unit.Language, "reason", outcome.Reason)
		return failure(unit.Record.Identity, unit.Language, outcome.Reason)
	}

	return Result{
		Identity:  unit.Record.Identity,
		Language:  unit.Language,
		Success:   true,
		Content:   outcome.Content,
		Extension: outcome.Extension,
	}
}
