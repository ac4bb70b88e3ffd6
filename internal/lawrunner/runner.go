// Package lawrunner checks law suites with gopter and collects the outcome
// into a Report.
package lawrunner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/authcorp/libs/go/maybe/internal/config"
	"github.com/authcorp/libs/go/maybe/internal/observability"
	"github.com/authcorp/libs/go/maybe/laws"
	"github.com/authcorp/libs/go/maybe/show"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
)

var (
	// ErrUnknownSuite is returned when a requested suite is not in the catalogue.
	ErrUnknownSuite = errors.New("unknown law suite")
	// ErrLawsFailed is returned alongside the report when any law did not hold.
	ErrLawsFailed = errors.New("laws failed")
)

// Runner checks law suites and reports their outcome.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	suites  []laws.Suite
}

// New creates a Runner over the full law catalogue.
func New(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Runner {
	return &Runner{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		suites:  laws.Catalogue(),
	}
}

// WithSuites returns a copy of r that checks suites instead of the catalogue.
func (r *Runner) WithSuites(suites ...laws.Suite) *Runner {
	c := *r
	c.suites = suites
	return &c
}

// Run checks the suites called names, or the configured suites when names
// is empty, or every suite when neither is set. The report is returned
// even when laws fail, together with an error wrapping ErrLawsFailed.
func (r *Runner) Run(ctx context.Context, names []string) (*Report, error) {
	if len(names) == 0 {
		names = r.cfg.Laws.Suites
	}
	selected, err := r.selectSuites(names)
	if err != nil {
		return nil, err
	}

	seed := r.cfg.Laws.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Seed:    seed,
		Started: time.Now().UTC(),
		Passed:  true,
	}
	logger := r.logger.With("run_id", report.RunID, "seed", seed)
	logger.Info("checking laws", "suites", len(selected))

	start := time.Now()
	for _, suite := range selected {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("law run interrupted: %w", err)
		}

		result := r.runSuite(suite, seed)
		report.Suites = append(report.Suites, result)
		if !result.Passed {
			report.Passed = false
		}
		logger.Info("suite checked",
			"suite", result.Name,
			"passed", result.Passed,
			"laws", len(result.Laws),
			"elapsed", result.Elapsed,
		)
	}
	report.Elapsed = time.Since(start).Round(time.Millisecond).String()
	r.metrics.SetRunSuccess(report.Passed)

	if !report.Passed {
		failed := report.Failed()
		logger.Error("laws failed", "count", len(failed))
		return report, fmt.Errorf("%w: %d of %d", ErrLawsFailed, len(failed), report.LawCount())
	}
	logger.Info("all laws hold", "laws", report.LawCount(), "elapsed", report.Elapsed)
	return report, nil
}

func (r *Runner) selectSuites(names []string) ([]laws.Suite, error) {
	if len(names) == 0 {
		return r.suites, nil
	}
	byName := make(map[string]laws.Suite, len(r.suites))
	for _, s := range r.suites {
		byName[s.Name] = s
	}
	selected := make([]laws.Suite, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

func (r *Runner) runSuite(suite laws.Suite, seed int64) SuiteResult {
	parameters := gopter.DefaultTestParametersWithSeed(seed)
	parameters.MinSuccessfulTests = r.cfg.Laws.MinSuccessfulTests
	parameters.MaxSize = r.cfg.Laws.MaxSize
	parameters.Workers = r.cfg.Laws.Workers

	properties := gopter.NewProperties(parameters)
	suite.Register(properties)

	collector := &collector{}
	start := time.Now()
	passed := properties.Run(collector)
	elapsed := time.Since(start)

	r.metrics.RecordSuiteDuration(suite.Name, elapsed.Seconds())
	for _, law := range collector.laws {
		r.metrics.RecordLaw(suite.Name, law.Status, law.Succeeded)
		if !law.Passed {
			r.logger.Warn("law violated", "suite", suite.Name, "law", law.Name, "status", law.Status, "args", law.Args)
		}
	}

	return SuiteResult{
		Name:    suite.Name,
		Passed:  passed,
		Elapsed: elapsed.Round(time.Microsecond).String(),
		Laws:    collector.laws,
	}
}

// collector is a gopter.Reporter that keeps every property result.
type collector struct {
	laws []LawResult
}

func (c *collector) ReportTestResult(propName string, result *gopter.TestResult) {
	law := LawResult{
		Name:      propName,
		Status:    result.Status.String(),
		Passed:    result.Passed(),
		Succeeded: result.Succeeded,
		Discarded: result.Discarded,
	}
	if result.Error != nil {
		law.Error = result.Error.Error()
	}
	if !law.Passed {
		for _, arg := range result.Args {
			law.Args = append(law.Args, show.Show(arg.Arg))
		}
	}
	c.laws = append(c.laws, law)
}
