package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/metrics"
	"github.com/themizzi/saucecheck/internal/pages"
	"github.com/themizzi/saucecheck/internal/scenarios"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Session is one isolated browser context a scenario runs in
type Session interface {
	Actions() pages.Actions
	Close(failed bool) error
}

// RunDependencies holds everything needed to run scenarios
type RunDependencies struct {
	Profile     *config.Profile
	ProfileName string
	Scenarios   []scenarios.Scenario
	NewSession  func(name string) (Session, error)
	Recorder    *metrics.Recorder
	Logger      *zap.Logger
	Workers     int
	RunID       string
}

// Result is the outcome of one scenario
type Result struct {
	Scenario string
	Passed   bool
	Skipped  bool
	Err      error
	Duration time.Duration
}

// Report is the outcome of a whole run, results in scenario order
type Report struct {
	RunID   string
	Profile string
	Results []Result
}

// Failed counts scenarios that ran and failed
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed && !res.Skipped {
			n++
		}
	}
	return n
}

// Skipped counts scenarios never started because the run was cancelled
func (r *Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Skipped {
			n++
		}
	}
	return n
}

// Summary prints one line per scenario followed by the totals
func (r *Report) Summary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\tprofile %s\n", r.RunID, r.Profile)
	for _, res := range r.Results {
		switch {
		case res.Skipped:
			fmt.Fprintf(tw, "SKIP\t%s\t\n", res.Scenario)
		case res.Passed:
			fmt.Fprintf(tw, "PASS\t%s\t%s\n", res.Scenario, res.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(tw, "FAIL\t%s\t%s\t%v\n", res.Scenario, res.Duration.Round(time.Millisecond), res.Err)
		}
	}
	passed := len(r.Results) - r.Failed() - r.Skipped()
	fmt.Fprintf(tw, "%d passed, %d failed, %d skipped\n", passed, r.Failed(), r.Skipped())
	return tw.Flush()
}

// RunScenarios runs every scenario in its own session, at most Workers at a
// time. A failing scenario never stops the others; a cancelled ctx stops new
// ones from starting.
func RunScenarios(ctx context.Context, deps RunDependencies) (*Report, error) {
	workers := deps.Workers
	if workers < 1 {
		workers = 1
	}
	if deps.RunID == "" {
		deps.RunID = uuid.NewString()
	}
	logger := deps.Logger.With(zap.String("run_id", deps.RunID))

	report := &Report{
		RunID:   deps.RunID,
		Profile: deps.ProfileName,
		Results: make([]Result, len(deps.Scenarios)),
	}

	logger.Info("starting run",
		zap.String("profile", deps.ProfileName),
		zap.Int("scenarios", len(deps.Scenarios)),
		zap.Int("workers", workers),
	)

	var g errgroup.Group
	g.SetLimit(workers)
	for i, s := range deps.Scenarios {
		if ctx.Err() != nil {
			report.Results[i] = Result{Scenario: s.Name, Skipped: true, Err: ctx.Err()}
			continue
		}
		g.Go(func() error {
			report.Results[i] = runOne(ctx, deps, s, logger)
			return nil
		})
	}
	_ = g.Wait()

	if deps.Recorder != nil {
		deps.Recorder.RunFinished(time.Now(), report.Failed())
	}
	logger.Info("run finished", zap.Int("failed", report.Failed()), zap.Int("skipped", report.Skipped()))

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("run interrupted: %w", err)
	}
	return report, nil
}

func runOne(ctx context.Context, deps RunDependencies, s scenarios.Scenario, logger *zap.Logger) Result {
	logger = logger.With(zap.String("scenario", s.Name))
	if err := ctx.Err(); err != nil {
		return Result{Scenario: s.Name, Skipped: true, Err: err}
	}

	start := time.Now()
	result := Result{Scenario: s.Name}

	session, err := deps.NewSession(s.Name)
	if err != nil {
		result.Err = fmt.Errorf("failed to open session: %w", err)
	} else {
		result.Err = s.Execute(scenarios.Env{
			Profile: deps.Profile,
			Page:    session.Actions(),
			Logger:  logger,
		})
		if closeErr := session.Close(result.Err != nil); closeErr != nil {
			logger.Warn("failed to close session", zap.Error(closeErr))
		}
	}
	result.Passed = result.Err == nil
	result.Duration = time.Since(start)

	if deps.Recorder != nil {
		deps.Recorder.Observe(s.Name, result.Passed, result.Duration)
	}
	if result.Passed {
		logger.Info("scenario passed", zap.Duration("duration", result.Duration))
	} else {
		logger.Error("scenario failed", zap.Duration("duration", result.Duration), zap.Error(result.Err))
	}
	return result
}

// RunWithSignals runs the scenarios, stopping new ones on SIGINT or SIGTERM
func RunWithSignals(deps RunDependencies) (*Report, error) {
	return RunUntilSignal(deps, nil)
}

// RunUntilSignal is RunWithSignals with an injectable signal channel. If
// shutdown is nil, a new channel is registered with signal.Notify.
func RunUntilSignal(deps RunDependencies, shutdown chan os.Signal) (*Report, error) {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-shutdown:
			deps.Logger.Warn("received signal, finishing running scenarios", zap.Stringer("signal", sig))
			cancel()
		case <-done:
		}
	}()

	return RunScenarios(ctx, deps)
}
