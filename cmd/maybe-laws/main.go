// Command maybe-laws checks that Maybe satisfies the algebraic laws of every
// structure it implements and reports the outcome.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/authcorp/libs/go/maybe/internal/config"
	"github.com/authcorp/libs/go/maybe/internal/lawrunner"
	"github.com/authcorp/libs/go/maybe/internal/observability"
	"github.com/authcorp/libs/go/maybe/laws"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitSetup  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app holds the components assembled by fx.
type app struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics
	Runner  *lawrunner.Runner
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := newFlagSet(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitSetup
	}

	if list, _ := flags.GetBool("list"); list {
		fmt.Fprintln(stdout, strings.Join(laws.Names(), "\n"))
		return exitOK
	}

	configPath, _ := flags.GetString("config")

	var a app
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(flags),
		fx.Provide(
			func() io.Writer { return stderr },
			func(fs *pflag.FlagSet) (*config.Config, error) { return config.Load(configPath, fs) },
			observability.NewLogger,
			observability.NewMetrics,
			lawrunner.New,
		),
		fx.Populate(&a.Config, &a.Logger, &a.Metrics, &a.Runner),
	)
	if err := fxApp.Err(); err != nil {
		fmt.Fprintf(stderr, "maybe-laws: %v\n", err)
		return exitSetup
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.check(ctx, stdout)
}

func (a *app) check(ctx context.Context, stdout io.Writer) int {
	report, runErr := a.Runner.Run(ctx, nil)
	if runErr != nil && !errors.Is(runErr, lawrunner.ErrLawsFailed) {
		a.Logger.Error("law run failed", "error", runErr)
		return exitSetup
	}

	if err := a.writeReport(report, stdout); err != nil {
		a.Logger.Error("failed to write report", "error", err)
		return exitSetup
	}

	if path := a.Config.Metrics.Textfile; path != "" {
		if err := a.Metrics.WriteTextfile(path); err != nil {
			a.Logger.Error("failed to export metrics", "error", err)
			return exitSetup
		}
		a.Logger.Debug("metrics exported", "path", path)
	}

	if runErr != nil {
		return exitFailed
	}
	return exitOK
}

func (a *app) writeReport(report *lawrunner.Report, stdout io.Writer) error {
	out := a.Config.Report.Output
	if out == "" || out == "-" {
		return report.Encode(stdout, a.Config.Report.Format)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := report.Encode(f, a.Config.Report.Format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newFlagSet(output io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("maybe-laws", pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.String("config", "", "path to a YAML configuration file")
	flags.StringSlice("suite", nil, "law suite to check, repeatable (default all)")
	flags.String("format", "text", "report format: text, json or yaml")
	flags.String("output", "-", "report destination, - for stdout")
	flags.Int64("seed", 0, "random seed, 0 for a time-based seed")
	flags.Int("min-successful", 100, "generated cases each law must pass")
	flags.Int("workers", 4, "parallel workers per law")
	flags.String("metrics-file", "", "write prometheus metrics to this textfile")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("list", false, "list the law suites and exit")
	return flags
}
