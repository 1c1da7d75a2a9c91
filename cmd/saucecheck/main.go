package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/themizzi/saucecheck/internal/browser"
	internalcli "github.com/themizzi/saucecheck/internal/cli"
	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/logging"
	"github.com/themizzi/saucecheck/internal/metrics"
	"github.com/themizzi/saucecheck/internal/scenarios"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var version = "0.1.0"

// envWithFlags returns a getenv that prefers explicitly set flags over the
// process environment
func envWithFlags(c *cli.Context) func(string) string {
	overrides := map[string]string{}
	if c.IsSet("profile") {
		overrides[config.EnvProfile] = c.String("profile")
	}
	if c.IsSet("browser") {
		overrides["BROWSER"] = c.String("browser")
	}
	if c.IsSet("headed") {
		overrides["HEADLESS"] = strconv.FormatBool(!c.Bool("headed"))
	}
	if c.IsSet("artifacts-dir") {
		overrides["ARTIFACTS_DIR"] = c.String("artifacts-dir")
	}
	return func(key string) string {
		if v, ok := overrides[key]; ok {
			return v
		}
		return os.Getenv(key)
	}
}

func newLogger(getenv func(string) string) (*zap.Logger, error) {
	return logging.New(config.LoadLogConfig(getenv))
}

// resolveProfile resolves the selected profile, failing before any browser starts
func resolveProfile(getenv func(string) string) (*config.Resolver, *config.Profile, error) {
	resolver := config.NewResolver(config.Source(getenv), getenv)
	profile, err := resolver.Resolve()
	if err != nil {
		return nil, nil, err
	}
	return resolver, profile, nil
}

// buildRunDependencies creates everything the run command needs. The
// returned browser must be closed by the caller.
func buildRunDependencies(c *cli.Context, logger *zap.Logger) (internalcli.RunDependencies, *browser.Browser, error) {
	var deps internalcli.RunDependencies
	getenv := envWithFlags(c)

	resolver, profile, err := resolveProfile(getenv)
	if err != nil {
		return deps, nil, err
	}
	deps.Profile = profile
	deps.ProfileName = resolver.ProfileName()

	selected, err := scenarios.Select(c.StringSlice("scenario"))
	if err != nil {
		return deps, nil, err
	}
	deps.Scenarios = selected

	browserConfig, err := config.LoadBrowserConfig(getenv)
	if err != nil {
		return deps, nil, fmt.Errorf("invalid browser configuration: %w", err)
	}

	deps.RunID = c.String("run-id")
	if deps.RunID == "" {
		deps.RunID = uuid.NewString()
	}
	deps.Workers = c.Int("workers")
	deps.Logger = logger
	deps.Recorder = metrics.NewRecorder()

	b, err := browser.Launch(browserConfig, deps.RunID, logger)
	if err != nil {
		return deps, nil, err
	}
	deps.NewSession = func(name string) (internalcli.Session, error) {
		session, err := b.NewSession(name, profile.Timeouts)
		if err != nil {
			return nil, err
		}
		return session, nil
	}

	return deps, b, nil
}

func profileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "configuration profile to use",
		EnvVars: []string{config.EnvProfile},
		Value:   config.DefaultProfile,
	}
}

// ProfilesCommand lists the available profiles
func ProfilesCommand() *cli.Command {
	return &cli.Command{
		Name:  "profiles",
		Usage: "List available configuration profiles",
		Action: func(c *cli.Context) error {
			getenv := envWithFlags(c)
			resolver := config.NewResolver(config.Source(getenv), getenv)
			return internalcli.ListProfiles(c.App.Writer, config.Source(getenv), resolver.ProfileName())
		},
	}
}

// ShowCommand prints the resolved profile
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the resolved configuration profile",
		Action: func(c *cli.Context) error {
			_, profile, err := resolveProfile(envWithFlags(c))
			if err != nil {
				return err
			}
			return internalcli.ShowProfile(c.App.Writer, profile)
		},
	}
}

// ValidateCommand loads every profile
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate every configuration profile",
		Action: func(c *cli.Context) error {
			return internalcli.ValidateProfiles(c.App.Writer, config.Source(envWithFlags(c)))
		},
	}
}

// ScenariosCommand lists the scenarios
func ScenariosCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "List end-to-end scenarios",
		Action: func(c *cli.Context) error {
			internalcli.ListScenarios(c.App.Writer)
			return nil
		},
	}
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run end-to-end scenarios against the selected profile",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "browser", Usage: "chromium, firefox or webkit", EnvVars: []string{"BROWSER"}},
			&cli.BoolFlag{Name: "headed", Usage: "show the browser window"},
			&cli.IntFlag{Name: "workers", Usage: "scenarios to run at once", Value: 1, EnvVars: []string{"WORKERS"}},
			&cli.StringSliceFlag{Name: "scenario", Aliases: []string{"s"}, Usage: "scenario to run (repeatable, default all)"},
			&cli.StringFlag{Name: "metrics-file", Usage: "write prometheus metrics to this file", EnvVars: []string{"METRICS_FILE"}},
			&cli.StringFlag{Name: "artifacts-dir", Usage: "where failed scenarios keep screenshots and traces", EnvVars: []string{"ARTIFACTS_DIR"}},
			&cli.StringFlag{Name: "run-id", Usage: "identifier for this run (default random uuid)"},
		},
		Action: func(c *cli.Context) error {
			logger, err := newLogger(os.Getenv)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			deps, b, err := buildRunDependencies(c, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := b.Close(); err != nil {
					logger.Warn("failed to close browser", zap.Error(err))
				}
			}()

			report, runErr := internalcli.RunWithSignals(deps)
			if err := report.Summary(c.App.Writer); err != nil {
				return err
			}

			if path := c.String("metrics-file"); path != "" {
				if err := deps.Recorder.WriteTextfile(path); err != nil {
					return err
				}
			}

			if runErr != nil {
				return runErr
			}
			if failed := report.Failed(); failed > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d scenarios failed", failed, len(report.Results)), 1)
			}
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "saucecheck",
		Usage:   "End-to-end checks for the SauceDemo storefront",
		Version: version,
		Flags:   []cli.Flag{profileFlag()},
		Commands: []*cli.Command{
			ProfilesCommand(),
			ShowCommand(),
			ValidateCommand(),
			ScenariosCommand(),
			RunCommand(),
		},
	}
}
