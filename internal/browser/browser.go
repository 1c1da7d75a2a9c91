package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/themizzi/saucecheck/internal/config"
	"go.uber.org/zap"
)

// Browser is a running playwright driver with one launched browser
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.BrowserConfig
	runID   string
	logger  *zap.Logger
}

// Launch starts playwright and the configured browser engine. Artifacts of
// failed sessions go under <ArtifactsDir>/<runID>/.
func Launch(cfg *config.BrowserConfig, runID string, logger *zap.Logger) (*Browser, error) {
	logger = logger.Named("browser")

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	var engine playwright.BrowserType
	switch cfg.Browser {
	case config.BrowserFirefox:
		engine = pw.Firefox
	case config.BrowserWebKit:
		engine = pw.WebKit
	default:
		engine = pw.Chromium
	}

	b, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo)),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", cfg.Browser, err)
	}

	logger.Info("browser launched",
		zap.String("engine", cfg.Browser),
		zap.String("version", b.Version()),
		zap.Bool("headless", cfg.Headless),
	)

	return &Browser{pw: pw, browser: b, cfg: cfg, runID: runID, logger: logger}, nil
}

// NewSession opens an isolated context and page for one scenario. The
// profile timeouts become the driver's own action, navigation and assertion
// timeouts.
func (b *Browser) NewSession(name string, timeouts config.Timeouts) (*Session, error) {
	dir := ArtifactDir(b.cfg.ArtifactsDir, b.runID, name)
	logger := b.logger.With(zap.String("scenario", name))

	opts := playwright.BrowserNewContextOptions{}
	if b.cfg.Video {
		opts.RecordVideo = &playwright.RecordVideo{Dir: filepath.Join(dir, "video")}
	}

	ctx, err := b.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("could not create context: %w", err)
	}

	if b.cfg.Tracing() {
		if err := ctx.Tracing().Start(playwright.TracingStartOptions{
			Name:        playwright.String(name),
			Screenshots: playwright.Bool(true),
			Snapshots:   playwright.Bool(true),
			Sources:     playwright.Bool(true),
		}); err != nil {
			_ = ctx.Close()
			return nil, fmt.Errorf("could not start tracing: %w", err)
		}
	}

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	page.SetDefaultTimeout(float64(timeouts.DefaultTimeout))
	page.SetDefaultNavigationTimeout(float64(timeouts.NavigationTimeout))

	return &Session{
		name:    name,
		dir:     dir,
		tracing: b.cfg.Tracing(),
		ctx:     ctx,
		page:    page,
		driver:  NewDriver(page, float64(timeouts.DefaultTimeout), b.logger),
		logger:  logger,
	}, nil
}

// Close shuts the browser and the playwright driver down
func (b *Browser) Close() error {
	if err := b.browser.Close(); err != nil {
		_ = b.pw.Stop()
		return fmt.Errorf("could not close browser: %w", err)
	}
	if err := b.pw.Stop(); err != nil {
		return fmt.Errorf("could not stop playwright: %w", err)
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ArtifactDir is where a session keeps its screenshot, trace and video
func ArtifactDir(root, runID, scenario string) string {
	name := strings.Trim(unsafeChars.ReplaceAllString(scenario, "-"), "-")
	if name == "" {
		name = "scenario"
	}
	return filepath.Join(root, runID, name)
}

func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
