package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
	"github.com/themizzi/saucecheck/internal/pages"
	"go.uber.org/zap"
)

// Session is one scenario's browser context and page
type Session struct {
	name    string
	dir     string
	tracing bool

	ctx    playwright.BrowserContext
	page   playwright.Page
	driver *Driver
	logger *zap.Logger
}

// Actions returns the driver for this session's page
func (s *Session) Actions() pages.Actions {
	return s.driver
}

// Page exposes the raw playwright page
func (s *Session) Page() playwright.Page {
	return s.page
}

// Dir is the session's artifact directory
func (s *Session) Dir() string {
	return s.dir
}

// Close ends the session. A failed session keeps a screenshot, its trace and
// its video under Dir; a passing one leaves nothing behind.
func (s *Session) Close(failed bool) error {
	var errs []error

	if failed {
		if err := ensureDir(s.dir); err != nil {
			errs = append(errs, fmt.Errorf("create artifact dir: %w", err))
		}
		if _, err := s.page.Screenshot(playwright.PageScreenshotOptions{
			Path:     playwright.String(filepath.Join(s.dir, "failure.png")),
			FullPage: playwright.Bool(true),
		}); err != nil {
			errs = append(errs, fmt.Errorf("screenshot: %w", err))
		}
	}

	if s.tracing {
		var err error
		if failed {
			err = s.ctx.Tracing().Stop(filepath.Join(s.dir, "trace.zip"))
		} else {
			err = s.ctx.Tracing().Stop()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("stop tracing: %w", err))
		}
	}

	// closing the context flushes the video to disk
	if err := s.ctx.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close context: %w", err))
	}

	if failed {
		s.logger.Warn("scenario failed, artifacts kept", zap.String("dir", s.dir))
	} else if err := os.RemoveAll(s.dir); err != nil {
		errs = append(errs, fmt.Errorf("remove artifacts: %w", err))
	}

	return errors.Join(errs...)
}
