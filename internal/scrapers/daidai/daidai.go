// Package daidai captures the player page of the daidai stats site as an
// image. The page is rendered client side, so it goes through a headless
// browser instead of the markup parsers.
package daidai

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"l4d2stats/internal/assert"
	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/errcode"

	pw "github.com/playwright-community/playwright-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	report_snapshotter_snapshot = "snapshotter.snapshot"
)

const (
	DefaultWidth          = 900
	DefaultHeight         = 1200
	DefaultTimeoutSeconds = 60
)

var tracer = otel.Tracer("l4d2stats/scrapers/daidai")

type Options struct {
	// BaseURL is the player page prefix, the identifier is appended to it.
	BaseURL        string `json:"base_url" env:"BASE_URL"`
	Width          int    `json:"width" env:"WIDTH"`
	Height         int    `json:"height" env:"HEIGHT"`
	TimeoutSeconds int    `json:"timeout_seconds" env:"TIMEOUT_SECONDS"`
	// ExecutablePath points at a system chromium, the playwright managed
	// browser is used when empty.
	ExecutablePath string `json:"executable_path" env:"EXECUTABLE_PATH"`
}

type Snapshotter struct {
	opts Options
	tel  telemetry.API
	// capture renders link to a PNG within timeout.
	capture func(link string, timeout time.Duration) ([]byte, error)
}

func NewSnapshotter(opts Options, tel telemetry.API) *Snapshotter {
	assert.NotNil(tel, "telemetry")

	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.TimeoutSeconds <= 0 {
		opts.TimeoutSeconds = DefaultTimeoutSeconds
	}
	s := &Snapshotter{
		opts: opts,
		tel:  telemetry.NewScopedAPI("daidai", tel),
	}
	s.capture = s.capturePage
	return s
}

// URL is the page that gets rendered for identifier.
func (s *Snapshotter) URL(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", errcode.Caller(errcode.BadParams, fmt.Errorf("empty identifier"))
	}
	if s.opts.BaseURL == "" {
		return "", errcode.Caller(errcode.BadParams, fmt.Errorf("daidai base url is not configured"))
	}
	return s.opts.BaseURL + url.QueryEscape(identifier), nil
}

// timeout is the smaller of the configured timeout and what is left of ctx.
func (s *Snapshotter) timeout(ctx context.Context) time.Duration {
	timeout := time.Duration(s.opts.TimeoutSeconds) * time.Second
	deadline, ok := ctx.Deadline()
	if ok {
		remaining := time.Until(deadline)
		if remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

// Snapshot renders the player page of identifier and returns it as a PNG.
func (s *Snapshotter) Snapshot(ctx context.Context, identifier string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "snapshotter:Snapshot")
	defer span.End()

	link, err := s.URL(identifier)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("url", link))

	if err := ctx.Err(); err != nil {
		return nil, errcode.Transport(errcode.Unreachable, err)
	}

	png, err := s.capture(link, s.timeout(ctx))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.tel.ReportBroken(report_snapshotter_snapshot, err, link)
		return nil, errcode.Transport(errcode.Unreachable, err)
	}
	s.tel.ReportDebug(report_snapshotter_snapshot, "url", link, "bytes", len(png))
	return png, nil
}

func (s *Snapshotter) capturePage(link string, timeout time.Duration) ([]byte, error) {
	instance, err := pw.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	defer instance.Stop()

	launch := pw.BrowserTypeLaunchOptions{
		Headless: pw.Bool(true),
	}
	if s.opts.ExecutablePath != "" {
		launch.ExecutablePath = pw.String(s.opts.ExecutablePath)
	}
	browser, err := instance.Chromium.Launch(launch)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage(pw.BrowserNewPageOptions{
		Viewport: &pw.Size{Width: s.opts.Width, Height: s.opts.Height},
	})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer page.Close()

	_, err = page.Goto(link, pw.PageGotoOptions{
		WaitUntil: pw.WaitUntilStateNetworkidle,
		Timeout:   pw.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}

	png, err := page.Screenshot(pw.PageScreenshotOptions{
		Type: pw.ScreenshotTypePng,
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return png, nil
}
