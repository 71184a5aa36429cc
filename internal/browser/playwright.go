package browser

import (
	"fmt"
	"strings"
	"sync"
	"time"

	pw "github.com/playwright-community/playwright-go"
)

type Options struct {
	// ProfileDir is the persistent, pre-authenticated Chromium profile.
	ProfileDir string
	Headless   bool
	// SessionCookie, when set, is injected as the site's auth cookie so a
	// fresh profile can still drive an authenticated session.
	SessionCookie string
	CookieName    string
	CookieDomain  string
}

var installOnce sync.Once

// Open launches a persistent Chromium context and returns its single page.
func Open(opts Options) (Session, error) {
	installOnce.Do(func() {
		// One-time driver setup; browsers come from the user's machine.
		_ = pw.Install(&pw.RunOptions{SkipInstallBrowsers: true})
	})

	run, err := pw.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	ctx, err := run.Chromium.LaunchPersistentContext(opts.ProfileDir, pw.BrowserTypeLaunchPersistentContextOptions{
		Headless: pw.Bool(opts.Headless),
		Args:     []string{"--disable-blink-features=AutomationControlled"},
	})
	if err != nil {
		_ = run.Stop()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	if opts.SessionCookie != "" {
		name := opts.CookieName
		if name == "" {
			name = "li_at"
		}
		domain := opts.CookieDomain
		if domain == "" {
			domain = ".linkedin.com"
		}
		_ = ctx.AddCookies([]pw.OptionalCookie{{
			Name:   name,
			Value:  opts.SessionCookie,
			Domain: pw.String(domain),
			Path:   pw.String("/"),
		}})
	}

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		_ = run.Stop()
		return nil, fmt.Errorf("new page: %w", err)
	}
	page.SetDefaultTimeout(20_000)

	return &pwSession{run: run, ctx: ctx, page: page}, nil
}

type pwSession struct {
	run  *pw.Playwright
	ctx  pw.BrowserContext
	page pw.Page
}

func (s *pwSession) Goto(url string) error {
	_, err := s.page.Goto(url, pw.PageGotoOptions{
		WaitUntil: pw.WaitUntilStateDomcontentloaded,
		Timeout:   pw.Float(60_000),
	})
	return classify(err)
}

func (s *pwSession) WaitFor(selector string, timeout time.Duration) error {
	_, err := s.page.WaitForSelector(selector, pw.PageWaitForSelectorOptions{
		Timeout: pw.Float(float64(timeout.Milliseconds())),
	})
	return classify(err)
}

func (s *pwSession) Query(selector string) (Element, error) {
	h, err := s.page.QuerySelector(selector)
	if err != nil {
		return nil, classify(err)
	}
	if h == nil {
		return nil, ErrNotFound
	}
	return pwElement{h: h}, nil
}

func (s *pwSession) QueryAll(selector string) ([]Element, error) {
	hs, err := s.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]Element, 0, len(hs))
	for _, h := range hs {
		out = append(out, pwElement{h: h})
	}
	return out, nil
}

func (s *pwSession) InnerText(selector string) string {
	h, err := s.page.QuerySelector(selector)
	if err != nil || h == nil {
		return ""
	}
	t, err := h.InnerText()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(t)
}

func (s *pwSession) Content() (string, error) {
	return s.page.Content()
}

func (s *pwSession) URL() string {
	return s.page.URL()
}

func (s *pwSession) PressEscape() error {
	return classify(s.page.Keyboard().Press("Escape"))
}

func (s *pwSession) Screenshot(path string) error {
	_, err := s.page.Screenshot(pw.PageScreenshotOptions{Path: pw.String(path)})
	return classify(err)
}

func (s *pwSession) Pause(d time.Duration) {
	s.page.WaitForTimeout(float64(d.Milliseconds()))
}

func (s *pwSession) Close() error {
	err := s.ctx.Close()
	_ = s.run.Stop()
	return err
}

type pwElement struct {
	h pw.ElementHandle
}

func (e pwElement) Click() error {
	return classify(e.h.Click())
}

func (e pwElement) Fill(value string) error {
	return classify(e.h.Fill(value))
}

func (e pwElement) Text() (string, error) {
	t, err := e.h.InnerText()
	if err != nil {
		return "", classify(err)
	}
	return t, nil
}

func (e pwElement) Attr(name string) string {
	v, err := e.h.GetAttribute(name)
	if err != nil {
		return ""
	}
	return v
}

func (e pwElement) Checked() bool {
	// Labels are not toggles themselves; look through to a wrapped input.
	if checked, err := e.h.IsChecked(); err == nil {
		return checked
	}
	inner, err := e.h.QuerySelector("input")
	if err != nil || inner == nil {
		return false
	}
	checked, err := inner.IsChecked()
	return err == nil && checked
}

func (e pwElement) Query(selector string) (Element, error) {
	h, err := e.h.QuerySelector(selector)
	if err != nil {
		return nil, classify(err)
	}
	if h == nil {
		return nil, ErrNotFound
	}
	return pwElement{h: h}, nil
}

// classify maps driver errors onto the two sentinel kinds every consumer
// branches on. Anything else passes through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") {
		return fmt.Errorf("%w: %s", ErrTimeout, err.Error())
	}
	if strings.Contains(msg, "not found") || strings.Contains(msg, "no element") {
		return fmt.Errorf("%w: %s", ErrNotFound, err.Error())
	}
	return err
}
