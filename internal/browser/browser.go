// Package browser wraps the driven browser session behind a small capability
// surface so the automation policy can be tested without a real browser.
package browser

import (
	"errors"
	"time"
)

var (
	// ErrNotFound means the selector matched nothing. Expected and frequent;
	// callers treat it as "feature absent", never as a run failure.
	ErrNotFound = errors.New("element not found")
	// ErrTimeout means a bounded wait elapsed. Same policy as ErrNotFound.
	ErrTimeout = errors.New("browser action timed out")
)

type Element interface {
	Click() error
	Fill(value string) error
	Text() (string, error)
	// Attr returns the attribute value, or "" when absent.
	Attr(name string) string
	// Checked reports whether the element (or its wrapped input) is a
	// selected toggle. Non-toggle elements report false.
	Checked() bool
	Query(selector string) (Element, error)
}

type Page interface {
	Goto(url string) error
	// WaitFor blocks until the selector appears or the timeout elapses
	// (ErrTimeout).
	WaitFor(selector string, timeout time.Duration) error
	Query(selector string) (Element, error)
	QueryAll(selector string) ([]Element, error)
	// InnerText is a best-effort read: "" when the selector is absent or the
	// element cannot be read.
	InnerText(selector string) string
	Content() (string, error)
	URL() string
	PressEscape() error
	Screenshot(path string) error
	// Pause blocks for roughly d; used for human-ish delays between actions.
	Pause(d time.Duration)
}

// Session is an exclusive resource: exactly one goroutine drives it.
type Session interface {
	Page
	Close() error
}
