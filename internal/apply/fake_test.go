package apply

import (
	"time"

	"easyapply-engine/internal/browser"
)

// fakeElement is a scriptable browser.Element.
type fakeElement struct {
	text    string
	attrs   map[string]string
	checked bool

	clicks  int
	filled  []string
	onClick func()
}

func (e *fakeElement) Click() error {
	e.clicks++
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) Fill(v string) error {
	e.filled = append(e.filled, v)
	return nil
}

func (e *fakeElement) Text() (string, error) { return e.text, nil }

func (e *fakeElement) Attr(name string) string { return e.attrs[name] }

func (e *fakeElement) Checked() bool { return e.checked }

func (e *fakeElement) Query(string) (browser.Element, error) {
	return nil, browser.ErrNotFound
}

// dialogScreen is one step of a scripted application dialog. Clicking the
// next button advances the page to the following screen.
type dialogScreen struct {
	controls   int
	labels     []*fakeElement
	yearInputs []*fakeElement
	textAreas  []*fakeElement
	noOption   *fakeElement

	coverLetter bool
	resume      bool
	external    bool

	hasSubmit  bool
	hasConfirm bool
	hasNext    bool
}

// fakePage plays back a scripted dialog. A nil/empty dialog means the dialog
// never opens.
type fakePage struct {
	dialog []dialogScreen
	screen int

	submits  int
	confirms int
	nexts    int
	escapes  int
	shots    []string
	paused   time.Duration

	html string
	url  string
}

func (p *fakePage) cur() *dialogScreen {
	if len(p.dialog) == 0 {
		return nil
	}
	return &p.dialog[p.screen]
}

func (p *fakePage) advance() {
	p.nexts++
	if p.screen < len(p.dialog)-1 {
		p.screen++
	}
}

func (p *fakePage) Goto(string) error { return nil }

func (p *fakePage) WaitFor(selector string, _ time.Duration) error {
	if selector == selDialog && len(p.dialog) > 0 {
		return nil
	}
	return browser.ErrTimeout
}

func (p *fakePage) Query(selector string) (browser.Element, error) {
	s := p.cur()
	if s == nil {
		return nil, browser.ErrNotFound
	}
	switch selector {
	case selCoverLetter:
		if s.coverLetter {
			return &fakeElement{}, nil
		}
	case selResumeUpload:
		if s.resume {
			return &fakeElement{}, nil
		}
	case selExternalRedirect:
		if s.external {
			return &fakeElement{}, nil
		}
	case selSubmit:
		if s.hasSubmit {
			return &fakeElement{onClick: func() { p.submits++ }}, nil
		}
	case selConfirm:
		if s.hasConfirm {
			return &fakeElement{onClick: func() { p.confirms++ }}, nil
		}
	case selNext:
		if s.hasNext {
			return &fakeElement{onClick: p.advance}, nil
		}
	case selNoOption:
		if s.noOption != nil {
			return s.noOption, nil
		}
	}
	return nil, browser.ErrNotFound
}

func (p *fakePage) QueryAll(selector string) ([]browser.Element, error) {
	s := p.cur()
	if s == nil {
		return nil, browser.ErrNotFound
	}
	switch selector {
	case selDialogControls:
		els := make([]browser.Element, s.controls)
		for i := range els {
			els[i] = &fakeElement{}
		}
		return els, nil
	case selLabels:
		return asElements(s.labels), nil
	case selYearsInputs:
		return asElements(s.yearInputs), nil
	case selTextAreas:
		return asElements(s.textAreas), nil
	}
	return nil, browser.ErrNotFound
}

func (p *fakePage) InnerText(string) string { return "" }

func (p *fakePage) Content() (string, error) { return p.html, nil }

func (p *fakePage) URL() string { return p.url }

func (p *fakePage) PressEscape() error {
	p.escapes++
	return nil
}

func (p *fakePage) Screenshot(path string) error {
	p.shots = append(p.shots, path)
	return nil
}

func (p *fakePage) Pause(d time.Duration) { p.paused += d }

func asElements(xs []*fakeElement) []browser.Element {
	els := make([]browser.Element, len(xs))
	for i, x := range xs {
		els[i] = x
	}
	return els
}
