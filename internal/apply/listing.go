package apply

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"easyapply-engine/internal/domain"
)

// SearchURL builds the results URL from the user's settings. The Easy Apply
// facet is in the query string; the worker also re-clicks the filter chip in
// the UI as backup.
func SearchURL(s domain.Settings) string {
	kws := strings.TrimSpace(s.Keywords)
	loc := strings.TrimSpace(s.Location)
	if loc == "" {
		loc = "United States"
	}
	q := url.Values{}
	q.Set("keywords", kws)
	q.Set("location", loc)
	q.Set("f_AL", "true")
	return "https://www.linkedin.com/jobs/search/?" + q.Encode()
}

// ParseListing pulls the card's visible metadata out of one HTML snapshot so
// the eligibility check costs a single page read. HasEasyApply is decided by
// the caller against the live page.
func ParseListing(html, pageURL string) domain.Listing {
	l := domain.Listing{URL: pageURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return l
	}

	l.Title = firstText(doc, selJobTitle)
	l.Company = firstText(doc, selCompany)
	l.Location = firstText(doc, selLocation)
	l.SalaryText = firstSalary(doc)
	l.PostingAgeDays = postedDaysAgo(doc)

	return l
}

func firstText(doc *goquery.Document, selector string) string {
	var out string
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			return true
		}
		out = t
		return false
	})
	return out
}

func firstSalary(doc *goquery.Document) string {
	var out string
	doc.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := strings.TrimSpace(s.Text())
		if !strings.Contains(t, "$") {
			return true
		}
		out = t
		return false
	})
	return out
}

// postedDaysAgo reads the "X days ago" line; the first integer token wins.
// nil when the age cannot be read, which the filter treats as "keep".
func postedDaysAgo(doc *goquery.Document) *int {
	txt := firstText(doc, selPostedDate)
	for _, tok := range strings.Fields(txt) {
		if n, err := strconv.Atoi(tok); err == nil {
			return &n
		}
	}
	return nil
}
