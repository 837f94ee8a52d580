package scraper

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// JobPage is the raw content fetched from a posting URL. Skill extraction
// happens downstream via the AI extractor.
type JobPage struct {
	URL         string
	Title       string
	Company     string
	Description string
}

var ErrNoContent = errors.New("job page contained no readable content")

// JobPageFetcher pulls title/company/description from a static job posting
// page. JS-heavy boards are out of scope; this covers plain HTML postings.
type JobPageFetcher struct {
	userAgent string
}

func NewJobPageFetcher() *JobPageFetcher {
	return &JobPageFetcher{
		userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	}
}

func (f *JobPageFetcher) Fetch(rawURL string) (JobPage, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return JobPage{}, fmt.Errorf("invalid job posting url: %q", rawURL)
	}

	c := colly.NewCollector(colly.AllowedDomains(u.Host))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: 300 * time.Millisecond})

	page := JobPage{URL: u.String()}
	var descParts []string

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", f.userAgent)
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if page.Title == "" {
			page.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(`meta[property="og:title"]`, func(e *colly.HTMLElement) {
		if page.Title == "" {
			page.Title = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML(`meta[property="og:site_name"]`, func(e *colly.HTMLElement) {
		if page.Company == "" {
			page.Company = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML("article, main, body", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if text != "" {
			descParts = append(descParts, text)
		}
	})

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(page.URL); err != nil {
		return JobPage{}, err
	}
	c.Wait()

	if fetchErr != nil {
		return JobPage{}, fetchErr
	}

	// The first matching container is the most specific one.
	if len(descParts) > 0 {
		page.Description = collapseWhitespace(descParts[0])
	}
	if page.Title == "" && page.Description == "" {
		return JobPage{}, ErrNoContent
	}
	return page, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
