package ops

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/hpungsan/tabstash/internal/config"
	"github.com/hpungsan/tabstash/internal/enrich"
	"github.com/hpungsan/tabstash/internal/errors"
	"github.com/hpungsan/tabstash/internal/store"
	"github.com/hpungsan/tabstash/internal/tab"
	"github.com/hpungsan/tabstash/internal/title"
)

// CaptureInput contains parameters for the Capture operation.
type CaptureInput struct {
	URL     string // required
	Title   string // optional: link captures carry no title
	Favicon string // optional: the page's own icon URL
}

// CaptureOutput contains the result of the Capture operation.
type CaptureOutput struct {
	Item      tab.Tab `json:"item"`
	Enriching bool    `json:"enriching"`
}

// Capture validates the URL, derives a display title, and offers the new
// item to the store. When the URL matches an enrichable pattern the
// metadata lookup is submitted out-of-band after the capture is accepted;
// its outcome never affects the capture result. disp may be nil, which
// disables enrichment.
func Capture(ctx context.Context, st *store.Store, disp *enrich.Dispatcher, cfg *config.Config, input CaptureInput) (*CaptureOutput, error) {
	rawURL := strings.TrimSpace(input.URL)
	if rawURL == "" {
		return nil, errors.NewInvalidRequest("url is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.NewMalformedURL(rawURL, err)
	}

	display := title.Normalize(rawURL, input.Title)
	if strings.TrimSpace(input.Title) == "" {
		// Link captures carry no title; the last path segment beats
		// showing the whole URL.
		if seg := lastPathSegment(u); seg != "" {
			display = seg
		}
	}

	id, err := tab.NewID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	item := tab.Tab{
		ID:         id,
		URL:        rawURL,
		Title:      display,
		FaviconURL: tab.FaviconFor(input.Favicon, rawURL, cfg.FaviconEndpoint),
		CapturedAt: time.Now().Unix(),
	}

	if err := st.Capture(ctx, item); err != nil {
		return nil, err
	}

	kind := title.Classify(rawURL)
	enriching := disp != nil && enrich.ShouldEnrich(kind, input.Title)
	if enriching {
		disp.Submit(id, rawURL)
	}

	return &CaptureOutput{
		Item:      item,
		Enriching: enriching,
	}, nil
}

// lastPathSegment returns the final non-empty path segment of a URL.
func lastPathSegment(u *url.URL) string {
	parts := strings.Split(u.Path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
