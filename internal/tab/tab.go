package tab

import (
	"crypto/rand"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Tab represents a captured page the user wants to revisit later.
type Tab struct {
	// ID is a ULID that uniquely identifies this tab. It is used only for
	// identity and removal and is never reused.
	ID string `json:"id"`

	// URL is the absolute URL of the captured page. Immutable once captured.
	URL string `json:"url"`

	// Title is the current best-known display title. It may be replaced
	// once by a metadata enrichment result after capture.
	Title string `json:"title"`

	// FaviconURL is a resolvable icon URL, either the page's own icon or
	// a favicon-by-domain resolver URL.
	FaviconURL string `json:"favicon_url"`

	// CapturedAt is the Unix timestamp of capture. Immutable.
	CapturedAt int64 `json:"captured_at"`
}

// NewID generates a new ULID.
func NewID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// FaviconFor resolves the icon URL for a page. The page's own icon wins
// when supplied; otherwise the configured favicon-by-domain endpoint is
// used with the page's hostname.
func FaviconFor(pageIcon, rawURL, endpoint string) string {
	if strings.TrimSpace(pageIcon) != "" {
		return pageIcon
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return endpoint
	}
	return endpoint + u.Hostname()
}

// Host returns the hostname of the tab's URL for display, or the raw URL
// if it cannot be parsed.
func (t Tab) Host() string {
	u, err := url.Parse(t.URL)
	if err != nil || u.Hostname() == "" {
		return t.URL
	}
	return u.Hostname()
}
