package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hpungsan/tabstash/internal/errors"
	"github.com/hpungsan/tabstash/internal/title"
)

// youtubeIDRe extracts a video ID from watch and short-link URLs.
var youtubeIDRe = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&]+)`)

// Client queries an oEmbed-compatible metadata endpoint for page titles.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint. The timeout bounds
// every lookup; a lookup that runs past it is treated as failed.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CanonicalURL maps a URL to the form the metadata service indexes.
// YouTube watch and short-link URLs collapse to the canonical watch URL;
// everything else passes through unchanged.
func CanonicalURL(rawURL string) string {
	if m := youtubeIDRe.FindStringSubmatch(rawURL); m != nil {
		return "https://www.youtube.com/watch?v=" + m[1]
	}
	return rawURL
}

// ShouldEnrich reports whether a capture warrants a metadata lookup:
// always for YouTube (the local title is unreliable for video pages),
// and best-effort for any capture whose raw title was empty.
func ShouldEnrich(kind title.SiteKind, rawTitle string) bool {
	return kind == title.YouTube || strings.TrimSpace(rawTitle) == ""
}

// Lookup issues one GET against the metadata endpoint for the given URL
// and returns the service's title. Network failure, a non-2xx status, a
// parse failure, or a missing title field all yield MetadataLookupFailed;
// callers fall back to the locally normalized title.
func (c *Client) Lookup(ctx context.Context, rawURL string) (string, error) {
	target := CanonicalURL(rawURL)

	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	reqURL := c.endpoint + sep + "url=" + url.QueryEscape(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", errors.NewMetadataLookupFailed(rawURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewMetadataLookupFailed(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.NewMetadataLookupFailed(rawURL, fmt.Errorf("status %s", resp.Status))
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err != nil {
		return "", errors.NewMetadataLookupFailed(rawURL, err)
	}

	t := strings.TrimSpace(payload.Title)
	if t == "" {
		return "", errors.NewMetadataLookupFailed(rawURL, fmt.Errorf("response has no title"))
	}
	return t, nil
}
