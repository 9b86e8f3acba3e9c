package title

import "strings"

// SiteKind is the classified category of a URL. It drives which
// normalization rule applies to the page title.
type SiteKind int

const (
	Generic SiteKind = iota
	Zillow
	LinkedIn
	Medium
	Facebook
	YouTube
	GoogleDocs
	GitHub
	StackOverflow
)

// String returns the kind name, mainly for logs and tests.
func (k SiteKind) String() string {
	switch k {
	case Zillow:
		return "zillow"
	case LinkedIn:
		return "linkedin"
	case Medium:
		return "medium"
	case Facebook:
		return "facebook"
	case YouTube:
		return "youtube"
	case GoogleDocs:
		return "google-docs"
	case GitHub:
		return "github"
	case StackOverflow:
		return "stackoverflow"
	default:
		return "generic"
	}
}

// Classify identifies which site-specific rule set applies to a URL.
// It is total: unrecognized URLs map to Generic. Matching is substring
// based and evaluated in a fixed priority order, first match wins, since
// some URLs could satisfy more than one weak pattern.
func Classify(rawURL string) SiteKind {
	switch {
	case strings.Contains(rawURL, "zillow.com"):
		return Zillow
	case strings.Contains(rawURL, "linkedin.com"):
		return LinkedIn
	case strings.Contains(rawURL, "medium.com"):
		return Medium
	case strings.Contains(rawURL, "facebook.com"):
		return Facebook
	case strings.Contains(rawURL, "youtube.com"), strings.Contains(rawURL, "youtu.be"):
		return YouTube
	case strings.Contains(rawURL, "docs.google.com"):
		return GoogleDocs
	case strings.Contains(rawURL, "github.com"):
		return GitHub
	case strings.Contains(rawURL, "stackoverflow.com"):
		return StackOverflow
	default:
		return Generic
	}
}

// DocKind resolves the Google Docs family sub-kind from the URL path.
// Returns "Doc", "Sheet", "Slides", or "" when the path is unrecognized.
func DocKind(rawURL string) string {
	switch {
	case strings.Contains(rawURL, "/document/"):
		return "Doc"
	case strings.Contains(rawURL, "/spreadsheets/"):
		return "Sheet"
	case strings.Contains(rawURL, "/presentation/"):
		return "Slides"
	default:
		return ""
	}
}
