package title

import (
	"strings"
	"testing"
)

func TestNormalize_NeverEmpty(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
	}{
		{"empty title", "https://example.com/page", ""},
		{"whitespace title", "https://example.com/page", "   "},
		{"only delimiters", "https://example.com/page", "| stuff"},
		{"degenerate zillow", "https://www.zillow.com/homes/", "12"},
		{"degenerate facebook", "https://www.facebook.com/", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.url, tt.title)
			if got == "" {
				t.Errorf("Normalize(%q, %q) returned empty string", tt.url, tt.title)
			}
		})
	}
}

func TestNormalize_EmptyTitleReturnsURL(t *testing.T) {
	got := Normalize("https://example.com/page", "")
	if got != "https://example.com/page" {
		t.Errorf("Normalize with empty title = %q, want the URL", got)
	}
}

func TestNormalize_GenericIdempotent(t *testing.T) {
	// An already-normalized title with no delimiter must come back unchanged.
	in := "How to Write Go Code"
	first := Normalize("https://example.com/page", in)
	if first != in {
		t.Fatalf("first pass = %q, want %q", first, in)
	}
	second := Normalize("https://example.com/page", first)
	if second != first {
		t.Errorf("second pass = %q, want %q", second, first)
	}
}

func TestNormalizeGeneric(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "strips site name after dash",
			title: "How to Write Go - Example Blog",
			want:  "How to Write Go",
		},
		{
			name:  "strips site name after pipe",
			title: "How to Write Go | Example Blog",
			want:  "How to Write Go",
		},
		{
			name:  "earliest delimiter wins",
			title: "How to Write Go | Tips - Example Blog",
			want:  "How to Write Go",
		},
		{
			// The wide cut would leave "Home" (under 10 chars); retrying
			// with only " | " keeps the longer, non-degenerate form.
			name:  "aggressive cut retried narrower",
			title: "Home - The Very Long Site Name | Extra",
			want:  "Home - The Very Long Site Name",
		},
		{
			name:  "both cuts degenerate keeps wide",
			title: "Go - Blog",
			want:  "Go",
		},
		{
			name:  "no delimiter unchanged",
			title: "A Perfectly Fine Title",
			want:  "A Perfectly Fine Title",
		},
		{
			name:  "by-authored page outside medium.com",
			title: "Understanding Channels | by Jane Doe",
			want:  "Understanding Channels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize("https://example.com/page", tt.title)
			if got != tt.want {
				t.Errorf("Normalize(generic, %q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeZillow(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
		want  string
	}{
		{
			name:  "address parsed from detail path",
			url:   "https://www.zillow.com/homedetails/123-Main-St-NW-Springfield-OH-45501/12345_zpid/",
			title: "123 Main St | Zillow",
			want:  "123 Main ST NW Springfield OH",
		},
		{
			name:  "suffix stripped on usable title",
			url:   "https://www.zillow.com/b/some-building/",
			title: "Sunset Terrace Apartments | Zillow",
			want:  "Sunset Terrace Apartments",
		},
		{
			name:  "for sale suffix stripped",
			url:   "https://www.zillow.com/b/some-building/",
			title: "Sunset Terrace Apartments For Sale",
			want:  "Sunset Terrace Apartments",
		},
		{
			name:  "zip title on search page",
			url:   "https://www.zillow.com/homes/45501_rb/",
			title: "45501 | Zillow",
			want:  "Homes for Sale in 45501",
		},
		{
			name:  "degenerate search title without zip",
			url:   "https://www.zillow.com/homes/",
			title: "Homes",
			want:  "Zillow Home Search",
		},
		{
			name:  "degenerate non-search title",
			url:   "https://www.zillow.com/profile/agent/",
			title: "42",
			want:  "Zillow Property",
		},
		{
			name:  "mojibake registered mark suffix",
			url:   "https://www.zillow.com/b/some-building/",
			title: "Sunset Terrace Apartments | Zillow®",
			want:  "Sunset Terrace Apartments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.url, tt.title)
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.url, tt.title, got, tt.want)
			}
		})
	}
}

func TestZillowAddressCasing(t *testing.T) {
	got := Normalize(
		"https://www.zillow.com/homedetails/456-Oak-Ave-SE-Portland-OR-97202/999_zpid/",
		"97202 | Zillow",
	)
	if !strings.HasPrefix(got, "456 Oak Ave") {
		t.Errorf("address = %q, want prefix %q", got, "456 Oak Ave")
	}
	if !strings.Contains(got, "SE") {
		t.Errorf("address = %q, want directional %q preserved upper-case", got, "SE")
	}
	if !strings.Contains(got, "OR") {
		t.Errorf("address = %q, want state code %q upper-case", got, "OR")
	}
}

func TestZillowAddressRejected(t *testing.T) {
	// A path segment with no digits does not look like a real address;
	// the rule falls through to the category label.
	got := Normalize("https://www.zillow.com/homedetails/somewhere-nice/1_zpid/", "42")
	if got != "Zillow Property" {
		t.Errorf("Normalize = %q, want %q", got, "Zillow Property")
	}
}

func TestNormalizeFacebook(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
		want  string
	}{
		{
			name:  "suffix and notification count stripped",
			url:   "https://www.facebook.com/somepage/",
			title: "(3) Cool Woodworking Page | Facebook",
			want:  "Cool Woodworking Page",
		},
		{
			name:  "numeric title derives name from path",
			url:   "https://www.facebook.com/groups/woodworkers/posts/98765/",
			title: "12345 | Facebook",
			want:  "Post in Woodworkers",
		},
		{
			name:  "camel-cased path segment split",
			url:   "https://www.facebook.com/JohnDoe.Photography/photos/123/",
			title: "1",
			want:  "John Doe Photography",
		},
		{
			name:  "watch url gets video prefix",
			url:   "https://www.facebook.com/watch/?v=123",
			title: "Funny Clip | Facebook",
			want:  "Video: Funny Clip",
		},
		{
			name:  "video prefix not doubled",
			url:   "https://www.facebook.com/watch/?v=123",
			title: "Video of the Year | Facebook",
			want:  "Video of the Year",
		},
		{
			name:  "group prefix not doubled",
			url:   "https://www.facebook.com/groups/gophers/",
			title: "Gophers Group | Facebook",
			want:  "Gophers Group",
		},
		{
			name:  "tracking fragment stripped",
			url:   "https://www.facebook.com/somepage/",
			title: "Cool Page?__cft__[0]=abc123",
			want:  "Cool Page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.url, tt.title)
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.url, tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeLinkedIn(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
		want  string
	}{
		{
			name:  "profile keeps name and headline",
			url:   "https://www.linkedin.com/in/jane/",
			title: "Jane Doe - Staff Engineer - Acme Corp | LinkedIn",
			want:  "Jane Doe - Staff Engineer",
		},
		{
			name:  "job posting suffix appended",
			url:   "https://www.linkedin.com/jobs/view/123/",
			title: "Senior Gopher | LinkedIn",
			want:  "Senior Gopher - Job Posting",
		},
		{
			name:  "job posting suffix not doubled",
			url:   "https://www.linkedin.com/jobs/view/123/",
			title: "Senior Gopher Job | LinkedIn",
			want:  "Senior Gopher Job",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.url, tt.title)
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.url, tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeMedium(t *testing.T) {
	got := Normalize("https://medium.com/@jane/understanding-channels-1a2b", "Understanding Channels | by Jane Doe | Medium")
	if got != "Understanding Channels" {
		t.Errorf("Normalize(medium) = %q, want %q", got, "Understanding Channels")
	}
}

func TestNormalizeYouTube(t *testing.T) {
	got := Normalize("https://www.youtube.com/watch?v=abc123", "Some Video - YouTube")
	if got != "Some Video" {
		t.Errorf("Normalize(youtube) = %q, want %q", got, "Some Video")
	}

	// Short-link domain takes the same rule.
	got = Normalize("https://youtu.be/abc123", "Another Video - YouTube")
	if got != "Another Video" {
		t.Errorf("Normalize(youtu.be) = %q, want %q", got, "Another Video")
	}
}

func TestNormalizeGoogleDocs(t *testing.T) {
	tests := []struct {
		url   string
		title string
		want  string
	}{
		{"https://docs.google.com/document/d/x/edit", "Q3 Planning - Google Docs", "Q3 Planning (Google Doc)"},
		{"https://docs.google.com/spreadsheets/d/x/edit", "Budget - Google Sheets", "Budget (Google Sheet)"},
		{"https://docs.google.com/presentation/d/x/edit", "Launch Deck - Google Slides", "Launch Deck (Google Slides)"},
	}

	for _, tt := range tests {
		got := Normalize(tt.url, tt.title)
		if got != tt.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tt.url, tt.title, got, tt.want)
		}
	}
}

func TestNormalizeGitHub(t *testing.T) {
	tests := []struct {
		url   string
		title string
		want  string
	}{
		{
			"https://github.com/golang/go",
			"golang/go: The Go programming language · GitHub",
			"golang/go: The Go programming language",
		},
		{
			"https://github.com/golang/go/pull/12345",
			"cmd/compile: fix inlining · Pull Request #12345 · golang/go · GitHub",
			"cmd/compile: fix inlining PR #12345 · golang/go",
		},
		{
			"https://github.com/golang/go/issues/999",
			"runtime: crash on arm64 · Issue #999 · golang/go · GitHub",
			"runtime: crash on arm64 Issue #999 · golang/go",
		},
	}

	for _, tt := range tests {
		got := Normalize(tt.url, tt.title)
		if got != tt.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tt.url, tt.title, got, tt.want)
		}
	}
}

func TestNormalizeStackOverflow(t *testing.T) {
	got := Normalize(
		"https://stackoverflow.com/questions/1/how-do-i-x",
		"go - How do I X? - Stack Overflow",
	)
	if got != "go - How do I X?" {
		t.Errorf("Normalize(stackoverflow) = %q, want %q", got, "go - How do I X?")
	}
}
