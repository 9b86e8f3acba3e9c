package title

import (
	"net/url"
	"regexp"
	"strings"
)

// minDisplayLen is the threshold below which a stripped title is
// considered degenerate and a fallback is attempted.
const minDisplayLen = 10

var (
	zipPrefixRe   = regexp.MustCompile(`^\d{5}`)
	zipRe         = regexp.MustCompile(`\b\d{5}\b`)
	allDigitsRe   = regexp.MustCompile(`^\d+$`)
	notifCountRe  = regexp.MustCompile(`\([0-9]+\)`)
	fbSuffixRe    = regexp.MustCompile(`- Facebook$`)
	fbTrackingRe  = regexp.MustCompile(`\?__cft__\[.*$`)
	byAuthorRe    = regexp.MustCompile(`\s*\|\s*by\s+[^|]+$`)
	mediumTailRe  = regexp.MustCompile(`\s*\|\s*Medium$`)
	youtubeTailRe = regexp.MustCompile(`\s*- YouTube$`)
	gdocsTailRe   = regexp.MustCompile(`\s*-\s*Google (Docs|Sheets|Slides)$`)
	camelRunRe    = regexp.MustCompile(`([A-Z])`)
	trailDigitsRe = regexp.MustCompile(`\d+$`)
)

// rule is a pure title transformation for one SiteKind.
type rule func(rawURL, title string) string

// rules maps each SiteKind to its normalization rule. Site identity is
// derived once by Classify and dispatched here.
var rules = map[SiteKind]rule{
	Zillow:        normalizeZillow,
	LinkedIn:      normalizeLinkedIn,
	Medium:        normalizeMedium,
	Facebook:      normalizeFacebook,
	YouTube:       normalizeYouTube,
	GoogleDocs:    normalizeGoogleDocs,
	GitHub:        normalizeGitHub,
	StackOverflow: normalizeStackOverflow,
	Generic:       normalizeGeneric,
}

// Normalize transforms a raw page title into a concise display title using
// the rule for the URL's classified SiteKind. It never returns an empty
// string: a missing title yields the URL itself.
func Normalize(rawURL, rawTitle string) string {
	t := strings.TrimSpace(rawTitle)
	if t == "" {
		return rawURL
	}

	out := strings.TrimSpace(rules[Classify(rawURL)](rawURL, t))
	if out == "" {
		out = t
	}
	return out
}

// --- Zillow ---

// zillowSuffixes are stripped in order; the mojibake variant shows up on
// pages served with a mismatched charset.
var zillowSuffixes = []string{
	" | Zillow®",
	" | ZillowÂ®",
	" | Zillow",
	" For Sale",
	" Recently Sold",
	" | Home Details",
}

func normalizeZillow(rawURL, title string) string {
	// Property-detail URLs carry the full address in the path, which is
	// more reliable than whatever truncated form the title holds.
	if strings.Contains(rawURL, "/homedetails/") {
		if addr := zillowAddress(rawURL); addr != "" {
			return addr
		}
	}

	display := title
	for _, s := range zillowSuffixes {
		display = strings.Replace(display, s, "", 1)
	}
	display = strings.TrimSpace(display)

	// A bare ZIP, an all-numeric string, or anything under 10 chars is
	// not a usable title; fall back to the ZIP from the title.
	if zipPrefixRe.MatchString(display) || allDigitsRe.MatchString(display) || len(display) < minDisplayLen {
		if strings.Contains(rawURL, "/homes/") || strings.Contains(rawURL, "/_pagination/") {
			if zip := zipRe.FindString(title); zip != "" {
				return "Homes for Sale in " + zip
			}
		}
	}

	if !strings.Contains(display, "zillow.com") && len(display) > 5 {
		return display
	}
	if strings.Contains(rawURL, "/homes/") {
		return "Zillow Home Search"
	}
	return "Zillow Property"
}

// zillowAddress parses the address segment from a property-detail URL
// path (the segment following "homedetails"). Returns "" unless the
// result looks like a real address: longer than 5 characters with both
// a digit and a letter.
func zillowAddress(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	parts := strings.Split(u.Path, "/")
	idx := -1
	for i, p := range parts {
		if p == "homedetails" {
			idx = i + 1
			break
		}
	}
	if idx <= 0 || idx >= len(parts) {
		return ""
	}

	seg := parts[idx]
	if i := strings.Index(seg, "_zpid"); i >= 0 {
		seg = seg[:i]
	}
	seg = trailDigitsRe.ReplaceAllString(seg, "")

	addr := addressCase(seg)
	if len(addr) > 5 && strings.ContainsAny(addr, "0123456789") && strings.IndexFunc(addr, isLetter) >= 0 {
		return addr
	}
	return ""
}

// addressCase converts a dash-separated address segment to spaced words,
// capitalizing each word except tokens of two characters or fewer, which
// are upper-cased to preserve directional and state abbreviations.
func addressCase(seg string) string {
	words := strings.Split(seg, "-")
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if len(w) <= 2 {
			out = append(out, strings.ToUpper(w))
			continue
		}
		out = append(out, titleCaseWord(w))
	}
	return strings.Join(out, " ")
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// --- Facebook ---

// fbReservedSegments are path segments that never carry a page name.
var fbReservedSegments = map[string]bool{
	"watch": true, "posts": true, "photos": true, "videos": true,
}

func normalizeFacebook(rawURL, title string) string {
	clean := title
	clean = strings.Replace(clean, " | Facebook", "", 1)
	clean = notifCountRe.ReplaceAllString(clean, "")
	clean = strings.Replace(clean, "Facebook -", "", 1)
	clean = fbSuffixRe.ReplaceAllString(clean, "")
	clean = fbTrackingRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	// A purely numeric or near-empty title usually means Facebook handed
	// us an ID; derive a name from the URL path instead.
	if allDigitsRe.MatchString(clean) || len(clean) < 3 {
		if name := facebookNameFromPath(rawURL); name != "" {
			clean = name
		}
	}

	switch {
	case strings.Contains(rawURL, "/groups/") && !strings.Contains(clean, "Group"):
		clean = "Post in " + clean
	case strings.Contains(rawURL, "/watch") && !strings.Contains(clean, "Video"):
		clean = "Video: " + clean
	}

	return clean
}

// facebookNameFromPath derives a display name from the last path segment
// that is neither numeric nor a reserved Facebook path word.
func facebookNameFromPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	var candidate string
	for _, p := range strings.Split(u.Path, "/") {
		if p == "" || allDigitsRe.MatchString(p) || fbReservedSegments[p] {
			continue
		}
		candidate = p
	}
	if candidate == "" {
		return ""
	}

	// Trailing query fragments sometimes leak into the segment.
	candidate = strings.SplitN(candidate, "?", 2)[0]
	candidate = strings.SplitN(candidate, "&", 2)[0]

	// Dots and dashes to spaces, split camel-cased runs, then title-case.
	candidate = strings.Map(func(r rune) rune {
		if r == '.' || r == '-' {
			return ' '
		}
		return r
	}, candidate)
	candidate = camelRunRe.ReplaceAllString(candidate, " $1")

	words := strings.Fields(candidate)
	for i, w := range words {
		words[i] = titleCaseWord(w)
	}
	return strings.Join(words, " ")
}

// --- LinkedIn ---

func normalizeLinkedIn(rawURL, title string) string {
	clean := strings.TrimSpace(strings.Replace(title, " | LinkedIn", "", 1))

	// Profile pages: keep just the name and headline.
	if strings.Contains(rawURL, "/in/") {
		parts := strings.Split(clean, " - ")
		if len(parts) > 2 {
			clean = strings.Join(parts[:2], " - ")
		}
	}

	if strings.Contains(rawURL, "/jobs/") && !strings.Contains(clean, "Job") {
		clean += " - Job Posting"
	}

	return clean
}

// --- Medium and other "by"-authored pages ---

func normalizeMedium(_, title string) string {
	// The " | Medium" suffix goes first so the author clause becomes
	// trailing and can be stripped too.
	clean := mediumTailRe.ReplaceAllString(title, "")
	clean = byAuthorRe.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// --- YouTube ---

// The stripped suffix is the most we can do locally; the true video title
// arrives via enrichment.
func normalizeYouTube(_, title string) string {
	return strings.TrimSpace(youtubeTailRe.ReplaceAllString(title, ""))
}

// --- Google Docs family ---

func normalizeGoogleDocs(rawURL, title string) string {
	clean := strings.TrimSpace(gdocsTailRe.ReplaceAllString(title, ""))
	if kind := DocKind(rawURL); kind != "" {
		return clean + " (Google " + kind + ")"
	}
	return clean
}

// --- GitHub ---

func normalizeGitHub(_, title string) string {
	clean := strings.Replace(title, " · GitHub", "", 1)
	clean = strings.Replace(clean, " · Pull Request #", " PR #", 1)
	clean = strings.Replace(clean, " · Issue #", " Issue #", 1)
	return strings.TrimSpace(clean)
}

// --- Stack Overflow ---

func normalizeStackOverflow(_, title string) string {
	return strings.TrimSpace(strings.Replace(title, " - Stack Overflow", "", 1))
}

// --- Generic ---

// normalizeGeneric strips everything from the first " - " or " | "
// delimiter onward. When that cut is too aggressive (under 10 chars),
// it retries stripping only at " | " and keeps that result if it is
// non-degenerate; otherwise the wide cut stands.
func normalizeGeneric(rawURL, title string) string {
	if strings.Contains(title, " | by ") {
		return normalizeMedium(rawURL, title)
	}

	wide := stripAtEarliest(title, " - ", " | ")
	if len(wide) >= minDisplayLen {
		return wide
	}

	narrow := stripAtEarliest(title, " | ")
	if len(narrow) >= minDisplayLen {
		return narrow
	}

	if wide != "" {
		return wide
	}
	return title
}

// stripAtEarliest cuts the title at the earliest occurrence of any of the
// given delimiters. The title is returned unchanged when none occur.
func stripAtEarliest(title string, delims ...string) string {
	cut := -1
	for _, d := range delims {
		if i := strings.Index(title, d); i >= 0 && (cut == -1 || i < cut) {
			cut = i
		}
	}
	if cut < 0 {
		return strings.TrimSpace(title)
	}
	return strings.TrimSpace(title[:cut])
}

// titleCaseWord upper-cases the first letter and lower-cases the rest.
func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
