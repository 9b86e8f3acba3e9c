package ops

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hpungsan/tabstash/internal/errors"
	"github.com/hpungsan/tabstash/internal/store"
	"github.com/hpungsan/tabstash/internal/tab"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path    string // optional, default: <baseDir>/exports/tabs-<timestamp>.md
	BaseDir string // used for the default path
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path       string `json:"path"`
	Count      int    `json:"count"`
	ExportedAt int64  `json:"exported_at"`
}

// Export writes the reading list as a Markdown document.
func Export(ctx context.Context, st *store.Store, input ExportInput) (*ExportOutput, error) {
	now := time.Now()

	tabs, err := st.List(ctx)
	if err != nil {
		return nil, err
	}

	exportPath := input.Path
	if exportPath == "" {
		exportPath = filepath.Join(input.BaseDir, "exports",
			fmt.Sprintf("tabs-%s.md", now.UTC().Format("20060102-150405")))
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	doc := Markdown(tabs, now)

	// Write to temp file first, then atomic rename to preserve any
	// existing file on failure.
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(err)
	}
	tmpPath := filepath.Join(dir, fmt.Sprintf(".tabstash-export-%s.tmp", hex.EncodeToString(randBytes)))

	if err := os.WriteFile(tmpPath, []byte(doc), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export: %w", err))
	}
	if err := os.Rename(tmpPath, exportPath); err != nil {
		_ = os.Remove(tmpPath)
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}

	return &ExportOutput{
		Path:       exportPath,
		Count:      len(tabs),
		ExportedAt: now.Unix(),
	}, nil
}

// Markdown renders the reading list as a Markdown document, newest first.
// The web UI renders this same document for its export preview.
func Markdown(tabs []tab.Tab, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Saved tabs\n\n")
	fmt.Fprintf(&b, "Exported %s — %d saved\n\n", now.UTC().Format("2006-01-02 15:04 UTC"), len(tabs))

	for _, t := range tabs {
		captured := time.Unix(t.CapturedAt, 0).UTC().Format("2006-01-02")
		fmt.Fprintf(&b, "- [%s](%s) — %s, saved %s\n", escapeMarkdown(t.Title), t.URL, t.Host(), captured)
	}

	return b.String()
}

// escapeMarkdown neutralizes link-breaking characters in titles.
func escapeMarkdown(s string) string {
	r := strings.NewReplacer("[", "\\[", "]", "\\]")
	return r.Replace(s)
}
