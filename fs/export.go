// Package fs provides file-based output for link reports.
package fs

import (
	"bytes"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linkcheck"
)

// ReportPath converts a seed URL to a relative file path for its report.
// Example: https://example.com/docs/api → example.com/docs/api.md
func ReportPath(seedURL, ext string) (string, error) {
	u, err := url.Parse(seedURL)
	if err != nil {
		return "", linkcheck.Errorf(linkcheck.EINVALID, "invalid seed URL: %v", err)
	}
	if u.Host == "" {
		return "", linkcheck.Errorf(linkcheck.EINVALID, "seed URL has no host: %q", seedURL)
	}

	host := strings.ReplaceAll(u.Host, ":", "_")

	// Cleaning against the root keeps ".." segments from climbing out of host.
	clean := strings.TrimPrefix(path.Clean("/"+u.Path), "/")

	// Root or trailing slash → index in that directory
	var rel string
	if clean == "" || strings.HasSuffix(u.Path, "/") {
		rel = filepath.Join(host, filepath.FromSlash(clean), "index"+ext)
	} else {
		rel = filepath.Join(host, filepath.FromSlash(clean)+ext)
	}

	if !filepath.IsLocal(rel) {
		return "", linkcheck.Errorf(linkcheck.EINVALID, "seed URL %q does not map to a local report path", seedURL)
	}
	return rel, nil
}

// Exporter writes rendered reports as files under a base directory.
type Exporter struct {
	baseDir string
	writer  linkcheck.ReportWriter
	ext     string
}

// NewExporter creates an Exporter that renders reports with w and names
// files with the given extension (including the dot).
func NewExporter(baseDir string, w linkcheck.ReportWriter, ext string) *Exporter {
	return &Exporter{baseDir: baseDir, writer: w, ext: ext}
}

// Export renders the report and writes it to disk, replacing any earlier
// export for the same seed URL. It returns the written path.
func (e *Exporter) Export(report *linkcheck.Report) (string, error) {
	if err := report.Validate(); err != nil {
		return "", err
	}

	relPath, err := ReportPath(report.SeedURL, e.ext)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(e.baseDir, relPath)

	var buf bytes.Buffer
	if err := e.writer.WriteReport(&buf, report); err != nil {
		return "", err
	}

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	// Write to a sibling temp file and rename so readers never see a partial report.
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}
