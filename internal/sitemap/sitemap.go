// Package sitemap renders the search-engine sitemap from a persisted
// navigation document. It never re-walks the filesystem: the document
// is its only input.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"howmanyq-sitegen/internal/nav"
	"howmanyq-sitegen/pkg/errors"
	"howmanyq-sitegen/pkg/logger"
)

// Namespace is the sitemap protocol namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const (
	homePriority   = "1.0"
	homeChangeFreq = "daily"
	toolPriority   = "0.8"
	toolChangeFreq = "monthly"
)

// URL is one sitemap entry. Element order is fixed by the protocol:
// loc, lastmod, changefreq, priority.
type URL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

// URLSet is the sitemap document root.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Emitter renders sitemap.xml for a site.
type Emitter struct {
	baseURL string
	logger  *zap.Logger

	// Now supplies the lastmod date. Injectable for snapshot tests.
	Now func() time.Time
}

// NewEmitter builds an emitter for the given site base URL (no
// trailing slash required).
func NewEmitter(baseURL string) *Emitter {
	return &Emitter{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.Named("sitemap"),
		Now:     time.Now,
	}
}

// EmitFile loads the navigation document at navPath and writes the
// sitemap to outPath. A missing or unreadable document is fatal for
// this stage: the error is returned and no output file is touched.
func (e *Emitter) EmitFile(navPath, outPath string) error {
	doc, err := nav.Load(navPath)
	if err != nil {
		return err
	}
	return e.Emit(doc, outPath)
}

// Emit renders the sitemap for a navigation document: the home page
// first (priority 1.0, daily), then one entry per tool (priority 0.8,
// monthly). Every entry carries today's date as lastmod. Folder names
// are sanitized again here even though discovery normalizes them,
// because the document on disk may be stale or externally edited.
func (e *Emitter) Emit(doc *nav.Document, outPath string) error {
	now := e.Now().Format("2006-01-02")

	urlset := URLSet{Xmlns: Namespace}
	urlset.URLs = append(urlset.URLs, URL{
		Loc:        e.baseURL + "/",
		LastMod:    now,
		ChangeFreq: homeChangeFreq,
		Priority:   homePriority,
	})

	for _, tool := range doc.Tools {
		urlset.URLs = append(urlset.URLs, URL{
			Loc:        e.baseURL + "/" + sanitizeFolderName(tool.FolderName) + "/",
			LastMod:    now,
			ChangeFreq: toolChangeFreq,
			Priority:   toolPriority,
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(urlset); err != nil {
		return errors.NewOutputWriteFailed(errors.ErrorTypeSitemap, outPath, err)
	}
	buf.WriteByte('\n')

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return errors.NewOutputWriteFailed(errors.ErrorTypeSitemap, outPath, err)
	}

	e.logger.Info("Sitemap written",
		zap.String("path", outPath),
		zap.Int("urls", len(urlset.URLs)),
	)
	return nil
}

// sanitizeFolderName strips invisible Unicode characters (zero-width
// space, zero-width non-joiner/joiner, BOM) and trims surrounding
// whitespace. A clean name passes through unchanged.
func sanitizeFolderName(name string) string {
	replacer := strings.NewReplacer(
		"\u200b", "", // zero-width space
		"\u200c", "", // zero-width non-joiner
		"\u200d", "", // zero-width joiner
		"\ufeff", "", // byte-order mark
	)
	return strings.TrimSpace(replacer.Replace(name))
}
