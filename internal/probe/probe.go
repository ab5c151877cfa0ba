// Package probe inspects tool page sources: sharing-feature detection
// for the navigation document, plus a read-only page audit used for
// scan-time warnings. It never modifies a page.
package probe

import (
	"bytes"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"howmanyq-sitegen/internal/taxonomy"
	"howmanyq-sitegen/pkg/errors"
	"howmanyq-sitegen/pkg/logger"
)

// PageAudit reports advisory findings about a page source.
type PageAudit struct {
	Title        string
	HasCanonical bool
	HasLangAttr  bool
}

// Prober checks page sources for capability markers.
type Prober struct {
	tax    *taxonomy.Taxonomy
	logger *zap.Logger
}

// NewProber builds a prober over the given taxonomy's marker list.
func NewProber(tax *taxonomy.Taxonomy) *Prober {
	return &Prober{
		tax:    tax,
		logger: logger.Named("probe"),
	}
}

// Sharing reports whether the page at path contains at least one of
// the sharing-feature markers as a literal substring. The file is read
// in a single operation; any read failure is logged as a warning and
// treated as "sharing not detected" so one unreadable page never
// aborts discovery.
func (p *Prober) Sharing(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		probeErr := errors.NewPageUnreadable(path, err)
		p.logger.Warn("Could not check sharing status",
			zap.String("path", path),
			zap.Error(probeErr),
		)
		return false
	}

	content := string(data)
	for _, marker := range p.tax.SharingMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// Audit parses the page at path and reports its title, canonical link,
// and html lang attribute. Parse or read failures degrade to an empty
// audit with a warning; the audit only feeds advisory log output.
func (p *Prober) Audit(path string) PageAudit {
	var audit PageAudit

	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn("Could not audit page",
			zap.String("path", path),
			zap.Error(err),
		)
		return audit
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		p.logger.Warn("Could not parse page",
			zap.String("path", path),
			zap.Error(err),
		)
		return audit
	}

	audit.Title = strings.TrimSpace(doc.Find("head title").First().Text())
	audit.HasCanonical = doc.Find(`link[rel="canonical"]`).Length() > 0
	_, audit.HasLangAttr = doc.Find("html").First().Attr("lang")
	return audit
}
