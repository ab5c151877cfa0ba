// Package scan walks the site root and assembles one navigation record
// per discovered tool folder.
package scan

import (
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"howmanyq-sitegen/internal/classify"
	"howmanyq-sitegen/internal/nav"
	"howmanyq-sitegen/internal/probe"
	"howmanyq-sitegen/internal/taxonomy"
	"howmanyq-sitegen/pkg/errors"
	"howmanyq-sitegen/pkg/logger"
)

// IndexFile is the page entry file that marks a directory as a tool.
const IndexFile = "index.html"

// Scanner discovers tool folders directly under the site root.
type Scanner struct {
	root        string
	tax         *taxonomy.Taxonomy
	classifier  *classify.Classifier
	synthesizer *classify.Synthesizer
	prober      *probe.Prober
	logger      *zap.Logger
}

// NewScanner builds a scanner for the given site root and taxonomy.
func NewScanner(root string, tax *taxonomy.Taxonomy) *Scanner {
	return &Scanner{
		root:        root,
		tax:         tax,
		classifier:  classify.NewClassifier(tax),
		synthesizer: classify.NewSynthesizer(tax),
		prober:      probe.NewProber(tax),
		logger:      logger.Named("scan"),
	}
}

// Discover enumerates the immediate children of the site root and
// returns a record for each directory that is not excluded and holds
// an index.html. The root's own index.html is the navigation page, not
// a tool. Results are sorted by folder name so repeated scans of the
// same tree produce identical documents; raw directory enumeration
// order is not guaranteed by the OS.
//
// A directory that vanishes between enumeration and inspection is
// skipped. An unreadable site root fails the whole run.
func (s *Scanner) Discover() ([]nav.Tool, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.NewSiteRootUnreadable(s.root, err)
	}

	var tools []nav.Tool
	for _, entry := range entries {
		if !entry.IsDir() || s.tax.ExcludedEntries[entry.Name()] {
			continue
		}

		indexPath := filepath.Join(s.root, entry.Name(), IndexFile)
		info, err := os.Stat(indexPath)
		if err != nil || info.IsDir() {
			// Not a tool folder, or it disappeared mid-scan.
			if err != nil && !os.IsNotExist(err) {
				s.logger.Warn("Skipping folder",
					zap.String("folder", entry.Name()),
					zap.Error(err),
				)
			}
			continue
		}

		tool := s.buildTool(entry.Name(), indexPath)
		tools = append(tools, tool)

		s.logger.Debug("Discovered tool",
			zap.String("folder", tool.FolderName),
			zap.String("category", tool.Category),
			zap.Bool("sharing", tool.SharingEnabled),
		)
	}

	sort.Slice(tools, func(i, j int) bool {
		return tools[i].FolderName < tools[j].FolderName
	})
	return tools, nil
}

// buildTool assembles the full record for one tool folder.
func (s *Scanner) buildTool(folderName, indexPath string) nav.Tool {
	keywords := classify.ExtractKeywords(folderName)
	category := s.classifier.Categorize(keywords)
	title := s.synthesizer.Title(folderName)

	audit := s.prober.Audit(indexPath)
	if audit.Title == "" {
		s.logger.Warn("Page has no <title>", zap.String("folder", folderName))
	}
	if !audit.HasCanonical {
		s.logger.Warn("Page has no canonical link", zap.String("folder", folderName))
	}
	if !audit.HasLangAttr {
		s.logger.Warn("Page has no html lang attribute", zap.String("folder", folderName))
	}

	return nav.Tool{
		ID:             s.synthesizer.ToolID(folderName),
		Title:          title,
		Description:    s.synthesizer.Description(title, category),
		Category:       category,
		URL:            folderName + "/" + IndexFile,
		FolderName:     folderName,
		Keywords:       keywords,
		Icon:           s.tax.Icon(category),
		SharingEnabled: s.prober.Sharing(indexPath),
		ShareText:      s.synthesizer.ShareText(folderName, title, category),
	}
}
