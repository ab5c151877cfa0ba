package nav

import (
	"bytes"
	"encoding/json"
	"os"

	"howmanyq-sitegen/pkg/errors"
)

// Save writes the navigation document to path, fully replacing any
// previous document. The output is two-space indented and keeps emoji
// and non-ASCII text literal rather than escaped.
func Save(doc *Document, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.NewOutputWriteFailed(errors.ErrorTypeNavigation, path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.NewOutputWriteFailed(errors.ErrorTypeNavigation, path, err)
	}
	return nil
}

// Load reads a navigation document from path. A missing file yields a
// typed not-found error; the read is a single operation, with no
// existence check racing ahead of it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNavDocumentMissing(path)
		}
		return nil, errors.NewNavDocumentInvalid(path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewNavDocumentInvalid(path, err)
	}
	return &doc, nil
}
