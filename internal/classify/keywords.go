package classify

import "strings"

// ExtractKeywords turns a folder name into its ordered keyword
// sequence: lower-cased, underscores and hyphens treated as spaces,
// split on whitespace. Order is preserved and duplicates are kept; no
// stemming or stopword removal happens here.
func ExtractKeywords(folderName string) []string {
	normalized := strings.ToLower(folderName)
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")
	return strings.Fields(normalized)
}
