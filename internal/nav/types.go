// Package nav defines the navigation document — the aggregated JSON
// contract between the discovery pipeline and its consumers (the
// navigation page and the sitemap emitter) — and produces it from
// discovered tools.
package nav

// Tool is one discovered calculator page.
type Tool struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	URL            string   `json:"url"`
	FolderName     string   `json:"folder_name"`
	Keywords       []string `json:"keywords"`
	Icon           string   `json:"icon"`
	SharingEnabled bool     `json:"sharing_enabled"`
	ShareText      string   `json:"share_text"`
}

// Category groups the tools assigned to one taxonomy bucket. Categories
// are created lazily during aggregation; an empty category never
// appears in the document.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tools       []Tool `json:"tools"`
}

// Statistics summarizes a scan.
type Statistics struct {
	TotalTools      int    `json:"total_tools"`
	TotalCategories int    `json:"total_categories"`
	LastUpdated     string `json:"last_updated"`
	LastScan        string `json:"last_scan"`
}

// Metadata identifies the generator run. ScanID is additive relative
// to the original schema; consumers ignore fields they do not know.
type Metadata struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
	ScanTime  string `json:"scan_time"`
	ScanID    string `json:"scan_id,omitempty"`
}

// Document is the aggregate root persisted as navigation_data.json.
// Field names are a stable contract; evolution must be additive.
type Document struct {
	Tools      []Tool              `json:"tools"`
	Categories map[string]Category `json:"categories"`
	Statistics Statistics          `json:"statistics"`
	Metadata   Metadata            `json:"metadata"`
}
