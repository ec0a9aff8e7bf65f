package library

// CatalogResponse mirrors the payload returned by /api/videos.
type CatalogResponse struct {
	Videos []Video `json:"videos"`
}

// Video describes one playable entry in the catalog. Entries are immutable
// once received; the catalog order is the order the server sent.
type Video struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}
