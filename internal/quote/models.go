package quote

import "slices"

// Record is a quote as shown on the dashboard.
type Record struct {
	Text   string   `json:"quote"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

// Clone returns a copy that shares no memory with r.
func (r Record) Clone() Record {
	r.Tags = slices.Clone(r.Tags)
	return r
}

// CachedQuote is a Record stamped with the time it was cached.
type CachedQuote struct {
	Record
	CachedAtMillis int64 `json:"timestamp"`
}
