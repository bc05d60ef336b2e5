//nolint:revive // types is a standard Go package name pattern
package types

// BibEntry is a raw bibliography entry. Field names are lower-case.
type BibEntry struct {
	Key    string            `json:"key"`
	Type   string            `json:"type"`
	Fields map[string]string `json:"fields"`
}

// Field returns the named field, or "" when absent.
func (e BibEntry) Field(name string) string {
	if e.Fields == nil {
		return ""
	}
	return e.Fields[name]
}

// Publication is a cleaned and classified bibliography record ready for rendering.
type Publication struct {
	Key    string            `json:"key"`
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Author string            `json:"author"`
	Venue  string            `json:"venue"`
	Year   string            `json:"year"`
	Tags   []string          `json:"tags"`
	Color  string            `json:"color,omitempty"`
	Fields map[string]string `json:"fields,omitempty"` // url, doi, pdf, note, ...
}

// Field returns a raw bibliography field carried over from the entry.
func (p Publication) Field(name string) string {
	if p.Fields == nil {
		return ""
	}
	return p.Fields[name]
}
