//nolint:revive // types is a standard Go package name pattern
package types

// RankingRule assigns tags and a display color to every venue whose name
// contains the rule's key.
type RankingRule struct {
	Tags  []string `yaml:"tags" json:"tags"`
	Color string   `yaml:"color,omitempty" json:"color,omitempty"`
}

// RankingEntry is one keyed rule of the ranking dictionary.
type RankingEntry struct {
	Key  string
	Rule RankingRule
}

// Rankings is the ranking dictionary in document order. Order matters: when a
// venue name contains more than one key, the earliest entry wins.
type Rankings []RankingEntry

// Keys returns the rule keys in precedence order.
func (r Rankings) Keys() []string {
	keys := make([]string, len(r))
	for i, e := range r {
		keys[i] = e.Key
	}
	return keys
}
