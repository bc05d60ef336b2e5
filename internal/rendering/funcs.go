package rendering

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/scholar-homepage/internal/types"
)

// funcMap holds the helpers available to page templates.
var funcMap = template.FuncMap{
	"join":      strings.Join,
	"lower":     strings.ToLower,
	"tagClass":  TagClass,
	"hasTag":    hasTag,
	"field":     field,
	"list":      asList,
	"isString":  isString,
	"highlight": highlight,
	"pubView":   newPubView,
}

// pubView is the dot of the "pub" sub-template.
type pubView struct {
	Owner string
	Pub   types.Publication
}

func newPubView(owner string, pub types.Publication) pubView {
	return pubView{Owner: owner, Pub: pub}
}

// TagClass derives a CSS class from a rank tag: "CCF A" becomes "tag-ccf-a".
func TagClass(tag string) string {
	var sb strings.Builder
	sb.Grow(len(tag) + 4)
	sb.WriteString("tag")

	dash := true
	for _, r := range strings.ToLower(tag) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash {
				sb.WriteByte('-')
				dash = false
			}
			sb.WriteRune(r)
			continue
		}
		dash = true
	}

	return sb.String()
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// field reads a key from a YAML mapping block; anything else yields "".
func field(block any, key string) string {
	m, ok := block.(map[string]any)
	if !ok {
		return ""
	}
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// asList normalizes a YAML block for ranging: sequences pass through, nil is
// empty, a mapping yields its values ordered by key, and any other value
// becomes a one-element list.
func asList(block any) []any {
	switch v := block.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, 0, len(v))
		for _, k := range keys {
			out = append(out, v[k])
		}
		return out
	default:
		return []any{v}
	}
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// highlight escapes an author list and wraps every occurrence of name in <strong>.
func highlight(authors, name string) template.HTML {
	escaped := template.HTMLEscapeString(authors)
	if name == "" {
		return template.HTML(escaped)
	}
	escapedName := template.HTMLEscapeString(name)
	//nolint:gosec // both operands are escaped above
	return template.HTML(strings.ReplaceAll(escaped, escapedName, "<strong>"+escapedName+"</strong>"))
}
