package loading

import (
	"fmt"

	"github.com/jonathan/scholar-homepage/internal/schemas"
	"github.com/jonathan/scholar-homepage/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadRankings loads the ranking dictionary. The mapping is walked as a
// yaml.Node so rules keep the order they have in the file; that order decides
// which rule wins when several keys match one venue. Repeated keys are
// rejected.
func LoadRankings(path string) (types.Rankings, error) {
	content, err := readRequired(path)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateYAML(schemas.Rankings, content); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("schema validation failed for %s", path),
			Cause:   err,
		}
	}

	return parseRankings(content)
}

func parseRankings(content []byte) (types.Rankings, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal rankings YAML", Cause: err}
	}

	rankings := types.Rankings{}
	if len(doc.Content) == 0 {
		return rankings, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return rankings, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{Message: fmt.Sprintf("rankings must be a mapping (line %d)", root.Line)}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var rule types.RankingRule
		if err := valueNode.Decode(&rule); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("invalid ranking rule %q (line %d)", keyNode.Value, keyNode.Line),
				Cause:   err,
			}
		}

		rankings = append(rankings, types.RankingEntry{Key: keyNode.Value, Rule: rule})
	}

	return rankings, nil
}
