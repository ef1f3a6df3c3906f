package engine

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/graymatter/pkg/pod"
)

// YAML parses YAML front matter. Non-string mapping keys are stringified
// with their canonical YAML spelling: 1 -> "1", true -> "true" and a null
// key -> "null".
type YAML struct{}

func (YAML) Parse(raw string) (pod.Pod, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return pod.Null, errors.Wrap(err, "parsing yaml")
	}
	// Comment-only or empty input produces no document node at all.
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return pod.Null, nil
	}
	return yamlNodeToPod(doc.Content[0]), nil
}

func yamlNodeToPod(n *yaml.Node) pod.Pod {
	switch n.Kind {
	case yaml.ScalarNode:
		return yamlScalarToPod(n)
	case yaml.SequenceNode:
		elems := make([]pod.Pod, 0, len(n.Content))
		for _, c := range n.Content {
			elems = append(elems, yamlNodeToPod(c))
		}
		return pod.ArrayVal(elems...)
	case yaml.MappingNode:
		entries := make(map[string]pod.Pod, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, ok := yamlKeyString(n.Content[i])
			if !ok {
				continue // compound keys are not expressible as mapping keys
			}
			entries[key] = yamlNodeToPod(n.Content[i+1])
		}
		return pod.MappingVal(entries)
	case yaml.AliasNode:
		if n.Alias != nil {
			return yamlNodeToPod(n.Alias)
		}
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			return yamlNodeToPod(n.Content[0])
		}
	}
	return pod.Null
}

func yamlScalarToPod(n *yaml.Node) pod.Pod {
	switch n.Tag {
	case "!!null":
		return pod.Null
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return pod.BooleanVal(b)
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return pod.IntegerVal(i)
		}
		// Out-of-range literals degrade to floats rather than vanishing.
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return pod.FloatVal(f)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(yamlFloatLiteral(n.Value), 64); err == nil {
			return pod.FloatVal(f)
		}
	}
	return pod.StringVal(n.Value)
}

// yamlFloatLiteral rewrites YAML's spelling of the non-finite floats into
// the form strconv accepts.
func yamlFloatLiteral(v string) string {
	switch strings.ToLower(v) {
	case ".inf", "+.inf":
		return "+inf"
	case "-.inf":
		return "-inf"
	case ".nan":
		return "nan"
	}
	return v
}

// yamlKeyString renders a scalar key with its canonical textual form. The
// node's Value already carries that form for every scalar tag, including
// "null" for the null key.
func yamlKeyString(n *yaml.Node) (string, bool) {
	if n.Kind != yaml.ScalarNode {
		return "", false
	}
	if n.Tag == "!!null" {
		return "null", true
	}
	return n.Value, true
}
