package engine

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/tailscale/hujson"

	"github.com/thoreinstein/graymatter/pkg/pod"
)

// JSON parses JSON front matter. The input is standardized through HuJSON
// first, so comments and trailing commas are tolerated. Numbers become
// integers when they fit an int64 and floats otherwise.
type JSON struct{}

func (JSON) Parse(raw string) (pod.Pod, error) {
	std, err := hujson.Standardize([]byte(raw))
	if err != nil {
		return pod.Null, errors.Wrap(err, "standardizing json")
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return pod.Null, errors.Wrap(err, "parsing json")
	}
	return jsonValueToPod(doc), nil
}

func jsonValueToPod(v any) pod.Pod {
	switch t := v.(type) {
	case nil:
		return pod.Null
	case string:
		return pod.StringVal(t)
	case bool:
		return pod.BooleanVal(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return pod.IntegerVal(i)
		}
		if f, err := t.Float64(); err == nil {
			return pod.FloatVal(f)
		}
		return pod.StringVal(t.String())
	case []any:
		elems := make([]pod.Pod, 0, len(t))
		for _, e := range t {
			elems = append(elems, jsonValueToPod(e))
		}
		return pod.ArrayVal(elems...)
	case map[string]any:
		entries := make(map[string]pod.Pod, len(t))
		for k, e := range t {
			entries[k] = jsonValueToPod(e)
		}
		return pod.MappingVal(entries)
	default:
		return pod.Null
	}
}
