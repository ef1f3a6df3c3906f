package engine

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/graymatter/pkg/pod"
)

// TOML parses TOML front matter. Datetime values are stringified; offset
// datetimes use RFC 3339.
type TOML struct{}

func (TOML) Parse(raw string) (pod.Pod, error) {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(raw), &doc); err != nil {
		return pod.Null, errors.Wrap(err, "parsing toml")
	}
	if len(doc) == 0 {
		return pod.Null, nil
	}
	entries := make(map[string]pod.Pod, len(doc))
	for k, v := range doc {
		entries[k] = tomlValueToPod(v)
	}
	return pod.MappingVal(entries), nil
}

func tomlValueToPod(v any) pod.Pod {
	switch t := v.(type) {
	case nil:
		return pod.Null
	case string:
		return pod.StringVal(t)
	case bool:
		return pod.BooleanVal(t)
	case int64:
		return pod.IntegerVal(t)
	case float64:
		return pod.FloatVal(t)
	case time.Time:
		return pod.StringVal(t.Format(time.RFC3339))
	case toml.LocalDate:
		return pod.StringVal(t.String())
	case toml.LocalTime:
		return pod.StringVal(t.String())
	case toml.LocalDateTime:
		return pod.StringVal(t.String())
	case []any:
		elems := make([]pod.Pod, 0, len(t))
		for _, e := range t {
			elems = append(elems, tomlValueToPod(e))
		}
		return pod.ArrayVal(elems...)
	case map[string]any:
		entries := make(map[string]pod.Pod, len(t))
		for k, e := range t {
			entries[k] = tomlValueToPod(e)
		}
		return pod.MappingVal(entries)
	default:
		return pod.StringVal(fmt.Sprint(t))
	}
}
