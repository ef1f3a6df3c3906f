package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/graymatter/pkg/pod"
)

func TestJSONParseObject(t *testing.T) {
	input := `{
  "title": "JSON front matter",
  "draft": true,
  "weight": 7,
  "rating": 4.5,
  "tags": ["a", "b"],
  "meta": {"lang": "en"},
  "nothing": null
}`

	p, err := JSON{}.Parse(input)
	require.NoError(t, err)
	require.Equal(t, pod.KindMapping, p.Kind())

	assert.True(t, p.Key("title").Equal(pod.StringVal("JSON front matter")))
	assert.True(t, p.Key("draft").Equal(pod.BooleanVal(true)))
	assert.True(t, p.Key("weight").Equal(pod.IntegerVal(7)),
		"whole numbers become integers, not floats")
	assert.True(t, p.Key("rating").Equal(pod.FloatVal(4.5)))
	assert.True(t, p.Key("tags").Index(1).Equal(pod.StringVal("b")))
	assert.True(t, p.Key("meta").Key("lang").Equal(pod.StringVal("en")))
	assert.True(t, p.Key("nothing").IsNull())
}

func TestJSONParseComments(t *testing.T) {
	input := `{
  // line comment
  "name": "relaxed", /* block comment */
  "list": [1, 2, 3,],
}`

	p, err := JSON{}.Parse(input)
	require.NoError(t, err, "comments and trailing commas are tolerated")
	assert.True(t, p.Key("name").Equal(pod.StringVal("relaxed")))
	assert.Equal(t, 3, p.Key("list").Len())
}

func TestJSONParseBigNumbers(t *testing.T) {
	p, err := JSON{}.Parse(`{"big": 9223372036854775807, "huge": 99999999999999999999}`)
	require.NoError(t, err)

	big, err := p.Key("big").AsInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), big)

	assert.Equal(t, pod.KindFloat, p.Key("huge").Kind(),
		"numbers past int64 degrade to float")
}

func TestJSONParseError(t *testing.T) {
	_, err := JSON{}.Parse(`{"unterminated": `)
	require.Error(t, err)
}
