package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/graymatter/pkg/pod"
)

func TestTOMLParseMapping(t *testing.T) {
	input := `title = "TOML rules"
draft = false
weight = 42
rating = 3.14159265
tags = ["toml", "config"]`

	p, err := TOML{}.Parse(input)
	require.NoError(t, err)
	require.Equal(t, pod.KindMapping, p.Kind())

	assert.True(t, p.Key("title").Equal(pod.StringVal("TOML rules")))
	assert.True(t, p.Key("draft").Equal(pod.BooleanVal(false)))
	assert.True(t, p.Key("weight").Equal(pod.IntegerVal(42)),
		"an integer literal stays an integer")
	assert.True(t, p.Key("rating").Equal(pod.FloatVal(3.14159265)))
	assert.True(t, p.Key("tags").Index(0).Equal(pod.StringVal("toml")))
}

func TestTOMLParseTables(t *testing.T) {
	input := `[owner]
name = "Jan"

[owner.contact]
email = "jan@example.com"`

	p, err := TOML{}.Parse(input)
	require.NoError(t, err)

	assert.True(t, p.Key("owner").Key("name").Equal(pod.StringVal("Jan")))
	assert.True(t, p.Key("owner").Key("contact").Key("email").Equal(
		pod.StringVal("jan@example.com")))
}

func TestTOMLParseArrayOfTables(t *testing.T) {
	input := `[[servers]]
host = "alpha"

[[servers]]
host = "beta"`

	p, err := TOML{}.Parse(input)
	require.NoError(t, err)

	servers := p.Key("servers")
	require.Equal(t, 2, servers.Len())
	assert.True(t, servers.Index(0).Key("host").Equal(pod.StringVal("alpha")))
	assert.True(t, servers.Index(1).Key("host").Equal(pod.StringVal("beta")))
}

func TestTOMLParseDatetimes(t *testing.T) {
	input := `offset = 1979-05-27T07:32:00Z
date = 1979-05-27
time = 07:32:00`

	p, err := TOML{}.Parse(input)
	require.NoError(t, err)

	offset, err := p.Key("offset").AsString()
	require.NoError(t, err)
	assert.Equal(t, "1979-05-27T07:32:00Z", offset)

	date, err := p.Key("date").AsString()
	require.NoError(t, err)
	assert.Equal(t, "1979-05-27", date)

	tm, err := p.Key("time").AsString()
	require.NoError(t, err)
	assert.Equal(t, "07:32:00", tm)
}

func TestTOMLParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "# comment only"} {
		p, err := TOML{}.Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, p.IsNull(), "input %q", input)
	}
}

func TestTOMLParseError(t *testing.T) {
	_, err := TOML{}.Parse("not valid toml ===")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing toml")
}
