package pod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqAccess(t *testing.T) {
	seq, err := ArrayVal(IntegerVal(1), IntegerVal(2), IntegerVal(3)).Seq()
	require.NoError(t, err)

	assert.Equal(t, 3, seq.Remaining())

	e, ok := seq.Next()
	require.True(t, ok)
	assert.True(t, e.Equal(IntegerVal(1)))
	assert.Equal(t, 2, seq.Remaining())

	seq.Next()
	seq.Next()
	assert.Equal(t, 0, seq.Remaining())

	e, ok = seq.Next()
	assert.False(t, ok)
	assert.True(t, e.IsNull())

	var typeErr *TypeError
	_, err = StringVal("nope").Seq()
	assert.ErrorAs(t, err, &typeErr)
}

func TestMapAccess(t *testing.T) {
	m, err := MappingVal(map[string]Pod{
		"a": IntegerVal(1),
		"b": IntegerVal(2),
	}).Map()
	require.NoError(t, err)

	assert.Equal(t, 2, m.Remaining())

	seen := map[string]int64{}
	for {
		k, ok := m.NextKey()
		if !ok {
			break
		}
		v, err := m.NextValue()
		require.NoError(t, err)
		n, err := v.AsInt64()
		require.NoError(t, err)
		seen[k] = n
	}
	assert.Equal(t, map[string]int64{"a": 1, "b": 2}, seen)
	assert.Equal(t, 0, m.Remaining())

	_, err = Null.Map()
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestMapAccessValueBeforeKey(t *testing.T) {
	m, err := MappingVal(map[string]Pod{"a": Null}).Map()
	require.NoError(t, err)

	_, err = m.NextValue()
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Contains(t, err.Error(), "value requested before key")

	// The cursor is still usable afterwards.
	k, ok := m.NextKey()
	require.True(t, ok)
	assert.Equal(t, "a", k)
	_, err = m.NextValue()
	assert.NoError(t, err)
}

func TestEnumUnitVariant(t *testing.T) {
	e, err := StringVal("Active").Enum()
	require.NoError(t, err)

	assert.Equal(t, "Active", e.Variant())
	assert.True(t, e.Payload().IsNull())
	assert.NoError(t, e.Unit())
}

func TestEnumNewtypeVariant(t *testing.T) {
	p := MappingVal(map[string]Pod{"Named": StringVal("payload")})
	e, err := p.Enum()
	require.NoError(t, err)

	assert.Equal(t, "Named", e.Variant())
	assert.True(t, e.Payload().Equal(StringVal("payload")))

	var typeErr *TypeError
	assert.ErrorAs(t, e.Unit(), &typeErr, "a carried payload fails the unit check")
}

func TestEnumTupleVariant(t *testing.T) {
	p := MappingVal(map[string]Pod{
		"Point": ArrayVal(IntegerVal(3), IntegerVal(4)),
	})
	e, err := p.Enum()
	require.NoError(t, err)
	assert.Equal(t, "Point", e.Variant())

	seq, err := e.Tuple()
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Remaining())

	first, ok := seq.Next()
	require.True(t, ok)
	assert.True(t, first.Equal(IntegerVal(3)))

	// Unit variants have no tuple payload.
	unit, err := StringVal("Unit").Enum()
	require.NoError(t, err)
	var typeErr *TypeError
	_, err = unit.Tuple()
	assert.ErrorAs(t, err, &typeErr)
}

func TestEnumStructVariant(t *testing.T) {
	p := MappingVal(map[string]Pod{
		"Circle": MappingVal(map[string]Pod{"radius": FloatVal(2.5)}),
	})
	e, err := p.Enum()
	require.NoError(t, err)
	assert.Equal(t, "Circle", e.Variant())

	fields, err := e.Struct()
	require.NoError(t, err)
	k, ok := fields.NextKey()
	require.True(t, ok)
	assert.Equal(t, "radius", k)
	v, err := fields.NextValue()
	require.NoError(t, err)
	assert.True(t, v.Equal(FloatVal(2.5)))
}

func TestEnumAmbiguousMapping(t *testing.T) {
	p := MappingVal(map[string]Pod{"A": Null, "B": Null})
	_, err := p.Enum()

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = NewMapping().Enum()
	assert.ErrorAs(t, err, &decErr, "an empty mapping names no variant")
}

func TestEnumWrongTag(t *testing.T) {
	var typeErr *TypeError
	_, err := IntegerVal(1).Enum()
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, KindInteger, typeErr.Actual)

	_, err = ArrayVal().Enum()
	assert.ErrorAs(t, err, &typeErr)
}

func TestChar(t *testing.T) {
	r, err := StringVal("x").Char()
	require.NoError(t, err)
	assert.Equal(t, 'x', r)

	r, err = StringVal("é").Char()
	require.NoError(t, err)
	assert.Equal(t, 'é', r, "multi-byte code points count as one character")

	var decErr *DecodeError
	_, err = StringVal("").Char()
	assert.ErrorAs(t, err, &decErr)
	_, err = StringVal("ab").Char()
	assert.ErrorAs(t, err, &decErr)

	var typeErr *TypeError
	_, err = IntegerVal(120).Char()
	assert.ErrorAs(t, err, &typeErr)
}

func TestBytes(t *testing.T) {
	b, err := StringVal("raw bytes").Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("raw bytes"), b)

	var typeErr *TypeError
	_, err = Null.Bytes()
	assert.ErrorAs(t, err, &typeErr)
}
