package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/refined/codec"
	"github.com/npillmayer/refined/result"
)

func TestParseScalars(t *testing.T) {
	v, err := result.Unpack(codec.Parse([]byte(`"hello"`)))
	require.NoError(t, err)
	assert.Equal(t, codec.KindString, v.Kind())
	assert.Equal(t, "hello", v.Str())

	v, err = result.Unpack(codec.Parse([]byte(`42`)))
	require.NoError(t, err)
	assert.Equal(t, codec.KindNumber, v.Kind())
	assert.Equal(t, "42", string(v.Num()))

	v, err = result.Unpack(codec.Parse([]byte(`true`)))
	require.NoError(t, err)
	assert.True(t, v.Boolean())

	v, err = result.Unpack(codec.Parse([]byte(`null`)))
	require.NoError(t, err)
	assert.Equal(t, codec.KindNull, v.Kind())
}

func TestParseKeepsFieldOrder(t *testing.T) {
	v, err := result.Unpack(codec.Parse([]byte(`{"z": 1, "a": 2, "m": 3}`)))
	require.NoError(t, err)
	require.Equal(t, codec.KindObject, v.Kind())
	names := make([]string, 0, 3)
	for _, f := range v.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := result.Unpack(codec.Parse([]byte(`{"a": }`)))
	assert.Error(t, err)
	_, err = result.Unpack(codec.Parse([]byte(`1 2`)))
	assert.Error(t, err)
}

func TestParseYAMLKeepsFieldOrder(t *testing.T) {
	doc := []byte("z: 1\na: two\nm: true\n")
	v, err := result.Unpack(codec.ParseYAML(doc))
	require.NoError(t, err)
	require.Equal(t, codec.KindObject, v.Kind())
	fields := v.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "z", fields[0].Name)
	assert.Equal(t, codec.KindNumber, fields[0].Value.Kind())
	assert.Equal(t, "a", fields[1].Name)
	assert.Equal(t, "two", fields[1].Value.Str())
	assert.Equal(t, "m", fields[2].Name)
	assert.Equal(t, codec.KindBool, fields[2].Value.Kind())
}

func TestRenderJSONRoundTrip(t *testing.T) {
	src := `{"pet":"dog","legs":4,"tags":["good","boy"],"chipped":true,"owner":null}`
	v, err := result.Unpack(codec.Parse([]byte(src)))
	require.NoError(t, err)
	assert.Equal(t, src, v.JSON())
}

func TestRenderEscapes(t *testing.T) {
	v := codec.ObjectValue(codec.Member{Name: "a\"b", Value: codec.StringValue("x\ny")})
	reparsed, err := result.Unpack(codec.Parse([]byte(v.JSON())))
	require.NoError(t, err)
	require.Len(t, reparsed.Fields(), 1)
	assert.Equal(t, "a\"b", reparsed.Fields()[0].Name)
	assert.Equal(t, "x\ny", reparsed.Fields()[0].Value.Str())
}

func TestDecoderPrimitives(t *testing.T) {
	s, err := result.Unpack(codec.DecodeString(codec.String(), `"hi"`))
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	n, err := result.Unpack(codec.DecodeString(codec.Int(), `7`))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = result.Unpack(codec.DecodeString(codec.Int(), `7.5`))
	assert.Error(t, err)

	f, err := result.Unpack(codec.DecodeString(codec.Float(), `7.5`))
	require.NoError(t, err)
	assert.Equal(t, 7.5, f)

	b, err := result.Unpack(codec.DecodeString(codec.Bool(), `true`))
	require.NoError(t, err)
	assert.True(t, b)

	_, err = result.Unpack(codec.DecodeString(codec.String(), `42`))
	assert.Error(t, err)
}

func TestDecoderField(t *testing.T) {
	d := codec.Field("name", codec.String())
	s, err := result.Unpack(codec.DecodeString(d, `{"age": 3, "name": "Rex"}`))
	require.NoError(t, err)
	assert.Equal(t, "Rex", s)

	_, err = result.Unpack(codec.DecodeString(d, `{"age": 3}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestDecoderList(t *testing.T) {
	d := codec.List(codec.Int())
	xs, err := result.Unpack(codec.DecodeString(d, `[1, 2, 3]`))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, xs)

	_, err = result.Unpack(codec.DecodeString(d, `[1, "two", 3]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
}

func TestDecoderMapAndThen(t *testing.T) {
	double := codec.Map(func(n int) int { return n * 2 }, codec.Int())
	n, err := result.Unpack(codec.DecodeString(double, `21`))
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	positive := codec.AndThen(func(n int) codec.Decoder[int] {
		if n > 0 {
			return codec.Succeed(n)
		}
		return codec.Fail[int]("not positive")
	}, codec.Int())
	_, err = result.Unpack(codec.DecodeString(positive, `-3`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not positive")
}

func TestDecodeYAMLDocument(t *testing.T) {
	d := codec.Field("count", codec.Int())
	n, err := result.Unpack(codec.DecodeYAML(d, []byte("count: 12\n")))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}
