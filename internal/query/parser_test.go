package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoercionCascade(t *testing.T) {
	t.Parallel()

	result := Parse("a=1&b=2.5&c=true&d=false&e='hi'&f=plain")

	require.Len(t, result, 6)
	assert.Equal(t, KindInt, result["a"].Kind())
	assert.Equal(t, int64(1), result["a"].Int64())
	assert.Equal(t, KindFloat, result["b"].Kind())
	assert.Equal(t, 2.5, result["b"].Float64())
	assert.Equal(t, KindBool, result["c"].Kind())
	assert.True(t, result["c"].Bool())
	assert.Equal(t, KindBool, result["d"].Kind())
	assert.False(t, result["d"].Bool())
	assert.Equal(t, KindString, result["e"].Kind())
	assert.Equal(t, "hi", result["e"].Str())
	assert.Equal(t, KindString, result["f"].Kind())
	assert.Equal(t, "plain", result["f"].Str())
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "lone question mark", raw: "?"},
		{name: "only separators", raw: "&&&"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := Parse(tt.raw)
			require.NotNil(t, result)
			assert.Empty(t, result)
		})
	}
}

func TestParseNestedObject(t *testing.T) {
	t.Parallel()

	result := Parse("a[b][c]=5")

	require.Contains(t, result, "a")
	require.Equal(t, KindObject, result["a"].Kind())
	b := result["a"].Object()
	require.Contains(t, b, "b")
	require.Equal(t, KindObject, b["b"].Kind())
	c := b["b"].Object()
	require.Contains(t, c, "c")
	assert.Equal(t, int64(5), c["c"].Int64())
}

func TestParseDeepMerge(t *testing.T) {
	t.Parallel()

	result := Parse("a[b]=1&a[c]=2")

	require.Equal(t, KindObject, result["a"].Kind())
	obj := result["a"].Object()
	require.Len(t, obj, 2)
	assert.Equal(t, int64(1), obj["b"].Int64())
	assert.Equal(t, int64(2), obj["c"].Int64())
}

func TestParseDeepMergeAcrossLevels(t *testing.T) {
	t.Parallel()

	result := Parse("f[a][x]=1&f[a][y]=2&f[b]=3")

	f := result["f"].Object()
	require.Len(t, f, 2)
	a := f["a"].Object()
	assert.Equal(t, int64(1), a["x"].Int64())
	assert.Equal(t, int64(2), a["y"].Int64())
	assert.Equal(t, int64(3), f["b"].Int64())
}

func TestParseSamePathOverwrites(t *testing.T) {
	t.Parallel()

	result := Parse("a[b]=1&a[b]=2")

	obj := result["a"].Object()
	require.Len(t, obj, 1)
	assert.Equal(t, int64(2), obj["b"].Int64())
}

func TestParseLeafObjectConflict(t *testing.T) {
	t.Parallel()

	// A later assignment to a different shape at the same key replaces
	// the earlier value wholesale.
	result := Parse("a=1&a[b]=2")
	require.Equal(t, KindObject, result["a"].Kind())
	assert.Equal(t, int64(2), result["a"].Object()["b"].Int64())

	result = Parse("a[b]=2&a=1")
	require.Equal(t, KindInt, result["a"].Kind())
	assert.Equal(t, int64(1), result["a"].Int64())
}

func TestParsePercentDecoding(t *testing.T) {
	t.Parallel()

	result := Parse("msg=hello%20world&q=a%26b")
	assert.Equal(t, "hello world", result["msg"].Str())
	assert.Equal(t, "a&b", result["q"].Str())

	// Encoded brackets in the key still form an object parameter.
	result = Parse("a%5Bb%5D=7")
	require.Equal(t, KindObject, result["a"].Kind())
	assert.Equal(t, int64(7), result["a"].Object()["b"].Int64())
}

func TestParseMalformedEscapeKeptVerbatim(t *testing.T) {
	t.Parallel()

	result := Parse("bad=%zz")
	assert.Equal(t, "%zz", result["bad"].Str())
}

func TestParseTokenWithoutEquals(t *testing.T) {
	t.Parallel()

	result := Parse("flag&x=1")
	require.Contains(t, result, "flag")
	assert.Equal(t, KindString, result["flag"].Kind())
	assert.Equal(t, "", result["flag"].Str())
	assert.Equal(t, int64(1), result["x"].Int64())
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Value
	}{
		{name: "int", in: "42", want: IntValue(42)},
		{name: "leading zeros are int", in: "007", want: IntValue(7)},
		{name: "negative int is string", in: "-3", want: StringValue("-3")},
		{name: "float", in: "2.5", want: FloatValue(2.5)},
		{name: "signed float plus", in: "+1.25", want: FloatValue(1.25)},
		{name: "signed float minus", in: "-0.5", want: FloatValue(-0.5)},
		{name: "float without fraction is string", in: "2.", want: StringValue("2.")},
		{name: "bool true", in: "true", want: BoolValue(true)},
		{name: "bool false", in: "false", want: BoolValue(false)},
		{name: "bool embedded is string", in: "truely", want: StringValue("truely")},
		{name: "single quoted", in: "'true'", want: StringValue("true")},
		{name: "double quoted", in: `"123"`, want: StringValue("123")},
		{name: "mismatched quotes", in: `'abc"`, want: StringValue(`'abc"`)},
		{name: "lone quote", in: "'", want: StringValue("'")},
		{name: "empty quoted", in: "''", want: StringValue("")},
		{name: "plain string", in: "hello", want: StringValue("hello")},
		{name: "empty", in: "", want: StringValue("")},
		{name: "int64 overflow stays string", in: "99999999999999999999", want: StringValue("99999999999999999999")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Coerce(tt.in)
			assert.True(t, tt.want.Equal(got), "want %s (%s), got %s (%s)",
				tt.want, tt.want.Kind(), got, got.Kind())
		})
	}
}

func TestValueInterface(t *testing.T) {
	t.Parallel()

	obj := Parse("a=1&b[c]=true")
	assert.Equal(t, int64(1), obj["a"].Interface())
	assert.Equal(t, map[string]any{"c": true}, obj["b"].Interface())
}

func TestObjectString(t *testing.T) {
	t.Parallel()

	obj := Parse("b=2&a=1")
	assert.Equal(t, "{a: 1, b: 2}", obj.String())
}

func TestObjectEqual(t *testing.T) {
	t.Parallel()

	left := Parse("a[b]=1&c=x")
	right := Parse("c=x&a[b]=1")
	assert.True(t, left.Equal(right))

	different := Parse("a[b]=2&c=x")
	assert.False(t, left.Equal(different))
}
