package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetKeepsFirstPosition(t *testing.T) {
	obj := NewObject(
		Member{Key: "b", Value: Number(1)},
		Member{Key: "a", Value: Number(2)},
		Member{Key: "b", Value: String("last")},
	)

	assert.Equal(t, []string{"b", "a"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())

	value, ok := obj.Get("b")
	require.True(t, ok)
	assert.Equal(t, String("last"), value)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestChildren(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected []Value
	}{
		{"scalar", Number(1), nil},
		{"null", Null{}, nil},
		{"array", Array{Bool(true), String("x")}, []Value{Bool(true), String("x")}},
		{"empty array", Array{}, []Value{}},
		{
			"object in insertion order",
			NewObject(Member{Key: "z", Value: Number(1)}, Member{Key: "a", Value: Null{}}),
			[]Value{Number(1), Null{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Children(tt.value))
		})
	}
}

func TestIsContainer(t *testing.T) {
	assert.True(t, IsContainer(Array{}))
	assert.True(t, IsContainer(NewObject()))
	assert.False(t, IsContainer(Null{}))
	assert.False(t, IsContainer(Bool(false)))
	assert.False(t, IsContainer(Number(0)))
	assert.False(t, IsContainer(String("")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", Null{}.Kind().String())
	assert.Equal(t, "boolean", Bool(true).Kind().String())
	assert.Equal(t, "number", Number(3).Kind().String())
	assert.Equal(t, "string", String("s").Kind().String())
	assert.Equal(t, "array", Array{}.Kind().String())
	assert.Equal(t, "object", NewObject().Kind().String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestMarshal(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"null", Null{}, `null`},
		{"true", Bool(true), `true`},
		{"false", Bool(false), `false`},
		{"integer", Number(556), `556`},
		{"negative", Number(-25200), `-25200`},
		{"real", Number(29.951), `29.951`},
		{"negative zero", Number(math.Copysign(0, -1)), `0`},
		{"large", Number(1e21), `1e+21`},
		{"small", Number(1.5e-7), `1.5e-7`},
		{"not a number", Number(math.NaN()), `null`},
		{"empty string", String(""), `""`},
		{"html is not escaped", String("<a&b>"), `"<a&b>"`},
		{"backspace and form feed", String("\b\f"), `"\b\f"`},
		{"quotes and controls", String("a\"b\n"), `"a\"b\n"`},
		{"empty array", Array{}, `[]`},
		{"empty object", NewObject(), `{}`},
		{
			"nested in insertion order",
			NewObject(
				Member{Key: "foo", Value: Array{Number(1), Null{}}},
				Member{Key: "bar", Value: NewObject(Member{Key: "baz", Value: String("x")})},
			),
			`{"foo":[1,null],"bar":{"baz":"x"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(Marshal(tt.value)))
		})
	}
}

func TestKeyListLen(t *testing.T) {
	assert.Equal(t, 2, KeyListLen(nil))
	assert.Equal(t, 7, KeyListLen([]string{"foo"}))
	assert.Equal(t, 13, KeyListLen([]string{"foo", "bar"}))
	assert.Equal(t, 12, KeyListLen([]string{"a&b", "\b"}))
}

func TestAppendNumber(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{1e-7, "1e-7"},
		{-1e-7, "-1e-7"},
		{1e-6, "0.000001"},
		{9.99e-7, "9.99e-7"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.7976931348623157e308, "1.7976931348623157e+308"},
		{5e-324, "5e-324"},
		{1.5e-100, "1.5e-100"},
		{0.1, "0.1"},
		{-25200, "-25200"},
		{math.Inf(-1), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(AppendNumber(nil, tt.value)))
		})
	}
}

func TestAppendString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"plain", "abc", `"abc"`},
		{"html characters", "<a&b>", `"<a&b>"`},
		{"short escapes", "\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"other control characters", "\x00\x01\x1f", `"\u0000\u0001\u001f"`},
		{"delete is raw", "\x7f", "\"\x7f\""},
		{"quote and backslash", `a"b\c`, `"a\"b\\c"`},
		{"line and paragraph separators", "\u2028\u2029", "\"\u2028\u2029\""},
		{"multibyte", "é漢🙂", `"é漢🙂"`},
		{"invalid utf-8", "a\xffb", "\"a\ufffdb\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(AppendString(nil, tt.value)))
		})
	}
}

func TestAnalysis_Duplicates(t *testing.T) {
	a := Analysis{Values: Values{
		Textual:    CategoryStats{Duplicates: 1},
		Numeric:    CategoryStats{Duplicates: 2},
		Boolean:    CategoryStats{Duplicates: 3},
		Structural: CategoryStats{Duplicates: 4},
	}}

	assert.Equal(t, 10, a.Duplicates())
}

func TestByteSize_TotalAndAdd(t *testing.T) {
	size := ByteSize{Scalar: 3, Structural: 2}.Add(ByteSize{Scalar: 1, Structural: 8})

	assert.Equal(t, ByteSize{Scalar: 4, Structural: 10}, size)
	assert.Equal(t, 14, size.Total())
}
