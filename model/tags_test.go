package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTagListNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input TagList
		want  TagList
	}{
		{
			name:  "Trims And Deduplicates",
			input: TagList{"a", " a ", "", "b"},
			want:  TagList{"a", "b"},
		},
		{
			name:  "Preserves First Seen Order",
			input: TagList{"work", "home", "work", "ideas", "home"},
			want:  TagList{"work", "home", "ideas"},
		},
		{
			name:  "Drops Whitespace Only Entries",
			input: TagList{"  ", "\t", "x"},
			want:  TagList{"x"},
		},
		{
			name:  "Empty Input",
			input: TagList{},
			want:  TagList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalize()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := TagList{"a", " a ", "", "b", "#c"}
	once := input.Normalize()
	twice := once.Normalize()
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize is not idempotent: %v != %v", once, twice)
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TagList
	}{
		{
			name:  "Mixed Delimiters",
			input: "foo, bar #baz  qux",
			want:  TagList{"foo", "bar", "baz", "qux"},
		},
		{
			name:  "Leading And Trailing Separators",
			input: "#work, ,home#",
			want:  TagList{"work", "home"},
		},
		{
			name:  "Empty String",
			input: "",
			want:  TagList{},
		},
		{
			name:  "Separators Only",
			input: ", ,, ##",
			want:  TagList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTags(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTags(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTagListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TagList
	}{
		{
			name:  "Array Input",
			input: `["a", " a ", "", "b"]`,
			want:  TagList{"a", "b"},
		},
		{
			name:  "Delimited String Input",
			input: `"foo, bar #baz"`,
			want:  TagList{"foo", "bar", "baz"},
		},
		{
			name:  "Mixed Element Types",
			input: `["a", 1, true, null]`,
			want:  TagList{"a", "1", "true"},
		},
		{
			name:  "Null Input",
			input: `null`,
			want:  TagList{},
		},
		{
			name:  "Object Input Degrades To Empty",
			input: `{"not": "tags"}`,
			want:  TagList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TagList
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
