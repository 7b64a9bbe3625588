package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Entry
	}{
		{
			name:  "learn go example",
			input: "Learn Go | video coding | https://example.com/go",
			want: &Entry{
				Title:    "Learn Go",
				Category: "video coding",
				Content:  "https://example.com/go",
			},
		},
		{
			name:  "no surrounding spaces",
			input: "a|b|c",
			want:  &Entry{Title: "a", Category: "b", Content: "c"},
		},
		{
			name:  "tabs and newlines are trimmed",
			input: "\t Title \n|\n Category\t|  content  \n",
			want:  &Entry{Title: "Title", Category: "Category", Content: "content"},
		},
		{
			name:  "inner whitespace is preserved",
			input: "  two  words | a  b |x y",
			want:  &Entry{Title: "two  words", Category: "a  b", Content: "x y"},
		},
		{
			name:  "non ascii text",
			input: "如何用好编程 | video coding | https://twitter.com/example",
			want:  &Entry{Title: "如何用好编程", Category: "video coding", Content: "https://twitter.com/example"},
		},
		{
			name:  "content is not validated as url",
			input: "note | misc | just some words",
			want:  &Entry{Title: "note", Category: "misc", Content: "just some words"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseEntry() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEntry_WrongSegmentCount(t *testing.T) {
	inputs := []string{
		"",
		"Missing pipes",
		"only | two",
		"a | b | c | d",
		"a || b || c",
		"|||",
		"title | category | https://example.com/?q=a|b",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ParseEntry(input)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidFormat)

			var vErr *ValidationError
			assert.False(t, errors.As(err, &vErr), "segment count failures carry no field")
		})
	}
}

func TestParseEntry_EmptySegment(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{name: "blank title", input: " | category | content", wantField: "title"},
		{name: "empty title", input: "|category|content", wantField: "title"},
		{name: "blank category", input: "title |   | content", wantField: "category"},
		{name: "blank content", input: "title | category | \t", wantField: "content"},
		{name: "all blank", input: " | | ", wantField: "title"},
		{name: "only pipes", input: "||", wantField: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.input)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

// Every combination of padded segments with exactly two delimiters must parse
// to the trimmed segments in order, and any blank segment must reject the whole
// message.
func TestParseEntry_Combinations(t *testing.T) {
	segments := []string{"x", " x ", "\tlong value\n", "", "   ", "日本語"}
	for _, a := range segments {
		for _, b := range segments {
			for _, c := range segments {
				input := a + "|" + b + "|" + c
				got, err := ParseEntry(input)

				ta, tb, tc := strings.TrimSpace(a), strings.TrimSpace(b), strings.TrimSpace(c)
				if ta == "" || tb == "" || tc == "" {
					if got != nil || !errors.Is(err, ErrInvalidFormat) {
						t.Errorf("ParseEntry(%q) = %+v, %v; want nil, ErrInvalidFormat", input, got, err)
					}
					continue
				}

				want := &Entry{Title: ta, Category: tb, Content: tc}
				if err != nil {
					t.Errorf("ParseEntry(%q) unexpected error: %v", input, err)
					continue
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("ParseEntry(%q) mismatch (-want +got):\n%s", input, diff)
				}
			}
		}
	}
}

func TestParseEntry_DelimiterCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		input := "v" + strings.Repeat("|v", n)
		got, err := ParseEntry(input)
		if n == 2 {
			require.NoError(t, err)
			require.NotNil(t, got)
			continue
		}
		assert.Nil(t, got, "delimiters=%d", n)
		assert.ErrorIs(t, err, ErrInvalidFormat, "delimiters=%d", n)
	}
}
