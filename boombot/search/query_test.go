package search

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []Clause
	}{
		{name: "Empty", query: "", want: nil},
		{
			name:  "Quoted",
			query: `"big red dragon"`,
			want:  []Clause{{Kind: ClauseQuoted, Text: "big red dragon"}},
		},
		{
			name:  "UnterminatedQuote",
			query: `taunt "draw a`,
			want: []Clause{
				{Kind: ClauseFlag, Text: "taunt"},
				{Kind: ClauseQuoted, Text: "draw a"},
			},
		},
		{
			name:  "EmptyQuoteSkipped",
			query: `"" charge`,
			want:  []Clause{{Kind: ClauseQuoted, Text: " charge"}},
		},
		{
			name:  "Comparators",
			query: "cost>5 attack = 3 health< 2",
			want: []Clause{
				{Kind: ClauseComparator, Text: "cost", Op: '>', Value: "5"},
				{Kind: ClauseComparator, Text: "attack", Op: '=', Value: "3"},
				{Kind: ClauseComparator, Text: "health", Op: '<', Value: "2"},
			},
		},
		{
			name:  "TwoSpacesIsNotComparator",
			query: "cost  >5",
			want: []Clause{
				{Kind: ClauseFlag, Text: "cost"},
				{Kind: ClauseFlag, Text: "5"},
			},
		},
		{
			name:  "NegatedFlag",
			query: "!taunt DRAGON",
			want: []Clause{
				{Kind: ClauseFlag, Text: "taunt", Negated: true},
				{Kind: ClauseFlag, Text: "DRAGON"},
			},
		},
		{
			name:  "MalformedTrailingComparator",
			query: "dragon cost>",
			want:  []Clause{{Kind: ClauseFlag, Text: "dragon"}},
		},
		{
			name:  "MalformedComparatorKeepsNextWord",
			query: "cost> taunt",
			want:  []Clause{{Kind: ClauseFlag, Text: "taunt"}},
		},
		{
			name:  "PunctuationSkipped",
			query: "!! ,taunt; >5",
			want: []Clause{
				{Kind: ClauseFlag, Text: "taunt"},
				{Kind: ClauseFlag, Text: "5"},
			},
		},
		{
			name:  "Mixed",
			query: `"deal $" cost<3 !spell`,
			want: []Clause{
				{Kind: ClauseQuoted, Text: "deal $"},
				{Kind: ClauseComparator, Text: "cost", Op: '<', Value: "3"},
				{Kind: ClauseFlag, Text: "spell", Negated: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.query); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestClauseKindString(t *testing.T) {
	if ClauseComparator.String() != "comparator" || ClauseKind(9).String() != "unknown" {
		t.Error("unexpected ClauseKind names")
	}
}
