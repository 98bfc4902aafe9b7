package search

import "strings"

// ClauseKind tags the variants produced by Parse.
type ClauseKind int

const (
	// ClauseQuoted is a "quoted phrase" matched against card text.
	ClauseQuoted ClauseKind = iota
	// ClauseComparator is field<op>integer.
	ClauseComparator
	// ClauseFlag is a bare word, optionally negated with '!'.
	ClauseFlag
)

func (k ClauseKind) String() string {
	switch k {
	case ClauseQuoted:
		return "quoted"
	case ClauseComparator:
		return "comparator"
	case ClauseFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Clause is one parsed piece of a query.
type Clause struct {
	Kind ClauseKind
	// Text is the phrase, the comparator field or the flag word.
	Text    string
	Op      byte
	Value   string
	Negated bool
}

// Parse splits a query into clauses, left to right. At each position it
// tries a quoted phrase, then a comparator, then a flag word; characters
// that start none of these are skipped. A word followed by an operator but
// no number is dropped together with the operator.
func Parse(query string) []Clause {
	var clauses []Clause
	for i := 0; i < len(query); {
		if c, n, ok := scanQuoted(query[i:]); ok {
			clauses = append(clauses, c)
			i += n
			continue
		}
		if c, n, ok := scanComparator(query[i:]); ok {
			if c != nil {
				clauses = append(clauses, *c)
			}
			i += n
			continue
		}
		if c, n, ok := scanFlag(query[i:]); ok {
			clauses = append(clauses, c)
			i += n
			continue
		}
		i++
	}
	return clauses
}

// scanQuoted reads "text" or an unterminated "text at end of input.
func scanQuoted(s string) (Clause, int, bool) {
	if len(s) < 2 || s[0] != '"' {
		return Clause{}, 0, false
	}
	end := strings.IndexByte(s[1:], '"')
	switch {
	case end == 0:
		return Clause{}, 0, false
	case end < 0:
		return Clause{Kind: ClauseQuoted, Text: s[1:]}, len(s), true
	default:
		return Clause{Kind: ClauseQuoted, Text: s[1 : end+1]}, end + 2, true
	}
}

// scanComparator reads word[ ]op[ ]digits. A nil clause with ok set means a
// malformed comparator whose word and operator were consumed.
func scanComparator(s string) (*Clause, int, bool) {
	word := wordLen(s)
	if word == 0 {
		return nil, 0, false
	}
	i := word
	if i < len(s) && s[i] == ' ' {
		i++
	}
	if i >= len(s) || !isOp(s[i]) {
		return nil, 0, false
	}
	op := s[i]
	i++
	afterOp := i
	if i < len(s) && s[i] == ' ' {
		i++
	}
	digits := digitLen(s[i:])
	if digits == 0 {
		return nil, afterOp, true
	}
	return &Clause{
		Kind:  ClauseComparator,
		Text:  s[:word],
		Op:    op,
		Value: s[i : i+digits],
	}, i + digits, true
}

// scanFlag reads [!]word.
func scanFlag(s string) (Clause, int, bool) {
	negated := len(s) > 0 && s[0] == '!'
	start := 0
	if negated {
		start = 1
	}
	n := wordLen(s[start:])
	if n == 0 {
		return Clause{}, 0, false
	}
	return Clause{Kind: ClauseFlag, Text: s[start : start+n], Negated: negated}, start + n, true
}

func isOp(b byte) bool {
	return b == '>' || b == '<' || b == '='
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func wordLen(s string) int {
	n := 0
	for n < len(s) && isWordByte(s[n]) {
		n++
	}
	return n
}

func digitLen(s string) int {
	n := 0
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}
	return n
}
