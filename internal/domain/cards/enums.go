package cards

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MaxEnumReply caps the size of an enum lookup answer.
const MaxEnumReply = 900

// EnumEntry is one NAME = value pair.
type EnumEntry struct {
	Name  string
	Value int
}

// Enum is a name/value table ordered by value, then name.
type Enum []EnumEntry

// NewEnum builds an ordered enum from a name to value map.
func NewEnum(values map[string]int) Enum {
	e := make(Enum, 0, len(values))
	for name, value := range values {
		e = append(e, EnumEntry{Name: name, Value: value})
	}
	sort.Slice(e, func(i, j int) bool {
		if e[i].Value != e[j].Value {
			return e[i].Value < e[j].Value
		}
		return e[i].Name < e[j].Name
	})
	return e
}

// Lookup lists entries whose name matches query, case-insensitively, or
// whose value equals query. The query is tried as a regular expression and
// falls back to a substring match when it does not compile.
func (e Enum) Lookup(query string) string {
	query = strings.TrimSpace(query)
	match := func(name string) bool {
		return strings.Contains(strings.ToLower(name), strings.ToLower(query))
	}
	if re, err := regexp.Compile("(?i)" + query); err == nil {
		match = re.MatchString
	}
	value, valueErr := strconv.Atoi(query)

	parts := make([]string, 0, len(e))
	for _, entry := range e {
		if match(entry.Name) || (valueErr == nil && entry.Value == value) {
			parts = append(parts, fmt.Sprintf("%s = %d", entry.Name, entry.Value))
		}
	}

	out := strings.Join(parts, ", ")
	if len(out) > MaxEnumReply {
		out = out[:MaxEnumReply]
	}
	return out
}
