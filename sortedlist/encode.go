package sortedlist

import (
	"encoding/json"
	"fmt"
	"strings"
)

// String renders the list as "SortedList(<kind>)[v1, v2, ...]" with the
// values in sorted order.
func (l *List) String() string {
	var sb strings.Builder

	sb.WriteString("SortedList(")
	sb.WriteString(l.kind.String())
	sb.WriteString(")[")

	first := true

	for value := range l.Seq() {
		if !first {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v", value)

		first = false
	}

	sb.WriteString("]")

	return sb.String()
}

// MarshalJSON encodes the list as a plain JSON array of its values in sorted
// order. An empty list encodes as [].
func (l *List) MarshalJSON() ([]byte, error) {
	entries := l.Entries()
	if entries == nil {
		entries = []any{}
	}

	return json.Marshal(entries)
}
