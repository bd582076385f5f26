package mapreduce

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dtnitsch/flatgram/pkg/analytics"
)

// TopK returns the k most frequent entries. Equal counts keep first-seen
// order, the same ranking Python's Counter.most_common produces.
func TopK(freq *analytics.Frequency, k int) []analytics.Entry {
	if k <= 0 {
		return []analytics.Entry{}
	}

	entries := freq.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// Grams drops the counts.
func Grams(entries []analytics.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Gram
	}
	return out
}

// TopKeywords returns the top k entries formatted as "gram:count".
func TopKeywords(freq *analytics.Frequency, k int) []string {
	top := TopK(freq, k)
	keywords := make([]string, len(top))
	for i, e := range top {
		keywords[i] = fmt.Sprintf("%s:%d", e.Gram, e.Count)
	}
	return keywords
}

// FormatList renders items as a bracketed list of quoted strings:
// ['a', 'b c']. An item containing ' but no " is wrapped in double quotes.
func FormatList(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(item))
	}
	b.WriteByte(']')
	return b.String()
}

func quote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == q:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// PrintTopList writes "Top <k> <label> = [...]" followed by a newline, e.g.
// "Top 50 unigram list = ['a', 'b']".
func PrintTopList(w io.Writer, k int, label string, grams []string) error {
	_, err := fmt.Fprintf(w, "Top %d %s = %s\n", k, label, FormatList(grams))
	return err
}
