package analytics

import (
	"strconv"
	"strings"
)

// Frequency counts grams and remembers the order each was first seen in.
// Ranking relies on that order to break ties.
type Frequency struct {
	order  []string
	counts map[string]int
}

// NewFrequency returns an empty table.
func NewFrequency() *Frequency {
	return &Frequency{counts: make(map[string]int)}
}

// Add increments gram by n.
func (f *Frequency) Add(gram string, n int) {
	if _, ok := f.counts[gram]; !ok {
		f.order = append(f.order, gram)
	}
	f.counts[gram] += n
}

// Count returns the number of times gram was added.
func (f *Frequency) Count(gram string) int {
	return f.counts[gram]
}

// Len returns the number of distinct grams.
func (f *Frequency) Len() int { return len(f.order) }

// Entry is one gram with its count.
type Entry struct {
	Gram  string
	Count int
}

// Entries returns every gram in first-seen order.
func (f *Frequency) Entries() []Entry {
	out := make([]Entry, len(f.order))
	for i, g := range f.order {
		out[i] = Entry{Gram: g, Count: f.counts[g]}
	}
	return out
}

// Tokenize splits a line on single spaces. Consecutive spaces yield empty
// tokens, which are counted like any other. An empty line has no tokens.
func Tokenize(line string) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, " ")
}

// NGramFrequency counts every window of n adjacent tokens, joined by a
// single space.
func NGramFrequency(tokens []string, n int) *Frequency {
	freq := NewFrequency()
	if n < 1 {
		return freq
	}
	for i := 0; i+n <= len(tokens); i++ {
		freq.Add(strings.Join(tokens[i:i+n], " "), 1)
	}
	return freq
}

// WordFrequency is the unigram table of a line.
func WordFrequency(line string) *Frequency {
	return NGramFrequency(Tokenize(line), 1)
}

// OrderName labels a gram size: unigram, bigram, trigram, then "<n>-gram".
func OrderName(n int) string {
	switch n {
	case 1:
		return "unigram"
	case 2:
		return "bigram"
	case 3:
		return "trigram"
	default:
		return strconv.Itoa(n) + "-gram"
	}
}
