package mapreduce

import "github.com/dtnitsch/flatgram/pkg/analytics"

// Map builds the n-gram table for a single line.
func Map(line string, n int) *analytics.Frequency {
	return analytics.NGramFrequency(analytics.Tokenize(line), n)
}

// Reduce merges per-line tables into one. A gram's position is where it
// first appeared across the inputs, taken in order.
func Reduce(intermediate []*analytics.Frequency) *analytics.Frequency {
	final := analytics.NewFrequency()

	for _, freq := range intermediate {
		for _, e := range freq.Entries() {
			final.Add(e.Gram, e.Count)
		}
	}

	return final
}
