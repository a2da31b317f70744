package wordcount

// Table tallies word frequencies while preserving the order in which
// each distinct word was first seen. Report rows iterate in that order,
// so a plain map is not enough.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// Entry is one row of the frequency table.
type Entry struct {
	Word  string
	Count int
}

// NewTable returns an empty frequency table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add records one occurrence of the given word.
func (t *Table) Add(word string) {
	if _, seen := t.counts[word]; !seen {
		t.order = append(t.order, word)
	}
	t.counts[word]++
	t.total++
}

// Entries returns the rows in first-seen order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, word := range t.order {
		entries = append(entries, Entry{Word: word, Count: t.counts[word]})
	}
	return entries
}

// Count returns the tally for a single word, 0 if unseen.
func (t *Table) Count(word string) int {
	return t.counts[word]
}

// Total returns the number of occurrences recorded across all words.
func (t *Table) Total() int {
	return t.total
}

// Tally builds a Table from the given words.
func Tally(words []string) *Table {
	t := NewTable()
	for _, w := range words {
		t.Add(w)
	}
	return t
}
