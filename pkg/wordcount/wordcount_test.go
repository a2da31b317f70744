package wordcount

import (
	"testing"

	"github.com/rvaldez/textreport/pkg/parser"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"Hello,", "hello"},
		{"world!", "world"},
		{"CamelCase", "camelcase"},
		{"x86-64", "x8664"},
		{"---", ""},
		{"", ""},
		{"café", "café"},
		{"naïve2", "naïve2"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.token); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestSplit_DoubleSpaceYieldsBlank(t *testing.T) {
	lines := []parser.Line{{Num: 1, Text: "a  b"}}

	words, errs := Split(lines)
	if len(errs) != 0 {
		t.Fatalf("Split() errors = %v, want none", errs)
	}

	want := []string{"a", Blank, "b"}
	if len(words) != len(want) {
		t.Fatalf("Split() = %v, want %v", words, want)
	}
	for i, w := range words {
		if w != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, w, want[i])
		}
	}
}

func TestSplit_SkipsEmptyLines(t *testing.T) {
	lines := []parser.Line{
		{Num: 1, Text: "one two"},
		{Num: 2, Text: "   "},
		{Num: 3, Text: "three"},
	}

	words, errs := Split(lines)

	want := []string{"one", "two", "three"}
	if len(words) != len(want) {
		t.Fatalf("Split() = %v, want %v", words, want)
	}

	if len(errs) != 1 || errs[0].String() != "Line 2: empty line (skipped)" {
		t.Errorf("Split() errors = %v, want one empty-line skip at line 2", errs)
	}
}

func TestSplit_PunctuationOnlyTokenIsBlank(t *testing.T) {
	lines := []parser.Line{{Num: 1, Text: "a -- b"}}

	words, _ := Split(lines)
	want := []string{"a", Blank, "b"}
	for i, w := range words {
		if w != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, w, want[i])
		}
	}
}

func TestSplit_TabsAreNotDelimiters(t *testing.T) {
	// Only single spaces split; a tab stays inside the token and is
	// dropped by normalization.
	lines := []parser.Line{{Num: 1, Text: "a\tb c"}}

	words, _ := Split(lines)
	want := []string{"ab", "c"}
	if len(words) != len(want) {
		t.Fatalf("Split() = %v, want %v", words, want)
	}
	for i, w := range words {
		if w != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, w, want[i])
		}
	}
}

func TestTable_FirstSeenOrder(t *testing.T) {
	table := Tally([]string{"hello", "world", "hello", "again", "world", "hello"})

	entries := table.Entries()
	want := []Entry{
		{Word: "hello", Count: 3},
		{Word: "world", Count: 2},
		{Word: "again", Count: 1},
	}

	if len(entries) != len(want) {
		t.Fatalf("Entries() = %v, want %v", entries, want)
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, e, want[i])
		}
	}

	if table.Total() != 6 {
		t.Errorf("Total() = %d, want 6", table.Total())
	}
}

func TestTable_Count(t *testing.T) {
	table := Tally([]string{"a", "b", "a"})

	if got := table.Count("a"); got != 2 {
		t.Errorf("Count(a) = %d, want 2", got)
	}
	if got := table.Count("missing"); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}
}

func TestSplitAndTally(t *testing.T) {
	lines := []parser.Line{
		{Num: 1, Text: "Hello, world!"},
		{Num: 2, Text: "hello world"},
	}

	words, errs := Split(lines)
	if len(errs) != 0 {
		t.Fatalf("Split() errors = %v, want none", errs)
	}

	table := Tally(words)
	entries := table.Entries()

	if len(entries) != 2 {
		t.Fatalf("Entries() = %v, want hello and world", entries)
	}
	if entries[0].Word != "hello" || entries[0].Count != 2 {
		t.Errorf("entries[0] = %+v, want {hello 2}", entries[0])
	}
	if entries[1].Word != "world" || entries[1].Count != 2 {
		t.Errorf("entries[1] = %+v, want {world 2}", entries[1])
	}
	if table.Total() != 4 {
		t.Errorf("Total() = %d, want 4", table.Total())
	}
}
