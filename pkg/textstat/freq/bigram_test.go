package freq

import (
	"testing"
)

func TestBuildBigrams(t *testing.T) {
	got := BuildBigrams([]string{"gato", "correu", "gato", "pulou"})
	want := []Bigram{
		{"gato", "correu"},
		{"correu", "gato"},
		{"gato", "pulou"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d bigrams, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bigram %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildBigramsLength(t *testing.T) {
	for n := 0; n < 6; n++ {
		tokens := make([]string, n)
		for i := range tokens {
			tokens[i] = string(rune('a' + i))
		}
		want := n - 1
		if want < 0 {
			want = 0
		}
		if got := len(BuildBigrams(tokens)); got != want {
			t.Errorf("len(BuildBigrams(%d tokens)) = %d, want %d", n, got, want)
		}
	}
}

func TestAdjacentBigrams(t *testing.T) {
	keep := func(tok string) bool { return len(tok) > 2 }

	// "o" sits between "gato" and "pulou" in the raw stream.
	got := AdjacentBigrams([]string{"gato", "correu", "o", "gato", "pulou"}, keep)
	want := []Bigram{{"gato", "correu"}, {"gato", "pulou"}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d bigrams, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bigram %d = %v, want %v", i, got[i], want[i])
		}
	}

	if len(AdjacentBigrams(nil, keep)) != 0 {
		t.Error("Empty input should produce no bigrams")
	}
}

func TestBigramString(t *testing.T) {
	if s := (Bigram{A: "machine", B: "learning"}).String(); s != "machine learning" {
		t.Errorf("String() = %q", s)
	}
}
