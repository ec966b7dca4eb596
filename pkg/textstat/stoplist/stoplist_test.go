package stoplist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/cognicore/textstat/pkg/textstat/internalerr"
)

func TestSetBasic(t *testing.T) {
	s := New("the", "a", "and")

	if !s.Contains("the") {
		t.Error("'the' should be a stopword")
	}

	if s.Contains("hello") {
		t.Error("'hello' should not be a stopword")
	}
}

func TestSetCaseSensitive(t *testing.T) {
	s := New("the")

	if s.Contains("The") {
		t.Error("Membership should be an exact, case-sensitive match")
	}
}

func TestSetWords(t *testing.T) {
	s := New("the", "a", "and", "the")

	all := s.Words()
	want := []string{"a", "and", "the"}
	if len(all) != len(want) {
		t.Fatalf("Expected %d stopwords, got %d", len(want), len(all))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, all[i], want[i])
		}
	}
}

func TestUnion(t *testing.T) {
	pt := New("o", "de", "que")
	en := New("the", "of", "o")

	u := Union(pt, en, nil)
	if u.Len() != 5 {
		t.Errorf("Expected 5 stopwords after union, got %d", u.Len())
	}
	for _, w := range []string{"o", "de", "que", "the", "of"} {
		if !u.Contains(w) {
			t.Errorf("Union should contain %q", w)
		}
	}
}

func TestNilSet(t *testing.T) {
	var s *Set

	if s.Contains("anything") {
		t.Error("Nil set should have no stopwords")
	}
	if s.Len() != 0 || len(s.Words()) != 0 {
		t.Error("Nil set should be empty")
	}
}

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader("the\r\n\n  and \nof\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Expected 3 words, got %d: %v", s.Len(), s.Words())
	}
	if !s.Contains("the") || !s.Contains("and") {
		t.Error("Parse should trim whitespace and carriage returns")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte("um\numa\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !s.Contains("uma") {
		t.Error("Expected 'uma' to be loaded")
	}
}

func TestLoadFilesMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.txt")
	if err := os.WriteFile(path, []byte("um\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFiles(path, "/nonexistent/stop.txt")
	if !errors.Is(err, internalerr.ErrStoplistUnavailable) {
		t.Errorf("Expected ErrStoplistUnavailable, got %v", err)
	}
}

func TestLoadLanguages(t *testing.T) {
	fsys := fstest.MapFS{
		"portuguese.txt": {Data: []byte("o\nde\n")},
		"english.txt":    {Data: []byte("the\nof\n")},
	}

	s, err := LoadLanguages(fsys, "portuguese", "english")
	if err != nil {
		t.Fatalf("LoadLanguages failed: %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("Expected 4 stopwords, got %d", s.Len())
	}

	_, err = LoadLanguages(fsys, "portuguese", "german")
	if !errors.Is(err, internalerr.ErrStoplistUnavailable) {
		t.Errorf("Missing language should fail with ErrStoplistUnavailable, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	for _, w := range []string{"o", "que", "não", "the", "and", "wouldn't"} {
		if !s.Contains(w) {
			t.Errorf("Default set should contain %q", w)
		}
	}
	for _, w := range []string{"gato", "correu", "pulou", "test"} {
		if s.Contains(w) {
			t.Errorf("Default set should not contain %q", w)
		}
	}
	for _, w := range s.Words() {
		if w != strings.ToLower(w) {
			t.Errorf("Stopword %q should be lowercase", w)
		}
	}
}
