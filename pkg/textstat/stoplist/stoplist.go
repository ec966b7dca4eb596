// Package stoplist holds the stopword set used by the token filter.
//
// A Set is immutable once built: it is loaded once at startup and shared,
// read-only, by every analysis. The default set is the union of the
// Portuguese and English lists embedded under data/. Unioning the languages
// instead of detecting one means a word that is a stopword in one language
// but content in the other is always dropped.
package stoplist

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/cognicore/textstat/pkg/textstat/internalerr"
)

//go:embed data/*.txt
var embedded embed.FS

// DefaultLanguages are the embedded lists unioned by Default.
var DefaultLanguages = []string{"portuguese", "english"}

// Set is an immutable set of stopwords. The zero value and nil are empty.
type Set struct {
	words map[string]struct{}
}

// New creates a set from the given words. Words are stored as given;
// membership is an exact, case-sensitive match.
func New(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// Union returns a new set holding every word of the given sets.
func Union(sets ...*Set) *Set {
	n := 0
	for _, s := range sets {
		n += s.Len()
	}
	out := &Set{words: make(map[string]struct{}, n)}
	for _, s := range sets {
		if s == nil {
			continue
		}
		for w := range s.words {
			out.words[w] = struct{}{}
		}
	}
	return out
}

// Contains checks if a token is a stopword
func (s *Set) Contains(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[token]
	return ok
}

// Len returns the number of distinct stopwords.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns all stopwords, sorted.
func (s *Set) Words() []string {
	result := make([]string, 0, s.Len())
	if s == nil {
		return result
	}
	for w := range s.words {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// Parse reads a newline-delimited word list. Blank lines are skipped and
// surrounding whitespace (including a trailing \r) is trimmed.
func Parse(r io.Reader) (*Set, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(words...), nil
}

// LoadFile loads a word list from disk.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrStoplistUnavailable, path, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", internalerr.ErrStoplistUnavailable, path, err)
	}
	return s, nil
}

// LoadFiles loads every list and unions them. Any missing or unreadable
// list fails the whole load.
func LoadFiles(paths ...string) (*Set, error) {
	sets := make([]*Set, 0, len(paths))
	for _, p := range paths {
		s, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return Union(sets...), nil
}

// LoadLanguages loads "<lang>.txt" from fsys for each language and unions
// the lists.
func LoadLanguages(fsys fs.FS, langs ...string) (*Set, error) {
	sets := make([]*Set, 0, len(langs))
	for _, lang := range langs {
		name := lang + ".txt"
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", internalerr.ErrStoplistUnavailable, lang, err)
		}
		s, err := Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read language %q: %v", internalerr.ErrStoplistUnavailable, lang, err)
		}
		sets = append(sets, s)
	}
	return Union(sets...), nil
}

// Embedded returns the embedded lists as an fs.FS rooted at the list files.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // data/ is compiled in
	}
	return sub
}

// Default loads the embedded Portuguese and English lists.
func Default() (*Set, error) {
	return LoadLanguages(Embedded(), DefaultLanguages...)
}
