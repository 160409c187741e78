// Package dictionary loads word lists and hands out random words from them.
//
// A List is immutable once built and may be shared between sessions; each
// session draws through its own Source so that picks follow that session's
// seeded RNG.
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

//go:embed words.txt
var builtinWords []byte

// ErrEmpty is returned when a word list contains no usable words.
var ErrEmpty = errors.New("dictionary: no words")

// commentPrefix marks lines that are skipped when parsing a word list.
const commentPrefix = "#"

// List is an in-memory word corpus.
type List struct {
	words []string
}

// New builds a List from raw entries, normalising each with Normalize.
// Duplicates are kept so a corpus can weight common words.
func New(entries []string) (*List, error) {
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		if w, ok := Normalize(e); ok {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: words}, nil
}

// Parse reads a newline-delimited word list.
func Parse(r io.Reader) (*List, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	return New(entries)
}

// Load reads a newline-delimited word list from path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return list, nil
}

// Default returns the built-in word list.
func Default() *List {
	list, err := Parse(bytes.NewReader(builtinWords))
	if err != nil {
		panic(fmt.Sprintf("dictionary: built-in word list: %v", err))
	}
	return list
}

// Normalize trims and lower-cases a raw line. It reports false for blank
// lines, comments and entries containing whitespace.
func Normalize(line string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	if w == "" || strings.HasPrefix(w, commentPrefix) {
		return "", false
	}
	if strings.ContainsAny(w, " \t") {
		return "", false
	}
	return w, true
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	return len(l.words)
}

// Words returns a copy of the words in load order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Source returns a word source drawing from l with rng.
func (l *List) Source(rng *rand.Rand) *Source {
	return &Source{list: l, rng: rng}
}

// Source picks words uniformly at random from a List.
type Source struct {
	list *List
	rng  *rand.Rand
}

// RandomWord returns a uniformly selected word.
func (s *Source) RandomWord() string {
	return s.list.words[s.rng.Intn(len(s.list.words))]
}
