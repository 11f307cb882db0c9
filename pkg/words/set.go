package words

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CommonSet is the set of words excluded from frequency counting.
// Immutable once loaded.
type CommonSet struct {
	words map[string]struct{}
}

// Load builds a CommonSet from two sources: a comma-separated common-words
// listing (one or more words per record) and a newline-delimited dictionary.
// Every entry is normalized before insertion; empty entries are dropped.
func Load(common io.Reader, dict io.Reader) (*CommonSet, error) {
	set := &CommonSet{words: make(map[string]struct{})}

	r := csv.NewReader(common)
	r.FieldsPerRecord = -1 // records carry a variable number of words
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read common words: %w", err)
		}
		for _, entry := range record {
			set.add(entry)
		}
	}

	scanner := bufio.NewScanner(dict)
	for scanner.Scan() {
		set.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	return set, nil
}

// LoadFiles opens and loads both word sources from disk. Either file being
// unreadable is an error; counting without the exclusion set would corrupt
// every downstream result.
func LoadFiles(commonPath, dictPath string) (*CommonSet, error) {
	commonFile, err := os.Open(commonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open common words file: %w", err)
	}
	defer commonFile.Close()

	dictFile, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer dictFile.Close()

	return Load(commonFile, dictFile)
}

func (s *CommonSet) add(entry string) {
	if w := Normalize(entry); w != "" {
		s.words[w] = struct{}{}
	}
}

// Contains reports whether the normalized form of word is in the set.
func (s *CommonSet) Contains(word string) bool {
	_, ok := s.words[Normalize(word)]
	return ok
}

// Len returns the number of distinct words in the set.
func (s *CommonSet) Len() int {
	return len(s.words)
}
