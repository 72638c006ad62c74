package puzzle

// FoundWord is a word the player has located, with the cells it occupies
// ordered from its first letter to its last.
type FoundWord struct {
	Word      string
	Positions []Cell
}

// FoundSet is the append-only set of words found in a level. Membership is
// by word text: finding the same word again along another path is a no-op.
type FoundSet struct {
	words []FoundWord
	index map[string]int
}

// NewFoundSet creates an empty set.
func NewFoundSet() *FoundSet {
	return &FoundSet{index: make(map[string]int)}
}

// Add records fw and returns true, or returns false if the word was
// already present.
func (s *FoundSet) Add(fw FoundWord) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[fw.Word]; ok {
		return false
	}
	s.index[fw.Word] = len(s.words)
	s.words = append(s.words, fw)
	return true
}

// Contains reports whether word has been found. A nil set contains nothing.
func (s *FoundSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[word]
	return ok
}

// Len returns the number of distinct words found.
func (s *FoundSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns the found words in discovery order.
func (s *FoundSet) Words() []FoundWord {
	if s == nil {
		return nil
	}
	out := make([]FoundWord, len(s.words))
	copy(out, s.words)
	return out
}

// Covers reports whether c is part of any found word.
func (s *FoundSet) Covers(c Cell) bool {
	if s == nil {
		return false
	}
	for _, fw := range s.words {
		for _, p := range fw.Positions {
			if p == c {
				return true
			}
		}
	}
	return false
}
