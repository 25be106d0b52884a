package parse

// State is the cursor surface the grammar walker consumes: it replays words
// one at a time and never looks back.
type State interface {
	Current() string // word at the current position
	Advance() bool   // move to the next word, false when exhausted
}

// DefaultState is the slice-backed cursor. Beyond the State surface it
// carries inspection helpers for callers that need positional context.
type DefaultState struct {
	pos   int
	words []string
}

var _ State = (*DefaultState)(nil)

// NewState creates a cursor positioned before the first word.
func NewState(words []string) *DefaultState {
	return &DefaultState{pos: -1, words: words}
}

// Pos returns the current position, -1 before the first Advance.
func (s *DefaultState) Pos() int {
	return s.pos
}

// Len returns the total number of words.
func (s *DefaultState) Len() int {
	return len(s.words)
}

func (s *DefaultState) Current() string {
	if s.pos < 0 || s.pos >= len(s.words) {
		return ""
	}
	return s.words[s.pos]
}

// Peek returns the next word without advancing, "" at the end.
func (s *DefaultState) Peek() string {
	if s.pos+1 >= len(s.words) {
		return ""
	}
	return s.words[s.pos+1]
}

func (s *DefaultState) Advance() bool {
	if s.pos+1 >= len(s.words) {
		return false
	}
	s.pos++
	return true
}

// Args returns the underlying word list.
func (s *DefaultState) Args() []string {
	return s.words
}
