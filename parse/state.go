package parse

// State is a cursor over an argument list. It starts positioned before the
// first token; Advance moves to the next token and reports whether one
// exists.
type State struct {
	pos  int
	args []string
}

// NewState creates a cursor over args positioned before the first token.
func NewState(args []string) *State {
	return &State{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position, -1 before the first Advance.
func (s *State) Pos() int {
	return s.pos
}

// Len returns the length of the argument list.
func (s *State) Len() int {
	return len(s.args)
}

// Args returns the entire argument list.
func (s *State) Args() []string {
	return s.args
}

// Advance moves to the next token, returning false when exhausted.
func (s *State) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Current returns the token at the current position, or "" when the cursor
// is out of range.
func (s *State) Current() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Peek returns the next token without advancing, or "" when exhausted.
func (s *State) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// Remaining returns the tokens after the current position.
func (s *State) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}
	return s.args[s.pos+1:]
}
