package token

import "strings"

// Stack is a LIFO sequence of tokens. The zero value is an empty stack.
type Stack struct {
	items []Token
}

// NewStack returns a stack holding tokens, the last one on top.
func NewStack(tokens ...Token) *Stack {
	items := make([]Token, len(tokens))
	copy(items, tokens)
	return &Stack{items: items}
}

func (s *Stack) Push(t Token) {
	s.items = append(s.items, t)
}

func (s *Stack) Pop() (Token, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	last := len(s.items) - 1
	t := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return t, true
}

func (s *Stack) Peek() (Token, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack) Len() int {
	return len(s.items)
}

func (s *Stack) Empty() bool {
	return len(s.items) == 0
}

// Slice returns a copy of the stack contents, bottom first.
func (s *Stack) Slice() []Token {
	out := make([]Token, len(s.items))
	copy(out, s.items)
	return out
}

// Clone returns an independent copy of the stack.
func (s *Stack) Clone() *Stack {
	return NewStack(s.items...)
}

// String renders the stack bottom to top, space separated.
func (s *Stack) String() string {
	parts := make([]string, len(s.items))
	for i, t := range s.items {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
