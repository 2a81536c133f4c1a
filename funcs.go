package toolbox

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// parenMatcher keeps the byte offset of every '(' still waiting for its ')'.
type parenMatcher struct {
	open *Stack
}

func newParenMatcher() *parenMatcher {
	return &parenMatcher{open: NewStack(0)}
}

// feed consumes the rune at offset and reports false as soon as a ')' has nothing to close.
func (m *parenMatcher) feed(c rune, offset int) bool {
	switch c {
	case '(':
		m.open.Push(offset)
	case ')':
		if _, err := m.open.Pop(); err != nil {
			return false
		}
	}
	return true
}

func (m *parenMatcher) balanced() bool {
	return m.open.IsEmpty()
}

// HasBalancedParentheses reports whether every '(' in input is closed by a later
// ')' with correct nesting. Everything other than the two parentheses is ignored.
func HasBalancedParentheses(input string) bool {
	m := newParenMatcher()
	for i, c := range input {
		if !m.feed(c, i) {
			return false
		}
	}
	return m.balanced()
}

// HasBalancedParenthesesReader applies HasBalancedParentheses to everything r yields.
func HasBalancedParenthesesReader(r io.Reader) (bool, error) {
	if r == nil {
		return false, fmt.Errorf("%w: reader cannot be nil", ErrInvalidArgument)
	}

	m := newParenMatcher()
	br := bufio.NewReader(r)
	offset := 0
	for {
		c, width, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return m.balanced(), nil
		}
		if err != nil {
			return false, fmt.Errorf("reading input failed '%w'", err)
		}
		if !m.feed(c, offset) {
			return false, nil
		}
		offset += width
	}
}

// UnmatchedParenthesis returns the byte offset of the first ')' that closes
// nothing, or failing that the offset of the last '(' left open. It returns -1
// when input is balanced.
func UnmatchedParenthesis(input string) int {
	m := newParenMatcher()
	for i, c := range input {
		if !m.feed(c, i) {
			return i
		}
	}
	if offset, err := m.open.Peek(); err == nil {
		return offset
	}
	return -1
}

// TopScorer returns the name with the highest score. Equal scores go to the name
// that sorts first, so the answer never depends on map iteration order.
func TopScorer(scores map[string]int) (string, error) {
	if len(scores) == 0 {
		return "", fmt.Errorf("%w: scores cannot be nil or empty", ErrInvalidArgument)
	}

	var topName string
	var topScore int
	first := true
	for name, score := range scores {
		if first || score > topScore || (score == topScore && name < topName) {
			topName = name
			topScore = score
			first = false
		}
	}
	return topName, nil
}
