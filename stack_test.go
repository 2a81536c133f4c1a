package toolbox

import (
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestStack(t *testing.T) {
	s := NewStack(1)
	check.True(t, s.IsEmpty())

	s.Push(2)
	s.Push(5)
	s.Push(7)
	check.Equal(t, s.Len(), 3)
	check.True(t, s.Cap() >= 3)

	v, err := s.Peek()
	assert.NotError(t, err)
	check.Equal(t, v, 7)

	for _, want := range []int{7, 5, 2} {
		v, err := s.Pop()
		assert.NotError(t, err)
		check.Equal(t, v, want)
	}

	_, err = s.Pop()
	check.ErrorIs(t, err, ErrEmptyStack)
	_, err = s.Peek()
	check.ErrorIs(t, err, ErrEmptyStack)
}

func TestStackZeroValue(t *testing.T) {
	var s Stack
	s.Push(4)
	v, err := s.Pop()
	assert.NotError(t, err)
	check.Equal(t, v, 4)
}
