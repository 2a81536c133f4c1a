package toolbox

// FILO stack

const defaultStackCap = 8

type Stack struct {
	data []int
	top  int
}

func NewStack(capacity int) *Stack {
	if capacity < 1 {
		capacity = defaultStackCap
	}
	return &Stack{
		data: make([]int, capacity),
	}
}

func (s *Stack) Len() int {
	return s.top
}

func (s *Stack) Cap() int {
	return len(s.data)
}

func (s *Stack) IsEmpty() bool {
	return s.top == 0
}

func (s *Stack) Push(num int) {
	if s.top == len(s.data) {
		data := make([]int, max(len(s.data)*2, defaultStackCap))
		copy(data, s.data)
		s.data = data
	}
	s.data[s.top] = num
	s.top += 1
}

func (s *Stack) Pop() (int, error) {
	if s.top == 0 {
		return 0, ErrEmptyStack
	}
	s.top -= 1
	deleted := s.data[s.top]
	s.data[s.top] = 0
	return deleted, nil
}

func (s *Stack) Peek() (int, error) {
	if s.top == 0 {
		return 0, ErrEmptyStack
	}
	return s.data[s.top-1], nil
}
