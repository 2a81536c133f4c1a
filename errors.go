package toolbox

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyQueue      = errors.New("queue is empty")
	ErrEmptyStack      = errors.New("stack is empty")
)
