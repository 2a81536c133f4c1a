package toolbox

import "fmt"

// DoubleNode is one link of a doubly linked list. Next is the forward link that
// keeps the rest of the list reachable; Prev is only used to walk back.
type DoubleNode struct {
	Data int
	Next *DoubleNode
	Prev *DoubleNode
}

// DoubleFromSlice links values into a new list and returns its head, or nil for no values.
func DoubleFromSlice(values []int) *DoubleNode {
	var head, tail *DoubleNode
	for _, v := range values {
		node := &DoubleNode{Data: v, Prev: tail}
		if tail == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node
	}
	return head
}

// Values reads forward from n.
func (n *DoubleNode) Values() []int {
	var out []int
	for current := n; current != nil; current = current.Next {
		out = append(out, current.Data)
	}
	return out
}

func FindHead(tail *DoubleNode) (*DoubleNode, error) {
	if tail == nil {
		return nil, fmt.Errorf("%w: tail cannot be nil", ErrInvalidArgument)
	}

	current := tail
	for current.Prev != nil {
		current = current.Prev
	}
	return current, nil
}

func FindDoubleTail(node *DoubleNode) (*DoubleNode, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: node cannot be nil", ErrInvalidArgument)
	}

	current := node
	for current.Next != nil {
		current = current.Next
	}
	return current, nil
}

// RemoveNode unlinks node from whatever list it belongs to and clears its own
// links. It does not report the new head or tail; when an endpoint is removed
// the caller finds it again from a surviving node.
func RemoveNode(node *DoubleNode) error {
	if node == nil {
		return fmt.Errorf("%w: node cannot be nil", ErrInvalidArgument)
	}

	if node.Prev != nil {
		node.Prev.Next = node.Next
	}
	if node.Next != nil {
		node.Next.Prev = node.Prev
	}

	node.Next = nil
	node.Prev = nil
	return nil
}
