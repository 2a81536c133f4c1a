package toolbox

import "fmt"

// SingleNode is one link of a singly linked list. A list is referenced by its head.
type SingleNode struct {
	Data int
	Next *SingleNode
}

// FromSlice chains values into a new list and returns its head, or nil for no values.
func FromSlice(values []int) *SingleNode {
	var head *SingleNode
	for i := len(values) - 1; i >= 0; i-- {
		head = &SingleNode{Data: values[i], Next: head}
	}
	return head
}

// Values reads the list starting at n back into a slice.
func (n *SingleNode) Values() []int {
	var out []int
	for current := n; current != nil; current = current.Next {
		out = append(out, current.Data)
	}
	return out
}

func Length(head *SingleNode) (int, error) {
	if head == nil {
		return 0, fmt.Errorf("%w: head cannot be nil", ErrInvalidArgument)
	}

	count := 0
	for current := head; current != nil; current = current.Next {
		count++
	}
	return count, nil
}

func FindTail(head *SingleNode) (*SingleNode, error) {
	if head == nil {
		return nil, fmt.Errorf("%w: head cannot be nil", ErrInvalidArgument)
	}

	current := head
	for current.Next != nil {
		current = current.Next
	}
	return current, nil
}

func CountOccurrences(head *SingleNode) (map[int]int, error) {
	if head == nil {
		return nil, fmt.Errorf("%w: head cannot be nil", ErrInvalidArgument)
	}

	counts := make(map[int]int)
	for current := head; current != nil; current = current.Next {
		counts[current.Data]++
	}
	return counts, nil
}

// FindNthElement returns the 0-indexed n-th node, or nil when the list is shorter than n+1.
func FindNthElement(head *SingleNode, n int) (*SingleNode, error) {
	if head == nil {
		return nil, fmt.Errorf("%w: head cannot be nil", ErrInvalidArgument)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: index %d is negative", ErrInvalidArgument, n)
	}

	current := head
	for i := 0; current != nil && i < n; i++ {
		current = current.Next
	}
	return current, nil
}

// InsertNode splices newNode in directly after node.
func InsertNode(node, newNode *SingleNode) error {
	if node == nil || newNode == nil {
		return fmt.Errorf("%w: node and newNode cannot be nil", ErrInvalidArgument)
	}

	newNode.Next = node.Next
	node.Next = newNode
	return nil
}

// RemoveGiants unlinks every node after the head whose value is strictly greater
// than its current successor. The cursor does not advance after a removal, so a
// node exposed by the unlink is compared against its new neighbour straight away.
func RemoveGiants(head *SingleNode) error {
	if head == nil {
		return fmt.Errorf("%w: head cannot be nil", ErrInvalidArgument)
	}

	current := head
	for current.Next != nil && current.Next.Next != nil {
		if current.Next.Data > current.Next.Next.Data {
			giant := current.Next
			current.Next = giant.Next
			giant.Next = nil
		} else {
			current = current.Next
		}
	}
	return nil
}
