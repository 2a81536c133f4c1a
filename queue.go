package toolbox

import "fmt"

// FIFO queue

const defaultQueueCap = 8

type Queue struct {
	data  []int
	front int
	rear  int
	size  int
}

func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = defaultQueueCap
	}
	return &Queue{
		data: make([]int, capacity),
	}
}

func QueueOf(values ...int) *Queue {
	q := NewQueue(len(values))
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

func (q *Queue) Len() int {
	return q.size
}

func (q *Queue) Cap() int {
	return len(q.data)
}

func (q *Queue) IsEmpty() bool {
	return q.size == 0
}

func (q *Queue) Enqueue(num int) {
	if q.size == len(q.data) {
		q.grow()
	}
	q.data[q.rear] = num
	q.rear = (q.rear + 1) % len(q.data)
	q.size += 1
}

func (q *Queue) Dequeue() (int, error) {
	if q.size == 0 {
		return 0, ErrEmptyQueue
	}
	deleted := q.data[q.front]
	q.data[q.front] = 0
	q.front = (q.front + 1) % len(q.data)
	q.size -= 1
	return deleted, nil
}

func (q *Queue) Peek() (int, error) {
	if q.size == 0 {
		return 0, ErrEmptyQueue
	}
	return q.data[q.front], nil
}

// Values copies the queue contents from front to back without consuming them.
func (q *Queue) Values() []int {
	out := make([]int, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.data[(q.front+i)%len(q.data)]
	}
	return out
}

// grow doubles the backing array and unwraps the ring so front is at index 0.
func (q *Queue) grow() {
	data := make([]int, max(len(q.data)*2, defaultQueueCap))
	copy(data, q.Values())
	q.data = data
	q.front = 0
	q.rear = q.size
}

// TripleValues multiplies every element by 3 in place, cycling each one through
// the back of the queue exactly once.
func TripleValues(q *Queue) error {
	if q == nil {
		return fmt.Errorf("%w: queue cannot be nil", ErrInvalidArgument)
	}

	size := q.Len()
	for i := 0; i < size; i++ {
		v, err := q.Dequeue()
		if err != nil {
			return err
		}
		q.Enqueue(v * 3)
	}
	return nil
}

// RotateQueueLeft moves the first k elements, in order, to the back of the queue.
func RotateQueueLeft(q *Queue, k int) error {
	if q == nil {
		return fmt.Errorf("%w: queue cannot be nil", ErrInvalidArgument)
	}
	if k < 0 {
		return fmt.Errorf("%w: rotation %d is negative", ErrInvalidArgument, k)
	}

	size := q.Len()
	if size == 0 {
		return nil
	}

	k = k % size
	for i := 0; i < k; i++ {
		v, err := q.Dequeue()
		if err != nil {
			return err
		}
		q.Enqueue(v)
	}
	return nil
}
