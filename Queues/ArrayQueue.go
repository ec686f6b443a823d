package Queues

// circArrQ is a ring buffer; head is the index of the front element and
// tail is the index the next Push writes to.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap elements before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (q *circArrQ[T]) Empty() bool {
	return q.sz == 0
}

// resize moves the content to a new slice of newLen, front element first.
// newLen must be at least q.sz.
func (q *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if q.sz > 0 {
		if q.head < q.tail {
			copy(nc, q.content[q.head:q.tail])
		} else {
			n := copy(nc, q.content[q.head:])
			copy(nc[n:], q.content[:q.tail])
		}
	}
	q.content = nc
	q.head = 0
	if newLen == 0 {
		q.tail = 0
	} else {
		q.tail = q.sz % newLen
	}
}

// Shrink the backing slice to the current size, keeping at least one slot.
func (q *circArrQ[T]) Shrink() {
	q.resize(q.sz | 1)
}

func (q *circArrQ[T]) Clear() {
	clear(q.content)
	q.tail, q.head, q.sz = 0, 0, 0
}

func (q *circArrQ[T]) Size() uint {
	return q.sz
}

func (q *circArrQ[T]) Push(item T) {
	if q.sz == uint(len(q.content)) {
		q.resize(q.sz*3/2 + 1)
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *circArrQ[T]) Pop() (item T, e error) {
	if q.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := q.content[q.head]
	q.content[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return t, nil
}

func (q *circArrQ[T]) Peek() (item T) {
	if q.Empty() {
		return *new(T)
	}
	return q.content[q.head]
}
