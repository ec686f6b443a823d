package Queues

// Queue is a FIFO container. Push appends at the back, Pop removes from the
// front, Peek reads the front without removing it.
type Queue[T any] interface {
	Push(item T)
	//Pop the front element. Returns EmptyQueueError if the queue is empty.
	Pop() (T, error)
	//Peek at the front element. The zero value of T is returned on an empty queue.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
