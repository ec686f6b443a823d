package Trees

import "fmt"

// InvalidSliceError is the panic value of FromSorted when safe is set and
// the slice is not strictly ascending. Prev and Next are the first adjacent
// pair found out of order.
type InvalidSliceError[T any] struct {
	Index      int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice is not strictly ascending at index %d: %v then %v", e.Index, e.Prev, e.Next)
}
