package deque_test

import (
	"fmt"

	"github.com/hasbyte1/go-container-utils/deque"
)

func ExampleNew() {
	d := deque.New(2, 3).PushFront(1).PushBack(4)
	fmt.Println(d)
	// Output: [1 2 3 4]
}

func ExampleDeque_PopFront() {
	front, rest, _ := deque.New(1, 2, 3).PopFront()
	fmt.Println(front, rest)
	// Output: 1 [2 3]
}

func ExampleBuilder() {
	b := deque.NewBuilder[int](4)
	b.PushBack(2)
	b.PushFront(1)
	b.PushBack(3)
	fmt.Println(b.Deque())
	// Output: [1 2 3]
}
