package deque

// Builder is a mutable ring buffer for assembling a Deque incrementally.
// All four push/pop operations run in O(1) amortized time. A Builder is
// not safe for concurrent use; call [Builder.Deque] to seal the result.
type Builder[T any] struct {
	buf  []T
	head int
	size int
}

// NewBuilder creates a Builder with room for at least capacity elements.
func NewBuilder[T any](capacity int) *Builder[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Builder[T]{buf: make([]T, capacity)}
}

func (b *Builder[T]) index(i int) int { return (b.head + i) % len(b.buf) }

// grow doubles the buffer and repacks the elements at the front.
func (b *Builder[T]) grow() {
	next := make([]T, 2*len(b.buf))
	for i := 0; i < b.size; i++ {
		next[i] = b.buf[b.index(i)]
	}
	b.buf = next
	b.head = 0
}

// Len returns the number of elements.
func (b *Builder[T]) Len() int { return b.size }

// PushFront prepends x.
func (b *Builder[T]) PushFront(x T) {
	if b.size == len(b.buf) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.head] = x
	b.size++
}

// PushBack appends x.
func (b *Builder[T]) PushBack(x T) {
	if b.size == len(b.buf) {
		b.grow()
	}
	b.buf[b.index(b.size)] = x
	b.size++
}

// PopFront removes and returns the first element.
// ok is false when the builder is empty.
func (b *Builder[T]) PopFront() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	var zero T
	item := b.buf[b.head]
	b.buf[b.head] = zero
	b.head = b.index(1)
	b.size--
	return item, true
}

// PopBack removes and returns the last element.
// ok is false when the builder is empty.
func (b *Builder[T]) PopBack() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	var zero T
	i := b.index(b.size - 1)
	item := b.buf[i]
	b.buf[i] = zero
	b.size--
	return item, true
}

// Deque seals the builder's contents into an immutable Deque. The builder
// remains usable; the deque gets its own buffer.
func (b *Builder[T]) Deque() *Deque[T] {
	out := make([]T, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.buf[b.index(i)]
	}
	return wrap(out)
}
