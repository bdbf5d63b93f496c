package utils

// FIFO is a fixed capacity ring buffer. It never allocates after
// construction.
type FIFO[T any] struct {
	data []T
	head int // index of the oldest element
	Size int // number of queued elements
}

// NewFIFO returns an empty FIFO able to hold capacity elements.
func NewFIFO[T any](capacity int) *FIFO[T] {
	return &FIFO[T]{data: make([]T, capacity)}
}

// Full reports whether another Push would fail.
func (f *FIFO[T]) Full() bool {
	return f.Size == len(f.data)
}

// Push appends v to the back of the FIFO, returning false if
// the FIFO is already full.
func (f *FIFO[T]) Push(v T) bool {
	if f.Full() {
		return false
	}
	f.data[(f.head+f.Size)%len(f.data)] = v
	f.Size++
	return true
}

// Pop removes and returns the element at the front of the FIFO.
// Popping an empty FIFO returns the zero value and false.
func (f *FIFO[T]) Pop() (T, bool) {
	var v T
	if f.Size == 0 {
		return v, false
	}
	v = f.data[f.head]
	f.head = (f.head + 1) % len(f.data)
	f.Size--
	return v, true
}

// GetIndex returns the i'th queued element, counted from the front.
func (f *FIFO[T]) GetIndex(i int) T {
	return f.data[(f.head+i)%len(f.data)]
}

// ReplaceIndex overwrites the i'th queued element, counted from
// the front.
func (f *FIFO[T]) ReplaceIndex(i int, v T) {
	f.data[(f.head+i)%len(f.data)] = v
}

// Reset empties the FIFO.
func (f *FIFO[T]) Reset() {
	f.head, f.Size = 0, 0
}
