// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package seq

// Deque is a ring buffer of node handles with push at both ends.
// The zero value is an empty deque.
type Deque struct {
	buf  []int
	head int
	n    int
}

// NewDeque returns an empty deque with room for size handles.
func NewDeque(size int) *Deque {
	return &Deque{buf: make([]int, max(size, 1))}
}

// Len returns the number of queued handles.
func (q *Deque) Len() int { return q.n }

// PushBack appends h.
func (q *Deque) PushBack(h int) {
	q.grow()
	q.buf[(q.head+q.n)%len(q.buf)] = h
	q.n++
}

// PushFront prepends h.
func (q *Deque) PushFront(h int) {
	q.grow()
	q.head = (q.head - 1 + len(q.buf)) % len(q.buf)
	q.buf[q.head] = h
	q.n++
}

// PopFront removes and returns the first handle, ok is false if the deque is empty.
func (q *Deque) PopFront() (h int, ok bool) {
	if q.n == 0 {
		return Nil, false
	}
	h = q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return h, true
}

func (q *Deque) grow() {
	if q.n < len(q.buf) {
		return
	}

	buf := make([]int, max(2*len(q.buf), 8))
	for i := range q.n {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
