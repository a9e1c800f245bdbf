// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package seq provides the mutable sequence the collapser works on:
// a doubly linked list living in a single slice and a worklist of
// node handles.
package seq

// Nil is the handle of no node.
const Nil = -1

type node[T any] struct {
	val  T
	prev int
	next int
}

// List is a doubly linked list, the nodes are stored in one slice and
// addressed by their index. Handles stay valid for the lifetime of the
// list, unlinked nodes are never reused.
//
// The head is always handle 0, only successors are ever removed.
type List[T any] struct {
	nodes []node[T]
}

// New returns a list with a copy of vals, linked in order.
// The handle of vals[i] is i.
func New[T any](vals []T) *List[T] {
	l := &List[T]{nodes: make([]node[T], len(vals))}
	for i, v := range vals {
		l.nodes[i] = node[T]{val: v, prev: i - 1, next: i + 1}
	}
	if n := len(l.nodes); n > 0 {
		l.nodes[n-1].next = Nil
	}
	return l
}

// Next returns the handle of the successor of h, or Nil.
// An unlinked node has no successor.
func (l *List[T]) Next(h int) int { return l.nodes[h].next }

// Prev returns the handle of the predecessor of h, or Nil.
func (l *List[T]) Prev(h int) int { return l.nodes[h].prev }

// At returns a pointer to the value of h, valid until the list is dropped.
func (l *List[T]) At(h int) *T { return &l.nodes[h].val }

// RemoveNext unlinks the successor of h, if any.
func (l *List[T]) RemoveNext(h int) {
	victim := l.nodes[h].next
	if victim == Nil {
		return
	}

	next := l.nodes[victim].next
	l.nodes[h].next = next
	if next != Nil {
		l.nodes[next].prev = h
	}

	l.nodes[victim].prev = Nil
	l.nodes[victim].next = Nil
}

// Values returns the linked values from head to tail.
func (l *List[T]) Values() []T {
	if len(l.nodes) == 0 {
		return nil
	}

	var out []T
	for h := 0; h != Nil; h = l.nodes[h].next {
		out = append(out, l.nodes[h].val)
	}
	return out
}
