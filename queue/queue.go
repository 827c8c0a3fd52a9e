// Package queue implements a FIFO queue on a singly linked chain.
package queue

import (
	"fmt"
	"iter"
	"strings"

	"linearx/errs"
)

type element[T any] struct {
	data T
	next *element[T]
}

func (e *element[T]) zero() {
	var zero T
	e.data = zero
	e.next = nil
}

// Queue is a FIFO queue. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head *element[T]
	tail *element[T]
	size int
	mods uint64
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Of returns a queue holding v.
func Of[T any](v T) *Queue[T] {
	q := New[T]()
	q.Append(v)
	return q
}

func (q *Queue[T]) Size() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Append enqueues v at the tail.
func (q *Queue[T]) Append(v T) {
	e := &element[T]{data: v}
	if q.head == nil {
		q.head = e
		q.tail = e
	} else {
		q.tail.next = e
		q.tail = e
	}
	q.size++
	q.mods++
}

// Peek returns the head value without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, errs.Empty("queue.Peek")
	}
	return q.head.data, nil
}

// Poll removes and returns the head value.
func (q *Queue[T]) Poll() (T, error) {
	if q.head == nil {
		var zero T
		return zero, errs.Empty("queue.Poll")
	}
	e := q.head
	dat := e.data
	q.head = e.next
	if q.head == nil {
		q.tail = nil
	}
	e.zero()
	q.size--
	q.mods++
	return dat, nil
}

// All yields the values from head to tail without consuming them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		mods := q.mods
		for e := q.head; e != nil; e = e.next {
			if !yield(e.data) {
				return
			}
			if q.mods != mods {
				panic(errs.StaleIterator("queue.All"))
			}
		}
	}
}

func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.size)
	for e := q.head; e != nil; e = e.next {
		out = append(out, e.data)
	}
	return out
}

func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := q.head; e != nil; e = e.next {
		if e != q.head {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, e.data)
	}
	sb.WriteByte(']')
	return sb.String()
}
