package queue

import "linearx/errs"

// Iterator walks a queue from head to tail without consuming it. Any Append
// or Poll after the iterator was created ends it with errs.ErrStaleIterator.
type Iterator[T any] struct {
	q     *Queue[T]
	next  *element[T]
	mods  uint64
	value T
	err   error
	done  bool
}

func (q *Queue[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{q: q, next: q.head, mods: q.mods}
}

func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	if it.q.mods != it.mods {
		it.finish(errs.StaleIterator("queue.Iterator"))
		return false
	}
	if it.next == nil {
		it.finish(nil)
		return false
	}
	it.value = it.next.data
	it.next = it.next.next
	return true
}

func (it *Iterator[T]) Value() T {
	return it.value
}

func (it *Iterator[T]) Err() error {
	return it.err
}

func (it *Iterator[T]) finish(err error) {
	var zero T
	it.value = zero
	it.next = nil
	it.err = err
	it.done = true
}
