package list

import "linearx/errs"

// Iterator is a forward cursor over a LinkedList. It is single use: Next
// returns false once the tail has been passed or the list was structurally
// modified after the cursor was created, and Err tells the two apart.
//
//	it := l.Iterator()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T comparable] struct {
	l     *LinkedList[T]
	next  ref
	mods  uint64
	value T
	err   error
	done  bool
}

// Iterator returns a fresh cursor positioned before the head.
func (l *LinkedList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l: l, next: l.first, mods: l.mods}
}

// Next advances to the next value.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	if it.l.mods != it.mods {
		it.finish(errs.StaleIterator("list.Iterator"))
		return false
	}
	if it.next == 0 {
		it.finish(nil)
		return false
	}
	n := it.l.node(it.next)
	it.value = n.data
	it.next = n.next
	return true
}

// Value returns the value produced by the last successful Next.
func (it *Iterator[T]) Value() T {
	return it.value
}

func (it *Iterator[T]) Err() error {
	return it.err
}

func (it *Iterator[T]) finish(err error) {
	var zero T
	it.value = zero
	it.err = err
	it.done = true
}
