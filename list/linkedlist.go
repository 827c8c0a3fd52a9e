// Package list implements a doubly linked list whose nodes live in an arena
// owned by the list. Callers address nodes through Handles, never pointers.
package list

import (
	"fmt"
	"iter"
	"strings"

	"linearx/errs"
)

// 链表中的元素结构
type node[T any] struct {
	data T
	prev ref
	next ref
	gen  uint32 // bumped on every release, invalidates old handles
	live bool
}

// LinkedList is a doubly linked list. The zero value is an empty list ready to
// use. It is not safe for concurrent use.
type LinkedList[T comparable] struct {
	id    uint64
	size  int // 链表大小
	first ref // 链表中第一个元素
	last  ref // 链表中最后一个元素
	nodes []node[T]
	free  []ref
	mods  uint64 // structural modification count, checked by iterators
}

// New returns an empty list.
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) node(r ref) *node[T] {
	return &l.nodes[r-1]
}

func (l *LinkedList[T]) alloc(v T) ref {
	if l.id == 0 {
		l.id = nextListID()
	}
	var r ref
	if n := len(l.free); n > 0 {
		r = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.nodes = append(l.nodes, node[T]{})
		r = ref(len(l.nodes))
	}
	n := l.node(r)
	n.data = v
	n.live = true
	return r
}

// release clears the node's value and links and returns its slot to the free
// list. The returned value is the one the node held.
func (l *LinkedList[T]) release(r ref) T {
	var zero T
	n := l.node(r)
	dat := n.data
	n.data = zero
	n.prev = 0
	n.next = 0
	n.live = false
	n.gen++
	l.free = append(l.free, r)
	return dat
}

func (l *LinkedList[T]) handle(r ref) Handle {
	return Handle{list: l.id, slot: r, gen: l.node(r).gen}
}

func (l *LinkedList[T]) resolve(op string, h Handle) (ref, error) {
	if h.list == 0 || h.list != l.id || h.slot < 1 || int(h.slot) > len(l.nodes) {
		return 0, errs.InvalidNode(op, "handle does not belong to this list")
	}
	if n := l.node(h.slot); !n.live || n.gen != h.gen {
		return 0, errs.InvalidNode(op, "node already removed")
	}
	return h.slot, nil
}

// Size returns the number of elements.
func (l *LinkedList[T]) Size() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Add appends v, same as AddLast.
func (l *LinkedList[T]) Add(v T) Handle {
	return l.AddLast(v)
}

// AddLast appends v at the tail in O(1).
func (l *LinkedList[T]) AddLast(v T) Handle {
	r := l.alloc(v)
	n := l.node(r)
	n.prev = l.last
	if l.last == 0 {
		l.first = r
	} else {
		l.node(l.last).next = r
	}
	l.last = r
	l.size++
	l.mods++
	return l.handle(r)
}

// AddFirst inserts v at the head in O(1).
func (l *LinkedList[T]) AddFirst(v T) Handle {
	r := l.alloc(v)
	n := l.node(r)
	n.next = l.first
	if l.first == 0 {
		l.last = r
	} else {
		l.node(l.first).prev = r
	}
	l.first = r
	l.size++
	l.mods++
	return l.handle(r)
}

// AddAt inserts v so that it ends up at position index. Valid indexes are
// [0, Size()].
func (l *LinkedList[T]) AddAt(index int, v T) (Handle, error) {
	if index < 0 || index > l.size {
		return Handle{}, errs.Index("list.AddAt", index, l.size)
	}
	if index == 0 {
		return l.AddFirst(v), nil
	}
	if index == l.size {
		return l.AddLast(v), nil
	}
	prev := l.walk(index - 1)
	r := l.alloc(v)
	p := l.node(prev)
	next := p.next
	n := l.node(r)
	n.prev = prev
	n.next = next
	p.next = r
	l.node(next).prev = r
	l.size++
	l.mods++
	return l.handle(r), nil
}

func (l *LinkedList[T]) PeekFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errs.Empty("list.PeekFirst")
	}
	return l.node(l.first).data, nil
}

func (l *LinkedList[T]) PeekLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errs.Empty("list.PeekLast")
	}
	return l.node(l.last).data, nil
}

// RemoveFirst removes and returns the head value.
func (l *LinkedList[T]) RemoveFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errs.Empty("list.RemoveFirst")
	}
	return l.unlink(l.first), nil
}

// RemoveLast removes and returns the tail value.
func (l *LinkedList[T]) RemoveLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errs.Empty("list.RemoveLast")
	}
	return l.unlink(l.last), nil
}

// RemoveNode removes the node h refers to in O(1) and returns its value.
func (l *LinkedList[T]) RemoveNode(h Handle) (T, error) {
	r, err := l.resolve("list.RemoveNode", h)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(r), nil
}

// RemoveAt removes the element at index, walking from whichever end is closer.
func (l *LinkedList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, errs.Index("list.RemoveAt", index, l.size)
	}
	return l.unlink(l.walk(index)), nil
}

// Remove deletes the first element equal to v and reports whether one was found.
func (l *LinkedList[T]) Remove(v T) bool {
	return l.RemoveFunc(func(e T) bool { return e == v })
}

// RemoveFunc deletes the first element for which match returns true.
func (l *LinkedList[T]) RemoveFunc(match func(T) bool) bool {
	for r := l.first; r != 0; r = l.node(r).next {
		if match(l.node(r).data) {
			l.unlink(r)
			return true
		}
	}
	return false
}

// IndexOf returns the position of the first element equal to v, or -1.
func (l *LinkedList[T]) IndexOf(v T) int {
	return l.IndexFunc(func(e T) bool { return e == v })
}

func (l *LinkedList[T]) IndexFunc(match func(T) bool) int {
	index := 0
	for r := l.first; r != 0; r = l.node(r).next {
		if match(l.node(r).data) {
			return index
		}
		index++
	}
	return -1
}

func (l *LinkedList[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

// Get returns the value at index.
func (l *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, errs.Index("list.Get", index, l.size)
	}
	return l.node(l.walk(index)).data, nil
}

// HandleAt returns the handle of the node at index.
func (l *LinkedList[T]) HandleAt(index int) (Handle, error) {
	if index < 0 || index >= l.size {
		return Handle{}, errs.Index("list.HandleAt", index, l.size)
	}
	return l.handle(l.walk(index)), nil
}

// Value returns the value held by the node h refers to.
func (l *LinkedList[T]) Value(h Handle) (T, error) {
	r, err := l.resolve("list.Value", h)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.node(r).data, nil
}

// SetValue replaces the value held by the node h refers to. Links are not
// touched, so live iterators stay valid.
func (l *LinkedList[T]) SetValue(h Handle, v T) error {
	r, err := l.resolve("list.SetValue", h)
	if err != nil {
		return err
	}
	l.node(r).data = v
	return nil
}

// Clear removes every element. Handles issued before Clear become invalid.
func (l *LinkedList[T]) Clear() {
	var zero T
	for r := l.first; r != 0; {
		n := l.node(r)
		next := n.next
		n.data = zero
		n.prev = 0
		n.next = 0
		n.live = false
		r = next
	}
	l.nodes = nil
	l.free = nil
	l.id = 0
	l.first = 0
	l.last = 0
	l.size = 0
	l.mods++
}

// All yields the values from head to tail. It panics with
// errs.ErrStaleIterator if the list is structurally modified during the range.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		mods := l.mods
		for r := l.first; r != 0; {
			n := l.node(r)
			next := n.next
			if !yield(n.data) {
				return
			}
			if l.mods != mods {
				panic(errs.StaleIterator("list.All"))
			}
			r = next
		}
	}
}

// Backward yields the values from tail to head, with the same rules as All.
func (l *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		mods := l.mods
		for r := l.last; r != 0; {
			n := l.node(r)
			prev := n.prev
			if !yield(n.data) {
				return
			}
			if l.mods != mods {
				panic(errs.StaleIterator("list.Backward"))
			}
			r = prev
		}
	}
}

// ToSlice copies the values into a new slice, head first.
func (l *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for r := l.first; r != 0; r = l.node(r).next {
		out = append(out, l.node(r).data)
	}
	return out
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := l.first; r != 0; r = l.node(r).next {
		if r != l.first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.node(r).data)
	}
	sb.WriteByte(']')
	return sb.String()
}

// 查找指定位置的元素，从离得近的一端开始
func (l *LinkedList[T]) walk(index int) ref {
	var r ref
	if index < l.size/2 {
		r = l.first
		for i := 0; i < index; i++ {
			r = l.node(r).next
		}
	} else {
		r = l.last
		for i := l.size - 1; i > index; i-- {
			r = l.node(r).prev
		}
	}
	return r
}

// 删除指定元素
func (l *LinkedList[T]) unlink(r ref) T {
	n := l.node(r)
	prev, next := n.prev, n.next

	if prev == 0 {
		l.first = next
	} else {
		l.node(prev).next = next
	}

	if next == 0 {
		l.last = prev
	} else {
		l.node(next).prev = prev
	}

	l.size--
	l.mods++
	return l.release(r)
}
