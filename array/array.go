// Package array implements a dynamic array with explicit capacity management.
//
// Capacity doubles (or becomes 1 from 0) whenever an append finds
// length+1 >= capacity, and it never shrinks on removal.
package array

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"linearx/errs"
	"linearx/log"
)

// NotFound is returned by BinarySearch when the key is absent.
const NotFound = -1

type Array[T any] struct {
	storage []T // len(storage) is the capacity
	length  int
	compare func(a, b T) int
	logger  log.Logger
}

// New returns an empty array ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option) (*Array[T], error) {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc returns an empty array ordered by compare, which also decides
// equality for Remove, IndexOf and Contains.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) (*Array[T], error) {
	if compare == nil {
		return nil, errs.InvalidArgument("array.New", "nil compare func")
	}
	o := buildOptions(opts)
	if o.capacity < 0 {
		return nil, errs.InvalidArgument("array.New", "illegal capacity %d", o.capacity)
	}
	return &Array[T]{
		storage: make([]T, o.capacity),
		compare: compare,
		logger:  o.logger,
	}, nil
}

// From copies values into a new array whose capacity equals len(values),
// or the WithCapacity value when that is larger. A nil slice is rejected.
func From[T cmp.Ordered](values []T, opts ...Option) (*Array[T], error) {
	return FromFunc(values, cmp.Compare[T], opts...)
}

func FromFunc[T any](values []T, compare func(a, b T) int, opts ...Option) (*Array[T], error) {
	if values == nil {
		return nil, errs.InvalidArgument("array.From", "nil slice")
	}
	if compare == nil {
		return nil, errs.InvalidArgument("array.From", "nil compare func")
	}
	o := buildOptions(opts)
	if o.capacity < 0 {
		return nil, errs.InvalidArgument("array.From", "illegal capacity %d", o.capacity)
	}
	capacity := len(values)
	if o.hasCapacity && o.capacity > capacity {
		capacity = o.capacity
	}
	storage := make([]T, capacity)
	copy(storage, values)
	return &Array[T]{
		storage: storage,
		length:  len(values),
		compare: compare,
		logger:  o.logger,
	}, nil
}

// FromSeq drains a finite sequence into a new array.
func FromSeq[T cmp.Ordered](seq iter.Seq[T], opts ...Option) (*Array[T], error) {
	if seq == nil {
		return nil, errs.InvalidArgument("array.From", "nil sequence")
	}
	values := slices.Collect(seq)
	if values == nil {
		values = []T{}
	}
	return From(values, opts...)
}

func (a *Array[T]) Size() int {
	return a.length
}

func (a *Array[T]) IsEmpty() bool {
	return a.length == 0
}

// Capacity returns the size of the backing storage.
func (a *Array[T]) Capacity() int {
	return len(a.storage)
}

func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.length {
		var zero T
		return zero, errs.Index("array.Get", index, a.length)
	}
	return a.storage[index], nil
}

func (a *Array[T]) Set(index int, v T) error {
	if index < 0 || index >= a.length {
		return errs.Index("array.Set", index, a.length)
	}
	a.storage[index] = v
	return nil
}

// Add appends v, growing the storage first if needed.
func (a *Array[T]) Add(v T) {
	if a.length+1 >= len(a.storage) {
		a.grow()
	}
	a.storage[a.length] = v
	a.length++
}

func (a *Array[T]) grow() {
	old := len(a.storage)
	capacity := old * 2
	if old == 0 {
		capacity = 1
	}
	storage := make([]T, capacity)
	copy(storage, a.storage[:a.length])
	a.storage = storage
	a.logger.Debug("array grow capacity %d -> %d, size %d", old, capacity, a.length)
}

// RemoveAt deletes the element at index, shifting the tail left. Capacity is
// left unchanged.
func (a *Array[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= a.length {
		var zero T
		return zero, errs.Index("array.RemoveAt", index, a.length)
	}
	v := a.storage[index]
	copy(a.storage[index:a.length], a.storage[index+1:a.length])
	a.length--
	var zero T
	a.storage[a.length] = zero
	return v, nil
}

// Remove deletes the first element equal to v.
func (a *Array[T]) Remove(v T) bool {
	i := a.IndexOf(v)
	if i == -1 {
		return false
	}
	_, _ = a.RemoveAt(i)
	return true
}

func (a *Array[T]) IndexOf(v T) int {
	for i := 0; i < a.length; i++ {
		if a.compare(a.storage[i], v) == 0 {
			return i
		}
	}
	return -1
}

func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v) != -1
}

// Reverse reverses the populated prefix in place.
func (a *Array[T]) Reverse() {
	for left, right := 0, a.length-1; left < right; left, right = left+1, right-1 {
		a.storage[left], a.storage[right] = a.storage[right], a.storage[left]
	}
}

// Sort sorts the populated prefix ascending; slots past Size are not touched.
func (a *Array[T]) Sort() {
	slices.SortFunc(a.storage[:a.length], a.compare)
}

// BinarySearch returns the index of key in the sorted populated prefix, or
// NotFound. The result is meaningless if the prefix is not sorted.
func (a *Array[T]) BinarySearch(key T) int {
	low, high := 0, a.length-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch c := a.compare(a.storage[mid], key); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return NotFound
}

// Clear drops every element but keeps the storage.
func (a *Array[T]) Clear() {
	clear(a.storage[:a.length])
	a.length = 0
}

// All yields the populated prefix in index order.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(a.storage[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) ToSlice() []T {
	return slices.Clone(a.storage[:a.length])
}

func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, a.storage[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
