package list

import "iter"

// List is the surface LinkedList offers to embedding code.
type List[T comparable] interface {
	Add(v T) Handle
	AddLast(v T) Handle
	AddFirst(v T) Handle
	AddAt(index int, v T) (Handle, error) // 在指定位置插入，下标从0开始
	RemoveAt(index int) (T, error)
	RemoveNode(h Handle) (T, error)
	Remove(v T) bool // 删除第一个匹配到的数据
	RemoveFirst() (T, error)
	RemoveLast() (T, error)
	PeekFirst() (T, error)
	PeekLast() (T, error)
	Get(index int) (T, error)
	IndexOf(v T) int
	Contains(v T) bool
	Size() int
	IsEmpty() bool
	Clear()
	All() iter.Seq[T]
	Iterator() *Iterator[T]
}

var _ List[int] = (*LinkedList[int])(nil)
