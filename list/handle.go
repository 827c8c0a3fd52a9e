package list

import "sync/atomic"

// 0 is reserved for "no list": the zero Handle never resolves.
var listSeq uint64

func nextListID() uint64 {
	return atomic.AddUint64(&listSeq, 1)
}

// ref addresses a slot in the node arena; slot i is stored as i+1 so the zero
// ref means "no node" and the zero LinkedList needs no initialization.
type ref int32

// Handle is an opaque reference to a node, returned by the insert operations.
// It stays valid until that node is removed or the list is cleared; a stale or
// foreign handle is rejected with errs.ErrInvalidNode.
type Handle struct {
	list uint64
	slot ref
	gen  uint32
}

// IsZero reports whether h is the zero Handle, which never refers to a node.
func (h Handle) IsZero() bool {
	return h == Handle{}
}
