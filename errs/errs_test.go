package errs

import (
	"errors"
	"testing"
)

func TestIndexError(t *testing.T) {
	err := Index("list.AddAt", 5, 3)
	if !errors.Is(err, ErrIndex) {
		t.Fatalf("expected ErrIndex, got %v", err)
	}
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IndexError, got %T", err)
	}
	if ie.Op != "list.AddAt" || ie.Index != 5 || ie.Len != 3 {
		t.Errorf("unexpected fields %+v", ie)
	}
	if err.Error() != "list.AddAt: index 5 out of range, size 3" {
		t.Error(err.Error())
	}
}

func TestWrapped(t *testing.T) {
	tests := []struct {
		err    error
		target error
		text   string
	}{
		{Empty("queue.Peek"), ErrEmpty, "queue.Peek: container is empty"},
		{InvalidArgument("array.New", "capacity %d", -1), ErrInvalidArgument, "array.New: capacity -1: invalid argument"},
		{InvalidNode("list.RemoveNode", "handle already removed"), ErrInvalidNode, "list.RemoveNode: handle already removed: invalid node handle"},
		{StaleIterator("list.Iterator"), ErrStaleIterator, "list.Iterator: iterator invalidated by modification"},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.target) {
			t.Errorf("%v does not wrap %v", tt.err, tt.target)
		}
		if tt.err.Error() != tt.text {
			t.Errorf("got %q, want %q", tt.err.Error(), tt.text)
		}
		if errors.Is(tt.err, ErrIndex) {
			t.Errorf("%v must not match ErrIndex", tt.err)
		}
	}
}
