package cachemanager

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type point struct{ X, Y int }

func (p point) MarshalBinary() ([]byte, error) {
	return []byte{byte(p.X), byte(p.Y)}, nil
}

func TestPushListTopOrder(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	if _, err := m.PushListTop(ctx, "jobs", "a"); err != nil {
		t.Fatalf("PushListTop() error = %v", err)
	}
	n, err := m.PushListTop(ctx, "jobs", "b")
	if err != nil {
		t.Fatalf("PushListTop() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("PushListTop() = %d, want 2", n)
	}

	got, found, err := m.GetListIndex(ctx, "jobs", 0)
	if err != nil {
		t.Fatalf("GetListIndex() error = %v", err)
	}
	if !found || got != "b" {
		t.Fatalf("GetListIndex(0) = %q, %v; want b, true", got, found)
	}

	list, err := mr.List("shop_jobs")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !reflect.DeepEqual(list, []string{"b", "a"}) {
		t.Fatalf("stored list = %v, want [b a]", list)
	}
}

func TestFIFOQueue(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	for _, v := range []any{"first", 2, point{X: 1, Y: 2}} {
		if _, err := m.PushListAfter(ctx, "fifo", v); err != nil {
			t.Fatalf("PushListAfter(%v) error = %v", v, err)
		}
	}

	n, err := m.GetListLen(ctx, "fifo")
	if err != nil {
		t.Fatalf("GetListLen() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("GetListLen() = %d, want 3", n)
	}

	want := []string{"first", "2", string([]byte{1, 2})}
	for _, w := range want {
		got, found, err := m.RmListTop(ctx, "fifo")
		if err != nil {
			t.Fatalf("RmListTop() error = %v", err)
		}
		if !found || got != w {
			t.Fatalf("RmListTop() = %q, %v; want %q, true", got, found, w)
		}
	}
}

func TestLIFOQueue(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	for _, v := range []string{"a", "b", "c"} {
		if _, err := m.PushListAfter(ctx, "stack", v); err != nil {
			t.Fatalf("PushListAfter() error = %v", err)
		}
	}

	got, found, err := m.RmListAfter(ctx, "stack")
	if err != nil {
		t.Fatalf("RmListAfter() error = %v", err)
	}
	if !found || got != "c" {
		t.Fatalf("RmListAfter() = %q, %v; want c, true", got, found)
	}

	last, _, err := m.GetListIndex(ctx, "stack", -1)
	if err != nil {
		t.Fatalf("GetListIndex() error = %v", err)
	}
	if last != "b" {
		t.Fatalf("GetListIndex(-1) = %q, want b", last)
	}
}

func TestPopEmptyList(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	if got, found, err := m.RmListTop(ctx, "empty"); err != nil || found || got != "" {
		t.Fatalf("RmListTop() = %q, %v, %v; want absent", got, found, err)
	}
	if got, found, err := m.RmListAfter(ctx, "empty"); err != nil || found || got != "" {
		t.Fatalf("RmListAfter() = %q, %v, %v; want absent", got, found, err)
	}
	if n, err := m.GetListLen(ctx, "empty"); err != nil || n != 0 {
		t.Fatalf("GetListLen() = %d, %v; want 0", n, err)
	}
	if _, found, err := m.GetListIndex(ctx, "empty", 0); err != nil || found {
		t.Fatalf("GetListIndex() found = %v, err = %v; want absent", found, err)
	}
}

func TestRPushX(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	n, err := m.RPushX(ctx, "maybe", "x")
	if err != nil {
		t.Fatalf("RPushX() error = %v", err)
	}
	if n != 0 || mr.Exists("shop_maybe") {
		t.Fatalf("RPushX() on missing list = %d, exists = %v; want no-op", n, mr.Exists("shop_maybe"))
	}

	if _, err := m.PushListAfter(ctx, "maybe", "a"); err != nil {
		t.Fatalf("PushListAfter() error = %v", err)
	}
	n, err = m.RPushX(ctx, "maybe", "b")
	if err != nil {
		t.Fatalf("RPushX() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("RPushX() = %d, want 2", n)
	}
}

func TestSetListValue(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	for _, v := range []string{"a", "b"} {
		if _, err := m.PushListAfter(ctx, "items", v); err != nil {
			t.Fatalf("PushListAfter() error = %v", err)
		}
	}

	if err := m.SetListValue(ctx, "items", 1, "B"); err != nil {
		t.Fatalf("SetListValue() error = %v", err)
	}
	list, _ := mr.List("shop_items")
	if !reflect.DeepEqual(list, []string{"a", "B"}) {
		t.Fatalf("stored list = %v, want [a B]", list)
	}

	err := m.SetListValue(ctx, "items", 5, "x")
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("SetListValue(5) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestListOpsUsePrefixedKey(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	if _, err := mr.Push("raw", "unprefixed"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if _, err := m.PushListAfter(ctx, "raw", "prefixed"); err != nil {
		t.Fatalf("PushListAfter() error = %v", err)
	}

	got, _, err := m.GetListIndex(ctx, "raw", 0)
	if err != nil {
		t.Fatalf("GetListIndex() error = %v", err)
	}
	if got != "prefixed" {
		t.Fatalf("GetListIndex() = %q, want value from shop_raw", got)
	}

	if err := m.SetListValue(ctx, "raw", 0, "changed"); err != nil {
		t.Fatalf("SetListValue() error = %v", err)
	}
	if list, _ := mr.List("raw"); !reflect.DeepEqual(list, []string{"unprefixed"}) {
		t.Fatalf("unprefixed list modified: %v", list)
	}
	if list, _ := mr.List("shop_raw"); !reflect.DeepEqual(list, []string{"changed"}) {
		t.Fatalf("prefixed list = %v, want [changed]", list)
	}
}

func TestListRejectsUnsupportedElements(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	if _, err := m.PushListAfter(ctx, "q", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("PushListAfter(nil) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := m.PushListTop(ctx, "q", struct{}{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("PushListTop(struct) error = %v, want ErrInvalidArgument", err)
	}
	if err := m.SetListValue(ctx, "q", 0, []int{1}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("SetListValue(slice) error = %v, want ErrInvalidArgument", err)
	}
	if keys := mr.Keys(); len(keys) != 0 {
		t.Fatalf("store mutated: keys = %v", keys)
	}
}
