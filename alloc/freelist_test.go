package alloc_test

import (
	"testing"

	"github.com/momentics/rawbuf/alloc"
)

func TestFreeListRoundsUpToClass(t *testing.T) {
	fl := alloc.NewFreeList(alloc.NewHeap(), nil, 0)
	r, err := fl.Allocate(100)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if r.Size() != 2*1024 {
		t.Errorf("size = %d, want smallest class 2048", r.Size())
	}
	fl.Free(r)
}

func TestFreeListReuse(t *testing.T) {
	fl := alloc.NewFreeList(alloc.NewHeap(), []int{64, 128}, 4)
	r1, err := fl.Allocate(50)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	p := &r1.Bytes()[0]
	fl.Free(r1)

	r2, err := fl.Allocate(60)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if &r2.Bytes()[0] != p {
		t.Error("released region was not recycled")
	}
	fl.Free(r2)
}

func TestFreeListOversizedBypassesCache(t *testing.T) {
	backend := alloc.NewHeap()
	fl := alloc.NewFreeList(backend, []int{64}, 4)
	r, err := fl.Allocate(1 << 20)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if r.Size() != 1<<20 {
		t.Errorf("oversized request rounded: %d", r.Size())
	}
	fl.Free(r)
	if st := backend.Stats(); st.InUse != 0 {
		t.Errorf("oversized region cached instead of freed: %+v", st)
	}
}

func TestFreeListDrain(t *testing.T) {
	backend := alloc.NewHeap()
	fl := alloc.NewFreeList(backend, []int{64}, 4)
	r, _ := fl.Allocate(64)
	fl.Free(r)
	if st := backend.Stats(); st.InUse != 1 {
		t.Fatalf("expected one cached region, got %+v", st)
	}
	fl.Drain()
	if st := backend.Stats(); st.InUse != 0 {
		t.Errorf("drain left regions behind: %+v", st)
	}
}
