package ast

import (
	"testing"

	"github.com/google/uuid"
)

func TestArenaPointersStayValid(t *testing.T) {
	arena := NewArena(4)

	first := arena.NewInteger(0, false, Location{})
	var all []*IntegerLiteral
	for i := 0; i < 100; i++ {
		all = append(all, arena.NewInteger(int64(i), false, Location{}))
	}

	if first.N != 0 {
		t.Errorf("first node was overwritten: got %d", first.N)
	}
	for i, n := range all {
		if n.N != int64(i) {
			t.Fatalf("node %d: expected value %d, got %d", i, i, n.N)
		}
	}
}

func TestArenaAssignsIncreasingIDs(t *testing.T) {
	arena := NewArena(0)

	a := arena.NewInteger(1, false, Location{})
	b := arena.NewString("x", Location{})
	c := arena.NewBlock(nil, Location{})

	if a.ID() != 1 || b.ID() != 2 || c.ID() != 3 {
		t.Errorf("expected ids 1,2,3, got %d,%d,%d", a.ID(), b.ID(), c.ID())
	}
}

func TestArenaStats(t *testing.T) {
	arena := NewArena(8)

	for i := 0; i < 10; i++ {
		arena.NewInteger(int64(i), false, Location{})
	}
	arena.NewString("s", Location{})

	stats := arena.Stats()
	if stats.NodeCount != 11 {
		t.Errorf("expected 11 nodes, got %d", stats.NodeCount)
	}
	if stats.NodeKinds != 2 {
		t.Errorf("expected 2 node kinds, got %d", stats.NodeKinds)
	}
	// 10 个整数占两块，1 个字符串占一块
	if stats.ChunkCount != 3 {
		t.Errorf("expected 3 chunks, got %d", stats.ChunkCount)
	}
	if stats.Capacity != 24 {
		t.Errorf("expected capacity 24, got %d", stats.Capacity)
	}

	arena.Free()
	if stats := arena.Stats(); stats.NodeCount != 0 {
		t.Errorf("expected empty arena after Free, got %d nodes", stats.NodeCount)
	}
}

func TestArenaIdentity(t *testing.T) {
	a := NewArena(0)
	b := NewArena(0)

	if a.ID() == uuid.Nil {
		t.Errorf("arena id should be set")
	}
	if a.ID() == b.ID() {
		t.Errorf("arenas should have distinct ids")
	}
}

func TestAllocTypeReturnsZeroValue(t *testing.T) {
	arena := NewArena(2)

	for i := 0; i < 5; i++ {
		v := AllocType[Variable](arena)
		if v.Ident != "" || v.IsVariable {
			t.Fatalf("expected zero value, got %+v", v)
		}
		v.Ident = "$x"
	}
}
