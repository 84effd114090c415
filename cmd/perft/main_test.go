package main

import (
	"context"
	"testing"

	"github.com/hailam/xiangqi/internal/board"
)

func TestPerftBaseCase(t *testing.T) {
	b := board.StartposBoard()
	if got := perft(&b, 0); got != 1 {
		t.Errorf("perft(0) = %d, want 1", got)
	}
	if got := perft(&b, 1); got != 44 {
		t.Errorf("perft(1) = %d, want 44", got)
	}
}

func TestParallelPerftDepths(t *testing.T) {
	b := board.StartposBoard()
	want := []uint64{44, 1920, 79666}
	for depth := 1; depth <= len(want); depth++ {
		got, err := parallelPerft(context.Background(), b, depth)
		if err != nil {
			t.Fatal(err)
		}
		if got != want[depth-1] {
			t.Errorf("parallelPerft(%d) = %d, want %d", depth, got, want[depth-1])
		}
	}
}
