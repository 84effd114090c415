// Command perft counts legal move paths to a fixed depth, the standard
// way to validate a move generator. Root moves are split across workers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/xiangqi/internal/board"
)

var (
	fen     = flag.String("fen", board.StartposFEN, "position to search from")
	depth   = flag.Int("depth", 4, "search depth in plies")
	divide  = flag.Bool("divide", false, "print per-root-move node counts")
	workers = flag.Int("workers", runtime.NumCPU(), "number of parallel workers")
)

func main() {
	flag.Parse()

	var b board.Board
	if _, _, err := b.SetFromFEN(*fen); err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	total, err := parallelPerft(context.Background(), b, *depth)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("perft(%d) = %d (%.3fs, %.0f nodes/s)\n",
		*depth, total, elapsed.Seconds(), float64(total)/elapsed.Seconds())
}

// parallelPerft splits the root moves across an errgroup. Each worker
// copies the board, so no locking is needed below the root.
func parallelPerft(ctx context.Context, b board.Board, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := b.GenerateLegalMoves()
	counts := make([]uint64, len(moves))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			after := b
			after.ApplyMove(m)
			after.Mirror()
			counts[i] = perft(&after, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for i, m := range moves {
		if *divide {
			printed := m
			if b.Flipped() {
				printed = m.Flip()
			}
			fmt.Printf("%v: %d\n", printed, counts[i])
		}
		total += counts[i]
	}
	return total, nil
}

func perft(b *board.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		after := *b
		after.ApplyMove(m)
		after.Mirror()
		nodes += perft(&after, depth-1)
	}
	return nodes
}
