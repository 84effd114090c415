// Command fen2svg renders a xiangqi position as an SVG diagram.
package main

import (
	"flag"
	"log"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/xiangqi/internal/board"
)

var (
	fen = flag.String("fen", board.StartposFEN, "position to render")
	out = flag.String("o", "", "output file (default stdout)")
)

const (
	cell   = 60 // grid spacing in pixels
	margin = 50
	width  = margin*2 + cell*8
	height = margin*2 + cell*9
)

func main() {
	flag.Parse()

	pos, err := board.PositionFromFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	render(svg.New(w), pos)
}

// x and y map board coordinates to canvas pixels. Rank 9 is drawn at the
// top, matching the printed-diagram convention.
func x(file int) int { return margin + cell*file }
func y(rank int) int { return margin + cell*(9-rank) }

func render(canvas *svg.SVG, pos board.Position) {
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#f6d8a0")

	grid := "stroke:#5b3a1e;stroke-width:2;fill:none"

	// Rank lines run the full width; file lines break at the river except
	// for the two border files.
	for r := 0; r <= 9; r++ {
		canvas.Line(x(0), y(r), x(8), y(r), grid)
	}
	for f := 0; f <= 8; f++ {
		if f == 0 || f == 8 {
			canvas.Line(x(f), y(0), x(f), y(9), grid)
			continue
		}
		canvas.Line(x(f), y(0), x(f), y(4), grid)
		canvas.Line(x(f), y(5), x(f), y(9), grid)
	}

	// Palace diagonals.
	canvas.Line(x(3), y(0), x(5), y(2), grid)
	canvas.Line(x(5), y(0), x(3), y(2), grid)
	canvas.Line(x(3), y(9), x(5), y(7), grid)
	canvas.Line(x(5), y(9), x(3), y(7), grid)

	// Pieces, in true orientation.
	b := *pos.Board()
	if b.Flipped() {
		b.Mirror()
	}
	drawSide(canvas, &b, false)
	drawSide(canvas, &b, true)

	canvas.End()
}

func drawSide(canvas *svg.SVG, b *board.Board, theirs bool) {
	pieces := b.Ours()
	fill, stroke := "#fff6e6", "#b02020"
	if theirs {
		pieces = b.Theirs()
		stroke = "#202020"
	}
	for _, sq := range pieces.Squares() {
		label := pieceLabel(b, sq)
		cx, cy := x(sq.File()), y(sq.Rank())
		canvas.Circle(cx, cy, cell*2/5,
			"fill:"+fill+";stroke:"+stroke+";stroke-width:3")
		canvas.Text(cx, cy+8, label,
			"font-size:24px;font-family:serif;text-anchor:middle;fill:"+stroke)
	}
}

func pieceLabel(b *board.Board, sq board.Square) string {
	bb := board.SquareBB(sq)
	switch {
	case b.Rooks().Intersects(bb):
		return "R"
	case b.Advisors().Intersects(bb):
		return "A"
	case b.Cannons().Intersects(bb):
		return "C"
	case b.Pawns().Intersects(bb):
		return "P"
	case b.Knights().Intersects(bb):
		return "N"
	case b.Bishops().Intersects(bb):
		return "B"
	default:
		return "K"
	}
}
