package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if got := b.Get(Sq(row, col)); got != Empty {
					t.Errorf("Get(%s) = %v; want Empty", Sq(row, col), got)
				}
			}
		}
	})

	t.Run("off-board squares are Off", func(t *testing.T) {
		for _, sq := range []Square{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, NoSquare} {
			if got := b.Get(sq); got != Off {
				t.Errorf("Get(%v) = %v; want Off", sq, got)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		square string
		want   Piece
	}{
		{"a1", W(Rook)}, {"b1", W(Knight)}, {"c1", W(Bishop)}, {"d1", W(Queen)},
		{"e1", W(King)}, {"f1", W(Bishop)}, {"g1", W(Knight)}, {"h1", W(Rook)},
		{"a8", B(Rook)}, {"d8", B(Queen)}, {"e8", B(King)}, {"h8", B(Rook)},
		{"e2", W(Pawn)}, {"e7", B(Pawn)}, {"e4", Empty}, {"d5", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := b.Get(MustSquare(tt.square)); got != tt.want {
				t.Errorf("Get(%s) = %v; want %v", tt.square, got, tt.want)
			}
		})
	}
}

func TestBoardGetSet(t *testing.T) {
	b := NewBoard()
	sq := MustSquare("d4")

	b.Set(sq, W(Queen))
	if got := b.Get(sq); got != W(Queen) {
		t.Errorf("Get(d4) = %v; want White Queen", got)
	}
	if b.IsEmpty(sq) {
		t.Error("IsEmpty(d4) = true after Set")
	}

	b.Set(Square{Row: 9, Col: 9}, W(Rook))
	if b.IsEmpty(Square{Row: 9, Col: 9}) {
		t.Error("IsEmpty reports an off-board square as empty")
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	c := b.Copy()
	c.Set(MustSquare("e2"), Empty)

	if b.IsEmpty(MustSquare("e2")) {
		t.Error("modifying the copy changed the original")
	}
	if *c == *b {
		t.Error("copy still equal after modification")
	}
}

func TestFindKing(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		colour Colour
		want   string
	}{
		{White, "e1"},
		{Black, "e8"},
	}
	for _, tt := range tests {
		got, ok := b.FindKing(tt.colour)
		if !ok || got != MustSquare(tt.want) {
			t.Errorf("FindKing(%v) = %s, %v; want %s, true", tt.colour, got, ok, tt.want)
		}
	}

	if _, ok := NewBoard().FindKing(White); ok {
		t.Error("FindKing on an empty board reported a king")
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	s := b.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != BoardSize+1 {
		t.Fatalf("String() has %d lines; want %d", len(lines), BoardSize+1)
	}
	if lines[0] != "8 rnbqkbnr" {
		t.Errorf("first line = %q; want %q", lines[0], "8 rnbqkbnr")
	}
	if lines[4] != "4 ........" {
		t.Errorf("fifth line = %q; want %q", lines[4], "4 ........")
	}
	if lines[7] != "1 RNBQKBNR" {
		t.Errorf("eighth line = %q; want %q", lines[7], "1 RNBQKBNR")
	}
}
