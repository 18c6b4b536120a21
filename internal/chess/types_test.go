package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q/%q; want White/Black", White.String(), Black.String())
	}
}

func TestColouredPieces(t *testing.T) {
	tests := []struct {
		name   string
		piece  Piece
		colour Colour
		kind   Piece
		str    string
	}{
		{"white king", W(King), White, King, "White King"},
		{"black pawn", B(Pawn), Black, Pawn, "Black Pawn"},
		{"white knight", MakeColouredPiece(White, Knight), White, Knight, "White Knight"},
		{"black queen", B(Queen), Black, Queen, "Black Queen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.piece.IsColoured() {
				t.Fatal("IsColoured() = false")
			}
			if got := ExtractColour(tt.piece); got != tt.colour {
				t.Errorf("ExtractColour() = %v; want %v", got, tt.colour)
			}
			if got := ExtractPiece(tt.piece); got != tt.kind {
				t.Errorf("ExtractPiece() = %v; want %v", got, tt.kind)
			}
			if !IsColour(tt.piece, tt.colour) || IsColour(tt.piece, tt.colour.Opposite()) {
				t.Error("IsColour() disagrees with ExtractColour()")
			}
			if got := tt.piece.String(); got != tt.str {
				t.Errorf("String() = %q; want %q", got, tt.str)
			}
		})
	}
}

func TestPiece_NotColoured(t *testing.T) {
	for _, p := range []Piece{Off, Empty, Pawn, King} {
		if p.IsColoured() {
			t.Errorf("%v.IsColoured() = true", p)
		}
		if IsColour(p, White) || IsColour(p, Black) {
			t.Errorf("IsColour(%v) = true", p)
		}
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'}, {B(King), 'k'}, {W(Pawn), 'P'}, {B(Knight), 'n'},
		{Empty, '.'}, {Off, '.'},
	}
	for _, tt := range tests {
		if got := PieceLetter(tt.piece); got != tt.want {
			t.Errorf("PieceLetter(%v) = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a8", Square{Row: 0, Col: 0}, false},
		{"h1", Square{Row: 7, Col: 7}, false},
		{"e4", Square{Row: 4, Col: 4}, false},
		{"d6", Square{Row: 2, Col: 3}, false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}
}

func TestMustSquare_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSquare(\"z9\") did not panic")
		}
	}()
	MustSquare("z9")
}

func TestSquareGeometry(t *testing.T) {
	e4 := MustSquare("e4")

	if got := e4.Offset(-1, 1); got != MustSquare("f5") {
		t.Errorf("Offset(-1, 1) = %s; want f5", got)
	}
	if got := e4.Step(Direction{DRow: 1, DCol: -1}, 3); got != MustSquare("b1") {
		t.Errorf("Step(down-left, 3) = %s; want b1", got)
	}
	if got := e4.Step(Direction{DRow: 1}, 4); got.OnBoard() {
		t.Errorf("Step(down, 4) = %+v; want off board", got)
	}
	if got := e4.Index(); got != 36 {
		t.Errorf("Index() = %d; want 36", got)
	}
	if NoSquare.OnBoard() || NoSquare.String() != "-" {
		t.Error("NoSquare must be off board and print as -")
	}
	d := Direction{DRow: -1, DCol: 1}
	if d.Opposite() != (Direction{DRow: 1, DCol: -1}) {
		t.Errorf("Opposite() = %+v", d.Opposite())
	}
}

func TestPawnRows(t *testing.T) {
	tests := []struct {
		colour    Colour
		dir       int
		start     int
		promotion int
		home      int
	}{
		{White, -1, 6, 0, 7},
		{Black, 1, 1, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := PawnDirection(tt.colour); got != tt.dir {
				t.Errorf("PawnDirection() = %d; want %d", got, tt.dir)
			}
			if got := PawnStartRow(tt.colour); got != tt.start {
				t.Errorf("PawnStartRow() = %d; want %d", got, tt.start)
			}
			if got := PromotionRow(tt.colour); got != tt.promotion {
				t.Errorf("PromotionRow() = %d; want %d", got, tt.promotion)
			}
			if got := HomeRow(tt.colour); got != tt.home {
				t.Errorf("HomeRow() = %d; want %d", got, tt.home)
			}
		})
	}
}
