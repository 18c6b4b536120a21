package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestAnalyzeAttacks(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		colour     chess.Colour
		wantCheck  bool
		wantChecks []Check
		wantPins   []Pin
	}{
		{
			name:   "initial position is quiet",
			fen:    InitialFEN,
			colour: chess.White,
		},
		{
			name:       "rook check along file",
			fen:        "4r2k/8/8/8/8/8/8/4K3 w - - 0 1",
			colour:     chess.White,
			wantCheck:  true,
			wantChecks: []Check{{Square: chess.MustSquare("e8"), Dir: chess.Direction{DRow: -1}}},
		},
		{
			name:     "bishop pinned by rook",
			fen:      "4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1",
			colour:   chess.White,
			wantPins: []Pin{{Square: chess.MustSquare("e2"), Dir: chess.Direction{DRow: -1}}},
		},
		{
			name:   "two ally pieces break the pin",
			fen:    "4r2k/8/8/8/8/4N3/4B3/4K3 w - - 0 1",
			colour: chess.White,
		},
		{
			name:   "bishop on the rank does not check",
			fen:    "7k/8/8/8/8/8/8/r3K2b w - - 0 1",
			colour: chess.White,
			wantChecks: []Check{
				{Square: chess.MustSquare("a1"), Dir: chess.Direction{DCol: -1}},
			},
			wantCheck: true,
		},
		{
			name:       "knight check",
			fen:        "7k/8/8/8/8/3n4/8/4K3 w - - 0 1",
			colour:     chess.White,
			wantCheck:  true,
			wantChecks: []Check{{Square: chess.MustSquare("d3"), Dir: chess.Direction{DRow: -2, DCol: -1}}},
		},
		{
			name:       "black pawn checks diagonally forward",
			fen:        "7k/8/8/8/8/8/3p4/4K3 w - - 0 1",
			colour:     chess.White,
			wantCheck:  true,
			wantChecks: []Check{{Square: chess.MustSquare("d2"), Dir: chess.Direction{DRow: -1, DCol: -1}}},
		},
		{
			name:   "black pawn behind the king does not check",
			fen:    "7k/8/8/8/8/8/4K3/3p4 w - - 0 1",
			colour: chess.White,
		},
		{
			name:       "white pawn checks black king",
			fen:        "8/3k4/4P3/8/8/8/8/4K3 b - - 0 1",
			colour:     chess.Black,
			wantCheck:  true,
			wantChecks: []Check{{Square: chess.MustSquare("e6"), Dir: chess.Direction{DRow: 1, DCol: 1}}},
		},
		{
			name:   "white pawn in front of black king does not check",
			fen:    "8/3k4/3P4/8/8/8/8/4K3 b - - 0 1",
			colour: chess.Black,
		},
		{
			name:      "double check",
			fen:       "4k3/8/8/8/4r3/3n4/8/R3K3 w - - 0 1",
			colour:    chess.White,
			wantCheck: true,
			wantChecks: []Check{
				{Square: chess.MustSquare("e4"), Dir: chess.Direction{DRow: -1}},
				{Square: chess.MustSquare("d3"), Dir: chess.Direction{DRow: -2, DCol: -1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := mustFEN(t, tt.fen)
			report := AnalyzeAttacks(&gs.board, gs.KingSquare(tt.colour), tt.colour)

			if report.InCheck != tt.wantCheck {
				t.Errorf("InCheck = %v, want %v", report.InCheck, tt.wantCheck)
			}
			if diff := cmp.Diff(tt.wantChecks, report.Checks); diff != "" {
				t.Errorf("Checks mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantPins, report.Pins); diff != "" {
				t.Errorf("Pins mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeAttacks_DoesNotModifyBoard(t *testing.T) {
	gs := mustFEN(t, kiwipeteFEN)
	before := gs.board
	AnalyzeAttacks(&gs.board, chess.MustSquare("d4"), chess.White)
	if gs.board != before {
		t.Error("AnalyzeAttacks modified the board")
	}
}

func TestKingSafeAt_KingTransparentOnCheckRay(t *testing.T) {
	// Stepping back from e2 to e1 stays on the rook's line
	gs := mustFEN(t, "4r2k/8/8/8/8/8/4K3/8 w - - 0 1")

	tests := []struct {
		square string
		want   bool
	}{
		{"e1", false},
		{"e3", false},
		{"d1", true},
		{"f3", true},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := kingSafeAt(&gs.board, chess.MustSquare(tt.square), chess.White); got != tt.want {
				t.Errorf("kingSafeAt(%s) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}
}

func TestSquareAttacked_AdjacentKing(t *testing.T) {
	gs := mustFEN(t, "8/8/8/3k4/8/3K4/8/8 w - - 0 1")
	if !SquareAttacked(&gs.board, chess.MustSquare("d4"), chess.White) {
		t.Error("d4 should be covered by the black king")
	}
	if SquareAttacked(&gs.board, chess.MustSquare("d2"), chess.White) {
		t.Error("d2 should be safe")
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"initial black", InitialFEN, chess.Black, false},
		{"queen check", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"no king", "8/8/8/8/8/8/8/8 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.NewBoard()
			if err := parsePiecePositions(board, firstField(tt.fen)); err != nil {
				t.Fatalf("parsePiecePositions failed: %v", err)
			}
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck() = %v, want %v", got, tt.want)
			}
		})
	}
}

func firstField(fen string) string {
	for i := 0; i < len(fen); i++ {
		if fen[i] == ' ' {
			return fen[:i]
		}
	}
	return fen
}
