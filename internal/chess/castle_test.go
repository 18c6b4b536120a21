package chess

import "testing"

func TestCastleRights(t *testing.T) {
	all := AllCastleRights()

	if !all.KingSide(White) || !all.QueenSide(Black) || !all.Any(White) {
		t.Error("AllCastleRights() is missing a flag")
	}
	if got := all.String(); got != "KQkq" {
		t.Errorf("String() = %q; want KQkq", got)
	}

	tests := []struct {
		name   string
		rights CastleRights
		want   string
	}{
		{"white king side gone", all.WithoutKingSide(White), "Qkq"},
		{"black queen side gone", all.WithoutQueenSide(Black), "KQk"},
		{"white gone", all.WithoutKingSide(White).WithoutQueenSide(White), "kq"},
		{"none", CastleRights{}, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rights.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}

	if all.String() != "KQkq" {
		t.Error("Without* modified the receiver")
	}
	if (CastleRights{BlackKingSide: true}).Any(White) {
		t.Error("Any(White) = true with only a black right")
	}
}
