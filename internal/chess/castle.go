package chess

// CastleRights holds the four independent castling flags.
type CastleRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastleRights returns rights with every flag set.
func AllCastleRights() CastleRights {
	return CastleRights{WhiteKingSide: true, WhiteQueenSide: true, BlackKingSide: true, BlackQueenSide: true}
}

// KingSide reports whether colour may still castle king-side.
func (cr CastleRights) KingSide(colour Colour) bool {
	if colour == White {
		return cr.WhiteKingSide
	}
	return cr.BlackKingSide
}

// QueenSide reports whether colour may still castle queen-side.
func (cr CastleRights) QueenSide(colour Colour) bool {
	if colour == White {
		return cr.WhiteQueenSide
	}
	return cr.BlackQueenSide
}

// Any reports whether colour holds either castling right.
func (cr CastleRights) Any(colour Colour) bool {
	return cr.KingSide(colour) || cr.QueenSide(colour)
}

// WithoutKingSide returns a copy with colour's king-side right cleared.
func (cr CastleRights) WithoutKingSide(colour Colour) CastleRights {
	if colour == White {
		cr.WhiteKingSide = false
	} else {
		cr.BlackKingSide = false
	}
	return cr
}

// WithoutQueenSide returns a copy with colour's queen-side right cleared.
func (cr CastleRights) WithoutQueenSide(colour Colour) CastleRights {
	if colour == White {
		cr.WhiteQueenSide = false
	} else {
		cr.BlackQueenSide = false
	}
	return cr
}

// String returns the rights in the usual "KQkq" form, or "-" for none.
func (cr CastleRights) String() string {
	var s []byte
	if cr.WhiteKingSide {
		s = append(s, 'K')
	}
	if cr.WhiteQueenSide {
		s = append(s, 'Q')
	}
	if cr.BlackKingSide {
		s = append(s, 'k')
	}
	if cr.BlackQueenSide {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}
