package wordsearch

// Letter is one cell symbol of the puzzle alphabet.
type Letter uint8

const (
	X Letter = iota
	M
	A
	S
)

// ParseLetter maps a byte onto the alphabet.
func ParseLetter(b byte) (Letter, bool) {
	switch b {
	case 'X':
		return X, true
	case 'M':
		return M, true
	case 'A':
		return A, true
	case 'S':
		return S, true
	}

	return 0, false
}

// Next returns the letter that follows l in XMAS; false for S.
func (l Letter) Next() (Letter, bool) {
	if l >= S {
		return 0, false
	}

	return l + 1, true
}

// String returns the letter as it appears in the input.
func (l Letter) String() string {
	switch l {
	case X:
		return "X"
	case M:
		return "M"
	case A:
		return "A"
	case S:
		return "S"
	}

	return "?"
}

// Word is an ordered target sequence of letters.
type Word []Letter

// XMAS is the word searched for by the day 4 puzzle.
var XMAS = Word{X, M, A, S}

// ParseWord converts s into a Word, rejecting letters outside the alphabet.
func ParseWord(s string) (Word, error) {
	w := make(Word, len(s))
	for i := 0; i < len(s); i++ {
		l, ok := ParseLetter(s[i])
		if !ok {
			return nil, ErrInvalidLetter
		}
		w[i] = l
	}

	return w, nil
}

// Direction is one of the eight compass steps.
type Direction uint8

const (
	NorthWest Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
)

// Directions lists all eight directions clockwise from NorthWest.
var Directions = [8]Direction{NorthWest, North, NorthEast, East, SouthEast, South, SouthWest, West}

// DX is the horizontal unit step of d.
func (d Direction) DX() int {
	switch d {
	case West, NorthWest, SouthWest:
		return -1
	case East, NorthEast, SouthEast:
		return 1
	}

	return 0
}

// DY is the vertical unit step of d; north is -1.
func (d Direction) DY() int {
	switch d {
	case North, NorthWest, NorthEast:
		return -1
	case South, SouthWest, SouthEast:
		return 1
	}

	return 0
}

var directionNames = [8]string{"NW", "N", "NE", "E", "SE", "S", "SW", "W"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}

	return "?"
}

// Grid is an immutable rectangular letter grid.
// cells holds Width*Height letters in row-major order.
type Grid struct {
	Width, Height int
	cells         []Letter
}
