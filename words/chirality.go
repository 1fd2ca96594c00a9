package words

import "fmt"

// Chirality is the handedness of a scale word relative to its reversal.
type Chirality int

const (
	// Achiral words are rotations of their own reversal.
	Achiral Chirality = iota
	// Right words have a canonical form below that of their reversal.
	Right
	// Left words have a canonical form above that of their reversal.
	Left
)

// String returns "Achiral", "Right" or "Left".
func (c Chirality) String() string {
	switch c {
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return "Achiral"
	}
}

// MarshalText encodes the chirality by name.
func (c Chirality) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts the names produced by MarshalText.
func (c *Chirality) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Achiral":
		*c = Achiral
	case "Right":
		*c = Right
	case "Left":
		*c = Left
	default:
		return fmt.Errorf("words: unknown chirality %q", b)
	}

	return nil
}

// ChiralityOf compares the canonical rotation of w with that of its
// reversal: less is Right, greater is Left, equal is Achiral.
func ChiralityOf(w Word) Chirality {
	switch Compare(Canonical(w), Canonical(Reverse(w))) {
	case -1:
		return Right
	case 1:
		return Left
	default:
		return Achiral
	}
}
