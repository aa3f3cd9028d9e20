package model

import "fmt"

// Location addresses a single cell by column (X) and row (Y)
type Location struct {
	X int
	Y int
}

// NewLocation is a shorthand for Location{X: x, Y: y}
func NewLocation(x, y int) Location {
	return Location{X: x, Y: y}
}

// Equal reports whether both coordinates match
func (l Location) Equal(other Location) bool {
	return l.X == other.X && l.Y == other.Y
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}
