package model

import "fmt"

// Index is a position in a displayed (filtered) list
// The zero value is the first position
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts a user-facing position; oneBased must be at least 1
func IndexFromOneBased(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, fmt.Errorf("index must be at least 1, got %d", oneBased)
	}
	return Index{zeroBased: oneBased - 1}, nil
}

// IndexFromZeroBased converts a slice position; zeroBased must not be negative
func IndexFromZeroBased(zeroBased int) (Index, error) {
	if zeroBased < 0 {
		return Index{}, fmt.Errorf("index must not be negative, got %d", zeroBased)
	}
	return Index{zeroBased: zeroBased}, nil
}

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int  { return i.zeroBased + 1 }

func (i Index) String() string {
	return fmt.Sprintf("%d", i.OneBased())
}
