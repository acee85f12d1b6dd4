package enums

import "fmt"

// GameStatus tracks whether a record is in the collection or still wanted.
type GameStatus string

const (
	GameStatusOwned    GameStatus = "owned"
	GameStatusWishlist GameStatus = "wishlist"
)

var validGameStatuses = []GameStatus{
	GameStatusOwned,
	GameStatusWishlist,
}

// String implements fmt.Stringer.
func (s GameStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known GameStatus.
func (s GameStatus) IsValid() bool {
	for _, candidate := range validGameStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseGameStatus converts raw input into a GameStatus.
func ParseGameStatus(value string) (GameStatus, error) {
	for _, candidate := range validGameStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid game status %q", value)
}
