package model

// Guest is an invitation; Count is how many people it covers.
type Guest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MinGuestCount is the floor for Guest.Count.
const MinGuestCount = 1
