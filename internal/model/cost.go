package model

// Cost tracks what a professional charges and what has been paid so far.
// Paid is allowed to exceed Total.
type Cost struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Total Amount `json:"total"`
	Paid  Amount `json:"paid"`
}
