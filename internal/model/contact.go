package model

import "strings"

// PhonePrefix is forced onto every contact phone number.
const PhonePrefix = "+55"

// MaxPhoneLen caps the stored phone, prefix included.
const MaxPhoneLen = 15

// Contact is a professional's name and phone.
type Contact struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// NormalizePhone keeps exactly one PhonePrefix in front of the digits typed
// by the user and truncates to MaxPhoneLen.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	s = PhonePrefix + strings.TrimPrefix(s, PhonePrefix)
	if r := []rune(s); len(r) > MaxPhoneLen {
		s = string(r[:MaxPhoneLen])
	}
	return s
}
