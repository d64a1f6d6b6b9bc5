package model

import "time"

// DateLayout is the ISO day format appointments are stored in.
const DateLayout = "2006-01-02"

// Appointment is a named day in the calendar.
type Appointment struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// Day parses Date as local midnight.
func (a Appointment) Day() (time.Time, error) {
	return time.ParseInLocation(DateLayout, a.Date, time.Local)
}

// IsPast reports whether the appointment day started before now. Dates that
// do not parse are never past.
func (a Appointment) IsPast(now time.Time) bool {
	d, err := a.Day()
	if err != nil {
		return false
	}
	return d.Before(now)
}
