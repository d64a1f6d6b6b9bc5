package model

import (
	"encoding/json"
	"strings"
)

// DoneMark prefixes the display text of a completed task.
const DoneMark = "✓ "

// Task is a to-do entry. Completion lives in Done; the check mark is only
// added when rendering.
type Task struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Display returns the text shown in lists.
func (t Task) Display() string {
	if t.Done {
		return DoneMark + t.Text
	}
	return t.Text
}

// UnmarshalJSON accepts both the object form and the older plain string
// form, where a leading check mark meant the task was done.
func (t *Task) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Task{Text: strings.TrimPrefix(s, DoneMark), Done: strings.HasPrefix(s, DoneMark)}
		return nil
	}
	type plain Task
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*t = Task(p)
	return nil
}
