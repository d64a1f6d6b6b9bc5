package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

const weekHeader = "Do Se Te Qu Qu Se Sá"

// calendar is a month grid with a day cursor. selected holds the picked day
// in model.DateLayout, "" until one is chosen.
type calendar struct {
	cursor   time.Time
	selected string
}

func newCalendar(now time.Time) calendar {
	y, m, d := now.Date()
	return calendar{cursor: time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

// shiftMonth moves the cursor by n months, clamping the day to the target
// month's length.
func (c *calendar) shiftMonth(n int) {
	y, m, d := c.cursor.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1).Day()
	c.cursor = first.AddDate(0, 0, min(d, last)-1)
}

// update handles a key aimed at the grid; picked reports a day selection.
func (c *calendar) update(k tea.KeyMsg) (picked bool) {
	switch {
	case key.Matches(k, keys.prevMonth):
		c.shiftMonth(-1)
	case key.Matches(k, keys.nextMonth):
		c.shiftMonth(1)
	case key.Matches(k, keys.selectDay), key.Matches(k, keys.enter):
		c.selected = c.cursor.Format(model.DateLayout)
		return true
	}
	switch k.String() {
	case "left", "h":
		c.cursor = c.cursor.AddDate(0, 0, -1)
	case "right", "l":
		c.cursor = c.cursor.AddDate(0, 0, 1)
	case "up", "k":
		c.cursor = c.cursor.AddDate(0, 0, -7)
	case "down", "j":
		c.cursor = c.cursor.AddDate(0, 0, 7)
	}
	return false
}

// view draws the month of the cursor. marks maps days with appointments to
// whether they are past.
func (c calendar) view(marks map[string]bool, focused bool) string {
	t := ui.Current()
	y, m, _ := c.cursor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.Local)
	days := first.AddDate(0, 1, -1).Day()

	var b strings.Builder
	b.WriteString(t.Title.Render(fmt.Sprintf("%s %d", monthNames[m-1], y)))
	b.WriteString("\n" + t.Muted.Render(weekHeader) + "\n")
	b.WriteString(strings.Repeat("   ", int(first.Weekday())))
	for day := 1; day <= days; day++ {
		date := time.Date(y, m, day, 0, 0, 0, 0, time.Local)
		iso := date.Format(model.DateLayout)
		cell := fmt.Sprintf("%2d", day)
		style := lipgloss.NewStyle()
		if past, ok := marks[iso]; ok {
			style = t.Success
			if past {
				style = t.Error
			}
		}
		if iso == c.selected {
			style = style.Underline(true).Bold(true)
		}
		if focused && day == c.cursor.Day() {
			style = t.Selected
		}
		b.WriteString(style.Render(cell))
		if date.Weekday() == time.Saturday {
			if day < days {
				b.WriteString("\n")
			}
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}
