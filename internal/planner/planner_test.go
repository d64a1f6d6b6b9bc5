package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

func TestGuestsDuplicateNames(t *testing.T) {
	ctx := context.Background()
	g := NewGuests(ctx, kvstore.NewMemoryStore(), nil)
	require.NoError(t, g.Add(ctx, "Ana"))
	require.NoError(t, g.Add(ctx, "Ana"))

	items := g.Items()
	require.Len(t, items, 2)
	require.Equal(t, 1, items[0].Count)
	require.Equal(t, 1, items[1].Count)
	require.NotEqual(t, items[0].ID, items[1].ID)
	require.Equal(t, 2, g.Total())
}

func TestGuestsDecrementFloor(t *testing.T) {
	ctx := context.Background()
	st := kvstore.NewMemoryStore()
	g := NewGuests(ctx, st, nil)
	require.NoError(t, g.Add(ctx, "Bruno"))

	// a failing store proves no write happens at the floor
	st.FailSet = errors.New("should not be called")
	changed, err := g.Decrement(ctx, 0)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, 1, g.Items()[0].Count)
	st.FailSet = nil

	require.NoError(t, g.Increment(ctx, 0))
	require.NoError(t, g.Increment(ctx, 0))
	changed, err = g.Decrement(ctx, 0)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 2, g.Items()[0].Count)
}

func TestBlankAddLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	st := kvstore.NewMemoryStore()
	p := Open(ctx, st, nil)

	require.ErrorIs(t, p.Tasks.Add(ctx, "   "), ErrBlank)
	require.ErrorIs(t, p.Guests.Add(ctx, ""), ErrBlank)
	require.ErrorIs(t, p.Costs.Add(ctx, "DJ", " ", "100"), ErrBlank)
	require.ErrorIs(t, p.Contacts.Add(ctx, "\t", "11999999999"), ErrBlank)
	require.ErrorIs(t, p.Dates.Add(ctx, "Prova do vestido", ""), ErrBlank)
	require.ErrorIs(t, p.Dates.Add(ctx, "", "2026-11-02"), ErrBlank)

	require.Zero(t, p.Tasks.Len()+p.Guests.Len()+p.Costs.Len()+p.Contacts.Len()+p.Dates.Len())
	for _, k := range []string{kvstore.KeyTasks, kvstore.KeyGuests, kvstore.KeyCosts, kvstore.KeyContacts, kvstore.KeyEvents} {
		_, ok, err := st.Get(ctx, k)
		require.NoError(t, err)
		require.False(t, ok, "no write expected for %s", k)
	}
}

func TestTaskToggleTwiceRestoresDisplay(t *testing.T) {
	ctx := context.Background()
	tasks := NewTasks(ctx, kvstore.NewMemoryStore(), nil)
	require.NoError(t, tasks.Add(ctx, "  Escolher o bolo "))
	orig := tasks.Items()[0].Display()
	require.Equal(t, "Escolher o bolo", orig)

	require.NoError(t, tasks.Toggle(ctx, 0))
	require.Equal(t, "✓ Escolher o bolo", tasks.Items()[0].Display())
	require.NoError(t, tasks.Toggle(ctx, 0))
	require.Equal(t, orig, tasks.Items()[0].Display())

	done, pending := tasks.Stats()
	require.Equal(t, 0, done)
	require.Equal(t, 1, pending)
}

func TestTasksEdit(t *testing.T) {
	ctx := context.Background()
	tasks := NewTasks(ctx, kvstore.NewMemoryStore(), nil)
	require.NoError(t, tasks.Add(ctx, "Flores"))
	require.NoError(t, tasks.Toggle(ctx, 0))
	require.NoError(t, tasks.Edit(ctx, 0, "Flores do altar"))
	require.Equal(t, model.Task{ID: tasks.Items()[0].ID, Text: "Flores do altar", Done: true}, tasks.Items()[0])
	require.ErrorIs(t, tasks.Edit(ctx, 0, ""), ErrBlank)
	require.ErrorIs(t, tasks.Edit(ctx, 3, "x"), ErrIndex)
}

func TestReloadFromFreshState(t *testing.T) {
	ctx := context.Background()
	st := kvstore.NewMemoryStore()
	p := Open(ctx, st, nil)
	require.NoError(t, p.Tasks.Add(ctx, "Convites"))
	require.NoError(t, p.Guests.Add(ctx, "Carla"))
	require.NoError(t, p.Guests.Increment(ctx, 0))
	require.NoError(t, p.Costs.Add(ctx, "Buffet", "12000", "3000.5"))
	require.NoError(t, p.Contacts.Add(ctx, "Fotógrafo", "11988887777"))
	require.NoError(t, p.Dates.Add(ctx, "Degustação", "2026-11-20"))

	fresh := Open(ctx, st, nil)
	require.Equal(t, p.Tasks.Items(), fresh.Tasks.Items())
	require.Equal(t, p.Guests.Items(), fresh.Guests.Items())
	require.Equal(t, p.Contacts.Items(), fresh.Contacts.Items())
	require.Equal(t, p.Dates.Items(), fresh.Dates.Items())

	require.Equal(t, 1, fresh.Costs.Len())
	c := fresh.Costs.Items()[0]
	require.Equal(t, "Buffet", c.Name)
	require.Equal(t, "12000.00", c.Total.Fixed())
	require.Equal(t, "3000.50", c.Paid.Fixed())
}

func TestDeleteAndIndexErrors(t *testing.T) {
	ctx := context.Background()
	g := NewGuests(ctx, kvstore.NewMemoryStore(), nil)
	require.NoError(t, g.Add(ctx, "A"))
	require.NoError(t, g.Add(ctx, "B"))
	require.NoError(t, g.Add(ctx, "C"))

	require.NoError(t, g.Delete(ctx, 1))
	names := []string{}
	for _, it := range g.Items() {
		names = append(names, it.Name)
	}
	require.Equal(t, []string{"A", "C"}, names)

	require.ErrorIs(t, g.Delete(ctx, 2), ErrIndex)
	require.ErrorIs(t, g.Delete(ctx, -1), ErrIndex)
	require.ErrorIs(t, g.Increment(ctx, 5), ErrIndex)
	_, err := g.Decrement(ctx, 5)
	require.ErrorIs(t, err, ErrIndex)
}

func TestSaveFailureKeepsInMemoryChange(t *testing.T) {
	ctx := context.Background()
	st := kvstore.NewMemoryStore()
	g := NewGuests(ctx, st, nil)
	st.FailSet = errors.New("disk full")

	err := g.Add(ctx, "Diego")
	require.ErrorIs(t, err, ErrNotPersisted)
	require.Equal(t, 1, g.Len())
	require.Equal(t, "Diego", g.Items()[0].Name)
}

func TestCostsNaNAndTotals(t *testing.T) {
	ctx := context.Background()
	c := NewCosts(ctx, kvstore.NewMemoryStore(), nil)
	require.NoError(t, c.Add(ctx, "Buffet", "1000", "250.25"))
	require.NoError(t, c.Add(ctx, "DJ", "800", "900"))

	total, paid := c.Totals()
	require.Equal(t, "1800.00", total.Fixed())
	require.Equal(t, "1150.25", paid.Fixed())

	require.NoError(t, c.SetPaid(ctx, 1, "abc"))
	require.True(t, c.Items()[1].Paid.IsNaN())
	_, paid = c.Totals()
	require.Equal(t, "NaN", paid.Fixed())

	require.ErrorIs(t, c.SetPaid(ctx, 0, "  "), ErrBlank)
	require.ErrorIs(t, c.SetPaid(ctx, 9, "1"), ErrIndex)
}

func TestContactsPhonePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewContacts(ctx, kvstore.NewMemoryStore(), nil)
	require.NoError(t, c.Add(ctx, "Decoradora", "21977776666"))
	require.NoError(t, c.Add(ctx, "Decoradora", "+5521977776666"))
	require.Equal(t, "+5521977776666", c.Items()[0].Phone)
	require.Equal(t, "+5521977776666", c.Items()[1].Phone)
}

func TestDates(t *testing.T) {
	ctx := context.Background()
	d := NewDates(ctx, kvstore.NewMemoryStore(), nil)
	require.ErrorIs(t, d.Add(ctx, "Cartório", "31/12/2026"), ErrDate)
	require.NoError(t, d.Add(ctx, "Cartório", "2026-10-01"))
	require.NoError(t, d.Add(ctx, "Cerimônia", "2027-03-13"))

	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)
	require.Equal(t, map[string]bool{"2026-10-01": true, "2027-03-13": false}, d.Marked(now))

	later := time.Date(2027, 3, 14, 0, 0, 0, 0, time.Local)
	require.Equal(t, map[string]bool{"2026-10-01": true, "2027-03-13": true}, d.Marked(later))
}

func TestLegacyRecordsGetIDs(t *testing.T) {
	ctx := context.Background()
	st := kvstore.NewMemoryStore()
	require.NoError(t, st.Set(ctx, kvstore.KeyTasks, `["✓ Buffet","Convites"]`))

	tasks := NewTasks(ctx, st, nil)
	items := tasks.Items()
	require.Len(t, items, 2)
	require.True(t, items[0].Done)
	require.NotEmpty(t, items[0].ID)
	require.Equal(t, 1, tasks.IndexOf(items[1].ID))
	require.Equal(t, -1, tasks.IndexOf("missing"))
}

func TestSimilarNames(t *testing.T) {
	ctx := context.Background()
	g := NewGuests(ctx, kvstore.NewMemoryStore(), nil)
	for _, n := range []string{"Ana", "Mariana", "Pedro"} {
		require.NoError(t, g.Add(ctx, n))
	}
	require.Equal(t, []string{"Ana"}, g.Similar("ana"))
	require.Equal(t, []string{"Ana"}, g.Similar("Anna"))
	require.Equal(t, []string{"Mariana"}, g.Similar("Marianna"))
	require.Empty(t, g.Similar("Zé"))
	require.Empty(t, g.Similar(" "))
}
