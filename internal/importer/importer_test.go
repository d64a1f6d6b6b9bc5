package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/wedplan/internal/planner"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

const plan = `
[[task]]
text = "Contratar buffet"
done = true

[[task]]
text = "Enviar convites"

[[guest]]
name = "Família Souza"
count = 4

[[guest]]
name = "Ana"

[[cost]]
name = "Fotógrafo"
total = "4500"
paid = "1000"

[[contact]]
name = "Cerimonialista"
phone = "11912345678"

[[date]]
name = "Degustação"
date = "2026-11-20"

[[date]]
name = ""
date = "2026-11-21"
`

func TestApply(t *testing.T) {
	ctx := context.Background()
	p, err := Decode(strings.NewReader(plan))
	require.NoError(t, err)

	pl := planner.Open(ctx, kvstore.NewMemoryStore(), nil)
	res, err := Apply(ctx, p, pl)
	require.ErrorIs(t, err, planner.ErrBlank)
	require.Contains(t, err.Error(), "date 2")
	require.Equal(t, Result{Tasks: 2, Guests: 2, Costs: 1, Contacts: 1, Dates: 1}, res)
	require.Equal(t, 7, res.Total())

	require.True(t, pl.Tasks.Items()[0].Done)
	require.False(t, pl.Tasks.Items()[1].Done)
	require.Equal(t, 5, pl.Guests.Total())
	require.Equal(t, "+5511912345678", pl.Contacts.Items()[0].Phone)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("[[guest]]\nnome = \"Ana\"\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "nome")
}
