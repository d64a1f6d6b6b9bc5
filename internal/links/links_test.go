package links

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhatsApp(t *testing.T) {
	require.Equal(t, "whatsapp://send?phone=%2B5511999999999", WhatsApp("+5511999999999"))
}

func TestOpen(t *testing.T) {
	var got []string
	ok := OpenerFunc(func(u string) error { got = append(got, u); return nil })
	require.NoError(t, Open(ok, "Instagram", "https://www.instagram.com"))
	require.Equal(t, []string{"https://www.instagram.com"}, got)

	bad := OpenerFunc(func(string) error { return errors.New("no handler") })
	err := Open(bad, "o WhatsApp", WhatsApp("+55"))
	require.EqualError(t, err, "não foi possível abrir o WhatsApp: no handler")

	require.Error(t, Open(ok, "x", "  "))
	require.Len(t, got, 1)
}
