// Package links opens external URLs: social pages and WhatsApp chats.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// Opener hands a URL to the platform link handler.
type Opener interface {
	Open(u string) error
}

// BrowserOpener uses the desktop default handler.
type BrowserOpener struct{}

func (BrowserOpener) Open(u string) error { return browser.OpenURL(u) }

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(string) error

func (f OpenerFunc) Open(u string) error { return f(u) }

// WhatsApp builds the deep link that starts a chat with phone.
func WhatsApp(phone string) string {
	v := url.Values{}
	v.Set("phone", strings.TrimSpace(phone))
	return "whatsapp://send?" + v.Encode()
}

// Open validates u and passes it to o. label names the target in the error
// shown to the user.
func Open(o Opener, label, u string) error {
	if _, err := url.Parse(u); err != nil || strings.TrimSpace(u) == "" {
		return fmt.Errorf("não foi possível abrir %s: link inválido", label)
	}
	if err := o.Open(u); err != nil {
		return fmt.Errorf("não foi possível abrir %s: %w", label, err)
	}
	return nil
}

// Social is one entry of the about screen.
type Social struct {
	Label string
	URL   string
}
