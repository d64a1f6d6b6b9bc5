package planner

import (
	"context"
	"log"

	"github.com/Makepad-fr/wedplan/internal/links"
	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

// Contacts is the professionals' phone book.
type Contacts struct {
	list[model.Contact]
}

func NewContacts(ctx context.Context, st kvstore.Store, lg *log.Logger) *Contacts {
	c := &Contacts{newList(kvstore.KeyContacts, st, lg, func(v *model.Contact) *string { return &v.ID })}
	c.load(ctx)
	return c
}

// Add stores a contact. The phone always carries the +55 prefix, so only the
// name can be blank.
func (c *Contacts) Add(ctx context.Context, name, phone string) error {
	f, err := required(name)
	if err != nil {
		return err
	}
	return c.append(ctx, model.Contact{Name: f[0], Phone: model.NormalizePhone(phone)})
}

// WhatsAppURL is the chat deep link for the contact at i.
func (c *Contacts) WhatsAppURL(i int) (string, error) {
	it, err := c.At(i)
	if err != nil {
		return "", err
	}
	return links.WhatsApp(it.Phone), nil
}

func (c *Contacts) Similar(name string) []string {
	names := make([]string, len(c.items))
	for i, it := range c.items {
		names[i] = it.Name
	}
	return similarNames(names, name)
}
