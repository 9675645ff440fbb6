package core

import (
	"crypto/rand"
	"fmt"

	"github.com/jonboulle/clockwork"
)

const (
	ticketPrefix       = "H"
	ticketRandomLength = 9
	ticketAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// TicketIDGenerator mints certificate ticket identifiers: a type prefix,
// a crypto-random alphanumeric component, and a coarse unix timestamp.
// Uniqueness is the only guarantee; IDs carry no ordering.
type TicketIDGenerator struct {
	clock clockwork.Clock
}

func NewTicketIDGenerator(clock clockwork.Clock) *TicketIDGenerator {
	return &TicketIDGenerator{clock: clock}
}

func (g *TicketIDGenerator) Next() string {
	b := make([]byte, ticketRandomLength)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand: " + err.Error())
	}
	for i := range b {
		b[i] = ticketAlphabet[b[i]%byte(len(ticketAlphabet))]
	}
	return fmt.Sprintf("%s%s%d", ticketPrefix, b, g.clock.Now().Unix())
}
