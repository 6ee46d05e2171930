package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/skybooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s for booking %s (%d legs)\n", event.Email, event.Type, event.BookingReference, len(event.FlightIDs))
	return nil
}
