package notify

import (
	"encoding/json"
	"log"
	"os"

	"savoria/globals"
	"savoria/rdx"
)

// Booking lifecycle events are published to a Redis channel and consumed
// by a single worker goroutine, keeping slow SMTP calls off the request
// path.

const channel = "booking-events"

type EventType string

const (
	BookingCreated   EventType = "booking_created"
	ProposalSent     EventType = "proposal_sent"
	PaymentSubmitted EventType = "payment_submitted"
	BookingReserved  EventType = "booking_reserved"
)

type Event struct {
	Type  EventType `json:"type"`
	RefID string    `json:"refId"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Emit publishes a booking event. Failures are logged, never surfaced to
// the caller; the booking write already succeeded.
func Emit(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("notify: marshal event: %v", err)
		return
	}
	if err := rdx.Conn.Publish(globals.Ctx, channel, data).Err(); err != nil {
		log.Printf("notify: publish event: %v", err)
	}
}

// StartWorker consumes booking events and sends the matching emails.
// Run it in its own goroutine.
func StartWorker() {
	sub := rdx.Conn.Subscribe(globals.Ctx, channel)
	ch := sub.Channel()

	log.Println("notify: listening for booking events")
	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("notify: parse event: %v", err)
			continue
		}
		dispatch(event)
	}
}

func dispatch(event Event) {
	var err error
	switch event.Type {
	case BookingCreated:
		err = sendInquiryReceived(event)
	case ProposalSent:
		err = sendProposalLink(event)
	case PaymentSubmitted:
		err = sendPaymentReceived(event)
	case BookingReserved:
		err = sendReservationConfirmed(event)
	default:
		log.Printf("notify: unknown event type %q", event.Type)
		return
	}
	if err != nil {
		log.Printf("notify: send %s for %s: %v", event.Type, event.RefID, err)
	}
}

// ProposalURL builds the customer-facing proposal link for a booking.
func ProposalURL(refID string) string {
	base := os.Getenv("PROPOSAL_BASE_URL")
	if base == "" {
		base = "http://localhost:5173/proposal"
	}
	return base + "/" + refID
}
