package notification

import (
	"fmt"
	"strings"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
)

const slotLayout = "Mon 02 Jan 2006 15:04"

// render returns the subject and plain-text body sent to the renter.
func render(event domain.BookingEvent) (string, string) {
	title := "your parking spot"
	if event.Listing != nil {
		title = event.Listing.Title
	}

	var subject, lead string
	switch event.Kind {
	case domain.BookingCreated:
		subject = "Booking request sent"
		lead = fmt.Sprintf("Your request for %s was sent to the owner and is waiting for approval.", title)
	case domain.BookingApproved:
		subject = "Booking approved"
		lead = fmt.Sprintf("Your booking for %s was approved.", title)
	case domain.BookingDeclined:
		subject = "Booking declined"
		lead = fmt.Sprintf("Your booking for %s was declined by the owner.", title)
	case domain.BookingCancelled:
		subject = "Booking cancelled"
		lead = fmt.Sprintf("Your booking for %s was cancelled.", title)
	default:
		subject = "Booking update"
		lead = fmt.Sprintf("Your booking for %s was updated.", title)
	}

	var b strings.Builder
	b.WriteString(lead)
	if bk := event.Booking; bk != nil {
		b.WriteString("\n\nTimes (local to the spot):\n")
		for _, s := range bk.Slots {
			fmt.Fprintf(&b, "- %s to %s\n", s.Start.Format(slotLayout), s.End.Format(slotLayout))
		}
		fmt.Fprintf(&b, "\nTotal: $%s", bk.TotalPrice.StringFixed(2))
	}

	return subject, b.String()
}
