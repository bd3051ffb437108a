package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/maazimam/parkeasy-sub000/internal/notification/mocks"
	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testEvent(kind domain.BookingEventKind) domain.BookingEvent {
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	return domain.BookingEvent{
		Kind: kind,
		Booking: &domain.Booking{
			ID:         "b1",
			ListingID:  "l1",
			RenterID:   "renter",
			Email:      "bob@example.com",
			Status:     domain.BookingStatusApproved,
			TotalPrice: decimal.RequireFromString("25"),
			Slots: []interval.Interval{{
				Start: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
			}},
		},
		Listing: &domain.Listing{ID: "l1", OwnerID: "owner", Title: "Driveway"},
		Renter:  &domain.User{ID: "renter", Username: "bob"},
		At:      at,
	}
}

func TestRender(t *testing.T) {
	subject, body := render(testEvent(domain.BookingApproved))

	assert.Equal(t, "Booking approved", subject)
	assert.Contains(t, body, "Your booking for Driveway was approved.")
	assert.Contains(t, body, "- Mon 02 Jun 2025 10:00 to Mon 02 Jun 2025 12:00")
	assert.Contains(t, body, "Total: $25.00")
}

func TestHub_DispatchesToEveryChannel(t *testing.T) {
	first := mocks.NewMockSender(t)
	second := mocks.NewMockSender(t)
	hub := NewHub(newTestLogger(t))
	hub.Register("first", first)
	hub.Register("second", second)

	event := testEvent(domain.BookingDeclined)
	first.EXPECT().Send(mock.Anything, event).Return(errors.New("smtp down"))
	second.EXPECT().Send(mock.Anything, event).Return(nil)

	hub.NotifyBookingDeclined(context.Background(), event)
}

func TestHub_StopsOnCancelledContext(t *testing.T) {
	sender := mocks.NewMockSender(t)
	hub := NewHub(newTestLogger(t))
	hub.Register("only", sender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hub.NotifyBookingCreated(ctx, testEvent(domain.BookingCreated))

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestTelegramSender_Disabled(t *testing.T) {
	s, err := NewTelegramSender("", newTestLogger(t))
	require.NoError(t, err)

	assert.NoError(t, s.Send(context.Background(), testEvent(domain.BookingApproved)))
}

func TestEmailSender_SendsToContactAddress(t *testing.T) {
	dialer := mocks.NewMockMailDialer(t)
	s := &EmailSender{client: dialer, from: "noreply@parkeasy.test", logger: newTestLogger(t)}

	dialer.EXPECT().DialAndSendWithContext(mock.Anything, mock.AnythingOfType("*mail.Msg")).
		Run(func(_ context.Context, messages ...*mail.Msg) {
			require.Len(t, messages, 1)
			rcpts, err := messages[0].GetRecipients()
			require.NoError(t, err)
			assert.Equal(t, []string{"bob@example.com"}, rcpts)
		}).
		Return(nil)

	require.NoError(t, s.Send(context.Background(), testEvent(domain.BookingApproved)))
}

func TestEmailSender_SkipsWithoutAddress(t *testing.T) {
	dialer := mocks.NewMockMailDialer(t)
	s := &EmailSender{client: dialer, from: "noreply@parkeasy.test", logger: newTestLogger(t)}

	event := testEvent(domain.BookingApproved)
	event.Booking.Email = ""

	assert.NoError(t, s.Send(context.Background(), event))
}

func TestEmailSender_Disabled(t *testing.T) {
	s, err := NewEmailSender(EmailConfig{}, newTestLogger(t))
	require.NoError(t, err)

	assert.NoError(t, s.Send(context.Background(), testEvent(domain.BookingApproved)))
}

func TestAMQPPublisher_PublishesJSON(t *testing.T) {
	ch := mocks.NewMockPublisher(t)
	p := &AMQPPublisher{ch: ch, exchange: "parkeasy.bookings", logger: newTestLogger(t)}

	ch.EXPECT().Publish("parkeasy.bookings", "booking.approved", false, false, mock.Anything).
		Run(func(_ string, _ string, _ bool, _ bool, msg amqp.Publishing) {
			assert.Equal(t, "application/json", msg.ContentType)
			assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

			body := string(msg.Body)
			assert.Equal(t, "booking.approved", gjson.Get(body, "kind").String())
			assert.Equal(t, "b1", gjson.Get(body, "booking_id").String())
			assert.Equal(t, "owner", gjson.Get(body, "owner_id").String())
			assert.Equal(t, "25", gjson.Get(body, "total_price").String())
			assert.Equal(t, int64(1), gjson.Get(body, "slots.#").Int())
		}).
		Return(nil)

	require.NoError(t, p.Send(context.Background(), testEvent(domain.BookingApproved)))
}

func TestAMQPPublisher_WrapsPublishError(t *testing.T) {
	ch := mocks.NewMockPublisher(t)
	p := &AMQPPublisher{ch: ch, exchange: "x", logger: newTestLogger(t)}

	ch.EXPECT().Publish("x", "booking.created", false, false, mock.Anything).Return(amqp.ErrClosed)

	err := p.Send(context.Background(), testEvent(domain.BookingCreated))
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestAMQPPublisher_Disabled(t *testing.T) {
	p, err := NewAMQPPublisher("", "x", newTestLogger(t))
	require.NoError(t, err)

	assert.NoError(t, p.Send(context.Background(), testEvent(domain.BookingCreated)))
	assert.NoError(t, p.Close())
}
