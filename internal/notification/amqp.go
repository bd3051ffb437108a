package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"
	"github.com/wb-go/wbf/logger"
)

type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type eventMessage struct {
	Kind       domain.BookingEventKind `json:"kind"`
	BookingID  string                  `json:"booking_id"`
	ListingID  string                  `json:"listing_id"`
	OwnerID    string                  `json:"owner_id,omitempty"`
	RenterID   string                  `json:"renter_id"`
	Status     domain.BookingStatus    `json:"status"`
	TotalPrice decimal.Decimal         `json:"total_price"`
	Slots      []interval.Interval     `json:"slots"`
	At         time.Time               `json:"at"`
}

// AMQPPublisher publishes booking lifecycle events to a durable fanout
// exchange. The routing key is the event kind.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       publisher
	exchange string
	logger   logger.Logger
}

func NewAMQPPublisher(url, exchange string, log logger.Logger) (*AMQPPublisher, error) {
	if url == "" {
		log.Warn("amqp url is empty, event publishing disabled")
		return &AMQPPublisher{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	log.Info("amqp publisher ready", logger.String("exchange", exchange))

	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *AMQPPublisher) Send(_ context.Context, event domain.BookingEvent) error {
	if p.ch == nil || event.Booking == nil {
		return nil
	}

	msg := eventMessage{
		Kind:       event.Kind,
		BookingID:  event.Booking.ID,
		ListingID:  event.Booking.ListingID,
		RenterID:   event.Booking.RenterID,
		Status:     event.Booking.Status,
		TotalPrice: event.Booking.TotalPrice,
		Slots:      event.Booking.Slots,
		At:         event.At,
	}
	if event.Listing != nil {
		msg.OwnerID = event.Listing.OwnerID
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish(p.exchange, string(event.Kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.At,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Kind, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
