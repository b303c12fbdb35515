// Package events streams booking lifecycle events to Kafka for downstream
// consumers (housekeeping, notifications, analytics).
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"tipton-reservations/internal/models"
)

// BookingEvent is the envelope published for every lifecycle transition.
type BookingEvent struct {
	Type               string         `json:"type"`
	BookingID          string         `json:"booking_id"`
	ConfirmationNumber string         `json:"confirmation_number"`
	Status             string         `json:"status"`
	OccurredAt         time.Time      `json:"occurred_at"`
	Booking            models.Booking `json:"booking"`
}

type Producer struct {
	Writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: brokers,
		Topic:   topic,
	})
	return &Producer{Writer: writer}
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}

// PublishBookingCreated streams the booking creation event to Kafka
func (p *Producer) PublishBookingCreated(booking models.Booking) error {
	return p.publish("booking_created", booking)
}

// PublishBookingConfirmed streams the payment confirmation event to Kafka
func (p *Producer) PublishBookingConfirmed(booking models.Booking) error {
	return p.publish("booking_confirmed", booking)
}

// PublishBookingModified streams the booking modification event to Kafka
func (p *Producer) PublishBookingModified(booking models.Booking) error {
	return p.publish("booking_modified", booking)
}

// PublishBookingCancelled streams the booking cancellation event to Kafka
func (p *Producer) PublishBookingCancelled(booking models.Booking) error {
	return p.publish("booking_cancelled", booking)
}

// PublishBookingVoided streams the booking void event to Kafka
func (p *Producer) PublishBookingVoided(booking models.Booking) error {
	return p.publish("booking_voided", booking)
}

func (p *Producer) publish(eventType string, booking models.Booking) error {
	event := BookingEvent{
		Type:               eventType,
		BookingID:          booking.ID,
		ConfirmationNumber: booking.ConfirmationNumber,
		Status:             string(booking.Status),
		OccurredAt:         time.Now().UTC(),
		Booking:            booking,
	}

	msgBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(booking.ID),
			Value: msgBytes,
		},
	)
}

// NoopPublisher satisfies the orchestrator's publisher when Kafka is
// disabled, e.g. in local development.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingCreated(models.Booking) error   { return nil }
func (NoopPublisher) PublishBookingConfirmed(models.Booking) error { return nil }
func (NoopPublisher) PublishBookingModified(models.Booking) error  { return nil }
func (NoopPublisher) PublishBookingCancelled(models.Booking) error { return nil }
func (NoopPublisher) PublishBookingVoided(models.Booking) error    { return nil }
