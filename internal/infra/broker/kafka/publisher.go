package kafka

import (
	"context"
	"encoding/json"

	"bluehaven/internal/usecase/shared"
)

// BookingPublisher emits booking lifecycle events keyed by reservation id so
// one stay's events stay ordered within a partition.
type BookingPublisher struct {
	producer *Producer
	topic    string
}

func NewBookingPublisher(producer *Producer, topic string) *BookingPublisher {
	return &BookingPublisher{producer: producer, topic: topic}
}

func (p *BookingPublisher) Publish(ctx context.Context, e shared.BookingEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	key := e.ReservationID
	if key == "" {
		key = string(e.Type)
	}
	return p.producer.Publish(ctx, p.topic, key, payload, map[string]string{
		"event-type":   string(e.Type),
		"content-type": "application/json",
	})
}
