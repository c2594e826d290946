// Package kafka publishes shipment lifecycle events to a Kafka topic.
// Publishing is best effort: command handlers call the publisher after a
// successful commit, and a broker failure is logged here rather than
// propagated into the business flow.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"

	"github.com/segmentio/kafka-go"
)

// writer is the subset of kafka.Writer the publisher needs, kept narrow so
// tests can substitute it.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// statusChangedEvent is the wire payload for shipment status changes.
type statusChangedEvent struct {
	ShipmentID string    `json:"shipmentId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ShipmentEventPublisher implements ports.ShipmentEventPublisher over a
// Kafka topic.
type ShipmentEventPublisher struct {
	writer writer
	logger *slog.Logger
}

// NewShipmentEventPublisher creates a publisher writing to the given broker
// and topic.
func NewShipmentEventPublisher(brokerURL, topic string, logger *slog.Logger) *ShipmentEventPublisher {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &ShipmentEventPublisher{
		writer: w,
		logger: logger,
	}
}

// PublishStatusChanged emits a status change event keyed by shipment ID, so
// events for one shipment stay ordered within a partition. Failures are
// logged and returned; callers decide whether to care.
func (p *ShipmentEventPublisher) PublishStatusChanged(
	ctx context.Context,
	shipmentID kernel.UUID,
	status shipment.Status,
) error {
	event := statusChangedEvent{
		ShipmentID: shipmentID.String(),
		Status:     status.String(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal shipment status event", "shipmentId", shipmentID.String(), "error", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(shipmentID.String()),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("publish shipment status event",
			"shipmentId", shipmentID.String(),
			"status", status.String(),
			"error", err,
		)
		return err
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *ShipmentEventPublisher) Close() error {
	return p.writer.Close()
}
