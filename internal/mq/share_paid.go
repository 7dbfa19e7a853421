package mq

import (
	"context"
	"encoding/json"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type SharePaidHandler interface {
	MarkSharePaid(ctx context.Context, id, shareID string) (*domain.Reservation, error)
}

type deliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// SharePaidConsumer applies payment.share_paid signals to reservations.
type SharePaidConsumer struct {
	source  deliverySource
	handler SharePaidHandler
	logger  logger.Logger
}

func NewSharePaidConsumer(source deliverySource, handler SharePaidHandler, logger logger.Logger) *SharePaidConsumer {
	return &SharePaidConsumer{source: source, handler: handler, logger: logger}
}

// Run starts consuming in the background and returns once the subscription
// is established.
func (c *SharePaidConsumer) Run(ctx context.Context) error {
	msgs, err := c.source.Deliveries(ctx)
	if err != nil {
		return err
	}

	go func() {
		c.logger.Info("share paid consumer started")
		for d := range msgs {
			c.handle(ctx, d)
		}
		c.logger.Info("share paid consumer stopped")
	}()
	return nil
}

func (c *SharePaidConsumer) handle(ctx context.Context, d amqp.Delivery) {
	if d.RoutingKey != domain.SharePaidKey {
		_ = d.Ack(false)
		return
	}

	var msg domain.SharePaidMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.logger.Warn("share paid: malformed message dropped", logger.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}
	if msg.ReservationID == "" || msg.ShareID == "" {
		c.logger.Warn("share paid: invalid payload dropped")
		_ = d.Ack(false)
		return
	}

	_, err := c.handler.MarkSharePaid(ctx, msg.ReservationID, msg.ShareID)
	switch {
	case err == nil:
		_ = d.Ack(false)
	case isPermanent(err):
		// повторная доставка не изменит результат
		c.logger.Warn("share paid: signal rejected",
			logger.String("reservation_id", msg.ReservationID),
			logger.String("share_id", msg.ShareID),
			logger.String("error", err.Error()),
		)
		_ = d.Ack(false)
	default:
		c.logger.Error("share paid: requeue after failure",
			logger.String("reservation_id", msg.ReservationID),
			logger.String("error", err.Error()),
		)
		_ = d.Nack(false, true)
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrReservationNotFound) ||
		errors.Is(err, domain.ErrShareNotFound) ||
		errors.Is(err, domain.ErrHoldExpired) ||
		errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrValidation)
}
