package notificationready

import (
	"context"
	"time"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/core/domain/user"
	"wellness/internal/core/services"
	sendnotification "wellness/internal/core/services/send_notification"
	"wellness/internal/rabbitmq"
	"wellness/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

const (
	attemptHeader = "x-attempt"
	maxAttempts   = 5
	retryDelayMs  = 30_000
)

// Consumer delivers due occurrences. A failed delivery is republished with a
// delay up to maxAttempts times, then parked on the dead letter queue.
type Consumer struct {
	log             logging.Logger
	channel         *rabbitmq.Channel
	queue           string
	retryExchange   string
	retryRoutingKey string
	deadLetterQueue string
	service         services.Service[sendnotification.Input, sendnotification.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	retryExchange string,
	retryRoutingKey string,
	deadLetterQueue string,
	service services.Service[sendnotification.Input, sendnotification.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if deadLetterQueue == "" {
		panic("dead letter queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{
		log:             log,
		channel:         channel,
		queue:           queue,
		retryExchange:   retryExchange,
		retryRoutingKey: retryRoutingKey,
		deadLetterQueue: deadLetterQueue,
		service:         service,
	}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.handle(delivery)
		}
	}()
	return nil
}

func (c *Consumer) handle(delivery amqp091.Delivery) {
	ctx := context.Background()

	msg := &schema.Dispatch{}
	if err := msg.Unmarshal(delivery.Body); err != nil {
		c.log.Error(
			ctx,
			"Could not unmarshal dispatch.",
			logging.Entry("err", err),
			logging.Entry("delivery", delivery),
		)
		c.Ack(delivery)
		return
	}

	c.log.Info(ctx, "Got ready for sending dispatch.", logging.Entry("dispatch", msg))
	_, err := c.service.Run(ctx, sendnotification.Input{
		EntryID: reminder.EntryID(msg.EntryID),
		UserID:  user.ID(msg.UserID),
		FireAt:  msg.FireAt,
	})
	if err != nil {
		c.log.Error(
			ctx,
			"Could not send notification, service returned an error.",
			logging.Entry("dispatch", msg),
			logging.Entry("err", err),
		)
		c.retry(ctx, delivery)
	}
	c.Ack(delivery)
}

func (c *Consumer) retry(ctx context.Context, delivery amqp091.Delivery) {
	attempt := attemptFrom(delivery)
	if attempt >= maxAttempts {
		c.deadLetter(ctx, delivery, attempt)
		return
	}

	err := c.channel.PublishWithContext(
		ctx,
		c.retryExchange,
		c.retryRoutingKey,
		false,
		false,
		amqp091.Publishing{
			Headers: amqp091.Table{
				"x-delay":     int64(retryDelayMs * attempt),
				attemptHeader: attempt + 1,
			},
			ContentType: "application/json",
			Body:        delivery.Body,
		},
	)
	if err != nil {
		c.log.Error(ctx, "Could not republish for retry.", logging.Entry("err", err))
		return
	}
	c.log.Warning(ctx, "Dispatch republished for retry.", logging.Entry("attempt", attempt))
}

func (c *Consumer) deadLetter(ctx context.Context, delivery amqp091.Delivery, attempt int64) {
	err := c.channel.PublishWithContext(ctx, "", c.deadLetterQueue, false, false, amqp091.Publishing{
		Headers:     amqp091.Table{attemptHeader: attempt, "x-parked-at": time.Now().UTC().String()},
		ContentType: "application/json",
		Body:        delivery.Body,
	})
	if err != nil {
		c.log.Error(ctx, "Could not publish to the dead letter queue.", logging.Entry("err", err))
		return
	}
	c.log.Error(
		ctx,
		"Dispatch exhausted all delivery attempts, parked on the dead letter queue.",
		logging.Entry("attempt", attempt),
	)
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

func attemptFrom(delivery amqp091.Delivery) int64 {
	raw, ok := delivery.Headers[attemptHeader]
	if !ok {
		return 1
	}
	switch v := raw.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 1
	}
}
