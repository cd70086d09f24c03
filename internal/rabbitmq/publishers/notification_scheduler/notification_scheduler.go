package notificationscheduler

import (
	"context"
	"time"
	e "wellness/internal/core/domain/errors"
	"wellness/internal/core/domain/logging"
	"wellness/internal/core/domain/reminder"
	"wellness/internal/rabbitmq"
	"wellness/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
	now        func() time.Time
}

func NewRabbitMQ(
	log logging.Logger,
	channel *rabbitmq.Channel,
	exchange string,
	routingKey string,
	now func() time.Time,
) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey, now: now}
}

// ScheduleDispatch publishes the occurrence to a delayed exchange. The broker
// holds the message for x-delay milliseconds, so an occurrence due in the
// past is delivered immediately.
func (s *RabbitMQ) ScheduleDispatch(ctx context.Context, d reminder.Dispatch) error {
	msg := schema.Dispatch{
		EntryID: string(d.EntryID),
		UserID:  string(d.UserID),
		FireAt:  d.FireAt,
	}
	body, err := msg.Marshal()
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entryID", d.EntryID))
		return err
	}

	delayMs := d.FireAt.Sub(s.now()).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}

	err = s.channel.PublishWithContext(ctx, s.exchange, s.routingKey, false, false, amqp091.Publishing{
		Headers:     amqp091.Table{"x-delay": delayMs},
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("entryID", d.EntryID))
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", s.exchange),
		logging.Entry("RK", s.routingKey),
		logging.Entry("entryID", d.EntryID),
		logging.Entry("delayMs", delayMs),
	)
	return nil
}
