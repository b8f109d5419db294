package schedulecreated

import (
	"context"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/logging"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/rabbitmq"
	"schedtext/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// Consumer relays schedule-created messages to a downstream publisher, the
// live event stream in practice.
type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	relay   schedule.Publisher
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	relay schedule.Publisher,
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
	if relay == nil {
		panic(e.NewNilArgumentError("relay"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, relay: relay}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			handle(context.Background(), c.log, c.relay, delivery.Body)
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

// handle relays one message body. Malformed bodies and relay failures are
// logged and dropped.
func handle(ctx context.Context, log logging.Logger, relay schedule.Publisher, body []byte) bool {
	message := &schema.ScheduleCreated{}
	if err := message.Unmarshal(body); err != nil {
		log.Error(
			ctx,
			"Could not unmarshal schedule.",
			logging.Entry("err", err),
			logging.Entry("body", string(body)),
		)
		return false
	}

	log.Info(ctx, "Got created schedule.", logging.Entry("scheduleID", message.ID))
	if err := relay.PublishSchedule(ctx, message.Schedule()); err != nil {
		log.Error(
			ctx,
			"Could not relay schedule.",
			logging.Entry("scheduleID", message.ID),
			logging.Entry("err", err),
		)
		return false
	}
	return true
}
