package schedulepublisher

import (
	"context"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/logging"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/rabbitmq"
	"schedtext/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishSchedule(ctx context.Context, s schedule.Schedule) error {
	message := schema.NewScheduleCreated(s)
	body, err := message.Marshal()
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("scheduleID", s.ID))
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("scheduleID", s.ID))
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("scheduleID", s.ID),
	)
	return nil
}
