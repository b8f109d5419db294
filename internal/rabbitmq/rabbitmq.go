package rabbitmq

import (
	"context"
	"fmt"
	"schedtext/internal/core/domain/logging"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// reconnectDelay is the pause between reconnection attempts.
const reconnectDelay = 3 * time.Second

// Connection is an amqp.Connection that redials the broker when the
// connection drops.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{Connection: conn, log: log}
	go connection.watch(url)
	return connection, nil
}

func (c *Connection) watch(url string) {
	ctx := context.Background()
	for {
		reason, ok := <-c.Connection.NotifyClose(make(chan *amqp.Error))
		if !ok {
			c.log.Info(ctx, "RabbitMQ connection closed.")
			return
		}

		c.log.Warning(ctx, "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(reconnectDelay)

			conn, err := amqp.Dial(url)
			if err == nil {
				c.Connection = conn
				c.log.Info(ctx, "RabbitMQ reconnect success.")
				break
			}
			c.log.Error(ctx, "RabbitMQ reconnect failed.", logging.Entry("err", err))
		}
	}
}

// Channel opens a channel that is reopened whenever the broker closes it.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{Channel: ch, log: c.log}
	go channel.watch(c)
	return channel, nil
}

// Channel is an amqp.Channel that survives broker side closes.
type Channel struct {
	*amqp.Channel
	closed int32
	log    logging.Logger
}

func (ch *Channel) watch(c *Connection) {
	ctx := context.Background()
	for {
		reason, ok := <-ch.Channel.NotifyClose(make(chan *amqp.Error))
		if !ok || ch.IsClosed() {
			// Sets the closed flag when the connection went away first.
			ch.Close()
			return
		}

		ch.log.Warning(ctx, "RabbitMQ channel closed.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(reconnectDelay)

			reopened, err := c.Connection.Channel()
			if err == nil {
				ch.log.Info(ctx, "RabbitMQ channel reopened.")
				ch.Channel = reopened
				break
			}
			ch.log.Error(ctx, "RabbitMQ channel reopen failed.", logging.Entry("err", err))
		}
	}
}

// IsClosed reports whether Close has been called.
func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if !atomic.CompareAndSwapInt32(&ch.closed, 0, 1) {
		return amqp.ErrClosed
	}
	return ch.Channel.Close()
}

// Consume keeps delivering messages across channel reopenings until the
// channel is closed with Close.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)

	go func() {
		ctx := context.Background()
		defer close(deliveries)
		for {
			d, err := ch.Channel.Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				ch.log.Error(ctx, "Consume failed.", logging.Entry("queue", queue), logging.Entry("err", err))
				time.Sleep(reconnectDelay)
				if ch.IsClosed() {
					return
				}
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// The closed flag may be set shortly after the delivery channel ends.
			time.Sleep(reconnectDelay)

			if ch.IsClosed() {
				ch.log.Info(ctx, "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				return
			}
		}
	}()

	return deliveries, nil
}

// DeclareTopology declares a durable topic exchange and a durable queue
// bound to it by routingKey.
func (ch *Channel) DeclareTopology(exchange, queue, routingKey string) error {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("could not declare exchange %q: %w", exchange, err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("could not declare queue %q: %w", queue, err)
	}
	if err := ch.QueueBind(queue, routingKey, exchange, false, nil); err != nil {
		return fmt.Errorf("could not bind queue %q: %w", queue, err)
	}
	return nil
}
