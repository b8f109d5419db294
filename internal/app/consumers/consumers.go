package consumers

import (
	"context"
	"schedtext/internal/app/deps"
	dl "schedtext/internal/core/domain/logging"
	schedulecreated "schedtext/internal/rabbitmq/consumers/schedule_created"
)

// initScheduleCreatedConsumer relays published schedules to the SSE stream,
// so every instance behind a load balancer notifies its own subscribers.
func initScheduleCreatedConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqSchedulesQueue
	scheduleCreatedConsumer := schedulecreated.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.ScheduleEvents,
	)
	if err = scheduleCreatedConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownScheduleCreatedConsumer := initScheduleCreatedConsumer(deps)

	return func() {
		shutdownScheduleCreatedConsumer()
	}
}
