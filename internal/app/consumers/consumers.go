package consumers

import (
	"context"
	"wellness/internal/app/deps"
	"wellness/internal/app/services"
	dl "wellness/internal/core/domain/logging"
	notificationready "wellness/internal/rabbitmq/consumers/notification_ready"
)

func initNotificationReadyConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqNotificationReadyQueue
	notificationReadyConsumer := notificationready.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.Config.RabbitmqDelayedExchange,
		queue,
		deps.Config.RabbitmqDeadLetterQueue,
		services.SendNotification,
	)
	if err = notificationReadyConsumer.Consume(); err != nil {
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

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	shutdownNotificationReadyConsumer := initNotificationReadyConsumer(deps, services)

	return func() {
		shutdownNotificationReadyConsumer()
	}
}
