package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"wellness/internal/app/consumers"
	"wellness/internal/app/deps"
	"wellness/internal/app/services"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	services := services.InitServices(deps)

	shutdownConsumers := consumers.InitConsumers(deps, services)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	deps.Logger.Info(context.Background(), "Notification consumer is running.")
	<-stopCh
	deps.Logger.Info(context.Background(), "Stopping notification consumer.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
