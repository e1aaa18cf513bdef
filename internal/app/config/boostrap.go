package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
	// SyncStop tears down the change-notification subscription; must run
	// exactly once on session end.
	SyncStop func()
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SyncStop != nil {
		b.SyncStop()
		log.Println("Successfully stopped change-notification listeners")
	}

	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped background workers")
	}

	err := b.MongoDB.Disconnect(ctx)
	if err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	err = b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	err = b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
