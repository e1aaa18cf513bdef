package activitylog

import (
	"context"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	ActivityQueueName = "pulseflow_activity_queue"
)

// Service publishes attributed activity records to RabbitMQ. Append is
// fire-and-forget: publish failures are logged and swallowed so they never
// block or fail the mutation they annotate.
type Service struct {
	ch  *amqp.Channel
	log *zap.Logger
	mu  sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		ActivityQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{ch: ch, log: log}, nil
}

func (s *Service) Append(ctx context.Context, userID, action, resourceType, resourceID, details string) {
	record := models.ActivityRecord{
		ID:           utils.NewEntityID(),
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		CreatedAt:    time.Now().UTC(),
	}

	body, err := json.Marshal(record)
	if err != nil {
		s.log.Warn("activity record marshal failed",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.ch.PublishWithContext(ctx,
		"",                // exchange
		ActivityQueueName, // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.log.Warn("activity record publish failed",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.String(constvars.LoggingResourceIDKey, resourceID),
			zap.Error(err),
		)
	}
}

var _ contracts.ActivityLogger = (*Service)(nil)
