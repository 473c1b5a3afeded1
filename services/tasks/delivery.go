package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"tazaticket/config"
	"tazaticket/models"

	"github.com/hibiken/asynq"
)

const TypeDeliverMessage = "message:deliver"

// NewDeliveryTask wraps an outbound message as an asynq task. Deliveries
// retry with backoff; a retried send never re-runs the conversation turn that
// produced it.
func NewDeliveryTask(msg models.OutboundMessage) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeliverMessage, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// Queue enqueues outbound deliveries onto the Redis-backed worker.
type Queue struct {
	client *asynq.Client
}

func NewQueue() *Queue {
	return &Queue{client: asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})}
}

func (q *Queue) Enqueue(msg models.OutboundMessage) error {
	task, opts, err := NewDeliveryTask(msg)
	if err != nil {
		return fmt.Errorf("failed to build delivery task: %w", err)
	}
	if _, err := q.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue delivery: %w", err)
	}
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}
