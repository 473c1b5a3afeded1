package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tazaticket/config"
	"tazaticket/models"
	"tazaticket/services/tasks"
	"tazaticket/services/whatsapp"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitDeliveryWorker runs the async outbound-delivery worker in background.
func InitDeliveryWorker(sender whatsapp.Sender) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDeliverMessage, handleDeliveryTask(sender))

	go monitorRedisConnection()

	go func() {
		log.Println("[DeliveryWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DeliveryWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DeliveryWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDeliveryTask(sender whatsapp.Sender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var msg models.OutboundMessage
		if err := json.Unmarshal(task.Payload(), &msg); err != nil {
			log.Printf("[DeliveryWorker] 🔴 Invalid payload: %v", err)
			return err
		}

		if err := sender.Send(ctx, msg); err != nil {
			// Returning the error lets asynq retry with backoff.
			log.Printf("[DeliveryWorker] ❌ Send to %s failed: %v", msg.To, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[DeliveryWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
