package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"glowhaus/config"
	"glowhaus/models"
	"glowhaus/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReviewNotify = "review:notify"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}
}

// AsynqNotifier enqueues review notification tasks. It implements
// review.Notifier.
type AsynqNotifier struct {
	client *asynq.Client
}

// NewAsynqNotifier creates a notifier backed by the notify queue.
func NewAsynqNotifier() *AsynqNotifier {
	return &AsynqNotifier{client: asynq.NewClient(redisOpts())}
}

// NotifyNewReview enqueues a notification about a new pending review.
func (n *AsynqNotifier) NotifyNewReview(ctx context.Context, payload models.ReviewNotifyPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeReviewNotify, raw)
	_, err = n.client.EnqueueContext(ctx, task)
	return err
}

// Close releases the underlying queue client.
func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}

// InitReviewWorker runs the async worker in background. It consumes
// review notification tasks so operators learn about submissions
// awaiting moderation.
func InitReviewWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReviewNotify, handleReviewNotifyTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReviewWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReviewWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReviewWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReviewNotifyTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.ReviewNotifyPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("ReviewWorker: invalid payload", zap.Error(err))
		return err
	}

	// The operator-facing channel is the structured log for now; a chat
	// or email sink can hang off the same task type later.
	logger.Info("ReviewWorker: new review awaiting moderation",
		zap.String("reviewID", p.ReviewID),
		zap.String("reviewer", p.ReviewerName),
		zap.Int("rating", p.Rating),
		zap.String("submittedAt", p.SubmittedAt),
	)
	return nil
}
