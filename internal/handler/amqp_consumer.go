package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/core/domain"
	"meridianbank.com/fraudshield/internal/core/port"
)

type detectionJob struct {
	message domain.BatchIngestedMessage
}

// AMQPConsumer handles ingested-batch messages with a bounded worker
// pool running batch detection.
type AMQPConsumer struct {
	detectionService port.DetectionService
	validate         *validator.Validate
	jobQueue         chan detectionJob
	wg               sync.WaitGroup
	numWorkers       int
}

func NewAMQPConsumer(
	detectionService port.DetectionService,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *AMQPConsumer {
	return &AMQPConsumer{
		detectionService: detectionService,
		validate:         validate,
		jobQueue:         make(chan detectionJob, queueSize),
		numWorkers:       numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *AMQPConsumer) Start(ctx context.Context) {
	for i := range c.numWorkers {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d detection workers", c.numWorkers)
}

// Stop gracefully shuts down workers after draining the queue.
func (c *AMQPConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All detection workers stopped after draining the queue")
	case <-ctx.Done():
		log.Info("Detection workers stopped by shutdown deadline")
	}
}

func (c *AMQPConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[DetectionWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[DetectionWorker %d] Queue closed, stopping", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			if _, err := c.detectionService.DetectBatch(jobCtx, job.message.BatchID); err != nil {
				log.WithError(err).WithField("batchID", job.message.BatchID).Error("Batch detection failed")
			}
			cancel()
		}
	}
}

func (c *AMQPConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeyBatchIngested:
		err = c.handleBatchIngestedMessage(ctx, delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		delivery.Nack(false, false) // Send to a retry / dead-letter queue instead
		return
	}
	delivery.Ack(false)
}

func (c *AMQPConsumer) handleBatchIngestedMessage(_ context.Context, delivery *amqp.Delivery) error {
	var message domain.BatchIngestedMessage

	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		log.Errorf("failed to unmarshal batch message: %v", err)
		return err
	}

	if err := c.validate.Struct(message); err != nil {
		log.Errorf("batch message validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"batchID":    message.BatchID,
		"size":       message.Size,
		"ingestedAt": message.IngestedAt,
	}).Info("Received batch for anomaly detection")

	// Submit to worker pool (blocks if queue is full, providing backpressure)
	c.jobQueue <- detectionJob{message: message}

	return nil
}
