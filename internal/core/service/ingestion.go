package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/anomaly"
	"meridianbank.com/fraudshield/internal/core/domain"
	"meridianbank.com/fraudshield/internal/core/port"
)

type IngestionService struct {
	storage        port.BatchStorage
	notifierClient port.NotifierClient
}

func NewIngestionService(
	storage port.BatchStorage,
	notifierClient port.NotifierClient,
) *IngestionService {
	return &IngestionService{
		storage:        storage,
		notifierClient: notifierClient,
	}
}

// IngestBatch assigns batch and transaction identifiers, persists the
// batch in submission order and announces it for asynchronous scoring.
func (i *IngestionService) IngestBatch(ctx context.Context, transactions []domain.Transaction) (*domain.Batch, error) {
	if len(transactions) == 0 {
		return nil, &anomaly.InvalidInputError{Reason: "empty batch"}
	}

	batch := &domain.Batch{
		BatchID:    uuid.New(),
		Size:       len(transactions),
		IngestedAt: time.Now().UTC(),
	}

	for idx := range transactions {
		if transactions[idx].ID == uuid.Nil {
			transactions[idx].ID = uuid.New()
		}
		transactions[idx].BatchID = batch.BatchID
		transactions[idx].Position = idx
	}

	if err := i.storage.StoreBatch(ctx, batch, transactions); err != nil {
		return nil, err
	}

	message := &domain.BatchIngestedMessage{
		BatchID:    batch.BatchID,
		Size:       batch.Size,
		IngestedAt: batch.IngestedAt,
	}
	if err := i.notifierClient.NotifyBatchIngested(ctx, message); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"batchID": batch.BatchID,
		"size":    batch.Size,
	}).Info("Batch ingested")

	return batch, nil
}
