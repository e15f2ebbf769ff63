package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/core/domain"
	"meridianbank.com/fraudshield/internal/core/port"
)

type TrainingService struct {
	storage port.BatchStorage
	scorer  port.Scorer

	// Single writer: concurrent retrain requests queue up here while
	// scoring reads continue against the published snapshot.
	mu sync.Mutex
}

func NewTrainingService(storage port.BatchStorage, scorer port.Scorer) *TrainingService {
	return &TrainingService{
		storage: storage,
		scorer:  scorer,
	}
}

// TrainFromBatch retrains the model on a previously ingested batch and
// returns the new snapshot version.
func (t *TrainingService) TrainFromBatch(ctx context.Context, batchID uuid.UUID) (string, error) {
	transactions, err := t.storage.GetTransactions(ctx, batchID)
	if err != nil {
		return "", err
	}
	if len(transactions) == 0 {
		return "", fmt.Errorf("batch %s has no transactions", batchID)
	}

	return t.TrainFromDataset(ctx, transactions)
}

// TrainFromDataset fits a new snapshot over the given transactions.
func (t *TrainingService) TrainFromDataset(_ context.Context, transactions []domain.Transaction) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot, err := t.scorer.Fit(transactions)
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"version": snapshot.Version(),
		"samples": len(transactions),
	}).Info("Model retrained")

	return snapshot.Version(), nil
}
