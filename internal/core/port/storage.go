package port

import (
	"context"

	"github.com/google/uuid"
	"meridianbank.com/fraudshield/internal/core/domain"
)

type BatchStorage interface {
	StoreBatch(ctx context.Context, batch *domain.Batch, transactions []domain.Transaction) error
	GetBatch(ctx context.Context, batchID uuid.UUID) (*domain.Batch, error)
	GetTransactions(ctx context.Context, batchID uuid.UUID) ([]domain.Transaction, error)
	StoreResults(ctx context.Context, results []domain.DetectionResult) error
	GetResults(ctx context.Context, batchID uuid.UUID) ([]domain.DetectionResult, error)
	GetStats(ctx context.Context) (*domain.Stats, error)
}
