package port

import (
	"context"

	"github.com/google/uuid"
	"meridianbank.com/fraudshield/internal/core/domain"
)

type NotifierClient interface {
	NotifyBatchIngested(ctx context.Context, message *domain.BatchIngestedMessage) error
	NotifySuspiciousTransaction(ctx context.Context, message *domain.SuspiciousTransactionMessage) error
}

// SummaryCache is a read-through cache in front of BatchStorage for
// summaries and service-wide counters. A miss is (nil, nil). AddCounts
// takes deltas, negative when re-scoring a batch flips labels.
type SummaryCache interface {
	GetSummary(ctx context.Context, batchID uuid.UUID) (*domain.Summary, error)
	SetSummary(ctx context.Context, summary *domain.Summary) error
	AddCounts(ctx context.Context, normalDelta, suspiciousDelta int64) error
	GetStats(ctx context.Context) (*domain.Stats, error)
}
