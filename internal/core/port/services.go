package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"meridianbank.com/fraudshield/internal/core/domain"
)

// ModelSnapshot is one immutable trained model version. All methods are
// pure; concurrent use needs no locking.
type ModelSnapshot interface {
	Version() string
	TrainedAt() time.Time
	Score(t domain.Transaction) float64
	Classify(score float64) domain.Label
	Confidence(score float64) float64
}

// Scorer owns the currently published snapshot. Snapshot returns the
// active version or anomaly.ErrModelNotReady before the first Fit; Fit
// builds a new version and atomically publishes it, leaving snapshots
// handed out earlier untouched.
type Scorer interface {
	Snapshot() (ModelSnapshot, error)
	Fit(transactions []domain.Transaction) (ModelSnapshot, error)
}

type IngestionService interface {
	IngestBatch(ctx context.Context, transactions []domain.Transaction) (*domain.Batch, error)
}

type DetectionService interface {
	DetectBatch(ctx context.Context, batchID uuid.UUID) (*domain.DetectionReport, error)
	Summarize(ctx context.Context, batchID uuid.UUID) (*domain.Summary, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type TrainingService interface {
	TrainFromBatch(ctx context.Context, batchID uuid.UUID) (string, error)
	TrainFromDataset(ctx context.Context, transactions []domain.Transaction) (string, error)
}
