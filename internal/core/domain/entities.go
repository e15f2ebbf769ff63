package domain

import (
	"time"

	"github.com/google/uuid"
)

// Label is the binary verdict produced by the anomaly scorer.
type Label string

const (
	LabelNormal     Label = "normal"
	LabelSuspicious Label = "suspicious"
)

// Transaction is a single row of a caller-submitted batch. Position is
// the zero-based index within the batch; results are always returned in
// Position order.
type Transaction struct {
	ID         uuid.UUID
	BatchID    uuid.UUID
	Amount     float64
	Merchant   string
	Category   string
	CustomerID string
	OccurredAt time.Time
	Position   int
}

// Batch groups the transactions submitted together in one upload.
type Batch struct {
	BatchID    uuid.UUID
	Size       int
	IngestedAt time.Time
}

// DetectionResult is derived from a Transaction by the scorer and is
// never mutated after creation.
type DetectionResult struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	BatchID       uuid.UUID `json:"batch_id"`
	Score         float64   `json:"score"`
	Label         Label     `json:"label"`
	Confidence    float64   `json:"confidence"`
	ModelVersion  string    `json:"model_version"`
	DetectedAt    time.Time `json:"detected_at"`
}

// Summary aggregates the detection results of one batch.
type Summary struct {
	BatchID         uuid.UUID `json:"batch_id"`
	Total           int       `json:"total"`
	NormalCount     int       `json:"normal_count"`
	SuspiciousCount int       `json:"suspicious_count"`
	MinScore        float64   `json:"min_score"`
	MaxScore        float64   `json:"max_score"`
	MeanScore       float64   `json:"mean_score"`
	ModelVersion    string    `json:"model_version"`
}

// DetectionReport is what a detect call hands back to the transport
// layer: the ordered per-transaction results plus their summary.
type DetectionReport struct {
	Results []DetectionResult `json:"results"`
	Summary Summary           `json:"summary"`
}

// Stats are service-wide counters across every scored batch.
type Stats struct {
	TotalTransactions      int64      `json:"total_transactions"`
	NormalTransactions     int64      `json:"normal_transactions"`
	SuspiciousTransactions int64      `json:"suspicious_transactions"`
	FraudRate              float64    `json:"fraud_rate"`
	LastDetectionAt        *time.Time `json:"last_detection_at,omitempty"`
}

// ComputeSummary folds a result slice into its Summary. Counts always
// sum to len(results).
func ComputeSummary(batchID uuid.UUID, results []DetectionResult) Summary {
	summary := Summary{BatchID: batchID, Total: len(results)}
	if len(results) == 0 {
		return summary
	}

	summary.ModelVersion = results[0].ModelVersion
	summary.MinScore = results[0].Score
	summary.MaxScore = results[0].Score

	var sum float64
	for _, result := range results {
		sum += result.Score
		if result.Score < summary.MinScore {
			summary.MinScore = result.Score
		}
		if result.Score > summary.MaxScore {
			summary.MaxScore = result.Score
		}
		if result.Label == LabelSuspicious {
			summary.SuspiciousCount++
		} else {
			summary.NormalCount++
		}
	}
	summary.MeanScore = sum / float64(len(results))

	return summary
}
