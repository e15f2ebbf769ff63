package domain

import (
	"time"

	"github.com/google/uuid"
)

var (
	RoutingKeyBatchIngested = "transaction.batch.ingested"
	RoutingKeyFraudDetected = "transaction.fraud.detected"
)

const (
	TransactionExchange = "transaction"
	AnalysisQueue       = "transaction.analysis"
)

// BatchIngestedMessage announces that a batch has been stored and is
// ready for asynchronous scoring.
type BatchIngestedMessage struct {
	BatchID    uuid.UUID `json:"batch_id" validate:"required"`
	Size       int       `json:"size" validate:"required,gt=0,lte=10000"`
	IngestedAt time.Time `json:"ingested_at" validate:"required"`
}

// SuspiciousTransactionMessage is published for every result the scorer
// labels suspicious.
type SuspiciousTransactionMessage struct {
	Result     DetectionResult `json:"result"`
	DetectedAt time.Time       `json:"detected_at"`
}
