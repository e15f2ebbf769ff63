package anomaly

import (
	"math"
	"time"

	"meridianbank.com/fraudshield/internal/core/domain"
)

// confidenceSlope controls how fast confidence saturates as a score
// moves away from the threshold.
const confidenceSlope = 8.0

// Snapshot is one immutable trained model version: forest, scaler and
// threshold frozen together. Every method is a pure read, so a snapshot
// may be shared by any number of goroutines.
type Snapshot struct {
	version   string
	trainedAt time.Time
	forest    *Forest
	scaler    *Scaler
	threshold float64
}

func (s *Snapshot) Version() string      { return s.version }
func (s *Snapshot) TrainedAt() time.Time { return s.trainedAt }
func (s *Snapshot) Threshold() float64   { return s.threshold }

// Score returns the anomaly score of t in (0, 1], higher = more
// anomalous. Deterministic for a fixed snapshot.
func (s *Snapshot) Score(t domain.Transaction) float64 {
	return s.forest.Score(s.scaler.Transform(Features(t)))
}

// Classify thresholds a score into the binary verdict.
func (s *Snapshot) Classify(score float64) domain.Label {
	if score >= s.threshold {
		return domain.LabelSuspicious
	}
	return domain.LabelNormal
}

// Confidence maps the distance between score and threshold onto [0, 1)
// with a normalized sigmoid. It is monotonic in the distance and is a
// display value, not a calibrated probability.
func (s *Snapshot) Confidence(score float64) float64 {
	d := math.Abs(score - s.threshold)
	return 2/(1+math.Exp(-confidenceSlope*d)) - 1
}
