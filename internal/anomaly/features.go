package anomaly

import (
	"hash/fnv"
	"math"

	"meridianbank.com/fraudshield/internal/core/domain"
)

// FeatureDim is the width of every feature vector the forest sees.
const FeatureDim = 5

// Features maps a transaction onto its numeric feature vector. String
// fields are FNV-hashed into fixed buckets so the mapping is stable
// across processes; empty fields land in bucket 0.
func Features(t domain.Transaction) []float64 {
	return []float64{
		t.Amount,
		hashBucket(t.Merchant, 1000),
		hashBucket(t.Category, 100),
		hashBucket(t.CustomerID, 1000),
		float64(t.OccurredAt.Hour()),
	}
}

func hashBucket(s string, buckets uint64) float64 {
	if s == "" {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte(s))
	return float64(h.Sum64() % buckets)
}

// Scaler standardizes feature vectors to zero mean and unit variance.
// It is fitted once on the training set and then frozen into the
// snapshot, so scoring-time inputs are scaled against the training
// distribution rather than against themselves.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// FitScaler computes per-feature mean and standard deviation. Constant
// features get Std 1 so Transform leaves them centered at zero instead
// of dividing by zero.
func FitScaler(data [][]float64) *Scaler {
	dim := len(data[0])
	scaler := &Scaler{
		Mean: make([]float64, dim),
		Std:  make([]float64, dim),
	}

	for _, row := range data {
		for j, v := range row {
			scaler.Mean[j] += v
		}
	}
	n := float64(len(data))
	for j := range scaler.Mean {
		scaler.Mean[j] /= n
	}

	for _, row := range data {
		for j, v := range row {
			d := v - scaler.Mean[j]
			scaler.Std[j] += d * d
		}
	}
	for j := range scaler.Std {
		scaler.Std[j] = math.Sqrt(scaler.Std[j] / n)
		if scaler.Std[j] == 0 {
			scaler.Std[j] = 1
		}
	}

	return scaler
}

// Transform returns a scaled copy of vec.
func (s *Scaler) Transform(vec []float64) []float64 {
	out := make([]float64, len(vec))
	for j, v := range vec {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out
}
