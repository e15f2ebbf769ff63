package anomaly

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/core/domain"
	"meridianbank.com/fraudshield/internal/core/port"
)

// Detector owns the published snapshot. Scoring reads go through an
// atomic pointer and never block; Fit is the only mutator and is
// serialized, building the new snapshot fully before swapping it in.
type Detector struct {
	cfg      Config
	modelDir string

	current atomic.Pointer[Snapshot]
	fitMu   sync.Mutex
}

var _ port.Scorer = (*Detector)(nil)

// NewDetector returns an untrained detector. modelDir may be empty, in
// which case snapshots are kept in memory only.
func NewDetector(cfg Config, modelDir string) *Detector {
	return &Detector{cfg: cfg, modelDir: modelDir}
}

// Ready reports whether a snapshot has been published.
func (d *Detector) Ready() bool {
	return d.current.Load() != nil
}

// Snapshot returns the active model version, or ErrModelNotReady before
// the first Fit or Restore.
func (d *Detector) Snapshot() (port.ModelSnapshot, error) {
	snap := d.current.Load()
	if snap == nil {
		return nil, ErrModelNotReady
	}
	return snap, nil
}

// Fit trains a new snapshot over the transactions and publishes it.
// In-flight scoring against a previously returned snapshot is not
// affected. When a model dir is configured the snapshot is persisted
// before publication, so a crash between the two never loses the
// active version.
func (d *Detector) Fit(transactions []domain.Transaction) (port.ModelSnapshot, error) {
	d.fitMu.Lock()
	defer d.fitMu.Unlock()

	snap, err := d.train(transactions)
	if err != nil {
		return nil, err
	}

	if d.modelDir != "" {
		if err := saveSnapshot(d.modelDir, snap); err != nil {
			return nil, fmt.Errorf("persist snapshot %s: %w", snap.version, err)
		}
	}

	d.current.Store(snap)
	log.WithFields(log.Fields{
		"version":   snap.version,
		"samples":   len(transactions),
		"threshold": snap.threshold,
	}).Info("Published new model snapshot")

	return snap, nil
}

// Restore loads the current persisted snapshot from the model dir and
// publishes it. Returns ErrModelNotReady when nothing has been
// persisted yet.
func (d *Detector) Restore() error {
	d.fitMu.Lock()
	defer d.fitMu.Unlock()

	if d.modelDir == "" {
		return ErrModelNotReady
	}
	snap, err := loadCurrentSnapshot(d.modelDir)
	if err != nil {
		return err
	}

	d.current.Store(snap)
	log.WithFields(log.Fields{
		"version":    snap.version,
		"trained_at": snap.trainedAt,
	}).Info("Restored model snapshot from disk")

	return nil
}

func (d *Detector) train(transactions []domain.Transaction) (*Snapshot, error) {
	if len(transactions) == 0 {
		return nil, &InvalidInputError{Reason: "empty training batch"}
	}

	data := make([][]float64, len(transactions))
	for i, t := range transactions {
		vec := Features(t)
		if len(vec) != FeatureDim {
			return nil, &InvalidInputError{
				Reason: fmt.Sprintf("feature vector at row %d has %d dimensions, want %d", i, len(vec), FeatureDim),
			}
		}
		data[i] = vec
	}

	scaler := FitScaler(data)
	scaled := make([][]float64, len(data))
	for i, vec := range data {
		scaled[i] = scaler.Transform(vec)
	}

	forest := FitForest(scaled, d.cfg.NumTrees, d.cfg.SampleSize, d.cfg.Seed)

	threshold := d.cfg.Threshold
	if threshold == 0 {
		threshold = contaminationThreshold(forest, scaled, d.cfg.Contamination)
	}

	return &Snapshot{
		version:   uuid.NewString(),
		trainedAt: time.Now().UTC(),
		forest:    forest,
		scaler:    scaler,
		threshold: threshold,
	}, nil
}

// contaminationThreshold picks the cutoff so that roughly a
// contamination-sized fraction of the training set scores above it.
func contaminationThreshold(forest *Forest, scaled [][]float64, contamination float64) float64 {
	scores := make([]float64, len(scaled))
	for i, vec := range scaled {
		scores[i] = forest.Score(vec)
	}
	sort.Float64s(scores)

	idx := int(float64(len(scores)) * (1 - contamination))
	if idx >= len(scores) {
		idx = len(scores) - 1
	}
	return scores[idx]
}
