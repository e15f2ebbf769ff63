package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/core/domain"
	"meridianbank.com/fraudshield/internal/core/port"
)

type DetectionService struct {
	storage        port.BatchStorage
	scorer         port.Scorer
	notifierClient port.NotifierClient
	cache          port.SummaryCache
}

func NewDetectionService(
	storage port.BatchStorage,
	scorer port.Scorer,
	notifierClient port.NotifierClient,
	cache port.SummaryCache,
) *DetectionService {
	return &DetectionService{
		storage:        storage,
		scorer:         scorer,
		notifierClient: notifierClient,
		cache:          cache,
	}
}

// DetectBatch scores every transaction of the batch against a single
// model snapshot pinned for the whole call, so a concurrent retrain
// never mixes versions within one batch. Either all results are
// persisted and returned or none are.
func (d *DetectionService) DetectBatch(ctx context.Context, batchID uuid.UUID) (*domain.DetectionReport, error) {
	snapshot, err := d.scorer.Snapshot()
	if err != nil {
		return nil, err
	}

	transactions, err := d.storage.GetTransactions(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, fmt.Errorf("batch %s has no transactions", batchID)
	}

	// Results of an earlier run, if any. Re-scoring replaces them, so
	// the service-wide counters must move by the delta, not the total.
	previous, err := d.storage.GetResults(ctx, batchID)
	if err != nil {
		return nil, err
	}

	detectedAt := time.Now().UTC()
	results := make([]domain.DetectionResult, 0, len(transactions))
	for _, transaction := range transactions {
		score := snapshot.Score(transaction)
		results = append(results, domain.DetectionResult{
			TransactionID: transaction.ID,
			BatchID:       batchID,
			Score:         score,
			Label:         snapshot.Classify(score),
			Confidence:    snapshot.Confidence(score),
			ModelVersion:  snapshot.Version(),
			DetectedAt:    detectedAt,
		})
	}

	if err := d.storage.StoreResults(ctx, results); err != nil {
		return nil, err
	}

	summary := domain.ComputeSummary(batchID, results)

	for idx := range results {
		if results[idx].Label != domain.LabelSuspicious {
			continue
		}
		message := &domain.SuspiciousTransactionMessage{
			Result:     results[idx],
			DetectedAt: detectedAt,
		}
		if err := d.notifierClient.NotifySuspiciousTransaction(ctx, message); err != nil {
			return nil, err
		}
	}

	previousSummary := domain.ComputeSummary(batchID, previous)
	d.cacheSummary(ctx, &summary,
		int64(summary.NormalCount-previousSummary.NormalCount),
		int64(summary.SuspiciousCount-previousSummary.SuspiciousCount),
	)

	log.WithFields(log.Fields{
		"batchID":      batchID,
		"total":        summary.Total,
		"suspicious":   summary.SuspiciousCount,
		"modelVersion": summary.ModelVersion,
	}).Info("Batch scored")

	return &domain.DetectionReport{Results: results, Summary: summary}, nil
}

// Summarize returns the batch summary, preferring the cache and
// recomputing from stored results on a miss.
func (d *DetectionService) Summarize(ctx context.Context, batchID uuid.UUID) (*domain.Summary, error) {
	cached, err := d.cache.GetSummary(ctx, batchID)
	if err != nil {
		log.WithError(err).WithField("batchID", batchID).Warn("Summary cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	results, err := d.storage.GetResults(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("batch %s has no detection results", batchID)
	}

	summary := domain.ComputeSummary(batchID, results)
	if err := d.cache.SetSummary(ctx, &summary); err != nil {
		log.WithError(err).WithField("batchID", batchID).Warn("Summary cache write failed")
	}

	return &summary, nil
}

// Stats serves the service-wide counters from the cache, falling back
// to a storage scan when the cache is cold or unavailable.
func (d *DetectionService) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := d.cache.GetStats(ctx)
	if err != nil {
		log.WithError(err).Warn("Stats cache read failed")
	}
	if stats != nil && stats.TotalTransactions > 0 {
		return stats, nil
	}

	return d.storage.GetStats(ctx)
}

// cacheSummary is best effort: a cache outage must not fail a detect
// call whose results are already persisted. The counter deltas may be
// negative when a re-scored batch flips labels.
func (d *DetectionService) cacheSummary(ctx context.Context, summary *domain.Summary, normalDelta, suspiciousDelta int64) {
	if err := d.cache.SetSummary(ctx, summary); err != nil {
		log.WithError(err).WithField("batchID", summary.BatchID).Warn("Summary cache write failed")
	}
	if err := d.cache.AddCounts(ctx, normalDelta, suspiciousDelta); err != nil {
		log.WithError(err).Warn("Stats counter update failed")
	}
}
