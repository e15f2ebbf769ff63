package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"meridianbank.com/fraudshield/internal/anomaly"
	"meridianbank.com/fraudshield/internal/core/domain"
	"meridianbank.com/fraudshield/mocks"
)

type DetectionServiceSuite struct {
	suite.Suite
	batchStorage *mocks.BatchStorage
	amqpNotifier *mocks.NotifierClient
	summaryCache *mocks.SummaryCache
}

func TestDetectionService(t *testing.T) {
	suite.Run(t, new(DetectionServiceSuite))
}

func (suite *DetectionServiceSuite) SetupTest() {
	suite.batchStorage = &mocks.BatchStorage{}
	suite.amqpNotifier = &mocks.NotifierClient{}
	suite.summaryCache = &mocks.SummaryCache{}
}

func (suite *DetectionServiceSuite) TearDownTest() {
	suite.batchStorage.AssertExpectations(suite.T())
	suite.amqpNotifier.AssertExpectations(suite.T())
	suite.summaryCache.AssertExpectations(suite.T())
}

func (suite *DetectionServiceSuite) newService(scorer *anomaly.Detector) *DetectionService {
	return NewDetectionService(suite.batchStorage, scorer, suite.amqpNotifier, suite.summaryCache)
}

// trainedScorer fits a detector with a fixed classification threshold so
// tests control which side of the cutoff every score lands on.
func (suite *DetectionServiceSuite) trainedScorer(threshold float64) *anomaly.Detector {
	cfg := anomaly.DefaultConfig()
	cfg.Threshold = threshold

	detector := anomaly.NewDetector(cfg, "")
	_, err := detector.Fit(batchTransactions(uuid.New(), 80))
	suite.Require().NoError(err)
	return detector
}

func batchTransactions(batchID uuid.UUID, n int) []domain.Transaction {
	txns := make([]domain.Transaction, n)
	for i := range txns {
		txns[i] = domain.Transaction{
			ID:         uuid.New(),
			BatchID:    batchID,
			Amount:     float64(10 + i%80),
			Merchant:   "grocery-mart",
			Category:   "retail",
			CustomerID: "cust-1",
			OccurredAt: time.Date(2026, 3, 1, i%24, 0, 0, 0, time.UTC),
			Position:   i,
		}
	}
	return txns
}

func (suite *DetectionServiceSuite) TestDetectBatch_AllNormal() {
	ctx := context.Background()
	batchID := uuid.New()
	txns := batchTransactions(batchID, 10)

	// No score reaches 0.99, so every transaction stays normal.
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(txns, nil)
	suite.batchStorage.EXPECT().GetResults(ctx, batchID).Return(nil, nil)
	suite.batchStorage.EXPECT().StoreResults(ctx, mock.Anything).Return(nil)
	suite.summaryCache.EXPECT().SetSummary(ctx, mock.Anything).Return(nil)
	suite.summaryCache.EXPECT().AddCounts(ctx, int64(10), int64(0)).Return(nil)

	report, err := detectionService.DetectBatch(ctx, batchID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Results, 10)
	for i, result := range report.Results {
		assert.Equal(suite.T(), txns[i].ID, result.TransactionID)
		assert.Equal(suite.T(), batchID, result.BatchID)
		assert.Equal(suite.T(), domain.LabelNormal, result.Label)
		assert.Greater(suite.T(), result.Score, 0.0)
		assert.GreaterOrEqual(suite.T(), result.Confidence, 0.0)
		assert.NotEmpty(suite.T(), result.ModelVersion)
	}
	assert.Equal(suite.T(), 10, report.Summary.Total)
	assert.Equal(suite.T(), 10, report.Summary.NormalCount)
	assert.Zero(suite.T(), report.Summary.SuspiciousCount)
	assert.Equal(suite.T(), report.Results[0].ModelVersion, report.Summary.ModelVersion)
}

func (suite *DetectionServiceSuite) TestDetectBatch_SuspiciousNotified() {
	ctx := context.Background()
	batchID := uuid.New()
	txns := batchTransactions(batchID, 4)

	// Every score clears a near-zero threshold.
	detectionService := suite.newService(suite.trainedScorer(0.0001))

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(txns, nil)
	suite.batchStorage.EXPECT().GetResults(ctx, batchID).Return(nil, nil)
	suite.batchStorage.EXPECT().StoreResults(ctx, mock.Anything).Return(nil)
	suite.amqpNotifier.EXPECT().NotifySuspiciousTransaction(ctx, mock.Anything).Return(nil).Times(4)
	suite.summaryCache.EXPECT().SetSummary(ctx, mock.Anything).Return(nil)
	suite.summaryCache.EXPECT().AddCounts(ctx, int64(0), int64(4)).Return(nil)

	report, err := detectionService.DetectBatch(ctx, batchID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 4, report.Summary.SuspiciousCount)
	assert.Zero(suite.T(), report.Summary.NormalCount)
}

func (suite *DetectionServiceSuite) TestDetectBatch_ModelNotReady() {
	ctx := context.Background()
	detectionService := suite.newService(anomaly.NewDetector(anomaly.DefaultConfig(), ""))

	_, err := detectionService.DetectBatch(ctx, uuid.New())

	assert.ErrorIs(suite.T(), err, anomaly.ErrModelNotReady)
}

func (suite *DetectionServiceSuite) TestDetectBatch_UnknownBatch() {
	ctx := context.Background()
	batchID := uuid.New()
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(nil, nil)

	_, err := detectionService.DetectBatch(ctx, batchID)

	assert.Error(suite.T(), err)
}

func (suite *DetectionServiceSuite) TestDetectBatch_StoreFailureAborts() {
	ctx := context.Background()
	batchID := uuid.New()
	detectionService := suite.newService(suite.trainedScorer(0.0001))

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(batchTransactions(batchID, 3), nil)
	suite.batchStorage.EXPECT().GetResults(ctx, batchID).Return(nil, nil)
	suite.batchStorage.EXPECT().StoreResults(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := detectionService.DetectBatch(ctx, batchID)

	// Nothing is notified or cached when persistence failed.
	assert.Error(suite.T(), err)
}

func (suite *DetectionServiceSuite) TestDetectBatch_NotifyFailureFails() {
	ctx := context.Background()
	batchID := uuid.New()
	detectionService := suite.newService(suite.trainedScorer(0.0001))

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(batchTransactions(batchID, 2), nil)
	suite.batchStorage.EXPECT().GetResults(ctx, batchID).Return(nil, nil)
	suite.batchStorage.EXPECT().StoreResults(ctx, mock.Anything).Return(nil)
	suite.amqpNotifier.EXPECT().NotifySuspiciousTransaction(ctx, mock.Anything).Return(errors.New("channel closed"))

	_, err := detectionService.DetectBatch(ctx, batchID)

	assert.Error(suite.T(), err)
}

func (suite *DetectionServiceSuite) TestDetectBatch_CacheOutageIgnored() {
	ctx := context.Background()
	batchID := uuid.New()
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(batchTransactions(batchID, 5), nil)
	suite.batchStorage.EXPECT().GetResults(ctx, batchID).Return(nil, nil)
	suite.batchStorage.EXPECT().StoreResults(ctx, mock.Anything).Return(nil)
	suite.summaryCache.EXPECT().SetSummary(ctx, mock.Anything).Return(errors.New("redis down"))
	suite.summaryCache.EXPECT().AddCounts(ctx, int64(5), int64(0)).Return(errors.New("redis down"))

	report, err := detectionService.DetectBatch(ctx, batchID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 5, report.Summary.Total)
}

func (suite *DetectionServiceSuite) TestDetectBatch_RedetectMovesCountersByDelta() {
	ctx := context.Background()
	batchID := uuid.New()
	txns := batchTransactions(batchID, 3)

	// The batch was scored before under a model that flagged two of the
	// three transactions; this run labels everything normal.
	previous := []domain.DetectionResult{
		{TransactionID: txns[0].ID, BatchID: batchID, Score: 0.9, Label: domain.LabelSuspicious, ModelVersion: "v1"},
		{TransactionID: txns[1].ID, BatchID: batchID, Score: 0.4, Label: domain.LabelNormal, ModelVersion: "v1"},
		{TransactionID: txns[2].ID, BatchID: batchID, Score: 0.8, Label: domain.LabelSuspicious, ModelVersion: "v1"},
	}
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(txns, nil)
	suite.batchStorage.EXPECT().GetResults(ctx, batchID).Return(previous, nil)
	suite.batchStorage.EXPECT().StoreResults(ctx, mock.Anything).Return(nil)
	suite.summaryCache.EXPECT().SetSummary(ctx, mock.Anything).Return(nil)
	suite.summaryCache.EXPECT().AddCounts(ctx, int64(2), int64(-2)).Return(nil)

	report, err := detectionService.DetectBatch(ctx, batchID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 3, report.Summary.NormalCount)
	assert.Zero(suite.T(), report.Summary.SuspiciousCount)
}

func (suite *DetectionServiceSuite) TestSummarize_CacheHit() {
	ctx := context.Background()
	batchID := uuid.New()
	cached := &domain.Summary{BatchID: batchID, Total: 7, NormalCount: 6, SuspiciousCount: 1}
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.summaryCache.EXPECT().GetSummary(ctx, batchID).Return(cached, nil)

	summary, err := detectionService.Summarize(ctx, batchID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), cached, summary)
}

func (suite *DetectionServiceSuite) TestSummarize_CacheMissRecomputes() {
	ctx := context.Background()
	batchID := uuid.New()
	results := []domain.DetectionResult{
		{BatchID: batchID, Score: 0.3, Label: domain.LabelNormal, ModelVersion: "v1"},
		{BatchID: batchID, Score: 0.8, Label: domain.LabelSuspicious, ModelVersion: "v1"},
	}
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.summaryCache.EXPECT().GetSummary(ctx, batchID).Return(nil, nil)
	suite.batchStorage.EXPECT().GetResults(ctx, batchID).Return(results, nil)
	suite.summaryCache.EXPECT().SetSummary(ctx, mock.Anything).Return(nil)

	summary, err := detectionService.Summarize(ctx, batchID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 2, summary.Total)
	assert.Equal(suite.T(), 1, summary.SuspiciousCount)
	assert.Equal(suite.T(), 0.3, summary.MinScore)
	assert.Equal(suite.T(), 0.8, summary.MaxScore)
	assert.InDelta(suite.T(), 0.55, summary.MeanScore, 1e-9)
}

func (suite *DetectionServiceSuite) TestSummarize_NoResults() {
	ctx := context.Background()
	batchID := uuid.New()
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.summaryCache.EXPECT().GetSummary(ctx, batchID).Return(nil, nil)
	suite.batchStorage.EXPECT().GetResults(ctx, batchID).Return(nil, nil)

	_, err := detectionService.Summarize(ctx, batchID)

	assert.Error(suite.T(), err)
}

func (suite *DetectionServiceSuite) TestStats_CacheHit() {
	ctx := context.Background()
	cached := &domain.Stats{TotalTransactions: 100, NormalTransactions: 92, SuspiciousTransactions: 8, FraudRate: 0.08}
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.summaryCache.EXPECT().GetStats(ctx).Return(cached, nil)

	stats, err := detectionService.Stats(ctx)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), cached, stats)
}

func (suite *DetectionServiceSuite) TestStats_ColdCacheFallsBack() {
	ctx := context.Background()
	fromStorage := &domain.Stats{TotalTransactions: 42, NormalTransactions: 40, SuspiciousTransactions: 2, FraudRate: 2.0 / 42}
	detectionService := suite.newService(suite.trainedScorer(0.99))

	suite.summaryCache.EXPECT().GetStats(ctx).Return(&domain.Stats{}, nil)
	suite.batchStorage.EXPECT().GetStats(ctx).Return(fromStorage, nil)

	stats, err := detectionService.Stats(ctx)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), fromStorage, stats)
}
