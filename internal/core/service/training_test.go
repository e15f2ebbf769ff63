package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"meridianbank.com/fraudshield/internal/anomaly"
	"meridianbank.com/fraudshield/mocks"
)

type TrainingServiceSuite struct {
	suite.Suite
	batchStorage    *mocks.BatchStorage
	detector        *anomaly.Detector
	trainingService *TrainingService
}

func TestTrainingService(t *testing.T) {
	suite.Run(t, new(TrainingServiceSuite))
}

func (suite *TrainingServiceSuite) SetupTest() {
	suite.batchStorage = &mocks.BatchStorage{}
	suite.detector = anomaly.NewDetector(anomaly.DefaultConfig(), "")
	suite.trainingService = NewTrainingService(suite.batchStorage, suite.detector)
}

func (suite *TrainingServiceSuite) TearDownTest() {
	suite.batchStorage.AssertExpectations(suite.T())
}

func (suite *TrainingServiceSuite) TestTrainFromBatch() {
	ctx := context.Background()
	batchID := uuid.New()
	txns := batchTransactions(batchID, 60)

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(txns, nil)

	version, err := suite.trainingService.TrainFromBatch(ctx, batchID)

	suite.Require().NoError(err)
	assert.NotEmpty(suite.T(), version)
	assert.True(suite.T(), suite.detector.Ready())

	snapshot, err := suite.detector.Snapshot()
	suite.Require().NoError(err)
	assert.Equal(suite.T(), version, snapshot.Version())
	assert.WithinDuration(suite.T(), time.Now().UTC(), snapshot.TrainedAt(), time.Minute)
}

func (suite *TrainingServiceSuite) TestTrainFromBatch_Empty() {
	ctx := context.Background()
	batchID := uuid.New()

	suite.batchStorage.EXPECT().GetTransactions(ctx, batchID).Return(nil, nil)

	_, err := suite.trainingService.TrainFromBatch(ctx, batchID)

	assert.Error(suite.T(), err)
	assert.False(suite.T(), suite.detector.Ready())
}

func (suite *TrainingServiceSuite) TestTrainFromDataset_ReplacesVersion() {
	ctx := context.Background()
	txns := batchTransactions(uuid.New(), 60)

	first, err := suite.trainingService.TrainFromDataset(ctx, txns)
	suite.Require().NoError(err)
	second, err := suite.trainingService.TrainFromDataset(ctx, txns)
	suite.Require().NoError(err)

	assert.NotEqual(suite.T(), first, second)

	snapshot, err := suite.detector.Snapshot()
	suite.Require().NoError(err)
	assert.Equal(suite.T(), second, snapshot.Version())
}

func (suite *TrainingServiceSuite) TestTrainFromDataset_InvalidInput() {
	_, err := suite.trainingService.TrainFromDataset(context.Background(), nil)

	assert.True(suite.T(), anomaly.IsInvalidInput(err))
}
