package anomaly

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meridianbank.com/fraudshield/internal/core/domain"
)

var testMerchants = []string{"coffee-corner", "grocery-mart", "gas-n-go", "bookshop"}

func trainingTransactions(n int) []domain.Transaction {
	txns := make([]domain.Transaction, 0, n+10)
	for i := 0; i < n; i++ {
		txns = append(txns, testTransaction(float64(5+i%116), i))
	}
	// A thin tail of large amounts, like real card data has.
	for i := 0; i < 10; i++ {
		txns = append(txns, testTransaction(float64(4_000+i*500), i))
	}
	return txns
}

func testTransaction(amount float64, i int) domain.Transaction {
	return domain.Transaction{
		ID:         uuid.New(),
		Amount:     amount,
		Merchant:   testMerchants[i%len(testMerchants)],
		Category:   "retail",
		CustomerID: fmt.Sprintf("cust-%d", i%20),
		OccurredAt: time.Date(2026, 3, 1, i%24, 0, 0, 0, time.UTC),
	}
}

func TestSnapshotBeforeFit(t *testing.T) {
	detector := NewDetector(DefaultConfig(), "")

	assert.False(t, detector.Ready())
	_, err := detector.Snapshot()
	assert.ErrorIs(t, err, ErrModelNotReady)
}

func TestFitEmptyBatch(t *testing.T) {
	detector := NewDetector(DefaultConfig(), "")

	_, err := detector.Fit(nil)
	assert.True(t, IsInvalidInput(err))
	assert.False(t, detector.Ready())
}

func TestFitDeterministic(t *testing.T) {
	txns := trainingTransactions(190)

	a := NewDetector(DefaultConfig(), "")
	b := NewDetector(DefaultConfig(), "")

	snapA, err := a.Fit(txns)
	require.NoError(t, err)
	snapB, err := b.Fit(txns)
	require.NoError(t, err)

	assert.NotEqual(t, snapA.Version(), snapB.Version())
	for _, txn := range txns {
		assert.Equal(t, snapA.Score(txn), snapB.Score(txn))
	}
}

func TestDetectsLargeAmountOutlier(t *testing.T) {
	detector := NewDetector(DefaultConfig(), "")
	snap, err := detector.Fit(trainingTransactions(190))
	require.NoError(t, err)

	small1 := snap.Score(testTransaction(10, 1))
	small2 := snap.Score(testTransaction(15, 2))
	huge := snap.Score(testTransaction(9_000, 3))

	assert.Equal(t, domain.LabelNormal, snap.Classify(small1))
	assert.Equal(t, domain.LabelNormal, snap.Classify(small2))
	assert.Equal(t, domain.LabelSuspicious, snap.Classify(huge))
	assert.Greater(t, huge, small1)
	assert.Greater(t, huge, small2)
}

func TestConfidence(t *testing.T) {
	snap := &Snapshot{threshold: 0.5}

	assert.Zero(t, snap.Confidence(0.5))

	prev := 0.0
	for _, score := range []float64{0.52, 0.6, 0.75, 0.95} {
		c := snap.Confidence(score)
		assert.Greater(t, c, prev)
		assert.Less(t, c, 1.0)
		prev = c
	}

	// Symmetric around the threshold.
	assert.InDelta(t, snap.Confidence(0.3), snap.Confidence(0.7), 1e-12)
}

func TestExplicitThresholdWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = 0.9

	detector := NewDetector(cfg, "")
	snap, err := detector.Fit(trainingTransactions(100))
	require.NoError(t, err)

	s, ok := snap.(*Snapshot)
	require.True(t, ok)
	assert.Equal(t, 0.9, s.Threshold())
}

func TestFitSingleTransaction(t *testing.T) {
	detector := NewDetector(DefaultConfig(), "")

	snap, err := detector.Fit([]domain.Transaction{testTransaction(25, 0)})
	require.NoError(t, err)

	s, ok := snap.(*Snapshot)
	require.True(t, ok)
	assert.False(t, math.IsNaN(s.Threshold()))

	for _, txn := range []domain.Transaction{testTransaction(25, 0), testTransaction(9_000, 1)} {
		score := snap.Score(txn)
		require.False(t, math.IsNaN(score))
		assert.Greater(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)

		confidence := snap.Confidence(score)
		require.False(t, math.IsNaN(confidence))
		assert.GreaterOrEqual(t, confidence, 0.0)
		assert.Less(t, confidence, 1.0)
	}
}

func TestRetrainSwapsSnapshot(t *testing.T) {
	detector := NewDetector(DefaultConfig(), "")

	snapA, err := detector.Fit(trainingTransactions(190))
	require.NoError(t, err)

	txn := testTransaction(42, 7)
	scoreBefore := snapA.Score(txn)

	// Retrain on a shifted distribution.
	var shifted []domain.Transaction
	for i := 0; i < 150; i++ {
		shifted = append(shifted, testTransaction(float64(500+i*3), i))
	}
	snapB, err := detector.Fit(shifted)
	require.NoError(t, err)

	current, err := detector.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, snapB.Version(), current.Version())
	assert.NotEqual(t, snapA.Version(), snapB.Version())

	// The old snapshot stays valid and stable for in-flight readers.
	assert.Equal(t, scoreBefore, snapA.Score(txn))
}

func TestRetrainDuringScoringUsesPinnedSnapshot(t *testing.T) {
	detector := NewDetector(DefaultConfig(), "")
	snapA, err := detector.Fit(trainingTransactions(190))
	require.NoError(t, err)

	txns := make([]domain.Transaction, 60)
	want := make([]float64, len(txns))
	for i := range txns {
		txns[i] = testTransaction(float64(20+i), i)
		want[i] = snapA.Score(txns[i])
	}

	// Score against the pinned snapshot while a retrain swaps the
	// published one underneath.
	scoring := make(chan struct{})
	mismatch := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		close(scoring)
		for i, txn := range txns {
			if snapA.Score(txn) != want[i] {
				mismatch <- i
				return
			}
		}
	}()

	<-scoring
	var shifted []domain.Transaction
	for i := 0; i < 150; i++ {
		shifted = append(shifted, testTransaction(float64(500+i*3), i))
	}
	snapB, err := detector.Fit(shifted)
	require.NoError(t, err)
	<-done

	select {
	case i := <-mismatch:
		t.Fatalf("transaction %d scored differently mid-retrain", i)
	default:
	}

	current, err := detector.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, snapB.Version(), current.Version())
	assert.NotEqual(t, snapA.Version(), current.Version())
}

func TestSaveAndRestore(t *testing.T) {
	dir := t.TempDir()
	txns := trainingTransactions(120)

	trained := NewDetector(DefaultConfig(), dir)
	snap, err := trained.Fit(txns)
	require.NoError(t, err)

	restored := NewDetector(DefaultConfig(), dir)
	require.NoError(t, restored.Restore())

	got, err := restored.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, snap.Version(), got.Version())

	for _, txn := range txns {
		assert.Equal(t, snap.Score(txn), got.Score(txn))
		assert.Equal(t, snap.Classify(snap.Score(txn)), got.Classify(got.Score(txn)))
	}
}

func TestRestoreEmptyDir(t *testing.T) {
	detector := NewDetector(DefaultConfig(), t.TempDir())

	err := detector.Restore()
	assert.ErrorIs(t, err, ErrModelNotReady)
}

func TestRestoreKeepsOnlyRecentVersions(t *testing.T) {
	dir := t.TempDir()
	detector := NewDetector(DefaultConfig(), dir)

	var versions []string
	for i := 0; i < 3; i++ {
		snap, err := detector.Fit(trainingTransactions(100 + i*10))
		require.NoError(t, err)
		versions = append(versions, snap.Version())
	}

	// Oldest version was pruned, current one still restores.
	_, err := loadCurrentSnapshot(dir)
	require.NoError(t, err)
	assert.NoFileExists(t, modelPath(dir, versions[0]))
	assert.FileExists(t, modelPath(dir, versions[1]))
	assert.FileExists(t, modelPath(dir, versions[2]))
}

func TestErrModelNotReadyIsDistinct(t *testing.T) {
	assert.False(t, IsInvalidInput(ErrModelNotReady))
	assert.False(t, errors.Is(&InvalidInputError{Reason: "x"}, ErrModelNotReady))
}
