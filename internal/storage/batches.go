package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"meridianbank.com/fraudshield/internal/core/domain"
)

type BatchesStorage struct {
	db *PostgresDB
}

func NewBatchesStorage(db *PostgresDB) *BatchesStorage {
	return &BatchesStorage{
		db: db,
	}
}

// StoreBatch writes the batch header and its transactions in one
// database transaction so a batch is never visible half-ingested.
func (s *BatchesStorage) StoreBatch(ctx context.Context, batch *domain.Batch, transactions []domain.Transaction) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO batches (id, size, ingested_at) VALUES ($1, $2, $3)`,
		batch.BatchID,
		batch.Size,
		batch.IngestedAt,
	)
	if err != nil {
		return err
	}

	insert := `
		INSERT INTO transactions (id, batch_id, amount, merchant, category, customer_id, occurred_at, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, transaction := range transactions {
		_, err := tx.Exec(ctx, insert,
			transaction.ID,
			transaction.BatchID,
			transaction.Amount,
			transaction.Merchant,
			transaction.Category,
			transaction.CustomerID,
			transaction.OccurredAt,
			transaction.Position,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *BatchesStorage) GetBatch(ctx context.Context, batchID uuid.UUID) (*domain.Batch, error) {
	var batch domain.Batch
	err := s.db.QueryRow(ctx,
		"SELECT id, size, ingested_at FROM batches WHERE id = $1",
		batchID,
	).Scan(&batch.BatchID, &batch.Size, &batch.IngestedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("batch %s not found", batchID)
	}
	if err != nil {
		return nil, err
	}

	return &batch, nil
}

// GetTransactions returns the batch rows ordered by their submission
// position.
func (s *BatchesStorage) GetTransactions(ctx context.Context, batchID uuid.UUID) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, batch_id, amount, merchant, category, customer_id, occurred_at, position
		 FROM transactions
		 WHERE batch_id = $1
		 ORDER BY position`,
		batchID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(
			&transaction.ID,
			&transaction.BatchID,
			&transaction.Amount,
			&transaction.Merchant,
			&transaction.Category,
			&transaction.CustomerID,
			&transaction.OccurredAt,
			&transaction.Position,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

// StoreResults upserts a whole result set in one database transaction.
// Re-running detection on a batch replaces the previous results.
func (s *BatchesStorage) StoreResults(ctx context.Context, results []domain.DetectionResult) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO detection_results (transaction_id, batch_id, score, label, confidence, model_version, detected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (transaction_id) DO UPDATE SET
		    score = EXCLUDED.score,
		    label = EXCLUDED.label,
		    confidence = EXCLUDED.confidence,
		    model_version = EXCLUDED.model_version,
		    detected_at = EXCLUDED.detected_at
	`

	for _, result := range results {
		_, err := tx.Exec(ctx, insert,
			result.TransactionID,
			result.BatchID,
			result.Score,
			string(result.Label),
			result.Confidence,
			result.ModelVersion,
			result.DetectedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetResults returns the batch results in submission order.
func (s *BatchesStorage) GetResults(ctx context.Context, batchID uuid.UUID) ([]domain.DetectionResult, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.transaction_id, r.batch_id, r.score, r.label, r.confidence, r.model_version, r.detected_at
		 FROM detection_results r
		 JOIN transactions t ON t.id = r.transaction_id
		 WHERE r.batch_id = $1
		 ORDER BY t.position`,
		batchID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.DetectionResult
	for rows.Next() {
		var result domain.DetectionResult
		var label string
		err := rows.Scan(
			&result.TransactionID,
			&result.BatchID,
			&result.Score,
			&label,
			&result.Confidence,
			&result.ModelVersion,
			&result.DetectedAt,
		)
		if err != nil {
			return nil, err
		}
		result.Label = domain.Label(label)
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// GetStats scans the stored results for the service-wide counters.
func (s *BatchesStorage) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}

	err := s.db.QueryRow(ctx,
		`SELECT
		     COUNT(*),
		     COUNT(*) FILTER (WHERE label = $1),
		     MAX(detected_at)
		 FROM detection_results`,
		string(domain.LabelSuspicious),
	).Scan(&stats.TotalTransactions, &stats.SuspiciousTransactions, &stats.LastDetectionAt)
	if err != nil {
		return nil, err
	}

	stats.NormalTransactions = stats.TotalTransactions - stats.SuspiciousTransactions
	if stats.TotalTransactions > 0 {
		stats.FraudRate = float64(stats.SuspiciousTransactions) / float64(stats.TotalTransactions)
	}

	return stats, nil
}
