// Package ingest parses uploaded transaction batches into domain
// records.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"meridianbank.com/fraudshield/internal/anomaly"
	"meridianbank.com/fraudshield/internal/core/domain"
)

// Recognized dataset columns. Only amount is required; the rest default
// to empty values when the column is absent.
const (
	colAmount     = "amount"
	colMerchant   = "merchant"
	colCategory   = "category"
	colCustomerID = "customer_id"
	colTimestamp  = "timestamp"
)

// ParseCSV reads a transaction dataset from r. The first row must be a
// header containing at least the amount column. Rows keep their file
// order as the batch submission order.
func ParseCSV(r io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &anomaly.InvalidInputError{Reason: "empty CSV file"}
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns[colAmount]; !ok {
		return nil, &anomaly.InvalidInputError{Reason: "missing required column: amount"}
	}

	var transactions []domain.Transaction
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &anomaly.InvalidInputError{Reason: fmt.Sprintf("malformed CSV row %d", parseErr.Line)}
			}
			return nil, fmt.Errorf("read CSV row: %w", err)
		}

		transaction, err := parseRow(record, columns, row)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
		row++
	}

	if len(transactions) == 0 {
		return nil, &anomaly.InvalidInputError{Reason: "CSV file has no data rows"}
	}

	return transactions, nil
}

func parseRow(record []string, columns map[string]int, position int) (domain.Transaction, error) {
	amountRaw := field(record, columns, colAmount)
	amount, err := strconv.ParseFloat(amountRaw, 64)
	if err != nil {
		return domain.Transaction{}, &anomaly.InvalidInputError{
			Reason: fmt.Sprintf("row %d: amount %q is not a number", position, amountRaw),
		}
	}

	transaction := domain.Transaction{
		ID:         uuid.New(),
		Amount:     amount,
		Merchant:   field(record, columns, colMerchant),
		Category:   field(record, columns, colCategory),
		CustomerID: field(record, columns, colCustomerID),
		Position:   position,
	}

	if raw := field(record, columns, colTimestamp); raw != "" {
		occurredAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.Transaction{}, &anomaly.InvalidInputError{
				Reason: fmt.Sprintf("row %d: timestamp %q is not RFC 3339", position, raw),
			}
		}
		transaction.OccurredAt = occurredAt
	}

	return transaction, nil
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
