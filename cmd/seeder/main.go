// Command seeder generates synthetic transaction batches and posts
// them to the API. Most amounts are small everyday spends; a
// configurable fraction are large outliers so detection has something
// to find.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/config"
)

type transactionPayload struct {
	Amount     float64   `json:"amount"`
	Merchant   string    `json:"merchant"`
	Category   string    `json:"category"`
	CustomerID string    `json:"customer_id"`
	Timestamp  time.Time `json:"timestamp"`
}

type batchPayload struct {
	Transactions []transactionPayload `json:"transactions"`
}

var categories = []string{"groceries", "restaurants", "travel", "electronics", "fuel", "entertainment"}

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	config.Load()

	var (
		batches     = flag.Int("batches", 5, "Number of batches to send")
		batchSize   = flag.Int("batch-size", 200, "Transactions per batch")
		anomalyRate = flag.Float64("anomaly-rate", 0.05, "Fraction of transactions with outlier amounts (0.0 - 1.0)")
		seed        = flag.Uint64("seed", 0, "Faker seed, 0 for random")
		endpoint    = flag.String("endpoint", config.GetEnvString("API_URL", "http://localhost:8080/api/v1/batches"), "Batch upload endpoint")
	)
	flag.Parse()

	if *anomalyRate < 0.0 || *anomalyRate > 1.0 {
		log.Fatal("Anomaly rate must be between 0.0 and 1.0!")
	}

	faker := gofakeit.New(*seed)

	for b := range *batches {
		batch := makeBatch(faker, *batchSize, *anomalyRate)
		if err := sendBatch(*endpoint, batch); err != nil {
			log.WithError(err).Errorf("Failed to send batch %d", b)
			continue
		}
		log.WithFields(log.Fields{
			"batch": b,
			"size":  *batchSize,
		}).Info("Batch sent")
	}
}

func makeBatch(faker *gofakeit.Faker, size int, anomalyRate float64) batchPayload {
	batch := batchPayload{Transactions: make([]transactionPayload, 0, size)}

	for range size {
		amount := faker.Float64Range(5, 250)
		if faker.Float64Range(0, 1) < anomalyRate {
			amount = faker.Float64Range(5_000, 50_000)
		}

		batch.Transactions = append(batch.Transactions, transactionPayload{
			Amount:     amount,
			Merchant:   faker.Company(),
			Category:   faker.RandomString(categories),
			CustomerID: fmt.Sprintf("cust-%04d", faker.Number(1, 500)),
			Timestamp:  faker.DateRange(time.Now().Add(-30*24*time.Hour), time.Now()),
		})
	}

	return batch
}

func sendBatch(endpoint string, batch batchPayload) error {
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("could not marshal batch: %w", err)
	}

	resp, err := http.Post(endpoint, "application/json; charset=utf-8", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("could not send batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return nil
}
