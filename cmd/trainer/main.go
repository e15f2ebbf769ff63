// Command trainer fits a model snapshot from a CSV dataset and writes
// it to the model directory, where the API and scoring worker pick it
// up on their next start.
package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/anomaly"
	"meridianbank.com/fraudshield/internal/ingest"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	datasetPath := flag.String("dataset", "", "Path to the CSV training dataset")
	modelDir := flag.String("model-dir", "models", "Directory to persist the trained snapshot")
	configPath := flag.String("config", "", "Optional scorer config YAML")
	flag.Parse()

	if *datasetPath == "" {
		log.Fatal("The -dataset flag is required")
	}

	file, err := os.Open(*datasetPath)
	if err != nil {
		log.Fatalf("Failed to open dataset: %v", err)
	}
	defer file.Close()

	transactions, err := ingest.ParseCSV(file)
	if err != nil {
		log.Fatalf("Failed to parse dataset: %v", err)
	}
	log.WithField("rows", len(transactions)).Info("Dataset loaded")

	cfg, err := anomaly.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load scorer config: %v", err)
	}

	detector := anomaly.NewDetector(cfg, *modelDir)
	snapshot, err := detector.Fit(transactions)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	log.WithFields(log.Fields{
		"version":  snapshot.Version(),
		"modelDir": *modelDir,
	}).Info("Model trained and persisted")
}
