package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"meridianbank.com/fraudshield/internal/anomaly"
	"meridianbank.com/fraudshield/internal/core/domain"
	"meridianbank.com/fraudshield/internal/core/port"
	"meridianbank.com/fraudshield/internal/ingest"
)

type BatchHTTPHandler struct {
	ingestionService port.IngestionService
	detectionService port.DetectionService
	trainingService  port.TrainingService
	validate         *validator.Validate
}

type TransactionRequest struct {
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	Merchant   string    `json:"merchant"`
	Category   string    `json:"category"`
	CustomerID string    `json:"customer_id"`
	Timestamp  time.Time `json:"timestamp"`
}

type UploadBatchRequest struct {
	Transactions []TransactionRequest `json:"transactions" validate:"required,min=1,max=10000,dive"`
}

type UploadBatchResponse struct {
	Message string    `json:"message"`
	BatchID uuid.UUID `json:"batch_id"`
	Count   int       `json:"count"`
}

type TrainRequest struct {
	BatchID uuid.UUID `json:"batch_id" validate:"required"`
}

type TrainResponse struct {
	Message      string `json:"message"`
	ModelVersion string `json:"model_version"`
}

func NewBatchHTTPHandler(
	ingestionService port.IngestionService,
	detectionService port.DetectionService,
	trainingService port.TrainingService,
	validate *validator.Validate,
) *BatchHTTPHandler {
	return &BatchHTTPHandler{
		ingestionService: ingestionService,
		detectionService: detectionService,
		trainingService:  trainingService,
		validate:         validate,
	}
}

// Upload ingests a JSON transaction batch.
func (h *BatchHTTPHandler) Upload() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req UploadBatchRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind upload request")
			return errorJSON(c, http.StatusBadRequest, "Invalid request payload")
		}
		if err := h.validate.Struct(req); err != nil {
			return errorJSON(c, http.StatusBadRequest, err.Error())
		}

		transactions := make([]domain.Transaction, len(req.Transactions))
		for i, t := range req.Transactions {
			transactions[i] = domain.Transaction{
				Amount:     t.Amount,
				Merchant:   t.Merchant,
				Category:   t.Category,
				CustomerID: t.CustomerID,
				OccurredAt: t.Timestamp,
			}
		}

		batch, err := h.ingestionService.IngestBatch(c.Request().Context(), transactions)
		if err != nil {
			return h.translateError(c, err)
		}

		return c.JSON(http.StatusCreated, UploadBatchResponse{
			Message: "Batch ingested",
			BatchID: batch.BatchID,
			Count:   batch.Size,
		})
	}
}

// UploadCSV ingests a multipart CSV dataset under the "file" field.
func (h *BatchHTTPHandler) UploadCSV() echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "Missing file upload")
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.WithError(err).Error("Failed to open uploaded file")
			return errorJSON(c, http.StatusBadRequest, "Unreadable file upload")
		}
		defer file.Close()

		transactions, err := ingest.ParseCSV(file)
		if err != nil {
			return h.translateError(c, err)
		}

		batch, err := h.ingestionService.IngestBatch(c.Request().Context(), transactions)
		if err != nil {
			return h.translateError(c, err)
		}

		return c.JSON(http.StatusCreated, UploadBatchResponse{
			Message: "Batch ingested",
			BatchID: batch.BatchID,
			Count:   batch.Size,
		})
	}
}

// Detect scores a stored batch synchronously and returns the ordered
// results with their summary.
func (h *BatchHTTPHandler) Detect() echo.HandlerFunc {
	return func(c echo.Context) error {
		batchID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid batch id")
		}

		report, err := h.detectionService.DetectBatch(c.Request().Context(), batchID)
		if err != nil {
			return h.translateError(c, err)
		}

		return c.JSON(http.StatusOK, report)
	}
}

// Summary returns the aggregate counts for a scored batch.
func (h *BatchHTTPHandler) Summary() echo.HandlerFunc {
	return func(c echo.Context) error {
		batchID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid batch id")
		}

		summary, err := h.detectionService.Summarize(c.Request().Context(), batchID)
		if err != nil {
			return h.translateError(c, err)
		}

		return c.JSON(http.StatusOK, summary)
	}
}

// Stats returns service-wide detection counters.
func (h *BatchHTTPHandler) Stats() echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := h.detectionService.Stats(c.Request().Context())
		if err != nil {
			return h.translateError(c, err)
		}
		return c.JSON(http.StatusOK, stats)
	}
}

// Train retrains the model from a stored batch.
func (h *BatchHTTPHandler) Train() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TrainRequest

		if err := c.Bind(&req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid request payload")
		}
		if err := h.validate.Struct(req); err != nil {
			return errorJSON(c, http.StatusBadRequest, err.Error())
		}

		version, err := h.trainingService.TrainFromBatch(c.Request().Context(), req.BatchID)
		if err != nil {
			return h.translateError(c, err)
		}

		return c.JSON(http.StatusOK, TrainResponse{
			Message:      "Model retrained",
			ModelVersion: version,
		})
	}
}

// translateError maps scorer errors onto HTTP statuses: bad input is
// the caller's fault, an untrained model is a temporary service
// condition, everything else is internal.
func (h *BatchHTTPHandler) translateError(c echo.Context, err error) error {
	switch {
	case anomaly.IsInvalidInput(err):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, anomaly.ErrModelNotReady):
		return errorJSON(c, http.StatusServiceUnavailable, "Model is not trained yet")
	default:
		log.WithError(err).Error("Request failed")
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
