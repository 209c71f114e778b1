package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/trunov/resizehub/internal/events"
	"github.com/trunov/resizehub/internal/pipeline"
)

// Coordinator runs a parsed notification batch through the pipeline.
type Coordinator interface {
	Run(ctx context.Context, n events.Notification) (pipeline.Summary, error)
}

type Handler struct {
	coordinator Coordinator
	validator   *validator.Validate
}

func New(coordinator Coordinator) *Handler {
	return &Handler{
		coordinator: coordinator,
		validator:   validator.New(),
	}
}

// Events accepts an S3-style bucket notification batch and runs it through
// the pipeline. The response is all or nothing: a propagated record failure
// turns the whole invocation into a 500 so the delivery system redrives the
// batch, with no partial summary.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	notification, err := events.Parse(payload)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(notification); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationErrorsToMap(err))
		return
	}

	summary, err := h.coordinator.Run(r.Context(), notification)
	if err != nil {
		sentry.CaptureException(err)
		writeJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(ProcessResponse{
		Message:        "Image processing completed successfully",
		ProcessedCount: summary.Processed,
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
