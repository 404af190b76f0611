package offer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
	"github.com/merhebia-finest/tilbud/jobs"
)

// RenderObserver counts PDF render outcomes. Nil disables instrumentation.
type RenderObserver interface {
	ObservePDFRender(outcome string)
}

// Job pre-renders offer PDFs in the background so the first download is
// served from the artifact store.
type Job struct {
	service  *Service
	observer RenderObserver
	logger   *slog.Logger
}

// NewJob constructs a Job handler.
func NewJob(service *Service, observer RenderObserver, logger *slog.Logger) *Job {
	return &Job{service: service, observer: observer, logger: logger}
}

func (j *Job) observe(outcome string) {
	if j.observer != nil {
		j.observer.ObservePDFRender(outcome)
	}
}

// Handle fulfils the asynq.HandlerFunc contract.
func (j *Job) Handle(ctx context.Context, task *asynq.Task) error {
	if j == nil || j.service == nil {
		return fmt.Errorf("offer pdf job not configured")
	}
	var payload jobs.OfferPDFPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.OfferID == "" {
		return asynq.SkipRetry
	}
	pdf, err := j.service.GeneratePDF(ctx, payload.OfferID)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			j.logger.Info("offer pdf skipped, offer gone", slog.String("offer_id", payload.OfferID))
			return asynq.SkipRetry
		}
		j.observe("error")
		j.logger.Warn("offer pdf render failed",
			slog.String("offer_id", payload.OfferID),
			slog.Any("error", err))
		return err
	}
	j.observe("ok")
	j.logger.Info("offer pdf rendered",
		slog.String("offer_id", payload.OfferID),
		slog.String("file", pdf.FileName),
		slog.Int("bytes", len(pdf.Content)))
	return nil
}
