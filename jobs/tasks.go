package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeOfferPDF is the task type for pre-rendering an offer PDF.
	TaskTypeOfferPDF = "offer:render_pdf"
)

// OfferPDFPayload identifies the offer whose PDF should be rendered.
type OfferPDFPayload struct {
	OfferID string `json:"offerId"`
}

// NewOfferPDFTask constructs an Asynq task for offer PDF rendering.
func NewOfferPDFTask(payload OfferPDFPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeOfferPDF, data), nil
}
