// Package workflows defines Temporal workflows for the label context.
// Workflows run on the worker process; the API process only starts them.
package workflows

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	appsvcs "github.com/ghuser/labelpress/services/label/application/services"
	"github.com/ghuser/labelpress/services/label/domain/render"
)

// TaskQueue is the Temporal task queue for label batch workflows.
const TaskQueue = "label-batch"

// RenderBatchInput carries a batch render request into the workflow.
// Exactly one of Items or Products is set: Items for ad-hoc content,
// Products for catalog-backed batches.
type RenderBatchInput struct {
	OrgID    uuid.UUID                  `json:"org_id"`
	Items    []render.BatchItem         `json:"items,omitempty"`
	Products []appsvcs.ProductBatchItem `json:"products,omitempty"`
	Size     render.LabelSize           `json:"size"`
}

// RenderBatchOutput is the workflow result. The document itself stays in the
// document cache; callers download it by BatchID.
type RenderBatchOutput struct {
	BatchID    uuid.UUID `json:"batch_id"`
	LabelCount int       `json:"label_count"`
}

// Activities holds the dependencies batch activities execute against.
type Activities struct {
	Label *appsvcs.LabelService
}

// RenderBatch is the single activity of RenderBatchWorkflow: it assembles the
// document, caches it, and publishes BatchRenderedEvent via the label service.
func (a *Activities) RenderBatch(ctx context.Context, input RenderBatchInput) (RenderBatchOutput, error) {
	var (
		result *appsvcs.BatchResult
		err    error
	)
	if len(input.Products) > 0 {
		result, err = a.Label.RenderBatchForProducts(ctx, input.OrgID, input.Products, input.Size)
	} else {
		result, err = a.Label.RenderBatch(ctx, input.Items, input.Size)
	}
	if err != nil {
		return RenderBatchOutput{}, err
	}
	return RenderBatchOutput{BatchID: result.ID, LabelCount: result.LabelCount}, nil
}

// RenderBatchWorkflow renders a label batch asynchronously. Rendering is
// deterministic, so failures are either bad input (not retryable) or
// infrastructure trouble (retried with backoff).
func RenderBatchWorkflow(ctx workflow.Context, input RenderBatchInput) (RenderBatchOutput, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})

	var out RenderBatchOutput
	var a *Activities
	if err := workflow.ExecuteActivity(ctx, a.RenderBatch, input).Get(ctx, &out); err != nil {
		return RenderBatchOutput{}, err
	}
	return out, nil
}
