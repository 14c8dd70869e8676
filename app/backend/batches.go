package backend

import (
	"context"
	"fmt"
	"net/http"

	"college-admin/app/models"
)

// ListBatches fetches batches, optionally narrowed to one course. Pass
// courseID = 0 for all batches.
func (c *Client) ListBatches(ctx context.Context, courseID int) ([]models.Batch, error) {
	path := "/batches"
	if courseID > 0 {
		path = fmt.Sprintf("/batches?course_id=%d", courseID)
	}
	var batches []models.Batch
	if err := c.do(ctx, http.MethodGet, path, nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// CreateBatch adds a batch under the given course.
func (c *Client) CreateBatch(ctx context.Context, name string, courseID int) (*models.Batch, error) {
	var batch models.Batch
	payload := map[string]interface{}{"name": name, "course_id": courseID}
	if err := c.do(ctx, http.MethodPost, "/batches", payload, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// UpdateBatch renames a batch or moves it to another course.
func (c *Client) UpdateBatch(ctx context.Context, id int, name string, courseID int) (*models.Batch, error) {
	var batch models.Batch
	payload := map[string]interface{}{"name": name, "course_id": courseID}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/batches/%d", id), payload, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// DeleteBatch removes a batch.
func (c *Client) DeleteBatch(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/batches/%d", id), nil, nil)
}
