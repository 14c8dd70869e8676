package backend

import (
	"context"
	"net/http"

	"college-admin/app/models"
)

// PromoteBatch reassigns every student matching the from-filter. The
// returned count is whatever the backend reports; there is no rollback if
// only some updates succeeded server-side.
func (c *Client) PromoteBatch(ctx context.Context, req models.PromoteBatchRequest) (models.PromoteResult, error) {
	var result models.PromoteResult
	err := c.do(ctx, http.MethodPost, "/promote_batch", req, &result)
	return result, err
}

// PromoteAll runs the course-scoped bulk promotion, passing out students
// whose caller-supplied next year/semester is beyond the final term.
func (c *Client) PromoteAll(ctx context.Context, req models.PromoteAllRequest) (models.PromoteAllResult, error) {
	var result models.PromoteAllResult
	err := c.do(ctx, http.MethodPost, "/promote_all", req, &result)
	return result, err
}

// PassoutStudents irreversibly deletes every student matching the filter.
func (c *Client) PassoutStudents(ctx context.Context, req models.PassoutRequest) (models.PassoutResult, error) {
	var result models.PassoutResult
	err := c.do(ctx, http.MethodPost, "/passout_students", req, &result)
	return result, err
}
