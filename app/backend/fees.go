package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"college-admin/app/models"
)

// FeesHistory fetches the fee ledger for one student, in stored order.
// No chronological ordering is guaranteed; callers sort by date if they
// need it.
func (c *Client) FeesHistory(ctx context.Context, studentID int) ([]models.FeePayment, error) {
	var payments []models.FeePayment
	path := fmt.Sprintf("/students/%d/fees_history", studentID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// AddFeesPayment appends a ledger entry for the student.
func (c *Client) AddFeesPayment(ctx context.Context, studentID int, in models.PaymentInput) (*models.FeePayment, error) {
	var payment models.FeePayment
	path := fmt.Sprintf("/students/%d/add_fees_payment", studentID)
	if err := c.do(ctx, http.MethodPost, path, in, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// DeleteFeesPayment removes a ledger entry. Totals are recomputed on the
// next read; no audit trail of deletions is kept.
func (c *Client) DeleteFeesPayment(ctx context.Context, paymentID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/fees_payments/%d", paymentID), nil, nil)
}

// PaymentsReport fetches the aggregate collections report with optional
// date/course/batch/year/semester filters.
func (c *Client) PaymentsReport(ctx context.Context, f models.PaymentReportFilter) ([]models.PaymentReportRow, error) {
	params := url.Values{}
	if f.From != "" {
		params.Set("from", f.From)
	}
	if f.To != "" {
		params.Set("to", f.To)
	}
	if f.CourseID > 0 {
		params.Set("course_id", strconv.Itoa(f.CourseID))
	}
	if f.BatchID > 0 {
		params.Set("batch_id", strconv.Itoa(f.BatchID))
	}
	if f.Year != "" {
		params.Set("year", string(f.Year))
	}
	if f.Semester != "" {
		params.Set("semester", string(f.Semester))
	}

	path := "/fees_payments"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var rows []models.PaymentReportRow
	if err := c.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
