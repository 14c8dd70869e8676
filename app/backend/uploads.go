package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"college-admin/app/models"
)

// UploadResult is what the document store returns for a stored file.
type UploadResult struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
}

// ExamFormStatus lists the stored exam-form filenames for a student.
func (c *Client) ExamFormStatus(ctx context.Context, studentID int) ([]string, error) {
	var status struct {
		Filenames []string `json:"filenames"`
	}
	path := fmt.Sprintf("/students/%d/exam_form_status", studentID)
	if err := c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}
	return status.Filenames, nil
}

// UploadExamForm streams an exam form to the document store and returns
// the stored filename.
func (c *Client) UploadExamForm(ctx context.Context, studentID int, filename string, file io.Reader) (*UploadResult, error) {
	path := fmt.Sprintf("/students/%d/upload_exam_form", studentID)
	return c.upload(ctx, path, filename, file, nil)
}

// UploadDocument streams a student document keyed by document type.
func (c *Client) UploadDocument(ctx context.Context, studentID int, docType, filename string, file io.Reader) (*UploadResult, error) {
	path := fmt.Sprintf("/students/%d/upload_document", studentID)
	return c.upload(ctx, path, filename, file, map[string]string{"doc_type": docType})
}

// BulkUploadStudents sends a CSV of student rows for ingestion and
// returns the per-row outcome alongside the tally.
func (c *Client) BulkUploadStudents(ctx context.Context, filename string, file io.Reader) (*models.BulkUploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/students/bulk_upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &models.TransportError{Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var result models.BulkUploadResult
	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader, fields map[string]string) (*UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &models.TransportError{Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var result UploadResult
	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func decodeJSON(r io.Reader, out interface{}) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return &models.TransportError{Message: "invalid response body", Err: err}
	}
	return nil
}
