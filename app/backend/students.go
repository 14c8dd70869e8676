package backend

import (
	"context"
	"fmt"
	"net/http"

	"college-admin/app/models"
)

// ListStudents fetches all students with joined course/batch names.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.do(ctx, http.MethodGet, "/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent fetches one student by id.
func (c *Client) GetStudent(ctx context.Context, id int) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/students/%d", id), nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent admits a student record.
func (c *Client) CreateStudent(ctx context.Context, in models.StudentInput) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodPost, "/students", in, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent overwrites the editable fields of a student.
func (c *Client) UpdateStudent(ctx context.Context, id int, in models.StudentInput) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/students/%d", id), in, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes a single student record.
func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/students/%d", id), nil, nil)
}
