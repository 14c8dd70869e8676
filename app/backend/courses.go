package backend

import (
	"context"
	"fmt"
	"net/http"

	"college-admin/app/models"
)

// ListCourses fetches all courses.
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse adds a course. Duplicate names come back as ConflictError.
func (c *Client) CreateCourse(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	payload := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/courses", payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse renames a course.
func (c *Client) UpdateCourse(ctx context.Context, id int, name string) (*models.Course, error) {
	var course models.Course
	payload := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", id), payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course. The backend refuses when batches or
// students still reference it.
func (c *Client) DeleteCourse(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil, nil)
}
