package state

import (
	"context"
	"errors"
	"testing"

	"college-admin/app/models"
)

type stubFetcher struct {
	courses  []models.Course
	batches  []models.Batch
	students []models.Student
	err      error

	batchCourseID int
}

func (f *stubFetcher) ListCourses(ctx context.Context) ([]models.Course, error) {
	return f.courses, f.err
}

func (f *stubFetcher) ListBatches(ctx context.Context, courseID int) ([]models.Batch, error) {
	f.batchCourseID = courseID
	return f.batches, f.err
}

func (f *stubFetcher) ListStudents(ctx context.Context) ([]models.Student, error) {
	return f.students, f.err
}

func TestNewStoreStartsIdle(t *testing.T) {
	store := NewStore()
	for name, status := range map[string]FetchStatus{
		"courses":  statusOf(store.Courses()),
		"batches":  statusOf(store.Batches()),
		"students": statusOf(store.Students()),
	} {
		if status != StatusIdle {
			t.Fatalf("%s: expected idle, got %s", name, status)
		}
	}
}

func TestRefreshSucceeds(t *testing.T) {
	store := NewStore()
	fetcher := &stubFetcher{
		courses:  []models.Course{{ID: 1, Name: "B.Tech CSE"}},
		batches:  []models.Batch{{ID: 10, Name: "2024-25", CourseID: 1}},
		students: []models.Student{{ID: 5, Name: "Asha Verma"}},
	}

	if err := store.RefreshAll(context.Background(), fetcher); err != nil {
		t.Fatal(err)
	}

	courses, status := store.Courses()
	if status != StatusSucceeded || len(courses) != 1 || courses[0].Name != "B.Tech CSE" {
		t.Fatalf("unexpected courses: %v (%s)", courses, status)
	}
	if _, status := store.Batches(); status != StatusSucceeded {
		t.Fatalf("batches not succeeded: %s", status)
	}
	if _, status := store.Students(); status != StatusSucceeded {
		t.Fatalf("students not succeeded: %s", status)
	}
	// A full batch refresh asks for every course.
	if fetcher.batchCourseID != 0 {
		t.Fatalf("expected unscoped batch fetch, got course %d", fetcher.batchCourseID)
	}
}

func TestRefreshFailureMarksFailed(t *testing.T) {
	store := NewStore()
	fetcher := &stubFetcher{err: errors.New("backend unreachable")}

	if err := store.RefreshStudents(context.Background(), fetcher); err == nil {
		t.Fatal("expected refresh error")
	}
	if _, status := store.Students(); status != StatusFailed {
		t.Fatalf("expected failed, got %s", status)
	}
	// A later successful refresh recovers.
	fetcher.err = nil
	if err := store.RefreshStudents(context.Background(), fetcher); err != nil {
		t.Fatal(err)
	}
	if _, status := store.Students(); status != StatusSucceeded {
		t.Fatalf("expected succeeded after recovery, got %s", status)
	}
}

func TestInvalidateResetsEverything(t *testing.T) {
	store := NewStore()
	store.SetCourses([]models.Course{{ID: 1, Name: "BCA"}})
	store.SetStudents([]models.Student{{ID: 2, Name: "Rahul Singh"}})

	store.Invalidate()

	courses, status := store.Courses()
	if status != StatusIdle || len(courses) != 0 {
		t.Fatalf("courses not reset: %v (%s)", courses, status)
	}
	students, status := store.Students()
	if status != StatusIdle || len(students) != 0 {
		t.Fatalf("students not reset: %v (%s)", students, status)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	store := NewStore()
	store.SetCourses([]models.Course{{ID: 1, Name: "BCA"}})

	courses, _ := store.Courses()
	courses[0].Name = "mutated"

	again, _ := store.Courses()
	if again[0].Name != "BCA" {
		t.Fatal("caller mutation leaked into the cache")
	}
}

func statusOf[T any](_ []T, status FetchStatus) FetchStatus { return status }
