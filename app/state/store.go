// Package state holds the console's in-memory cache of backend
// collections. The cache follows the "fetch once, keep until reload"
// model: collections are loaded on demand and replaced wholesale after
// every mutation. The store is passed by reference to route packages;
// there is no package-level singleton.
package state

import (
	"context"
	"sync"

	"college-admin/app/models"
)

// FetchStatus is the lifecycle of one cached collection.
type FetchStatus string

const (
	StatusIdle      FetchStatus = "idle"
	StatusLoading   FetchStatus = "loading"
	StatusSucceeded FetchStatus = "succeeded"
	StatusFailed    FetchStatus = "failed"
)

// Fetcher is the slice of the backend client the store needs to refresh
// its collections.
type Fetcher interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListBatches(ctx context.Context, courseID int) ([]models.Batch, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
}

type collection[T any] struct {
	items  []T
	status FetchStatus
	err    string
}

// Store caches the three backend collections, each with its own fetch
// status. All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	courses  collection[models.Course]
	batches  collection[models.Batch]
	students collection[models.Student]
}

// NewStore returns an empty store with all collections idle.
func NewStore() *Store {
	return &Store{
		courses:  collection[models.Course]{status: StatusIdle},
		batches:  collection[models.Batch]{status: StatusIdle},
		students: collection[models.Student]{status: StatusIdle},
	}
}

// Courses returns the cached courses and their fetch status.
func (s *Store) Courses() ([]models.Course, FetchStatus) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Course(nil), s.courses.items...), s.courses.status
}

// Batches returns the cached batches and their fetch status.
func (s *Store) Batches() ([]models.Batch, FetchStatus) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Batch(nil), s.batches.items...), s.batches.status
}

// Students returns the cached students and their fetch status.
func (s *Store) Students() ([]models.Student, FetchStatus) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Student(nil), s.students.items...), s.students.status
}

// SetCourses replaces the cached courses and marks them succeeded.
func (s *Store) SetCourses(items []models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = collection[models.Course]{items: items, status: StatusSucceeded}
}

// SetBatches replaces the cached batches and marks them succeeded.
func (s *Store) SetBatches(items []models.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = collection[models.Batch]{items: items, status: StatusSucceeded}
}

// SetStudents replaces the cached students and marks them succeeded.
func (s *Store) SetStudents(items []models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = collection[models.Student]{items: items, status: StatusSucceeded}
}

// Invalidate resets every collection to idle so the next read re-fetches.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = collection[models.Course]{status: StatusIdle}
	s.batches = collection[models.Batch]{status: StatusIdle}
	s.students = collection[models.Student]{status: StatusIdle}
}

// RefreshCourses re-fetches courses through f, tracking loading/failed
// status around the call.
func (s *Store) RefreshCourses(ctx context.Context, f Fetcher) error {
	s.setStatus(&s.courses.status, StatusLoading)
	items, err := f.ListCourses(ctx)
	if err != nil {
		s.fail(&s.courses.status, &s.courses.err, err)
		return err
	}
	s.SetCourses(items)
	return nil
}

// RefreshBatches re-fetches all batches through f.
func (s *Store) RefreshBatches(ctx context.Context, f Fetcher) error {
	s.setStatus(&s.batches.status, StatusLoading)
	items, err := f.ListBatches(ctx, 0)
	if err != nil {
		s.fail(&s.batches.status, &s.batches.err, err)
		return err
	}
	s.SetBatches(items)
	return nil
}

// RefreshStudents re-fetches students through f.
func (s *Store) RefreshStudents(ctx context.Context, f Fetcher) error {
	s.setStatus(&s.students.status, StatusLoading)
	items, err := f.ListStudents(ctx)
	if err != nil {
		s.fail(&s.students.status, &s.students.err, err)
		return err
	}
	s.SetStudents(items)
	return nil
}

// RefreshAll re-fetches every collection, returning the first error.
func (s *Store) RefreshAll(ctx context.Context, f Fetcher) error {
	if err := s.RefreshCourses(ctx, f); err != nil {
		return err
	}
	if err := s.RefreshBatches(ctx, f); err != nil {
		return err
	}
	return s.RefreshStudents(ctx, f)
}

func (s *Store) setStatus(status *FetchStatus, v FetchStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*status = v
}

func (s *Store) fail(status *FetchStatus, msg *string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*status = StatusFailed
	*msg = err.Error()
}
