package enrollment

import (
	"strings"

	"college-admin/app/models"
)

// StudentFilter narrows the cached student list. Zero values mean "no
// filter"; all set filters must match (conjunctive).
type StudentFilter struct {
	CourseID int
	BatchID  int
	Year     models.Year
	Semester models.Semester
	Name     string
}

// FilterStudents applies f to students, preserving input order. The name
// filter is a case-insensitive substring match.
func FilterStudents(students []models.Student, f StudentFilter) []models.Student {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	var out []models.Student
	for _, s := range students {
		if f.CourseID > 0 && s.CourseID != f.CourseID {
			continue
		}
		if f.BatchID > 0 && s.BatchID != f.BatchID {
			continue
		}
		if f.Year != "" && s.Year != f.Year {
			continue
		}
		if f.Semester != "" && s.Semester != f.Semester {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(s.Name), name) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// BatchesForCourse derives the batch choices for a course selection. It
// is a pure function over the cached batch list, preserving input order.
func BatchesForCourse(courseID int, batches []models.Batch) []models.Batch {
	var out []models.Batch
	for _, b := range batches {
		if b.CourseID == courseID {
			out = append(out, b)
		}
	}
	return out
}
