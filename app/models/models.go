package models

// Course represents a program of study (e.g. "B.Tech CSE"). Names are
// unique; the backend enforces uniqueness and referential integrity.
type Course struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Batch represents an admission cohort (e.g. "2024-25") within a course.
type Batch struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	CourseID int    `json:"course_id"`
}

// Student is the central record of the system. BatchID must reference a
// batch belonging to CourseID; FeesTotal is the expected total fee for the
// student's current year. Dates travel as "2006-01-02" strings on the wire.
type Student struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	FatherName    string        `json:"father_name"`
	DOB           string        `json:"dob"`
	Mobile        string        `json:"mobile"`
	Email         string        `json:"email"`
	Gender        Gender        `json:"gender"`
	AdmissionDate string        `json:"admission_date"`
	CourseID      int           `json:"course_id"`
	BatchID       int           `json:"batch_id"`
	Year          Year          `json:"year"`
	Semester      Semester      `json:"semester"`
	FeesTotal     float64       `json:"fees_total"`
	Status        StudentStatus `json:"status,omitempty"`

	// Joined display names, populated by the backend on list endpoints.
	Course string `json:"course,omitempty"`
	Batch  string `json:"batch,omitempty"`
}

// FeePayment is an append-only ledger entry. The ledger is the single
// source of truth for payment state: totals are always recomputed from it,
// never cached on the student.
type FeePayment struct {
	ID        int         `json:"id"`
	StudentID int         `json:"student_id"`
	Amount    float64     `json:"amount"`
	Mode      PaymentMode `json:"mode"`
	Date      string      `json:"date"`
	Note      string      `json:"note"`
}

// StudentInput is the wire payload for creating or updating a student.
type StudentInput struct {
	Name          string   `json:"name"`
	FatherName    string   `json:"father_name"`
	DOB           string   `json:"dob"`
	Mobile        string   `json:"mobile"`
	Email         string   `json:"email"`
	Gender        Gender   `json:"gender"`
	AdmissionDate string   `json:"admission_date"`
	CourseID      int      `json:"course_id"`
	BatchID       int      `json:"batch_id"`
	Year          Year     `json:"year"`
	Semester      Semester `json:"semester"`
	FeesTotal     float64  `json:"fees_total"`
}

// PaymentInput is the wire payload for appending a fee payment.
type PaymentInput struct {
	Amount float64     `json:"amount"`
	Mode   PaymentMode `json:"mode"`
	Date   string      `json:"date"`
	Note   string      `json:"note"`
}

// PromoteBatchRequest targets students by (batch, year, semester) and
// reassigns every match. The filter is the sole targeting mechanism.
type PromoteBatchRequest struct {
	FromBatchID  int      `json:"from_batch_id"`
	FromYear     Year     `json:"from_year"`
	FromSemester Semester `json:"from_semester"`
	ToBatchID    int      `json:"to_batch_id"`
	ToYear       Year     `json:"to_year"`
	ToSemester   Semester `json:"to_semester"`
}

// PromoteResult reports how many students the backend promoted.
type PromoteResult struct {
	Promoted int `json:"promoted"`
}

// PromoteAllRequest is the course-scoped bulk promotion. Whether a student
// is promoted or passed out is determined entirely by the caller-supplied
// next year/semester; the system has no notion of "final year".
type PromoteAllRequest struct {
	CourseID        int      `json:"course_id"`
	BatchID         int      `json:"batch_id"`
	ToBatchID       int      `json:"to_batch_id"`
	CurrentYear     Year     `json:"current_year"`
	CurrentSemester Semester `json:"current_semester"`
	NextYear        Year     `json:"next_year"`
	NextSemester    Semester `json:"next_semester"`
}

// PromoteAllResult reports promoted and passed-out (deleted) counts.
type PromoteAllResult struct {
	Promoted int `json:"promoted"`
	Passout  int `json:"passout"`
}

// PassoutRequest irreversibly deletes every student matching the filter.
type PassoutRequest struct {
	BatchID  int      `json:"batch_id"`
	Year     Year     `json:"year"`
	Semester Semester `json:"semester"`
}

// PassoutResult reports how many students the backend deleted.
type PassoutResult struct {
	Deleted int `json:"deleted"`
}

// PaymentReportRow is one row of the aggregate collections report, with
// the joined student/course/batch names the backend attaches.
type PaymentReportRow struct {
	ID          int         `json:"id"`
	Date        string      `json:"date"`
	StudentName string      `json:"student_name"`
	Course      string      `json:"course"`
	Batch       string      `json:"batch"`
	Year        Year        `json:"year"`
	Amount      float64     `json:"amount"`
	Mode        PaymentMode `json:"mode"`
	Note        string      `json:"note"`
}

// PaymentReportFilter narrows the aggregate collections report. Zero
// values mean "no filter".
type PaymentReportFilter struct {
	From     string
	To       string
	CourseID int
	BatchID  int
	Year     Year
	Semester Semester
}

// BulkUploadRow is the per-row outcome of a bulk CSV student upload.
type BulkUploadRow struct {
	Row    int    `json:"row"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BulkUploadResult is the tally plus row-level detail of a bulk CSV
// upload. Callers must render both.
type BulkUploadResult struct {
	SuccessCount int             `json:"success_count"`
	ErrorCount   int             `json:"error_count"`
	Total        int             `json:"total"`
	Details      []BulkUploadRow `json:"details"`
}
