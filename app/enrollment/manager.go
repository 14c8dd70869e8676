// Package enrollment owns the rules for moving a student between
// (course, batch, year, semester) states, recording fee payments against
// the ledger, and retiring students. It validates locally, hands the
// persistent work to the backend, and never retries a non-idempotent
// operation on an ambiguous failure.
package enrollment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"college-admin/app/models"
)

// ErrSeedPaymentFailed marks an admission that created the student but
// could not record the seed payment. The student exists; the caller must
// surface the partial success instead of retrying into a duplicate.
var ErrSeedPaymentFailed = errors.New("student admitted but seed payment was not recorded")

// Backend is the slice of the REST client the manager drives.
type Backend interface {
	ListBatches(ctx context.Context, courseID int) ([]models.Batch, error)
	CreateStudent(ctx context.Context, in models.StudentInput) (*models.Student, error)
	FeesHistory(ctx context.Context, studentID int) ([]models.FeePayment, error)
	AddFeesPayment(ctx context.Context, studentID int, in models.PaymentInput) (*models.FeePayment, error)
	DeleteFeesPayment(ctx context.Context, paymentID int) error
	PromoteBatch(ctx context.Context, req models.PromoteBatchRequest) (models.PromoteResult, error)
	PromoteAll(ctx context.Context, req models.PromoteAllRequest) (models.PromoteAllResult, error)
	PassoutStudents(ctx context.Context, req models.PassoutRequest) (models.PassoutResult, error)
}

// Manager is the enrollment lifecycle manager.
type Manager struct {
	backend  Backend
	validate *validator.Validate
}

// NewManager returns a manager backed by b.
func NewManager(b Backend) *Manager {
	return &Manager{backend: b, validate: validator.New()}
}

// SeedPayment is the optional initial payment collected on the admission
// form. Values arrive as form strings; the payment is recorded only when
// amount, mode and date are all present.
type SeedPayment struct {
	Amount string `json:"amount"`
	Mode   string `json:"mode"`
	Date   string `json:"date"`
	Note   string `json:"note"`
}

// complete reports whether the operator filled in enough to record a
// payment. Partial input (e.g. amount without date) is silently ignored.
func (p SeedPayment) complete() bool {
	return p.Amount != "" && p.Mode != "" && p.Date != ""
}

// AdmissionInput is the full admission form.
type AdmissionInput struct {
	Name          string          `json:"name" validate:"required"`
	FatherName    string          `json:"father_name" validate:"required"`
	DOB           string          `json:"dob" validate:"required,datetime=2006-01-02"`
	Mobile        string          `json:"mobile" validate:"required"`
	Email         string          `json:"email" validate:"required,email"`
	Gender        models.Gender   `json:"gender" validate:"required"`
	AdmissionDate string          `json:"admission_date" validate:"required,datetime=2006-01-02"`
	CourseID      int             `json:"course_id" validate:"required,gt=0"`
	BatchID       int             `json:"batch_id" validate:"required,gt=0"`
	Year          models.Year     `json:"year" validate:"required"`
	Semester      models.Semester `json:"semester" validate:"required"`
	FeesTotal     float64         `json:"fees_total" validate:"gte=0"`
	InitPayment   SeedPayment     `json:"initial_payment"`
}

// Admit creates exactly one student and, when the seed payment is fully
// specified, exactly one ledger entry. The two writes are separate
// requests with no atomicity guarantee; if the second fails the student
// is returned together with ErrSeedPaymentFailed.
func (m *Manager) Admit(ctx context.Context, in AdmissionInput) (*models.Student, error) {
	if err := m.validateAdmission(ctx, in); err != nil {
		return nil, err
	}

	student, err := m.backend.CreateStudent(ctx, models.StudentInput{
		Name:          in.Name,
		FatherName:    in.FatherName,
		DOB:           in.DOB,
		Mobile:        in.Mobile,
		Email:         in.Email,
		Gender:        in.Gender,
		AdmissionDate: in.AdmissionDate,
		CourseID:      in.CourseID,
		BatchID:       in.BatchID,
		Year:          in.Year,
		Semester:      in.Semester,
		FeesTotal:     in.FeesTotal,
	})
	if err != nil {
		return nil, err
	}

	if !in.InitPayment.complete() {
		return student, nil
	}

	amount, err := strconv.ParseFloat(in.InitPayment.Amount, 64)
	if err != nil || amount <= 0 {
		// Unparseable or non-positive seed amount: admit without it.
		return student, nil
	}
	_, err = m.backend.AddFeesPayment(ctx, student.ID, models.PaymentInput{
		Amount: amount,
		Mode:   models.PaymentMode(in.InitPayment.Mode),
		Date:   in.InitPayment.Date,
		Note:   in.InitPayment.Note,
	})
	if err != nil {
		return student, fmt.Errorf("%w: %v", ErrSeedPaymentFailed, err)
	}
	return student, nil
}

func (m *Manager) validateAdmission(ctx context.Context, in AdmissionInput) error {
	if err := m.validate.Struct(in); err != nil {
		return asValidationError(err)
	}

	var fields []models.FieldError
	if !in.Gender.Valid() {
		fields = append(fields, models.FieldError{Field: "gender", Error: "unknown gender"})
	}
	if !in.Year.Valid() {
		fields = append(fields, models.FieldError{Field: "year", Error: "unknown year"})
	}
	if !in.Semester.Valid() {
		fields = append(fields, models.FieldError{Field: "semester", Error: "unknown semester"})
	}
	if in.InitPayment.Mode != "" && !models.PaymentMode(in.InitPayment.Mode).Valid() {
		fields = append(fields, models.FieldError{Field: "initial_payment.mode", Error: "unknown payment mode"})
	}
	if len(fields) > 0 {
		return models.NewValidationError(errors.New("invalid admission input"), fields...)
	}

	// Refuse a batch that belongs to a different course; a mismatch here
	// would orphan the student.
	batches, err := m.backend.ListBatches(ctx, in.CourseID)
	if err != nil {
		return err
	}
	for _, b := range batches {
		if b.ID == in.BatchID {
			return nil
		}
	}
	return models.NewValidationError(
		fmt.Errorf("batch %d does not belong to course %d", in.BatchID, in.CourseID),
		models.FieldError{Field: "batch_id", Error: "batch does not belong to the selected course"},
	)
}

// PromoteBatch reassigns every student matching the from-filter to the
// to-assignment and returns the promoted count. Re-running with the same
// filter after a successful run matches zero students, which is what
// makes the operation safe to retry after an ambiguous failure report.
func (m *Manager) PromoteBatch(ctx context.Context, req models.PromoteBatchRequest) (int, error) {
	if err := validatePromotion(req); err != nil {
		return 0, err
	}
	result, err := m.backend.PromoteBatch(ctx, req)
	if err != nil {
		return 0, err
	}
	return result.Promoted, nil
}

func validatePromotion(req models.PromoteBatchRequest) error {
	var fields []models.FieldError
	if req.FromBatchID <= 0 {
		fields = append(fields, models.FieldError{Field: "from_batch_id", Error: "required"})
	}
	if req.ToBatchID <= 0 {
		fields = append(fields, models.FieldError{Field: "to_batch_id", Error: "required"})
	}
	if !req.FromYear.Valid() {
		fields = append(fields, models.FieldError{Field: "from_year", Error: "unknown year"})
	}
	if !req.ToYear.Valid() {
		fields = append(fields, models.FieldError{Field: "to_year", Error: "unknown year"})
	}
	if !req.FromSemester.Valid() {
		fields = append(fields, models.FieldError{Field: "from_semester", Error: "unknown semester"})
	}
	if !req.ToSemester.Valid() {
		fields = append(fields, models.FieldError{Field: "to_semester", Error: "unknown semester"})
	}
	if len(fields) > 0 {
		return models.NewValidationError(errors.New("invalid promotion filter"), fields...)
	}
	return nil
}

// PromoteAll runs the course-scoped bulk promotion. Students whose
// caller-supplied next year/semester lands beyond the final term are
// passed out (deleted) instead of promoted. The manager does not infer
// degree completion: the split is entirely the caller's filter values.
func (m *Manager) PromoteAll(ctx context.Context, req models.PromoteAllRequest) (models.PromoteAllResult, error) {
	var fields []models.FieldError
	if req.CourseID <= 0 {
		fields = append(fields, models.FieldError{Field: "course_id", Error: "required"})
	}
	if req.BatchID <= 0 {
		fields = append(fields, models.FieldError{Field: "batch_id", Error: "required"})
	}
	if req.ToBatchID <= 0 {
		fields = append(fields, models.FieldError{Field: "to_batch_id", Error: "required"})
	}
	if !req.CurrentYear.Valid() {
		fields = append(fields, models.FieldError{Field: "current_year", Error: "unknown year"})
	}
	if !req.CurrentSemester.Valid() {
		fields = append(fields, models.FieldError{Field: "current_semester", Error: "unknown semester"})
	}
	if !req.NextYear.Valid() {
		fields = append(fields, models.FieldError{Field: "next_year", Error: "unknown year"})
	}
	if !req.NextSemester.Valid() {
		fields = append(fields, models.FieldError{Field: "next_semester", Error: "unknown semester"})
	}
	if len(fields) > 0 {
		return models.PromoteAllResult{}, models.NewValidationError(errors.New("invalid bulk promotion filter"), fields...)
	}
	return m.backend.PromoteAll(ctx, req)
}

// Passout irreversibly deletes every student matching the filter and
// returns the deleted count. Ledger entries of deleted students are left
// in place for the collections report. Handlers gate this behind an
// explicit operator confirmation.
func (m *Manager) Passout(ctx context.Context, req models.PassoutRequest) (int, error) {
	var fields []models.FieldError
	if req.BatchID <= 0 {
		fields = append(fields, models.FieldError{Field: "batch_id", Error: "required"})
	}
	if !req.Year.Valid() {
		fields = append(fields, models.FieldError{Field: "year", Error: "unknown year"})
	}
	if !req.Semester.Valid() {
		fields = append(fields, models.FieldError{Field: "semester", Error: "unknown semester"})
	}
	if len(fields) > 0 {
		return 0, models.NewValidationError(errors.New("invalid passout filter"), fields...)
	}
	result, err := m.backend.PassoutStudents(ctx, req)
	if err != nil {
		return 0, err
	}
	return result.Deleted, nil
}

// AddPayment appends a ledger entry. Overpayment is permitted and simply
// yields a negative due balance; there is no check against the total.
func (m *Manager) AddPayment(ctx context.Context, studentID int, in models.PaymentInput) (*models.FeePayment, error) {
	var fields []models.FieldError
	if in.Amount <= 0 {
		fields = append(fields, models.FieldError{Field: "amount", Error: "must be greater than zero"})
	}
	if !in.Mode.Valid() {
		fields = append(fields, models.FieldError{Field: "mode", Error: "unknown payment mode"})
	}
	if in.Date == "" {
		fields = append(fields, models.FieldError{Field: "date", Error: "required"})
	}
	if len(fields) > 0 {
		return nil, models.NewValidationError(errors.New("invalid payment"), fields...)
	}
	return m.backend.AddFeesPayment(ctx, studentID, in)
}

// DeletePayment removes a ledger entry. Totals are derived values, so the
// owning student's paid/due figures correct themselves on the next read.
func (m *Manager) DeletePayment(ctx context.Context, paymentID int) error {
	return m.backend.DeleteFeesPayment(ctx, paymentID)
}

// FeesHistory returns the student's ledger in stored order. Each call is
// a fresh fetch; callers needing chronological order sort by date.
func (m *Manager) FeesHistory(ctx context.Context, studentID int) ([]models.FeePayment, error) {
	return m.backend.FeesHistory(ctx, studentID)
}

// FeesSummary carries the derived payment state for one student.
type FeesSummary struct {
	TotalPaid float64 `json:"total_paid"`
	Due       float64 `json:"due"`
}

// Summary recomputes the student's paid total and due balance from the
// ledger. Nothing here is cached: the ledger is the source of truth.
func (m *Manager) Summary(ctx context.Context, student models.Student) (FeesSummary, error) {
	history, err := m.backend.FeesHistory(ctx, student.ID)
	if err != nil {
		return FeesSummary{}, err
	}
	paid := TotalPaid(history)
	return FeesSummary{TotalPaid: paid, Due: student.FeesTotal - paid}, nil
}

// TotalPaid sums the ledger entries.
func TotalPaid(history []models.FeePayment) float64 {
	var total float64
	for _, p := range history {
		total += p.Amount
	}
	return total
}

// asValidationError converts validator.v10 output into the app's
// ValidationError with one entry per failed field.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewValidationError(err)
	}
	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field: strings.ToLower(fe.Field()),
			Error: fmt.Sprintf("failed on %q", fe.Tag()),
		})
	}
	return models.NewValidationError(errors.New("invalid input"), fields...)
}
