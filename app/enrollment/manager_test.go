package enrollment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"college-admin/app/models"
)

// fakeBackend implements Backend over in-memory collections, mirroring
// the REST contract: promote is a conditional bulk update by filter,
// passout deletes by filter, the ledger is append-only per student.
type fakeBackend struct {
	batches    []models.Batch
	students   []models.Student
	payments   []models.FeePayment
	nextID     int
	failOnPay  bool
	lastPromos []models.PromoteBatchRequest
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1}
}

func (f *fakeBackend) id() int {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeBackend) ListBatches(_ context.Context, courseID int) ([]models.Batch, error) {
	var out []models.Batch
	for _, b := range f.batches {
		if courseID == 0 || b.CourseID == courseID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateStudent(_ context.Context, in models.StudentInput) (*models.Student, error) {
	s := models.Student{
		ID: f.id(), Name: in.Name, FatherName: in.FatherName, DOB: in.DOB,
		Mobile: in.Mobile, Email: in.Email, Gender: in.Gender,
		AdmissionDate: in.AdmissionDate, CourseID: in.CourseID, BatchID: in.BatchID,
		Year: in.Year, Semester: in.Semester, FeesTotal: in.FeesTotal,
		Status: models.StatusActive,
	}
	f.students = append(f.students, s)
	return &s, nil
}

func (f *fakeBackend) FeesHistory(_ context.Context, studentID int) ([]models.FeePayment, error) {
	var out []models.FeePayment
	for _, p := range f.payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBackend) AddFeesPayment(_ context.Context, studentID int, in models.PaymentInput) (*models.FeePayment, error) {
	if f.failOnPay {
		return nil, &models.TransportError{Message: "backend unreachable"}
	}
	p := models.FeePayment{
		ID: f.id(), StudentID: studentID,
		Amount: in.Amount, Mode: in.Mode, Date: in.Date, Note: in.Note,
	}
	f.payments = append(f.payments, p)
	return &p, nil
}

func (f *fakeBackend) DeleteFeesPayment(_ context.Context, paymentID int) error {
	for i, p := range f.payments {
		if p.ID == paymentID {
			f.payments = append(f.payments[:i], f.payments[i+1:]...)
			return nil
		}
	}
	return &models.NotFoundError{Message: "payment not found"}
}

func (f *fakeBackend) PromoteBatch(_ context.Context, req models.PromoteBatchRequest) (models.PromoteResult, error) {
	f.lastPromos = append(f.lastPromos, req)
	count := 0
	for i, s := range f.students {
		if s.BatchID == req.FromBatchID && s.Year == req.FromYear && s.Semester == req.FromSemester {
			f.students[i].BatchID = req.ToBatchID
			f.students[i].Year = req.ToYear
			f.students[i].Semester = req.ToSemester
			count++
		}
	}
	return models.PromoteResult{Promoted: count}, nil
}

func (f *fakeBackend) PromoteAll(_ context.Context, req models.PromoteAllRequest) (models.PromoteAllResult, error) {
	// A final-term cohort has no next term to advance into, so the
	// backend passes it out instead of promoting.
	_, yearOK := req.CurrentYear.Next()
	_, semOK := req.CurrentSemester.Next()
	if !yearOK || !semOK {
		result, _ := f.PassoutStudents(context.Background(), models.PassoutRequest{
			BatchID: req.BatchID, Year: req.CurrentYear, Semester: req.CurrentSemester,
		})
		return models.PromoteAllResult{Passout: result.Deleted}, nil
	}
	result, _ := f.PromoteBatch(context.Background(), models.PromoteBatchRequest{
		FromBatchID: req.BatchID, FromYear: req.CurrentYear, FromSemester: req.CurrentSemester,
		ToBatchID: req.ToBatchID, ToYear: req.NextYear, ToSemester: req.NextSemester,
	})
	return models.PromoteAllResult{Promoted: result.Promoted}, nil
}

func (f *fakeBackend) PassoutStudents(_ context.Context, req models.PassoutRequest) (models.PassoutResult, error) {
	var kept []models.Student
	deleted := 0
	for _, s := range f.students {
		if s.BatchID == req.BatchID && s.Year == req.Year && s.Semester == req.Semester {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	f.students = kept
	return models.PassoutResult{Deleted: deleted}, nil
}

func validAdmission() AdmissionInput {
	return AdmissionInput{
		Name:          "Asha Verma",
		FatherName:    "Ramesh Verma",
		DOB:           "2004-06-12",
		Mobile:        "9876543210",
		Email:         "asha@example.com",
		Gender:        models.Female,
		AdmissionDate: "2024-07-01",
		CourseID:      1,
		BatchID:       10,
		Year:          models.FirstYear,
		Semester:      models.FirstSemester,
		FeesTotal:     50000,
	}
}

func managerWithBatch() (*Manager, *fakeBackend) {
	fake := newFakeBackend()
	fake.batches = []models.Batch{{ID: 10, Name: "2024-25", CourseID: 1}}
	return NewManager(fake), fake
}

func TestAdmitWithFullSeedPayment(t *testing.T) {
	m, fake := managerWithBatch()

	in := validAdmission()
	in.InitPayment = SeedPayment{Amount: "20000", Mode: "UPI", Date: "2024-07-01", Note: "admission"}

	student, err := m.Admit(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, fake.students, 1)
	require.Len(t, fake.payments, 1)
	require.Equal(t, student.ID, fake.payments[0].StudentID)
	require.Equal(t, 20000.0, fake.payments[0].Amount)
}

func TestAdmitWithPartialSeedPaymentIgnoresIt(t *testing.T) {
	m, fake := managerWithBatch()

	// Amount present but no date: no payment may be recorded.
	in := validAdmission()
	in.InitPayment = SeedPayment{Amount: "20000", Mode: "Cash"}

	_, err := m.Admit(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, fake.students, 1)
	require.Empty(t, fake.payments)
}

func TestAdmitSeedPaymentFailureIsPartialSuccess(t *testing.T) {
	m, fake := managerWithBatch()
	fake.failOnPay = true

	in := validAdmission()
	in.InitPayment = SeedPayment{Amount: "20000", Mode: "Cash", Date: "2024-07-01"}

	student, err := m.Admit(context.Background(), in)
	require.ErrorIs(t, err, ErrSeedPaymentFailed)
	require.NotNil(t, student)
	require.Len(t, fake.students, 1)
	require.Empty(t, fake.payments)
}

func TestAdmitMissingFieldFails(t *testing.T) {
	m, _ := managerWithBatch()

	in := validAdmission()
	in.Name = ""

	_, err := m.Admit(context.Background(), in)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Fields)
}

func TestAdmitBatchCourseMismatchFails(t *testing.T) {
	m, fake := managerWithBatch()
	fake.batches = append(fake.batches, models.Batch{ID: 20, Name: "2024-25", CourseID: 2})

	in := validAdmission()
	in.BatchID = 20 // belongs to course 2, student enrols in course 1

	_, err := m.Admit(context.Background(), in)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Empty(t, fake.students)
}

func TestPromoteBatchMatchesFilterOnly(t *testing.T) {
	m, fake := managerWithBatch()
	fake.students = []models.Student{
		{ID: 1, Name: "A", BatchID: 10, Year: models.ThirdYear, Semester: models.FifthSemester},
		{ID: 2, Name: "B", BatchID: 10, Year: models.FourthYear, Semester: models.SeventhSemester},
	}

	promoted, err := m.PromoteBatch(context.Background(), models.PromoteBatchRequest{
		FromBatchID: 10, FromYear: models.ThirdYear, FromSemester: models.FifthSemester,
		ToBatchID: 10, ToYear: models.FourthYear, ToSemester: models.SixthSemester,
	})
	require.NoError(t, err)
	require.Equal(t, 1, promoted)

	require.Equal(t, models.FourthYear, fake.students[0].Year)
	require.Equal(t, models.SixthSemester, fake.students[0].Semester)
	// B untouched.
	require.Equal(t, models.SeventhSemester, fake.students[1].Semester)
}

func TestPromoteBatchRerunIsIdempotent(t *testing.T) {
	m, fake := managerWithBatch()
	fake.students = []models.Student{
		{ID: 1, Name: "A", BatchID: 10, Year: models.FirstYear, Semester: models.FirstSemester},
		{ID: 2, Name: "B", BatchID: 10, Year: models.FirstYear, Semester: models.FirstSemester},
	}

	req := models.PromoteBatchRequest{
		FromBatchID: 10, FromYear: models.FirstYear, FromSemester: models.FirstSemester,
		ToBatchID: 10, ToYear: models.FirstYear, ToSemester: models.SecondSemester,
	}

	promoted, err := m.PromoteBatch(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, promoted)

	// Same filter again: the cohort has moved away from it.
	promoted, err = m.PromoteBatch(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 0, promoted)
}

func TestPromoteBatchInvalidFilterFails(t *testing.T) {
	m, _ := managerWithBatch()

	_, err := m.PromoteBatch(context.Background(), models.PromoteBatchRequest{
		FromBatchID: 10, FromYear: "5th Year", FromSemester: models.FirstSemester,
		ToBatchID: 10, ToYear: models.SecondYear, ToSemester: models.ThirdSemester,
	})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPassoutDeletesExactlyMatching(t *testing.T) {
	m, fake := managerWithBatch()
	fake.students = []models.Student{
		{ID: 1, Name: "A", BatchID: 10, Year: models.FourthYear, Semester: models.EighthSemester},
		{ID: 2, Name: "B", BatchID: 10, Year: models.ThirdYear, Semester: models.FifthSemester},
		{ID: 3, Name: "C", BatchID: 11, Year: models.FourthYear, Semester: models.EighthSemester},
	}
	before := fake.students[1]

	deleted, err := m.Passout(context.Background(), models.PassoutRequest{
		BatchID: 10, Year: models.FourthYear, Semester: models.EighthSemester,
	})
	require.NoError(t, err)
	require.Equal(t, 1, deleted)
	require.Len(t, fake.students, 2)
	require.Equal(t, before, fake.students[0])
}

func TestPassoutLeavesLedgerInPlace(t *testing.T) {
	m, fake := managerWithBatch()
	fake.students = []models.Student{
		{ID: 1, Name: "A", BatchID: 10, Year: models.FourthYear, Semester: models.EighthSemester},
	}
	fake.payments = []models.FeePayment{{ID: 5, StudentID: 1, Amount: 10000}}

	_, err := m.Passout(context.Background(), models.PassoutRequest{
		BatchID: 10, Year: models.FourthYear, Semester: models.EighthSemester,
	})
	require.NoError(t, err)
	require.Len(t, fake.payments, 1)
}

// A mid-program cohort can be passed out through promote-all when the
// operator supplies passout-equivalent filter values. The manager does
// not second-guess the filter; this pins that behavior.
func TestPromoteAllTrustsCallerSuppliedFilter(t *testing.T) {
	m, fake := managerWithBatch()
	fake.students = []models.Student{
		{ID: 1, Name: "A", CourseID: 1, BatchID: 10, Year: models.SecondYear, Semester: models.FourthSemester},
	}

	result, err := m.PromoteAll(context.Background(), models.PromoteAllRequest{
		CourseID: 1, BatchID: 10, ToBatchID: 10,
		CurrentYear: models.SecondYear, CurrentSemester: models.FourthSemester,
		NextYear: models.ThirdYear, NextSemester: models.FifthSemester,
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Promoted)
	require.Equal(t, 0, result.Passout)
}

func TestAddPaymentValidation(t *testing.T) {
	m, _ := managerWithBatch()

	cases := []struct {
		name string
		in   models.PaymentInput
	}{
		{"zero amount", models.PaymentInput{Amount: 0, Mode: models.ModeCash, Date: "2024-08-01"}},
		{"negative amount", models.PaymentInput{Amount: -50, Mode: models.ModeCash, Date: "2024-08-01"}},
		{"unknown mode", models.PaymentInput{Amount: 100, Mode: "Barter", Date: "2024-08-01"}},
		{"missing date", models.PaymentInput{Amount: 100, Mode: models.ModeCash}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.AddPayment(context.Background(), 1, tc.in)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestOverpaymentIsPermitted(t *testing.T) {
	m, fake := managerWithBatch()
	student := models.Student{ID: 1, FeesTotal: 1000}
	fake.students = []models.Student{student}

	_, err := m.AddPayment(context.Background(), 1, models.PaymentInput{
		Amount: 5000, Mode: models.ModeCash, Date: "2024-08-01",
	})
	require.NoError(t, err)

	summary, err := m.Summary(context.Background(), student)
	require.NoError(t, err)
	require.Equal(t, -4000.0, summary.Due)
}

func TestDueRecomputedAfterLedgerChanges(t *testing.T) {
	m, fake := managerWithBatch()
	student := models.Student{ID: 1, FeesTotal: 50000}
	fake.students = []models.Student{student}

	_, err := m.AddPayment(context.Background(), 1, models.PaymentInput{
		Amount: 20000, Mode: models.ModeCash, Date: "2024-07-01",
	})
	require.NoError(t, err)
	second, err := m.AddPayment(context.Background(), 1, models.PaymentInput{
		Amount: 15000, Mode: models.ModeUPI, Date: "2024-08-01",
	})
	require.NoError(t, err)

	summary, err := m.Summary(context.Background(), student)
	require.NoError(t, err)
	require.Equal(t, 35000.0, summary.TotalPaid)
	require.Equal(t, 15000.0, summary.Due)

	require.NoError(t, m.DeletePayment(context.Background(), second.ID))

	summary, err = m.Summary(context.Background(), student)
	require.NoError(t, err)
	require.Equal(t, 20000.0, summary.TotalPaid)
	require.Equal(t, 30000.0, summary.Due)
}

func TestFeesHistoryReturnsStoredOrder(t *testing.T) {
	m, fake := managerWithBatch()
	fake.payments = []models.FeePayment{
		{ID: 1, StudentID: 1, Amount: 100, Date: "2024-09-01"},
		{ID: 2, StudentID: 1, Amount: 200, Date: "2024-08-01"},
		{ID: 3, StudentID: 2, Amount: 300, Date: "2024-07-01"},
	}

	history, err := m.FeesHistory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Stored order, not chronological.
	require.Equal(t, 1, history[0].ID)
	require.Equal(t, 2, history[1].ID)
}

func TestBackendErrorsPassThrough(t *testing.T) {
	m, _ := managerWithBatch()

	err := m.DeletePayment(context.Background(), 999)
	var nf *models.NotFoundError
	require.True(t, errors.As(err, &nf))
}
