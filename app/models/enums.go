package models

// Year defines the academic year of a student. Values are ordered:
// promotion moves a student to the next value in the list.
type Year string

const (
	FirstYear  Year = "1st Year"
	SecondYear Year = "2nd Year"
	ThirdYear  Year = "3rd Year"
	FourthYear Year = "4th Year"
)

// Years lists all academic years in promotion order.
var Years = []Year{FirstYear, SecondYear, ThirdYear, FourthYear}

// Valid reports whether y is one of the known academic years.
func (y Year) Valid() bool {
	for _, v := range Years {
		if y == v {
			return true
		}
	}
	return false
}

// Next returns the year that follows y. The second return value is false
// when y is the final year or not a known year.
func (y Year) Next() (Year, bool) {
	for i, v := range Years {
		if y == v && i+1 < len(Years) {
			return Years[i+1], true
		}
	}
	return "", false
}

// Semester defines the semester of a student. Values are ordered the same
// way as Year.
type Semester string

const (
	FirstSemester   Semester = "1st Semester"
	SecondSemester  Semester = "2nd Semester"
	ThirdSemester   Semester = "3rd Semester"
	FourthSemester  Semester = "4th Semester"
	FifthSemester   Semester = "5th Semester"
	SixthSemester   Semester = "6th Semester"
	SeventhSemester Semester = "7th Semester"
	EighthSemester  Semester = "8th Semester"
)

// Semesters lists all semesters in promotion order.
var Semesters = []Semester{
	FirstSemester, SecondSemester, ThirdSemester, FourthSemester,
	FifthSemester, SixthSemester, SeventhSemester, EighthSemester,
}

// Valid reports whether s is one of the known semesters.
func (s Semester) Valid() bool {
	for _, v := range Semesters {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the semester that follows s. The second return value is
// false when s is the final semester or not a known semester.
func (s Semester) Next() (Semester, bool) {
	for i, v := range Semesters {
		if s == v && i+1 < len(Semesters) {
			return Semesters[i+1], true
		}
	}
	return "", false
}

// PaymentMode defines how a fee payment was made.
type PaymentMode string

const (
	ModeCash   PaymentMode = "Cash"
	ModeUPI    PaymentMode = "UPI"
	ModeCheque PaymentMode = "Cheque"
	ModeCard   PaymentMode = "Card"
	ModeOther  PaymentMode = "Other"
)

// PaymentModes lists the accepted payment modes.
var PaymentModes = []PaymentMode{ModeCash, ModeUPI, ModeCheque, ModeCard, ModeOther}

// Valid reports whether m is one of the accepted payment modes.
func (m PaymentMode) Valid() bool {
	for _, v := range PaymentModes {
		if m == v {
			return true
		}
	}
	return false
}

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male        Gender = "Male"
	Female      Gender = "Female"
	OtherGender Gender = "Other"
)

// Valid reports whether g is one of the known gender values.
func (g Gender) Valid() bool {
	return g == Male || g == Female || g == OtherGender
}

// StudentStatus defines the lifecycle status of a student record.
type StudentStatus string

const (
	StatusActive    StudentStatus = "active"
	StatusPassedOut StudentStatus = "passed_out"
)
