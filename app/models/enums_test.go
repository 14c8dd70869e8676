package models

import "testing"

func TestYearNext(t *testing.T) {
	cases := map[Year]Year{
		FirstYear:  SecondYear,
		SecondYear: ThirdYear,
		ThirdYear:  FourthYear,
	}
	for year, want := range cases {
		next, ok := year.Next()
		if !ok || next != want {
			t.Fatalf("expected %s after %s, got %s (ok=%v)", want, year, next, ok)
		}
	}

	if _, ok := FourthYear.Next(); ok {
		t.Fatal("expected no year after the final year")
	}
	if _, ok := Year("5th Year").Next(); ok {
		t.Fatal("expected no successor for an unknown year")
	}
}

func TestSemesterNext(t *testing.T) {
	for i := 0; i < len(Semesters)-1; i++ {
		next, ok := Semesters[i].Next()
		if !ok || next != Semesters[i+1] {
			t.Fatalf("expected %s after %s, got %s (ok=%v)", Semesters[i+1], Semesters[i], next, ok)
		}
	}
	if _, ok := EighthSemester.Next(); ok {
		t.Fatal("expected no semester after the final semester")
	}
}

func TestEnumValidity(t *testing.T) {
	if !ThirdYear.Valid() || Year("3rd").Valid() {
		t.Fatal("year validity check broken")
	}
	if !FifthSemester.Valid() || Semester("Semester 5").Valid() {
		t.Fatal("semester validity check broken")
	}
	if !ModeUPI.Valid() || PaymentMode("Barter").Valid() {
		t.Fatal("payment mode validity check broken")
	}
	if !Female.Valid() || Gender("").Valid() {
		t.Fatal("gender validity check broken")
	}
}
