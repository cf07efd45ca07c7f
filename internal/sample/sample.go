// Package sample holds the demo records the command reports on.
package sample

import (
	"fmt"

	"github.com/aanand-mishra/student-report/internal/student"
)

type record struct {
	fullName, firstName, lastName string
	age                           int
	gpa                           float64
}

// records is in input order; Cem and TEst share a GPA and must keep
// this relative order after ranking.
var records = []record{
	{"Yanis Sebastian Zürcher", "Yanis Sebastian", "Zürcher", 16, 3.9},
	{"Koichiro Möller", "Koichiro", "Möller", 16, 3.0},
	{"Cem Kurd", "Cem", "Kurd", 16, 2.0},
	{"Leart Azemi", "Leart", "Azemi", 16, 2.4},
	{"Smart Student", "Smart", "Student", 16, 4.2},
	{"TEst Test", "TEst", "Test", 15, 2.0},
}

// Students builds the demo records in input order.
func Students() ([]student.Student, error) {
	students := make([]student.Student, 0, len(records))
	for _, r := range records {
		s, err := student.New(r.fullName, r.firstName, r.lastName, r.age, r.gpa)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", r.fullName, err)
		}
		students = append(students, s)
	}
	return students, nil
}
