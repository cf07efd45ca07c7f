// Package ranking orders students by GPA.
package ranking

import (
	"cmp"
	"slices"

	"github.com/aanand-mishra/student-report/internal/student"
)

// ByGPADescending compares two students so that the higher GPA sorts
// first. It returns a negative number when a ranks before b.
func ByGPADescending(a, b student.Student) int {
	return cmp.Compare(b.GPA(), a.GPA())
}

// Rank returns a copy of students sorted by descending GPA. The sort is
// stable: students with equal GPA keep their input order. The input slice
// is left untouched.
func Rank(students []student.Student) []student.Student {
	ranked := slices.Clone(students)
	slices.SortStableFunc(ranked, ByGPADescending)
	return ranked
}
