// Package report renders students as fixed-layout text blocks.
//
// Render and Preamble return strings so callers and tests can inspect the
// output directly; Write streams a whole report to an io.Writer.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aanand-mishra/student-report/internal/student"
)

const (
	width      = 36
	labelWidth = 12

	// AscendGPA is the GPA from which a student wears the crown.
	AscendGPA = 4.0
	// HonorGPA is the GPA from which a student gets a star.
	HonorGPA = 3.5

	Crown   = "👑"
	Star    = "☆"
	Warning = "⚠️"
)

var (
	heavyRule = strings.Repeat("=", width)
	lightRule = strings.Repeat("-", width)
)

// Decoration returns the symbol shown after a GPA. The rules overlap, so
// the first match wins: crown, then star, then warning for a failing GPA.
func Decoration(gpa float64) string {
	switch {
	case gpa >= AscendGPA:
		return Crown
	case gpa >= HonorGPA:
		return Star
	case gpa < student.PassingGPA:
		return Warning
	default:
		return ""
	}
}

// Preamble returns the legend printed once before any student block.
func Preamble() string {
	var b strings.Builder
	b.WriteString("WARNINGS/NOTES:\n")
	b.WriteString("The standard GPA scale is up to 4.0, however if the student is performing perfectly and does more work than needed, we'll adjust the score up to 4.5.\n")
	b.WriteString("The " + Star + " symbol means that the student is doing extraordinarily well.\n")
	b.WriteString("The " + Crown + " symbol means that the student is likely to ascend.\n")
	b.WriteString("The " + Warning + " symbol means that the student will fail and needs to show more effort.\n")
	b.WriteString(lightRule + "\n")
	b.WriteString("\n")
	return b.String()
}

// Render returns the report block for one student.
func Render(s student.Student) string {
	var b strings.Builder

	b.WriteString(heavyRule + "\n")
	b.WriteString(upper(s.FullName()) + "\n")
	b.WriteString(heavyRule + "\n")
	writeField(&b, "Name", s.FullName())
	writeField(&b, "Age", strconv.Itoa(s.Age()))

	gpa := formatGPA(s.GPA())
	if sym := Decoration(s.GPA()); sym != "" {
		gpa += " " + sym
	}
	writeField(&b, "GPA", gpa)

	b.WriteString(lightRule + "\n")
	writeField(&b, "Will Pass", yesNo(s.WillPassSemester()))
	if s.GPA() >= AscendGPA {
		writeField(&b, "Will Ascend", "Yes")
	}
	b.WriteString(heavyRule + "\n")
	b.WriteString("\n")

	return b.String()
}

// Write writes the preamble followed by one block per student, in the
// order given.
func Write(w io.Writer, students []student.Student) error {
	if _, err := io.WriteString(w, Preamble()); err != nil {
		return fmt.Errorf("report: write preamble: %w", err)
	}
	for _, s := range students {
		if _, err := io.WriteString(w, Render(s)); err != nil {
			return fmt.Errorf("report: write %s: %w", s.FullName(), err)
		}
	}
	return nil
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, " %-*s: %s\n", labelWidth, label, value)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
