// Package student defines the Student record and its validating constructor.
//
// A Student is immutable: every field is unexported and only readable
// through accessors, so values can be shared freely between the ranking
// and report steps.
package student

import "strconv"

const (
	// PassingGPA is the lowest GPA that still passes the semester.
	PassingGPA = 2.5

	MinAge = 15
	MaxAge = 30

	MinGPA = 0.0
	MaxGPA = 4.5
)

// Student is a validated student record. The zero value is not a valid
// Student; obtain one through New.
type Student struct {
	fullName  string
	firstName string
	lastName  string
	age       int
	gpa       float64
}

// New validates the attributes and returns a Student holding them
// unchanged. Checks run in a fixed order (names, age, gpa) and the first
// failure is returned as a *ValidationError wrapping ErrInvalidName,
// ErrInvalidAge or ErrInvalidGPA.
func New(fullName, firstName, lastName string, age int, gpa float64) (Student, error) {
	attrs := attributes{
		FullName:  fullName,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		GPA:       gpa,
	}
	if err := attrs.check(); err != nil {
		return Student{}, err
	}

	return Student{
		fullName:  fullName,
		firstName: firstName,
		lastName:  lastName,
		age:       age,
		gpa:       gpa,
	}, nil
}

func (s Student) FullName() string { return s.fullName }
func (s Student) FirstName() string { return s.firstName }
func (s Student) LastName() string { return s.lastName }
func (s Student) Age() int { return s.age }
func (s Student) GPA() float64 { return s.gpa }

// WillPassSemester reports whether the GPA reaches PassingGPA.
func (s Student) WillPassSemester() bool {
	return s.gpa >= PassingGPA
}

func (s Student) String() string {
	return s.fullName + " (" + strconv.FormatFloat(s.gpa, 'f', -1, 64) + ")"
}
